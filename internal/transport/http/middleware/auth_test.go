package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"microtwit/internal/model"
)

type stubUserRepository struct {
	getByAPIKeyFn func(ctx context.Context, apiKey string) (*model.User, error)
}

func (s *stubUserRepository) GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	return s.getByAPIKeyFn(ctx, apiKey)
}

func (s *stubUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, model.ErrUserNotFound
}

func (s *stubUserRepository) GetProfile(ctx context.Context, id int64) (*model.UserProfile, error) {
	return nil, model.ErrUserNotFound
}

func decodeDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Detail
}

func TestAPIKeyAuth_MissingKey(t *testing.T) {
	repo := &stubUserRepository{
		getByAPIKeyFn: func(ctx context.Context, apiKey string) (*model.User, error) {
			t.Fatal("repository must not be queried without a key")
			return nil, nil
		},
	}
	handler := APIKeyAuth(repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if detail := decodeDetail(t, rr); detail != "API key is missing" {
		t.Errorf("detail = %q, want %q", detail, "API key is missing")
	}
}

func TestAPIKeyAuth_InvalidKey(t *testing.T) {
	repo := &stubUserRepository{
		getByAPIKeyFn: func(ctx context.Context, apiKey string) (*model.User, error) {
			return nil, model.ErrInvalidAPIKey
		},
	}
	handler := APIKeyAuth(repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/tweets", nil)
	req.Header.Set("api-key", "bogus")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusUnauthorized)
	}
	if detail := decodeDetail(t, rr); detail != "Invalid API key" {
		t.Errorf("detail = %q, want %q", detail, "Invalid API key")
	}
}

func TestAPIKeyAuth_ValidKey(t *testing.T) {
	want := &model.User{ID: 4, APIKey: "test", Name: "TestUser"}
	repo := &stubUserRepository{
		getByAPIKeyFn: func(ctx context.Context, apiKey string) (*model.User, error) {
			if apiKey != "test" {
				t.Errorf("looked up key %q, want %q", apiKey, "test")
			}
			return want, nil
		},
	}

	var got *model.User
	handler := APIKeyAuth(repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatal("no user in request context")
		}
		got = user
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("api-key", "test")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got != want {
		t.Errorf("context user = %+v, want %+v", got, want)
	}
}
