package service

import (
	"context"
	"errors"
	"testing"

	"microtwit/internal/model"
)

func TestUserService_GetByAPIKey(t *testing.T) {
	mockRepo := &mockUserRepository{
		getByAPIKeyFn: func(ctx context.Context, apiKey string) (*model.User, error) {
			if apiKey == "111" {
				return &model.User{ID: 1, APIKey: "111", Name: "User11"}, nil
			}
			return nil, model.ErrInvalidAPIKey
		},
	}
	svc := NewUserService(mockRepo)

	user, err := svc.GetByAPIKey(context.Background(), "111")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if user.ID != 1 || user.Name != "User11" {
		t.Errorf("user = %+v, want id=1 name=User11", user)
	}

	// Every unknown key fails the auth gate, regardless of how close it is
	// to a real one.
	if _, err := svc.GetByAPIKey(context.Background(), "1111"); !errors.Is(err, model.ErrInvalidAPIKey) {
		t.Errorf("err = %v, want ErrInvalidAPIKey", err)
	}
}

func TestUserService_GetProfile(t *testing.T) {
	mockRepo := &mockUserRepository{
		getProfileFn: func(ctx context.Context, id int64) (*model.UserProfile, error) {
			if id != 1 {
				return nil, model.ErrUserNotFound
			}
			return &model.UserProfile{
				ID:        1,
				Name:      "User11",
				Followers: []model.UserSummary{{ID: 3, Name: "User32"}},
				Following: []model.UserSummary{{ID: 2, Name: "User22"}},
			}, nil
		},
	}
	svc := NewUserService(mockRepo)

	profile, err := svc.GetProfile(context.Background(), 1)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if len(profile.Followers) != 1 || profile.Followers[0].Name != "User32" {
		t.Errorf("followers = %+v, want [User32]", profile.Followers)
	}
	if len(profile.Following) != 1 || profile.Following[0].Name != "User22" {
		t.Errorf("following = %+v, want [User22]", profile.Following)
	}

	if _, err := svc.GetProfile(context.Background(), 99); !errors.Is(err, model.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
