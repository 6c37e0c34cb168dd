package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"microtwit/internal/model"
	"microtwit/internal/transport/http/middleware"
)

// Handler tests drive real services backed by stub repositories, through a
// chi router so URL params resolve the same way as in production.

type stubTweetRepository struct {
	createFn    func(ctx context.Context, authorID int64, content string, mediaIDs []int64) (int64, error)
	updateFn    func(ctx context.Context, tweetID int64, content string) error
	deleteFn    func(ctx context.Context, tweetID int64) error
	getByIDFn   func(ctx context.Context, tweetID int64) (*model.Tweet, error)
	getRankedFn func(ctx context.Context) ([]model.FeedRow, error)
	getLikersFn func(ctx context.Context, tweetIDs []int64) (map[int64][]model.Liker, error)
}

func (s *stubTweetRepository) Create(ctx context.Context, authorID int64, content string, mediaIDs []int64) (int64, error) {
	if s.createFn != nil {
		return s.createFn(ctx, authorID, content, mediaIDs)
	}
	return 1, nil
}

func (s *stubTweetRepository) Update(ctx context.Context, tweetID int64, content string) error {
	if s.updateFn != nil {
		return s.updateFn(ctx, tweetID, content)
	}
	return nil
}

func (s *stubTweetRepository) Delete(ctx context.Context, tweetID int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, tweetID)
	}
	return nil
}

func (s *stubTweetRepository) GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, tweetID)
	}
	return nil, model.ErrTweetNotFound
}

func (s *stubTweetRepository) GetRanked(ctx context.Context) ([]model.FeedRow, error) {
	if s.getRankedFn != nil {
		return s.getRankedFn(ctx)
	}
	return []model.FeedRow{}, nil
}

func (s *stubTweetRepository) GetLikersByTweetIDs(ctx context.Context, tweetIDs []int64) (map[int64][]model.Liker, error) {
	if s.getLikersFn != nil {
		return s.getLikersFn(ctx, tweetIDs)
	}
	return map[int64][]model.Liker{}, nil
}

type stubMediaRepository struct {
	getPathsByTweetFn func(ctx context.Context, tweetID int64) ([]string, error)
}

func (s *stubMediaRepository) CreateRecord(ctx context.Context, url, path string) (*model.Media, error) {
	return &model.Media{ID: 1, URL: url, Path: path}, nil
}

func (s *stubMediaRepository) AttachToTweet(ctx context.Context, tweetID int64, mediaIDs []int64) error {
	return nil
}

func (s *stubMediaRepository) GetPathsByTweet(ctx context.Context, tweetID int64) ([]string, error) {
	if s.getPathsByTweetFn != nil {
		return s.getPathsByTweetFn(ctx, tweetID)
	}
	return nil, nil
}

type stubLikeRepository struct {
	createFn func(ctx context.Context, userID, tweetID int64) error
	deleteFn func(ctx context.Context, userID, tweetID int64) error
}

func (s *stubLikeRepository) Create(ctx context.Context, userID, tweetID int64) error {
	if s.createFn != nil {
		return s.createFn(ctx, userID, tweetID)
	}
	return nil
}

func (s *stubLikeRepository) Delete(ctx context.Context, userID, tweetID int64) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, tweetID)
	}
	return nil
}

type stubBlobStore struct{}

func (s *stubBlobStore) Store(ctx context.Context, key, srcPath, contentType string) (string, string, error) {
	return "http://example.com/" + key, key, nil
}

func (s *stubBlobStore) Delete(ctx context.Context, path string) error {
	return nil
}

// injectUser plays the role of the auth middleware, placing a fixed user in
// the request context.
func injectUser(user *model.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// newTweetRouter mounts the tweet and feed routes the way the production
// router does, with the given user pre-authenticated.
func newTweetRouter(user *model.User, th *TweetHandler, fh *FeedHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(injectUser(user))
	r.Get("/api/tweets", fh.GetFeed)
	r.Post("/api/tweets", th.Create)
	r.Put("/api/tweets/{id}", th.Update)
	r.Delete("/api/tweets/{id}", th.Delete)
	r.Post("/api/tweets/{id}/likes", th.Like)
	r.Delete("/api/tweets/{id}/likes", th.Unlike)
	return r
}
