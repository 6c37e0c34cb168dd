package service

import (
	"context"

	"microtwit/internal/model"
)

// =============================================================================
// MOCK REPOSITORIES
// =============================================================================
//
// Services depend on the repository INTERFACES, so tests swap in mocks with
// controlled behavior instead of hitting a real database. Each function
// field overrides one operation; unset fields fall back to a safe default.

type mockUserRepository struct {
	getByAPIKeyFn func(ctx context.Context, apiKey string) (*model.User, error)
	getByIDFn     func(ctx context.Context, id int64) (*model.User, error)
	getProfileFn  func(ctx context.Context, id int64) (*model.UserProfile, error)
}

func (m *mockUserRepository) GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	if m.getByAPIKeyFn != nil {
		return m.getByAPIKeyFn(ctx, apiKey)
	}
	return nil, model.ErrInvalidAPIKey
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) GetProfile(ctx context.Context, id int64) (*model.UserProfile, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, id)
	}
	return nil, model.ErrUserNotFound
}

type mockTweetRepository struct {
	createFn    func(ctx context.Context, authorID int64, content string, mediaIDs []int64) (int64, error)
	updateFn    func(ctx context.Context, tweetID int64, content string) error
	deleteFn    func(ctx context.Context, tweetID int64) error
	getByIDFn   func(ctx context.Context, tweetID int64) (*model.Tweet, error)
	getRankedFn func(ctx context.Context) ([]model.FeedRow, error)
	getLikersFn func(ctx context.Context, tweetIDs []int64) (map[int64][]model.Liker, error)

	deleteCalls []int64
}

func (m *mockTweetRepository) Create(ctx context.Context, authorID int64, content string, mediaIDs []int64) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, authorID, content, mediaIDs)
	}
	return 1, nil
}

func (m *mockTweetRepository) Update(ctx context.Context, tweetID int64, content string) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, tweetID, content)
	}
	return nil
}

func (m *mockTweetRepository) Delete(ctx context.Context, tweetID int64) error {
	m.deleteCalls = append(m.deleteCalls, tweetID)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tweetID)
	}
	return nil
}

func (m *mockTweetRepository) GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, tweetID)
	}
	return nil, model.ErrTweetNotFound
}

func (m *mockTweetRepository) GetRanked(ctx context.Context) ([]model.FeedRow, error) {
	if m.getRankedFn != nil {
		return m.getRankedFn(ctx)
	}
	return []model.FeedRow{}, nil
}

func (m *mockTweetRepository) GetLikersByTweetIDs(ctx context.Context, tweetIDs []int64) (map[int64][]model.Liker, error) {
	if m.getLikersFn != nil {
		return m.getLikersFn(ctx, tweetIDs)
	}
	return map[int64][]model.Liker{}, nil
}

type mockMediaRepository struct {
	createRecordFn    func(ctx context.Context, url, path string) (*model.Media, error)
	attachToTweetFn   func(ctx context.Context, tweetID int64, mediaIDs []int64) error
	getPathsByTweetFn func(ctx context.Context, tweetID int64) ([]string, error)
}

func (m *mockMediaRepository) CreateRecord(ctx context.Context, url, path string) (*model.Media, error) {
	if m.createRecordFn != nil {
		return m.createRecordFn(ctx, url, path)
	}
	return &model.Media{ID: 1, URL: url, Path: path}, nil
}

func (m *mockMediaRepository) AttachToTweet(ctx context.Context, tweetID int64, mediaIDs []int64) error {
	if m.attachToTweetFn != nil {
		return m.attachToTweetFn(ctx, tweetID, mediaIDs)
	}
	return nil
}

func (m *mockMediaRepository) GetPathsByTweet(ctx context.Context, tweetID int64) ([]string, error) {
	if m.getPathsByTweetFn != nil {
		return m.getPathsByTweetFn(ctx, tweetID)
	}
	return nil, nil
}

type mockLikeRepository struct {
	createFn func(ctx context.Context, userID, tweetID int64) error
	deleteFn func(ctx context.Context, userID, tweetID int64) error

	deleteCalls [][2]int64
}

func (m *mockLikeRepository) Create(ctx context.Context, userID, tweetID int64) error {
	if m.createFn != nil {
		return m.createFn(ctx, userID, tweetID)
	}
	return nil
}

func (m *mockLikeRepository) Delete(ctx context.Context, userID, tweetID int64) error {
	m.deleteCalls = append(m.deleteCalls, [2]int64{userID, tweetID})
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, tweetID)
	}
	return nil
}

type mockFollowRepository struct {
	createFn func(ctx context.Context, followerID, followeeID int64) (bool, error)
	deleteFn func(ctx context.Context, followerID, followeeID int64) (bool, error)
}

func (m *mockFollowRepository) Create(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, followerID, followeeID)
	}
	return true, nil
}

func (m *mockFollowRepository) Delete(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, followerID, followeeID)
	}
	return true, nil
}

// mockBlobStore records stored and deleted blobs in memory.
type mockBlobStore struct {
	storeFn  func(ctx context.Context, key, srcPath, contentType string) (string, string, error)
	deleteFn func(ctx context.Context, path string) error

	storedKeys   []string
	deletedPaths []string
}

func (m *mockBlobStore) Store(ctx context.Context, key, srcPath, contentType string) (string, string, error) {
	m.storedKeys = append(m.storedKeys, key)
	if m.storeFn != nil {
		return m.storeFn(ctx, key, srcPath, contentType)
	}
	return "http://example.com/" + key, key, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, path string) error {
	m.deletedPaths = append(m.deletedPaths, path)
	if m.deleteFn != nil {
		return m.deleteFn(ctx, path)
	}
	return nil
}
