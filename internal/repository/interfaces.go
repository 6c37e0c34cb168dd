package repository

import (
	"context"

	"microtwit/internal/model"
)

type UserRepository interface {
	// GetByAPIKey resolves the static credential to a user; returns
	// model.ErrInvalidAPIKey when no row matches.
	GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	// GetProfile loads the user plus resolved follower/following lists.
	GetProfile(ctx context.Context, id int64) (*model.UserProfile, error)
}

type TweetRepository interface {
	// Create inserts a tweet and attaches the given media records in a
	// single transaction.
	Create(ctx context.Context, authorID int64, content string, mediaIDs []int64) (int64, error)
	// Update replaces the content in place; returns model.ErrTweetNotFound
	// when the id matches no row.
	Update(ctx context.Context, tweetID int64, content string) error
	// Delete removes the tweet row; likes and media rows go with it via
	// the schema's cascade rules.
	Delete(ctx context.Context, tweetID int64) error
	GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error)
	// GetRanked returns one row per tweet with author, first media url and
	// like count, ordered by like count descending (tweet id descending on
	// ties).
	GetRanked(ctx context.Context) ([]model.FeedRow, error)
	// GetLikersByTweetIDs returns the full liker list for each tweet in a
	// single batched query.
	GetLikersByTweetIDs(ctx context.Context, tweetIDs []int64) (map[int64][]model.Liker, error)
}

type MediaRepository interface {
	// CreateRecord inserts a standalone media row with no tweet yet.
	CreateRecord(ctx context.Context, url, path string) (*model.Media, error)
	// AttachToTweet bulk-links media rows to a tweet; unknown ids are
	// silently skipped.
	AttachToTweet(ctx context.Context, tweetID int64, mediaIDs []int64) error
	GetPathsByTweet(ctx context.Context, tweetID int64) ([]string, error)
}

type LikeRepository interface {
	// Create inserts a like; a duplicate (user, tweet) pair surfaces as
	// model.ErrAlreadyLiked.
	Create(ctx context.Context, userID, tweetID int64) error
	// Delete removes the matching like; deleting a non-existent like is a
	// no-op, not an error.
	Delete(ctx context.Context, userID, tweetID int64) error
}

type FollowRepository interface {
	// Create inserts the edge; returns false when it already existed.
	Create(ctx context.Context, followerID, followeeID int64) (bool, error)
	// Delete removes the edge; returns whether a row was actually removed.
	Delete(ctx context.Context, followerID, followeeID int64) (bool, error)
}
