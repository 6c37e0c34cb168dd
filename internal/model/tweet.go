package model

import (
	"errors"
	"time"
)

// Tweet represents a user-authored text post.
type Tweet struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"user_id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CreateTweetRequest is the request body for posting a tweet. Media ids
// reference records created earlier via the upload endpoint (two-phase link).
type CreateTweetRequest struct {
	TweetData     string  `json:"tweet_data"`
	TweetMediaIDs []int64 `json:"tweet_media_ids"`
}

// UpdateTweetRequest is the request body for replacing a tweet's content.
type UpdateTweetRequest struct {
	TweetData string `json:"tweet_data"`
}

// TweetCreatedResponse is the success envelope for POST /api/tweets.
type TweetCreatedResponse struct {
	Result  bool  `json:"result"`
	TweetID int64 `json:"tweet_id"`
}

// FeedRow is one row of the ranked aggregate query: a tweet joined to its
// author, its first media url ('' when none) and its like count.
type FeedRow struct {
	ID         int64  `db:"id"`
	Content    string `db:"content"`
	UserID     int64  `db:"user_id"`
	UserName   string `db:"user_name"`
	MediaURL   string `db:"media_url"`
	LikesCount int    `db:"likes_count"`
}

// Liker identifies a user who liked a tweet.
type Liker struct {
	UserID int64  `db:"user_id" json:"user_id"`
	Name   string `db:"name" json:"name"`
}

// FeedTweet is a fully assembled feed item.
type FeedTweet struct {
	ID          int64       `json:"id"`
	Content     string      `json:"content"`
	Author      UserSummary `json:"author"`
	Attachments []string    `json:"attachments"`
	Likes       []Liker     `json:"likes"`
}

// FeedResponse is the success envelope for GET /api/tweets, ordered by
// like count descending.
type FeedResponse struct {
	Result bool        `json:"result"`
	Tweets []FeedTweet `json:"tweets"`
}

var (
	// ErrTweetNotFound is returned when a tweet id has no matching row
	ErrTweetNotFound = errors.New("tweet not found")

	// ErrNotTweetOwner is returned when a user modifies a tweet they do not own
	ErrNotTweetOwner = errors.New("not the owner of this tweet")

	// ErrEmptyContent is returned when tweet content is missing or blank
	ErrEmptyContent = errors.New("tweet content is required")
)
