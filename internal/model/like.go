package model

import "errors"

// Like is a (user, tweet) pair; the pair is unique per the likes table
// constraint, so a user may like a given tweet at most once.
type Like struct {
	ID      int64 `db:"id" json:"id"`
	UserID  int64 `db:"user_id" json:"user_id"`
	TweetID int64 `db:"tweet_id" json:"tweet_id"`
}

// ErrAlreadyLiked is returned when the (user, tweet) pair already exists.
var ErrAlreadyLiked = errors.New("tweet already liked by this user")
