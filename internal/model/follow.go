package model

import "errors"

// Follow is a directed edge meaning "follower follows followee".
type Follow struct {
	FollowerID int64 `db:"follower_id" json:"follower_id"`
	FolloweeID int64 `db:"followee_id" json:"followee_id"`
}

var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrCannotFollowSelf = errors.New("cannot follow yourself")
)
