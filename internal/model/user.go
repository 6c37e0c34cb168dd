package model

import "errors"

// User represents a registered user. The api_key is the user's static
// credential and is never serialized into responses.
type User struct {
	ID     int64  `db:"id" json:"id"`
	APIKey string `db:"api_key" json:"-"`
	Name   string `db:"name" json:"name"`
}

// UserSummary is the compact id/name pair used inside profiles, feed
// authors and liker lists.
type UserSummary struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// UserProfile is a user together with the resolved follow graph around them.
type UserProfile struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Followers []UserSummary `json:"followers"`
	Following []UserSummary `json:"following"`
}

// UserProfileResponse wraps a profile in the standard result envelope.
type UserProfileResponse struct {
	Result bool        `json:"result"`
	User   UserProfile `json:"user"`
}

var (
	// ErrUserNotFound is returned when a user id has no matching row
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidAPIKey is returned when an api key matches no user.
	// Distinct from ErrUserNotFound: this gates every other operation.
	ErrInvalidAPIKey = errors.New("invalid API key")
)
