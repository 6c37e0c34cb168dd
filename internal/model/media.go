package model

import "errors"

// MaxMediaSize caps a single uploaded file at 10MB.
const MaxMediaSize = 10 * 1024 * 1024

// Media is an uploaded file record. TweetID is nil between upload and
// tweet creation: a media row exists before being attached to a tweet.
type Media struct {
	ID      int64  `db:"id" json:"id"`
	URL     string `db:"url" json:"url"`
	Path    string `db:"path" json:"-"`
	TweetID *int64 `db:"tweet_id" json:"tweet_id"`
}

// MediaResponse is the success envelope for POST /api/medias.
type MediaResponse struct {
	Result  bool  `json:"result"`
	MediaID int64 `json:"media_id"`
}

// ResultResponse is the bare success envelope used by mutation endpoints.
type ResultResponse struct {
	Result bool `json:"result"`
}

var (
	// ErrUnsupportedMediaType is returned when uploaded bytes are not a
	// recognized image format
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFileTooLarge is returned when an upload exceeds MaxMediaSize
	ErrFileTooLarge = errors.New("file too large")

	// ErrEmptyFile is returned when an upload carries no bytes
	ErrEmptyFile = errors.New("empty file")
)
