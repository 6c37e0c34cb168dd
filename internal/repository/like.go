package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"microtwit/internal/model"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Create inserts a like row. The unique_like constraint rejects a second
// like for the same (user, tweet) pair, also under concurrent requests.
func (r *likeRepository) Create(ctx context.Context, userID, tweetID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO likes (user_id, tweet_id) VALUES ($1, $2)`, userID, tweetID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrAlreadyLiked
		}
		return fmt.Errorf("insert like: %w", err)
	}

	return nil
}

// Delete removes the matching like if present. Absence is not an error.
func (r *likeRepository) Delete(ctx context.Context, userID, tweetID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND tweet_id = $2`, userID, tweetID)
	if err != nil {
		return fmt.Errorf("delete like: %w", err)
	}

	return nil
}
