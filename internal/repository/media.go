package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"microtwit/internal/model"
)

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

// CreateRecord inserts a media row with no tweet association yet; the
// tweet_id is filled in later when the tweet referencing it is created.
func (r *mediaRepository) CreateRecord(ctx context.Context, url, path string) (*model.Media, error) {
	query := `
		INSERT INTO media (url, path)
		VALUES ($1, $2)
		RETURNING id, url, path, tweet_id
	`

	var m model.Media
	if err := r.db.GetContext(ctx, &m, query, url, path); err != nil {
		return nil, fmt.Errorf("insert media: %w", err)
	}

	return &m, nil
}

// AttachToTweet bulk-updates every media row in mediaIDs to point at the
// tweet. Ids that match no row are skipped without error.
func (r *mediaRepository) AttachToTweet(ctx context.Context, tweetID int64, mediaIDs []int64) error {
	if len(mediaIDs) == 0 {
		return nil
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE media SET tweet_id = $1 WHERE id = ANY($2)`, tweetID, pq.Array(mediaIDs))
	if err != nil {
		return fmt.Errorf("attach media: %w", err)
	}

	return nil
}

// GetPathsByTweet returns the storage paths of every media row on a tweet.
func (r *mediaRepository) GetPathsByTweet(ctx context.Context, tweetID int64) ([]string, error) {
	var paths []string
	err := r.db.SelectContext(ctx, &paths,
		`SELECT path FROM media WHERE tweet_id = $1`, tweetID)
	if err != nil {
		return nil, fmt.Errorf("get media paths: %w", err)
	}

	return paths, nil
}
