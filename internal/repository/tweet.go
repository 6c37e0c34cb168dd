package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"microtwit/internal/model"
)

type tweetRepository struct {
	db *sqlx.DB
}

func NewTweetRepository(db *sqlx.DB) TweetRepository {
	return &tweetRepository{db: db}
}

// Create inserts a new tweet and links its pre-uploaded media in one
// transaction, so a failed media attach leaves no orphan tweet behind.
func (r *tweetRepository) Create(ctx context.Context, authorID int64, content string, mediaIDs []int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var tweetID int64
	err = tx.GetContext(ctx, &tweetID,
		`INSERT INTO tweets (user_id, content) VALUES ($1, $2) RETURNING id`, authorID, content)
	if err != nil {
		return 0, fmt.Errorf("insert tweet: %w", err)
	}

	if len(mediaIDs) > 0 {
		_, err = tx.ExecContext(ctx,
			`UPDATE media SET tweet_id = $1 WHERE id = ANY($2)`, tweetID, pq.Array(mediaIDs))
		if err != nil {
			return 0, fmt.Errorf("attach media: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}

	return tweetID, nil
}

// Update replaces the tweet's content in place.
func (r *tweetRepository) Update(ctx context.Context, tweetID int64, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tweets SET content = $1 WHERE id = $2`, content, tweetID)
	if err != nil {
		return fmt.Errorf("update tweet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrTweetNotFound
	}

	return nil
}

// Delete removes the tweet row. Its likes and media rows are removed by the
// ON DELETE CASCADE rules on their foreign keys.
func (r *tweetRepository) Delete(ctx context.Context, tweetID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tweets WHERE id = $1`, tweetID)
	if err != nil {
		return fmt.Errorf("delete tweet: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return model.ErrTweetNotFound
	}

	return nil
}

func (r *tweetRepository) GetByID(ctx context.Context, tweetID int64) (*model.Tweet, error) {
	query := `SELECT id, user_id, content, created_at FROM tweets WHERE id = $1`

	var t model.Tweet
	err := r.db.GetContext(ctx, &t, query, tweetID)
	if err == sql.ErrNoRows {
		return nil, model.ErrTweetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get tweet: %w", err)
	}

	return &t, nil
}

// GetRanked produces one row per tweet: inner join to the author, outer
// joins to media and likes, grouped by tweet. likes_count is the number of
// distinct like rows (0 if none) and media_url is the first associated url
// ('' if none). Ties on like count break by tweet id descending so the
// ordering is deterministic.
func (r *tweetRepository) GetRanked(ctx context.Context) ([]model.FeedRow, error) {
	query := `
		SELECT t.id, t.content, t.user_id, u.name AS user_name,
		       COALESCE(MIN(m.url), '') AS media_url,
		       COUNT(DISTINCT l.id) AS likes_count
		FROM tweets t
		JOIN users u ON u.id = t.user_id
		LEFT JOIN media m ON m.tweet_id = t.id
		LEFT JOIN likes l ON l.tweet_id = t.id
		GROUP BY t.id, t.content, t.user_id, u.name
		ORDER BY likes_count DESC, t.id DESC
	`

	var rows []model.FeedRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("get ranked tweets: %w", err)
	}

	return rows, nil
}

// GetLikersByTweetIDs fetches every liker of the given tweets in a single
// batched join, grouped by tweet id.
func (r *tweetRepository) GetLikersByTweetIDs(ctx context.Context, tweetIDs []int64) (map[int64][]model.Liker, error) {
	if len(tweetIDs) == 0 {
		return map[int64][]model.Liker{}, nil
	}

	query := `
		SELECT l.tweet_id, l.user_id, u.name
		FROM likes l
		JOIN users u ON u.id = l.user_id
		WHERE l.tweet_id = ANY($1)
		ORDER BY l.id
	`

	type likerRow struct {
		TweetID int64  `db:"tweet_id"`
		UserID  int64  `db:"user_id"`
		Name    string `db:"name"`
	}
	var rows []likerRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(tweetIDs)); err != nil {
		return nil, fmt.Errorf("get likers: %w", err)
	}

	result := make(map[int64][]model.Liker)
	for _, row := range rows {
		result[row.TweetID] = append(result[row.TweetID], model.Liker{UserID: row.UserID, Name: row.Name})
	}

	return result, nil
}
