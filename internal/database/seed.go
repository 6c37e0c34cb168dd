package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
)

// SeedDemoData populates an empty database with demo users, tweets, likes,
// follows and media so the API is usable immediately after first startup.
// It is a no-op when any user already exists.
func SeedDemoData(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	users := []struct {
		apiKey string
		name   string
	}{
		{"111", "User11"},
		{"222", "User22"},
		{"333", "User32"},
		{"test", "TestUser"},
	}
	userIDs := make([]int64, len(users))
	for i, u := range users {
		err := tx.GetContext(ctx, &userIDs[i],
			`INSERT INTO users (api_key, name) VALUES ($1, $2) RETURNING id`, u.apiKey, u.name)
		if err != nil {
			return fmt.Errorf("seed user %q: %w", u.name, err)
		}
	}

	tweets := []struct {
		author  int
		content string
	}{
		{0, "First tweet by User1"},
		{0, "Second tweet by User1"},
		{1, "First tweet by User2"},
		{1, "Second tweet by User2"},
		{2, "First tweet by User3"},
		{2, "Second tweet by User3"},
	}
	tweetIDs := make([]int64, len(tweets))
	for i, t := range tweets {
		err := tx.GetContext(ctx, &tweetIDs[i],
			`INSERT INTO tweets (user_id, content) VALUES ($1, $2) RETURNING id`, userIDs[t.author], t.content)
		if err != nil {
			return fmt.Errorf("seed tweet %d: %w", i, err)
		}
	}

	// Every author likes their own tweets, plus two cross-user likes so the
	// first two tweets rank highest in the feed.
	likes := [][2]int{
		{0, 0}, {0, 1},
		{1, 2}, {1, 3},
		{2, 4}, {2, 5},
		{1, 0}, {2, 1},
	}
	for _, l := range likes {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO likes (user_id, tweet_id) VALUES ($1, $2)`, userIDs[l[0]], tweetIDs[l[1]])
		if err != nil {
			return fmt.Errorf("seed like: %w", err)
		}
	}

	follows := [][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, f := range follows {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO follows (follower_id, followee_id) VALUES ($1, $2)`, userIDs[f[0]], userIDs[f[1]])
		if err != nil {
			return fmt.Errorf("seed follow: %w", err)
		}
	}

	for i := 0; i < 3; i++ {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO media (url, path, tweet_id) VALUES ($1, $2, $3)`,
			fmt.Sprintf("http://example.com/media%d.jpg", i+1),
			fmt.Sprintf("path/to/media%d.jpg", i+1),
			tweetIDs[i])
		if err != nil {
			return fmt.Errorf("seed media %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	log.Println("Seeded demo data")
	return nil
}
