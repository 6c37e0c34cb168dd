package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"microtwit/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByAPIKey retrieves a user by their static api key
func (r *userRepository) GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	query := `SELECT id, api_key, name FROM users WHERE api_key = $1`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, apiKey)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrInvalidAPIKey
		}
		return nil, fmt.Errorf("failed to get user by api key: %w", err)
	}

	return &u, nil
}

// GetByID retrieves a user by their ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT id, api_key, name FROM users WHERE id = $1`

	var u model.User
	err := r.db.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return &u, nil
}

// GetProfile loads the user plus their followers (inbound edges) and the
// users they follow (outbound edges), each resolved to id/name pairs.
// Ordering within the two lists follows storage order.
func (r *userRepository) GetProfile(ctx context.Context, id int64) (*model.UserProfile, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	followersQuery := `
		SELECT u.id, u.name
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.followee_id = $1
	`
	followers := []model.UserSummary{}
	if err := r.db.SelectContext(ctx, &followers, followersQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get followers: %w", err)
	}

	followingQuery := `
		SELECT u.id, u.name
		FROM follows f
		JOIN users u ON u.id = f.followee_id
		WHERE f.follower_id = $1
	`
	following := []model.UserSummary{}
	if err := r.db.SelectContext(ctx, &following, followingQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get following: %w", err)
	}

	return &model.UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Followers: followers,
		Following: following,
	}, nil
}
