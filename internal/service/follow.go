package service

import (
	"context"

	"microtwit/internal/model"
	"microtwit/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates the edge follower -> followee. The followee must exist,
// self-follows are rejected, and re-following is a conflict.
func (s *FollowService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return model.ErrCannotFollowSelf
	}

	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}

	inserted, err := s.followRepo.Create(ctx, followerID, followeeID)
	if err != nil {
		return err
	}
	if !inserted {
		return model.ErrAlreadyFollowing
	}

	return nil
}

// Unfollow removes the edge if present and reports whether a row was
// actually deleted. Unfollowing someone not followed is not an error.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	return s.followRepo.Delete(ctx, followerID, followeeID)
}
