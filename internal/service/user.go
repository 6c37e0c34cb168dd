package service

import (
	"context"

	"microtwit/internal/model"
	"microtwit/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByAPIKey resolves the api-key credential to a user.
func (s *UserService) GetByAPIKey(ctx context.Context, apiKey string) (*model.User, error) {
	return s.userRepo.GetByAPIKey(ctx, apiKey)
}

// GetProfile loads a user with their follower and following lists.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*model.UserProfile, error) {
	return s.userRepo.GetProfile(ctx, userID)
}
