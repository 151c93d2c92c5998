package service

import (
	"context"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
	"github.com/arben-grepi/Clutch3-sub000/internal/repository"
)

type UserService struct {
	repo *repository.UserRepo
}

func NewUserService(repo *repository.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Lookup returns the user response for a given user ID.
func (s *UserService) Lookup(ctx context.Context, userID string) (*model.UserResponse, error) {
	u, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &model.UserResponse{
		UserID:            u.UserID,
		Country:           u.Country,
		HasReviewed:       u.HasReviewed,
		IncorrectUploads:  u.IncorrectUploads,
		IncorrectReviews:  u.IncorrectReviews,
		Last100Percentage: u.Last100Percentage,
		AllTimeShots:      u.AllTimeShots,
		AllTimeAttempts:   u.AllTimeAttempts,
	}, nil
}

// GetStats returns aggregate platform statistics.
func (s *UserService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	return s.repo.GetStats(ctx)
}
