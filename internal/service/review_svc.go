package service

import (
	"context"
	"time"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
	"github.com/arben-grepi/Clutch3-sub000/internal/repository"
)

// ReviewService locates review candidates and coordinates claims on the
// country-scoped pending pool. The repository's compare-and-set provides
// the mutual exclusion; this layer adds the one-time review gate and the
// claim lease policy.
type ReviewService struct {
	reviews  *repository.ReviewRepo
	users    *repository.UserRepo
	leaseTTL time.Duration
}

func NewReviewService(reviews *repository.ReviewRepo, users *repository.UserRepo, leaseTTL time.Duration) *ReviewService {
	return &ReviewService{reviews: reviews, users: users, leaseTTL: leaseTTL}
}

// leaseCutoff computes the moment before which a claim counts as abandoned.
func (s *ReviewService) leaseCutoff() time.Time {
	return time.Now().Add(-s.leaseTTL)
}

// FindCandidate returns an eligible pending review for the user, oldest
// first. Users who have already satisfied the review gate are exempt and
// get ErrNoCandidate without touching the pool.
func (s *ReviewService) FindCandidate(ctx context.Context, country, userID string) (*model.PendingReview, error) {
	done, err := s.users.HasReviewed(ctx, userID)
	if err != nil {
		return nil, err
	}
	if done {
		return nil, model.ErrNoCandidate
	}
	return s.reviews.FindCandidate(ctx, country, userID, s.leaseCutoff())
}

// Claim takes exclusive hold of a pending entry. ErrClaimConflict is a
// normal race outcome; the caller should re-query FindCandidate.
func (s *ReviewService) Claim(ctx context.Context, videoID, userID string) error {
	return s.reviews.Claim(ctx, videoID, userID, s.leaseCutoff())
}

// Release gives a claimed entry back. Safe to call after the claim has
// expired or been taken over; reports whether anything was released.
func (s *ReviewService) Release(ctx context.Context, videoID, userID string) (bool, error) {
	return s.reviews.Release(ctx, videoID, userID)
}
