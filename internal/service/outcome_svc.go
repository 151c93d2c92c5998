package service

import (
	"context"
	"log"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
	"github.com/arben-grepi/Clutch3-sub000/internal/repository"
)

// OutcomeService processes reviewer verdicts: agreement verifies the
// video, disagreement routes it into the global dispute pool.
type OutcomeService struct {
	reviews *repository.ReviewRepo
	cache   *CacheService
}

func NewOutcomeService(reviews *repository.ReviewRepo, cache *CacheService) *OutcomeService {
	return &OutcomeService{reviews: reviews, cache: cache}
}

// Submit records the reviewer's verdict. A nil reviewerShots asserts a
// rule violation (discard request) and always disputes.
func (s *OutcomeService) Submit(ctx context.Context, req model.OutcomeRequest) (*model.OutcomeResult, error) {
	rec, err := s.reviews.SubmitOutcome(ctx, req.VideoID, req.UserID, req.ReviewerShots, req.Reason)
	if err != nil {
		return nil, err
	}

	// Derived reads are cache-aside; drop anything this verdict changed.
	if s.cache != nil {
		for _, userID := range []string{rec.OwnerID, req.UserID} {
			if err := s.cache.InvalidateUser(ctx, userID); err != nil {
				log.Printf("cache: invalidate user error: %v", err)
			}
		}
		if err := s.cache.InvalidateGlobalStats(ctx); err != nil {
			log.Printf("cache: invalidate stats error: %v", err)
		}
	}

	result := &model.OutcomeResult{
		VideoID:  req.VideoID,
		Disputed: rec.Disputed,
		Status:   model.StatusVerified,
	}
	if rec.Disputed {
		result.Status = model.StatusDisputed
	}
	return result, nil
}
