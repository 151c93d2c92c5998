package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
	"github.com/arben-grepi/Clutch3-sub000/internal/repository"
)

// VideoService drives the upload pipeline edge: registration, the
// uploading transition, completion into the pending pool, and terminal
// upload failure. Video bytes live in external blob storage; this service
// only tracks lifecycle state.
type VideoService struct {
	videos *repository.VideoRepo
	cache  *CacheService
}

func NewVideoService(videos *repository.VideoRepo, cache *CacheService) *VideoService {
	return &VideoService{videos: videos, cache: cache}
}

// Create registers a new recording session with a server-generated ID.
func (s *VideoService) Create(ctx context.Context, ownerID, country string) (*model.Video, error) {
	videoID := uuid.NewString()
	return s.videos.Create(ctx, videoID, ownerID, country)
}

// StartUpload marks the session as uploading to blob storage.
func (s *VideoService) StartUpload(ctx context.Context, videoID, ownerID string) error {
	return s.videos.StartUpload(ctx, videoID, ownerID)
}

// Complete finishes the upload with the uploader's self-reported shot
// count and enters the video into its country's pending pool.
func (s *VideoService) Complete(ctx context.Context, videoID, ownerID string, reportedShots int) (*model.Video, error) {
	v, err := s.videos.CompleteUpload(ctx, videoID, ownerID, reportedShots)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateUser(ctx, ownerID); err != nil {
			log.Printf("cache: invalidate user error: %v", err)
		}
		if err := s.cache.InvalidateGlobalStats(ctx); err != nil {
			log.Printf("cache: invalidate stats error: %v", err)
		}
	}
	return v, nil
}

// MarkErrored terminates a failed upload.
func (s *VideoService) MarkErrored(ctx context.Context, videoID, ownerID string) error {
	return s.videos.MarkErrored(ctx, videoID, ownerID)
}

// Lookup returns a video by ID.
func (s *VideoService) Lookup(ctx context.Context, videoID string) (*model.Video, error) {
	return s.videos.FindByVideoID(ctx, videoID)
}
