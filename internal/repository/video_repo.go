package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// Create registers a new recording session, upserting the owner first so a
// first-time uploader gets a user row with defaults.
func (r *VideoRepo) Create(ctx context.Context, videoID, ownerID, country string) (*model.Video, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO users (user_id, country) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET last_active = NOW()`,
		ownerID, country)
	if err != nil {
		return nil, err
	}

	var v model.Video
	err = tx.QueryRow(ctx, `
		INSERT INTO videos (video_id, owner_id, country, status)
		VALUES ($1, $2, $3, 'recording')
		RETURNING video_id, owner_id, country, status, reported_shots, created_at, updated_at`,
		videoID, ownerID, country).Scan(
		&v.VideoID, &v.OwnerID, &v.Country, &v.Status, &v.ReportedShots, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByVideoID returns a single video by ID.
func (r *VideoRepo) FindByVideoID(ctx context.Context, videoID string) (*model.Video, error) {
	var v model.Video
	err := r.pool.QueryRow(ctx, `
		SELECT video_id, owner_id, country, status, reported_shots, created_at, updated_at
		FROM videos
		WHERE video_id = $1`, videoID).Scan(
		&v.VideoID, &v.OwnerID, &v.Country, &v.Status, &v.ReportedShots, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// StartUpload moves a recording into the uploading state. The WHERE clause
// carries the precondition so a stale or repeated call cannot overwrite a
// later state.
func (r *VideoRepo) StartUpload(ctx context.Context, videoID, ownerID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE videos SET status = 'uploading', updated_at = NOW()
		WHERE video_id = $1 AND owner_id = $2 AND status = 'recording'`,
		videoID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, videoID, ownerID)
	}
	return nil
}

// CompleteUpload finishes the upload pipeline: the video transitions to
// pending_review with the uploader's self-reported shot count, the pending
// pool entry is created, and the owner's all-time counters absorb the
// self-reported session. All in one transaction so the video can never be
// completed without a pool entry.
func (r *VideoRepo) CompleteUpload(ctx context.Context, videoID, ownerID string, reportedShots int) (*model.Video, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var v model.Video
	err = tx.QueryRow(ctx, `
		UPDATE videos
		SET status = 'pending_review', reported_shots = $3, updated_at = NOW()
		WHERE video_id = $1 AND owner_id = $2 AND status = 'uploading'
		RETURNING video_id, owner_id, country, status, reported_shots, created_at, updated_at`,
		videoID, ownerID, reportedShots).Scan(
		&v.VideoID, &v.OwnerID, &v.Country, &v.Status, &v.ReportedShots, &v.CreatedAt, &v.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.classifyMiss(ctx, videoID, ownerID)
	}
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO pending_reviews (video_id, owner_id, country)
		VALUES ($1, $2, $3)`,
		videoID, ownerID, v.Country)
	if err != nil {
		return nil, err
	}

	// Self-reported shots count immediately; arbitration adjusts them
	// retroactively if the reviewer disagrees.
	_, err = tx.Exec(ctx, `
		UPDATE users
		SET all_time_shots = all_time_shots + $2,
		    all_time_attempts = all_time_attempts + $3,
		    last_active = NOW()
		WHERE user_id = $1`,
		ownerID, reportedShots, model.SessionShots)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &v, nil
}

// MarkErrored terminates a failed upload. Only non-terminal upload states
// may fail this way; a pending or disputed video is owned by the review
// pipeline and cannot be errored by the uploader.
func (r *VideoRepo) MarkErrored(ctx context.Context, videoID, ownerID string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE videos SET status = 'errored', updated_at = NOW()
		WHERE video_id = $1 AND owner_id = $2 AND status IN ('recording', 'uploading')`,
		videoID, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, videoID, ownerID)
	}
	return nil
}

// classifyMiss distinguishes a missing video from a precondition failure
// after a guarded UPDATE touched zero rows.
func (r *VideoRepo) classifyMiss(ctx context.Context, videoID, ownerID string) error {
	var owner string
	err := r.pool.QueryRow(ctx,
		`SELECT owner_id FROM videos WHERE video_id = $1`, videoID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrVideoNotFound
	}
	if err != nil {
		return err
	}
	if owner != ownerID {
		return model.ErrVideoNotFound
	}
	return model.ErrInvalidState
}
