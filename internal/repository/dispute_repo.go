package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
)

type DisputeRepo struct {
	pool *pgxpool.Pool
}

func NewDisputeRepo(pool *pgxpool.Pool) *DisputeRepo {
	return &DisputeRepo{pool: pool}
}

// ListOpen returns the global dispute pool, oldest first, for the admin UI.
func (r *DisputeRepo) ListOpen(ctx context.Context) ([]model.Dispute, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT video_id, owner_id, reviewer_id, country, reported_shots, reviewer_shots, reason, created_at
		FROM disputes
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var disputes []model.Dispute
	for rows.Next() {
		var d model.Dispute
		err := rows.Scan(&d.VideoID, &d.OwnerID, &d.ReviewerID, &d.Country,
			&d.ReportedShots, &d.ReviewerShots, &d.Reason, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		disputes = append(disputes, d)
	}
	return disputes, rows.Err()
}

// FindByVideoID returns a single open dispute.
func (r *DisputeRepo) FindByVideoID(ctx context.Context, videoID string) (*model.Dispute, error) {
	var d model.Dispute
	err := r.pool.QueryRow(ctx, `
		SELECT video_id, owner_id, reviewer_id, country, reported_shots, reviewer_shots, reason, created_at
		FROM disputes
		WHERE video_id = $1`, videoID).Scan(
		&d.VideoID, &d.OwnerID, &d.ReviewerID, &d.Country,
		&d.ReportedShots, &d.ReviewerShots, &d.Reason, &d.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
