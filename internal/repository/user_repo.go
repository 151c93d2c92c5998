package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByUserID returns a single user with stats and penalty counters.
func (r *UserRepo) FindByUserID(ctx context.Context, userID string) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, `
		SELECT user_id, country, has_reviewed, incorrect_uploads, incorrect_reviews,
		       last100_percentage, all_time_shots, all_time_attempts, first_seen, last_active
		FROM users
		WHERE user_id = $1`, userID).Scan(
		&u.UserID, &u.Country, &u.HasReviewed, &u.IncorrectUploads, &u.IncorrectReviews,
		&u.Last100Percentage, &u.AllTimeShots, &u.AllTimeAttempts, &u.FirstSeen, &u.LastActive,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// HasReviewed reports whether the user has satisfied the one-time review
// gate. A missing user has trivially not reviewed.
func (r *UserRepo) HasReviewed(ctx context.Context, userID string) (bool, error) {
	var done bool
	err := r.pool.QueryRow(ctx,
		`SELECT has_reviewed FROM users WHERE user_id = $1`, userID).Scan(&done)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return done, err
}

// GetStats returns aggregate platform statistics.
func (r *UserRepo) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM videos) AS total_videos,
			(SELECT COUNT(*) FROM videos WHERE status = 'verified') AS verified_videos,
			(SELECT COUNT(*) FROM pending_reviews) AS pending_reviews,
			(SELECT COUNT(*) FROM disputes) AS open_disputes,
			(SELECT COUNT(*) FROM users WHERE last_active > NOW() - INTERVAL '24 hours') AS active_users_24h`,
	).Scan(&stats.TotalUsers, &stats.TotalVideos, &stats.VerifiedVideos,
		&stats.PendingReviews, &stats.OpenDisputes, &stats.ActiveUsers24h)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT country, COUNT(*) FROM pending_reviews GROUP BY country ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.PendingByCountry = make(map[string]int)
	for rows.Next() {
		var country string
		var n int
		if err := rows.Scan(&country, &n); err != nil {
			return nil, err
		}
		stats.PendingByCountry[country] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &stats, nil
}
