package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
)

// last100Sessions is the window size: the rolling statistic covers the
// most recent 10 verified sessions of 10 shots each.
const last100Sessions = 10

// StatsService recomputes the rolling last-100-shots statistic and applies
// retroactive all-time adjustments when arbitration changes a shot count.
type StatsService struct {
	pool *pgxpool.Pool
}

func NewStatsService(pool *pgxpool.Pool) *StatsService {
	return &StatsService{pool: pool}
}

// ComputeLast100 is the pure rolling-window calculation: given the shot
// counts of the most recent verified sessions (at most 10), it returns the
// hit percentage over those sessions. No sessions yields 0.
func ComputeLast100(sessionShots []int) float64 {
	if len(sessionShots) == 0 {
		return 0
	}
	sum := 0
	for _, shots := range sessionShots {
		sum += shots
	}
	return float64(sum) * 100 / float64(model.SessionShots*len(sessionShots))
}

// Recompute rebuilds a user's last-100 percentage from their most recent
// verified sessions. The value is derived purely from the videos table,
// so repeated calls with no intervening video changes are idempotent.
func (s *StatsService) Recompute(ctx context.Context, userID string) error {
	rows, err := s.pool.Query(ctx, `
		SELECT reported_shots
		FROM videos
		WHERE owner_id = $1 AND status = 'verified' AND reported_shots IS NOT NULL
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, last100Sessions)
	if err != nil {
		return err
	}
	defer rows.Close()

	var sessions []int
	for rows.Next() {
		var shots int
		if err := rows.Scan(&shots); err != nil {
			return err
		}
		sessions = append(sessions, shots)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	pct := ComputeLast100(sessions)

	_, err = s.pool.Exec(ctx, `
		UPDATE users SET last100_percentage = $2 WHERE user_id = $1`,
		userID, pct)
	return err
}

// AdjustAllTime applies the delta between an old and a new authoritative
// shot count to the owner's all-time counters. A discarded video also
// surrenders its attempt block. Runs inside the caller's transaction so
// the counters move together with the video's terminal state.
func (s *StatsService) AdjustAllTime(ctx context.Context, tx pgx.Tx, userID string, oldShots, newShots int, removeAttempts bool) error {
	attempts := 0
	if removeAttempts {
		attempts = model.SessionShots
	}
	_, err := tx.Exec(ctx, `
		UPDATE users
		SET all_time_shots = all_time_shots + $2,
		    all_time_attempts = all_time_attempts - $3
		WHERE user_id = $1`,
		userID, newShots-oldShots, attempts)
	return err
}
