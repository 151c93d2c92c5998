package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
)

// FaultAttribution names who a dispute resolution penalizes.
type FaultAttribution struct {
	Uploader bool
	Reviewer bool
}

// AttributeFault applies the arbitration blame rules given the uploader's
// count u, the reviewer's count r (nil when the reviewer asserted a rule
// violation instead of a count), and the admin's authoritative count a:
//
//   - a == u == r: nobody is penalized (the admin merely confirmed).
//   - a == u, a != r: the reviewer miscounted.
//   - a == r, a != u: the uploader misreported.
//   - a matches neither: the party with the strictly larger deviation is
//     penalized; equal deviations penalize both.
//
// A nil reviewer count that reaches the count path deviates maximally, so
// only the reviewer is penalized.
func AttributeFault(u int, r *int, a int) FaultAttribution {
	if r == nil {
		return FaultAttribution{Reviewer: true}
	}

	switch {
	case a == u && a == *r:
		return FaultAttribution{}
	case a == u:
		return FaultAttribution{Reviewer: true}
	case a == *r:
		return FaultAttribution{Uploader: true}
	}

	du := absDiff(a, u)
	dr := absDiff(a, *r)
	switch {
	case du > dr:
		return FaultAttribution{Uploader: true}
	case dr > du:
		return FaultAttribution{Reviewer: true}
	default:
		return FaultAttribution{Uploader: true, Reviewer: true}
	}
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// ArbitrationService resolves disputes with an admin's authoritative
// verdict. Operated by a single trusted admin, but the transaction still
// re-checks the video is disputable so a racing late outcome (or a repeat
// arbitration) can never double-apply penalties.
type ArbitrationService struct {
	pool  *pgxpool.Pool
	stats *StatsService
}

func NewArbitrationService(pool *pgxpool.Pool, stats *StatsService) *ArbitrationService {
	return &ArbitrationService{pool: pool, stats: stats}
}

// Arbitrate resolves the dispute for videoID. A nil adminShots is the
// discard verdict: the admin agrees the session broke the rules, the video
// terminates as errored and its prior contribution leaves the owner's
// record. Otherwise adminShots overwrites the video's count, the video
// verifies, and fault is attributed between uploader and reviewer.
func (s *ArbitrationService) Arbitrate(ctx context.Context, videoID string, adminShots *int) (*model.ArbitrationResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var d model.Dispute
	err = tx.QueryRow(ctx, `
		SELECT video_id, owner_id, reviewer_id, country, reported_shots, reviewer_shots, reason
		FROM disputes WHERE video_id = $1
		FOR UPDATE`, videoID).Scan(
		&d.VideoID, &d.OwnerID, &d.ReviewerID, &d.Country,
		&d.ReportedShots, &d.ReviewerShots, &d.Reason,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}

	var status model.VideoStatus
	err = tx.QueryRow(ctx, `
		SELECT status FROM videos WHERE video_id = $1 FOR UPDATE`,
		videoID).Scan(&status)
	if err != nil {
		return nil, err
	}
	if status != model.StatusDisputed {
		return nil, model.ErrArbitrationInconsistency
	}

	result := &model.ArbitrationResult{
		VideoID:    videoID,
		OwnerID:    d.OwnerID,
		ReviewerID: d.ReviewerID,
	}

	if adminShots == nil {
		// Discard: rule violation confirmed.
		result.Discarded = true
		result.Status = model.StatusErrored

		_, err = tx.Exec(ctx, `
			UPDATE videos SET status = 'errored', updated_at = NOW()
			WHERE video_id = $1`, videoID)
		if err != nil {
			return nil, err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO rule_violations (video_id, owner_id, reviewer_id, reason)
			VALUES ($1, $2, $3, $4)`,
			videoID, d.OwnerID, d.ReviewerID, d.Reason)
		if err != nil {
			return nil, err
		}

		if err := s.stats.AdjustAllTime(ctx, tx, d.OwnerID, d.ReportedShots, 0, true); err != nil {
			return nil, err
		}
	} else {
		result.Status = model.StatusVerified
		result.FinalShots = adminShots

		_, err = tx.Exec(ctx, `
			UPDATE videos SET status = 'verified', reported_shots = $2, updated_at = NOW()
			WHERE video_id = $1`, videoID, *adminShots)
		if err != nil {
			return nil, err
		}

		if err := s.stats.AdjustAllTime(ctx, tx, d.OwnerID, d.ReportedShots, *adminShots, false); err != nil {
			return nil, err
		}

		fault := AttributeFault(d.ReportedShots, d.ReviewerShots, *adminShots)
		result.UploaderAtFault = fault.Uploader
		result.ReviewerAtFault = fault.Reviewer

		if fault.Uploader {
			_, err = tx.Exec(ctx, `
				UPDATE users SET incorrect_uploads = incorrect_uploads + 1
				WHERE user_id = $1`, d.OwnerID)
			if err != nil {
				return nil, err
			}
		}
		if fault.Reviewer {
			_, err = tx.Exec(ctx, `
				UPDATE users SET incorrect_reviews = incorrect_reviews + 1
				WHERE user_id = $1`, d.ReviewerID)
			if err != nil {
				return nil, err
			}
		}
	}

	_, err = tx.Exec(ctx, `DELETE FROM disputes WHERE video_id = $1`, videoID)
	if err != nil {
		return nil, err
	}

	// Rolling stats recompute is best-effort and must not block the
	// arbitration; the stats worker picks these up.
	_, err = tx.Exec(ctx, `SELECT pg_notify('stats_changes', $1)`, d.OwnerID)
	if err != nil {
		return nil, err
	}
	if result.ReviewerAtFault {
		_, err = tx.Exec(ctx, `SELECT pg_notify('stats_changes', $1)`, d.ReviewerID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return result, nil
}
