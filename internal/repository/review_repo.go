package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arben-grepi/Clutch3-sub000/internal/model"
)

// ReviewRepo owns the pending pool: candidate lookup, the claim
// compare-and-set, release, and the outcome transaction. The database is
// the only arbiter between concurrent reviewers; every write here carries
// its precondition in the WHERE clause.
type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

// FindCandidate returns the oldest eligible entry in a country's pending
// pool: not owned by the requester, and either unclaimed or held by a
// claim that has outlived the lease. Pure read; claiming is separate.
func (r *ReviewRepo) FindCandidate(ctx context.Context, country, userID string, leaseCutoff time.Time) (*model.PendingReview, error) {
	var p model.PendingReview
	err := r.pool.QueryRow(ctx, `
		SELECT video_id, owner_id, country, claim_state, claimant_id, claimed_at, created_at
		FROM pending_reviews
		WHERE country = $1
		  AND owner_id <> $2
		  AND (claim_state = 'unclaimed' OR claimed_at < $3)
		ORDER BY created_at ASC
		LIMIT 1`,
		country, userID, leaseCutoff).Scan(
		&p.VideoID, &p.OwnerID, &p.Country, &p.ClaimState, &p.ClaimantID, &p.ClaimedAt, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrNoCandidate
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Claim is the single contested write in the system: an atomic
// compare-and-set on the entry's claim state. A zero-row result means the
// entry was taken (or never existed); the caller re-queries for another
// candidate. Claims past the lease cutoff are treated as abandoned and
// may be taken over.
func (r *ReviewRepo) Claim(ctx context.Context, videoID, userID string, leaseCutoff time.Time) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE pending_reviews
		SET claim_state = 'claimed', claimant_id = $2, claimed_at = NOW()
		WHERE video_id = $1
		  AND owner_id <> $2
		  AND (claim_state = 'unclaimed' OR claimed_at < $3)`,
		videoID, userID, leaseCutoff)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Classify the miss without side effects.
	var ownerID string
	var state model.ClaimState
	err = r.pool.QueryRow(ctx, `
		SELECT owner_id, claim_state FROM pending_reviews WHERE video_id = $1`,
		videoID).Scan(&ownerID, &state)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrVideoNotFound
	}
	if err != nil {
		return err
	}
	if ownerID == userID {
		return model.ErrSelfReview
	}
	return model.ErrClaimConflict
}

// Release returns a claimed entry to the pool. It only acts if the caller
// still holds the claim, so it is an idempotent no-op after an expiry
// takeover or a repeat call.
func (r *ReviewRepo) Release(ctx context.Context, videoID, userID string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE pending_reviews
		SET claim_state = 'unclaimed', claimant_id = NULL, claimed_at = NULL
		WHERE video_id = $1 AND claim_state = 'claimed' AND claimant_id = $2`,
		videoID, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseExpired resets every claim older than the cutoff. Run
// periodically so an abandoned claim cannot block a video forever.
func (r *ReviewRepo) ReleaseExpired(ctx context.Context, cutoff time.Time) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE pending_reviews
		SET claim_state = 'unclaimed', claimant_id = NULL, claimed_at = NULL
		WHERE claim_state = 'claimed' AND claimed_at < $1`,
		cutoff)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// OutcomeRecord reports what SubmitOutcome decided.
type OutcomeRecord struct {
	OwnerID  string
	Country  string
	Disputed bool
}

// SubmitOutcome records a reviewer verdict in one transaction: agreement
// verifies the video, disagreement (or a nil count asserting a rule
// violation) moves it into the dispute pool. Either way the pending entry
// is destroyed and the reviewer's one-time review gate is satisfied. The
// row locks taken here order a late outcome strictly before or after any
// concurrent arbitration of the same video.
func (r *ReviewRepo) SubmitOutcome(ctx context.Context, videoID, reviewerID string, reviewerShots *int, reason *string) (*OutcomeRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var status model.VideoStatus
	var reportedShots *int
	var ownerID, country string
	err = tx.QueryRow(ctx, `
		SELECT status, reported_shots, owner_id, country
		FROM videos WHERE video_id = $1
		FOR UPDATE`, videoID).Scan(&status, &reportedShots, &ownerID, &country)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	if status != model.StatusPendingReview || reportedShots == nil {
		return nil, model.ErrInvalidState
	}
	if ownerID == reviewerID {
		return nil, model.ErrSelfReview
	}

	var state model.ClaimState
	var claimantID *string
	err = tx.QueryRow(ctx, `
		SELECT claim_state, claimant_id FROM pending_reviews WHERE video_id = $1
		FOR UPDATE`, videoID).Scan(&state, &claimantID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrInvalidState
	}
	if err != nil {
		return nil, err
	}
	if state != model.ClaimClaimed || claimantID == nil || *claimantID != reviewerID {
		return nil, model.ErrNotClaimant
	}

	rec := &OutcomeRecord{OwnerID: ownerID, Country: country}

	if reviewerShots != nil && *reviewerShots == *reportedShots {
		// Agreement: terminal verification.
		_, err = tx.Exec(ctx, `
			UPDATE videos SET status = 'verified', updated_at = NOW()
			WHERE video_id = $1`, videoID)
		if err != nil {
			return nil, err
		}
	} else {
		// Mismatch or asserted rule violation: ownership of the video
		// moves to the dispute pool.
		rec.Disputed = true
		_, err = tx.Exec(ctx, `
			UPDATE videos SET status = 'disputed', updated_at = NOW()
			WHERE video_id = $1`, videoID)
		if err != nil {
			return nil, err
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO disputes (video_id, owner_id, reviewer_id, country, reported_shots, reviewer_shots, reason)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			videoID, ownerID, reviewerID, country, *reportedShots, reviewerShots, reason)
		if err != nil {
			return nil, err
		}
	}

	_, err = tx.Exec(ctx, `DELETE FROM pending_reviews WHERE video_id = $1`, videoID)
	if err != nil {
		return nil, err
	}

	// The act of reviewing satisfies the gate regardless of agreement.
	_, err = tx.Exec(ctx, `
		UPDATE users SET has_reviewed = TRUE, last_active = NOW()
		WHERE user_id = $1`, reviewerID)
	if err != nil {
		return nil, err
	}

	if !rec.Disputed {
		// Owner gained a verified session; recompute rolling stats async.
		_, err = tx.Exec(ctx, `SELECT pg_notify('stats_changes', $1)`, ownerID)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rec, nil
}
