package model

import "errors"

// Domain error taxonomy. Claim conflicts and empty pools are expected race
// outcomes, not failures; handlers map them to 4xx responses.
var (
	// ErrClaimConflict: the entry was claimed between candidate lookup and
	// claim. The caller re-queries for a different candidate.
	ErrClaimConflict = errors.New("pending review already claimed")

	// ErrNoCandidate: no eligible pending review exists for this caller.
	ErrNoCandidate = errors.New("no review candidate available")

	// ErrVideoNotFound: the referenced video does not exist.
	ErrVideoNotFound = errors.New("video not found")

	// ErrInvalidState: a write was attempted against a video that is no
	// longer in the expected pre-state.
	ErrInvalidState = errors.New("video not in expected state")

	// ErrArbitrationInconsistency: the dispute's video is no longer
	// disputable; penalties must not be applied twice.
	ErrArbitrationInconsistency = errors.New("dispute no longer arbitrable")

	// ErrNotClaimant: the caller does not hold the claim it tried to act on.
	ErrNotClaimant = errors.New("review not claimed by caller")

	// ErrSelfReview: an owner attempted to claim or review their own video.
	ErrSelfReview = errors.New("cannot review own video")
)
