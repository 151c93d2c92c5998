package model

import "time"

// ClaimState marks whether a pending-pool entry is held by a reviewer.
type ClaimState string

const (
	ClaimUnclaimed ClaimState = "unclaimed"
	ClaimClaimed   ClaimState = "claimed"
)

// PendingReview is one entry in a country's pending pool. Exactly one
// exists per completed, unverified video.
type PendingReview struct {
	VideoID    string     `json:"videoId"`
	OwnerID    string     `json:"ownerId"`
	Country    string     `json:"country"`
	ClaimState ClaimState `json:"claimState"`
	ClaimantID *string    `json:"claimantId,omitempty"`
	ClaimedAt  *time.Time `json:"claimedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// Dispute is a video whose uploader- and reviewer-reported counts disagree,
// awaiting admin arbitration. A nil ReviewerShots means the reviewer
// asserted a rule violation rather than a count.
type Dispute struct {
	VideoID       string    `json:"videoId"`
	OwnerID       string    `json:"ownerId"`
	ReviewerID    string    `json:"reviewerId"`
	Country       string    `json:"country"`
	ReportedShots int       `json:"reportedShots"`
	ReviewerShots *int      `json:"reviewerShots,omitempty"`
	Reason        *string   `json:"reason,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ClaimRequest is the API request body for claiming a pending review.
type ClaimRequest struct {
	Country string `json:"country"`
	VideoID string `json:"videoId"`
	UserID  string `json:"userId"`
}

// ReleaseRequest is the API request body for declining a claimed review.
type ReleaseRequest struct {
	VideoID string `json:"videoId"`
	UserID  string `json:"userId"`
}

// OutcomeRequest is the API request body for submitting a reviewer verdict.
// A nil ReviewerShots asserts a rule violation (discard), with Reason set.
type OutcomeRequest struct {
	VideoID       string  `json:"videoId"`
	UserID        string  `json:"userId"`
	ReviewerShots *int    `json:"reviewerShots"`
	Reason        *string `json:"reason,omitempty"`
}

// OutcomeResult is the API response after a verdict is processed.
type OutcomeResult struct {
	VideoID  string      `json:"videoId"`
	Status   VideoStatus `json:"status"`
	Disputed bool        `json:"disputed"`
}

// ArbitrateRequest is the admin API request body for resolving a dispute.
// A nil AdminShots means discard: the admin agrees the session broke the
// rules and removes it from the record.
type ArbitrateRequest struct {
	AdminShots *int `json:"adminShots"`
}

// ArbitrationResult reports how a dispute was resolved and who was penalized.
type ArbitrationResult struct {
	VideoID         string      `json:"videoId"`
	OwnerID         string      `json:"ownerId"`
	ReviewerID      string      `json:"reviewerId"`
	Status          VideoStatus `json:"status"`
	FinalShots      *int        `json:"finalShots,omitempty"`
	UploaderAtFault bool        `json:"uploaderAtFault"`
	ReviewerAtFault bool        `json:"reviewerAtFault"`
	Discarded       bool        `json:"discarded"`
}
