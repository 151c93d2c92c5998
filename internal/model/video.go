package model

import "time"

// VideoStatus is the explicit lifecycle state of a session video.
type VideoStatus string

const (
	StatusRecording     VideoStatus = "recording"
	StatusUploading     VideoStatus = "uploading"
	StatusPendingReview VideoStatus = "pending_review"
	StatusDisputed      VideoStatus = "disputed"
	StatusVerified      VideoStatus = "verified"
	StatusErrored       VideoStatus = "errored"
)

// SessionShots is the number of attempts in one recorded session.
const SessionShots = 10

// validTransitions is the enforced lifecycle table. Verified and Errored
// are terminal; a video is never pending and disputed at the same time.
var validTransitions = map[VideoStatus][]VideoStatus{
	StatusRecording:     {StatusUploading, StatusErrored},
	StatusUploading:     {StatusPendingReview, StatusErrored},
	StatusPendingReview: {StatusVerified, StatusDisputed},
	StatusDisputed:      {StatusVerified, StatusErrored},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to VideoStatus) bool {
	for _, next := range validTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether a status admits no further transitions.
func (s VideoStatus) Terminal() bool {
	return len(validTransitions[s]) == 0
}

// Video represents one recorded shooting session.
type Video struct {
	VideoID       string      `json:"videoId"`
	OwnerID       string      `json:"ownerId"`
	Country       string      `json:"country"`
	Status        VideoStatus `json:"status"`
	ReportedShots *int        `json:"reportedShots,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// Verified reports whether the video has reached a terminal, audited state.
func (v *Video) Verified() bool {
	return v.Status == StatusVerified || v.Status == StatusErrored
}

// CreateVideoRequest is the API request body for registering a recording.
type CreateVideoRequest struct {
	UserID  string `json:"userId"`
	Country string `json:"country"`
}

// CompleteVideoRequest is the API request body for finishing an upload.
type CompleteVideoRequest struct {
	UserID        string `json:"userId"`
	ReportedShots *int   `json:"reportedShots"`
}

// VideoErrorRequest is the API request body for reporting a failed upload.
type VideoErrorRequest struct {
	UserID string `json:"userId"`
}
