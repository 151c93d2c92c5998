package model

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from VideoStatus
		to   VideoStatus
		want bool
	}{
		{"recording to uploading", StatusRecording, StatusUploading, true},
		{"recording to errored", StatusRecording, StatusErrored, true},
		{"uploading to pending", StatusUploading, StatusPendingReview, true},
		{"uploading to errored", StatusUploading, StatusErrored, true},
		{"pending to verified", StatusPendingReview, StatusVerified, true},
		{"pending to disputed", StatusPendingReview, StatusDisputed, true},
		{"disputed to verified", StatusDisputed, StatusVerified, true},
		{"disputed to errored", StatusDisputed, StatusErrored, true},

		{"recording skips to pending", StatusRecording, StatusPendingReview, false},
		{"recording skips to verified", StatusRecording, StatusVerified, false},
		{"pending back to uploading", StatusPendingReview, StatusUploading, false},
		{"pending to errored directly", StatusPendingReview, StatusErrored, false},
		{"verified to anything", StatusVerified, StatusDisputed, false},
		{"errored to anything", StatusErrored, StatusRecording, false},
		{"disputed back to pending", StatusDisputed, StatusPendingReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestTerminal(t *testing.T) {
	terminal := []VideoStatus{StatusVerified, StatusErrored}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}

	live := []VideoStatus{StatusRecording, StatusUploading, StatusPendingReview, StatusDisputed}
	for _, s := range live {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
}

func TestVerified(t *testing.T) {
	tests := []struct {
		status VideoStatus
		want   bool
	}{
		{StatusVerified, true},
		{StatusErrored, true},
		{StatusRecording, false},
		{StatusUploading, false},
		{StatusPendingReview, false},
		{StatusDisputed, false},
	}
	for _, tt := range tests {
		v := Video{Status: tt.status}
		if got := v.Verified(); got != tt.want {
			t.Errorf("Video{Status: %s}.Verified() = %v, want %v", tt.status, got, tt.want)
		}
	}
}
