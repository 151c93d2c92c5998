package service

import "testing"

// outcomeDisputed is a pure-logic mirror of the branch in
// ReviewRepo.SubmitOutcome that decides between verification and dispute.
func outcomeDisputed(reportedShots int, reviewerShots *int) bool {
	return reviewerShots == nil || *reviewerShots != reportedShots
}

func TestOutcomeDecision(t *testing.T) {
	tests := []struct {
		name          string
		reportedShots int
		reviewerShots *int
		wantDisputed  bool
	}{
		{"counts agree", 7, intPtr(7), false},
		{"counts agree at zero", 0, intPtr(0), false},
		{"counts agree at maximum", 10, intPtr(10), false},
		{"reviewer counts fewer", 7, intPtr(5), true},
		{"reviewer counts more", 5, intPtr(7), true},
		{"off by one disputes", 7, intPtr(6), true},
		{"rule violation assertion disputes", 7, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outcomeDisputed(tt.reportedShots, tt.reviewerShots)
			if got != tt.wantDisputed {
				t.Errorf("outcomeDisputed(%d, %v) = %v, want %v",
					tt.reportedShots, tt.reviewerShots, got, tt.wantDisputed)
			}
		})
	}
}
