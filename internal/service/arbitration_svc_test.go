package service

import "testing"

func intPtr(n int) *int { return &n }

func TestAttributeFault(t *testing.T) {
	tests := []struct {
		name         string
		uploader     int
		reviewer     *int
		admin        int
		wantUploader bool
		wantReviewer bool
	}{
		{"admin confirms uploader", 7, intPtr(5), 7, false, true},
		{"admin confirms reviewer", 7, intPtr(5), 5, true, false},
		{"equal deviation penalizes both", 7, intPtr(5), 6, true, true},
		{"all three agree", 7, intPtr(7), 7, false, false},
		{"uploader further off", 10, intPtr(4), 3, true, false},
		{"reviewer further off", 6, intPtr(0), 5, false, true},
		{"admin between, uploader closer", 5, intPtr(1), 4, false, true},
		{"admin between, reviewer closer", 9, intPtr(4), 5, true, false},
		{"zero counts everywhere", 0, intPtr(0), 0, false, false},
		{"reviewer asserted violation, admin confirms count", 7, nil, 7, false, true},
		{"reviewer asserted violation, admin picks new count", 7, nil, 4, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttributeFault(tt.uploader, tt.reviewer, tt.admin)
			if got.Uploader != tt.wantUploader {
				t.Errorf("AttributeFault(%d, %v, %d).Uploader = %v, want %v",
					tt.uploader, tt.reviewer, tt.admin, got.Uploader, tt.wantUploader)
			}
			if got.Reviewer != tt.wantReviewer {
				t.Errorf("AttributeFault(%d, %v, %d).Reviewer = %v, want %v",
					tt.uploader, tt.reviewer, tt.admin, got.Reviewer, tt.wantReviewer)
			}
		})
	}
}

func TestAttributeFault_NeverPenalizesNeitherOnDisagreement(t *testing.T) {
	// Whenever the admin's count differs from at least one party, someone
	// must be penalized.
	for u := 0; u <= 10; u++ {
		for r := 0; r <= 10; r++ {
			for a := 0; a <= 10; a++ {
				got := AttributeFault(u, intPtr(r), a)
				disagreement := a != u || a != r
				if disagreement && !got.Uploader && !got.Reviewer {
					t.Fatalf("AttributeFault(%d, %d, %d) penalized nobody despite disagreement", u, r, a)
				}
				if !disagreement && (got.Uploader || got.Reviewer) {
					t.Fatalf("AttributeFault(%d, %d, %d) penalized despite full agreement", u, r, a)
				}
			}
		}
	}
}

func TestAbsDiff(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 5, 2},
		{5, 7, 2},
		{0, 0, 0},
		{10, 0, 10},
	}
	for _, tt := range tests {
		if got := absDiff(tt.a, tt.b); got != tt.want {
			t.Errorf("absDiff(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
