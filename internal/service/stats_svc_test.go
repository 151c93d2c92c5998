package service

import (
	"math"
	"testing"
)

func almostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestComputeLast100(t *testing.T) {
	tests := []struct {
		name     string
		sessions []int
		want     float64
	}{
		{"no sessions", nil, 0},
		{"single perfect session", []int{10}, 100},
		{"single empty session", []int{0}, 0},
		{"one partial session", []int{7}, 70},
		{"three sessions", []int{8, 6, 7}, 70},
		{"full window of ten", []int{8, 8, 8, 8, 8, 8, 8, 8, 8, 8}, 80},
		{"full window mixed", []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, 55},
		{"all misses over window", []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLast100(tt.sessions)
			if !almostEqual(got, tt.want, 0.001) {
				t.Errorf("ComputeLast100(%v) = %.4f, want %.4f", tt.sessions, got, tt.want)
			}
		})
	}
}

func TestComputeLast100_Idempotent(t *testing.T) {
	sessions := []int{9, 7, 8, 10, 6}
	first := ComputeLast100(sessions)
	second := ComputeLast100(sessions)
	if first != second {
		t.Errorf("repeated computation differs: %.4f vs %.4f", first, second)
	}
}

func TestComputeLast100_PartialWindowUsesAvailableSessions(t *testing.T) {
	// 4 sessions of 5 shots each: 20 makes over 40 attempts, not over 100.
	got := ComputeLast100([]int{5, 5, 5, 5})
	if !almostEqual(got, 50, 0.001) {
		t.Errorf("partial window = %.4f, want 50.00", got)
	}
}

// adjustAllTimeMirror is a pure-logic helper that mirrors the SQL in
// StatsService.AdjustAllTime for unit testing without a database.
func adjustAllTimeMirror(shots, attempts, oldShots, newShots int, removeAttempts bool) (int, int) {
	shots += newShots - oldShots
	if removeAttempts {
		attempts -= 10
	}
	return shots, attempts
}

func TestAdjustAllTime_CountCorrection(t *testing.T) {
	// Arbitration lowered a self-reported 7 to 5: shots drop by 2,
	// attempts untouched.
	shots, attempts := adjustAllTimeMirror(120, 150, 7, 5, false)
	if shots != 118 {
		t.Errorf("shots = %d, want 118", shots)
	}
	if attempts != 150 {
		t.Errorf("attempts = %d, want 150", attempts)
	}
}

func TestAdjustAllTime_DiscardRemovesContribution(t *testing.T) {
	// Discarding a video with 8 reported shots removes the 8 shots and
	// the whole 10-attempt session block.
	shots, attempts := adjustAllTimeMirror(120, 150, 8, 0, true)
	if shots != 112 {
		t.Errorf("shots = %d, want 112", shots)
	}
	if attempts != 140 {
		t.Errorf("attempts = %d, want 140", attempts)
	}
}
