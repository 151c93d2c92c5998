package middleware

import "testing"

func TestValidateVideoID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantID  string
		wantErr bool
	}{
		{"valid uuid", "a1b2c3d4-e5f6-4a1b-8c3d-0123456789ab", "a1b2c3d4-e5f6-4a1b-8c3d-0123456789ab", false},
		{"uppercase normalized", "A1B2C3D4-E5F6-4A1B-8C3D-0123456789AB", "a1b2c3d4-e5f6-4a1b-8c3d-0123456789ab", false},
		{"trims whitespace", "  a1b2c3d4-e5f6-4a1b-8c3d-0123456789ab  ", "a1b2c3d4-e5f6-4a1b-8c3d-0123456789ab", false},
		{"empty", "", "", true},
		{"missing hyphens", "a1b2c3d4e5f64a1b8c3d0123456789ab", "", true},
		{"too short", "a1b2c3d4-e5f6", "", true},
		{"non-hex chars", "z1b2c3d4-e5f6-4a1b-8c3d-0123456789ab", "", true},
		{"sql injection", "a'; DROP--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateVideoID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.wantID {
				t.Errorf("got %q, want %q", got, tt.wantID)
			}
		})
	}
}

func TestValidateUserID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid sha256", "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2", "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2", false},
		{"uppercase normalized", "ABCD1234", "abcd1234", false},
		{"empty", "", "", true},
		{"too long 65", "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2a", "", true},
		{"non-hex chars", "xyz123", "", true},
		{"sql injection", "abc'; DROP--", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateUserID(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCountry(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid", "FI", "FI", false},
		{"lowercase normalized", "us", "US", false},
		{"trims whitespace", " SE ", "SE", false},
		{"empty", "", "", true},
		{"too long", "FIN", "", true},
		{"single letter", "F", "", true},
		{"digits", "12", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errMsg := ValidateCountry(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateShots(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name    string
		input   *int
		wantErr bool
	}{
		{"nil is legal", nil, false},
		{"zero", intPtr(0), false},
		{"maximum", intPtr(10), false},
		{"mid-range", intPtr(7), false},
		{"negative", intPtr(-1), true},
		{"over maximum", intPtr(11), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := ValidateShots(tt.input)
			if tt.wantErr && errMsg == "" {
				t.Errorf("expected error, got none")
			}
			if !tt.wantErr && errMsg != "" {
				t.Errorf("unexpected error: %s", errMsg)
			}
		})
	}
}

func TestValidateReason(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	if got := ValidateReason(nil); got != nil {
		t.Errorf("nil reason should stay nil")
	}
	if got := ValidateReason(strPtr("   ")); got != nil {
		t.Errorf("blank reason should become nil")
	}
	if got := ValidateReason(strPtr("  stepped over the line  ")); got == nil || *got != "stepped over the line" {
		t.Errorf("trim failed: got %v", got)
	}

	long := make([]byte, 600)
	for i := range long {
		long[i] = 'x'
	}
	if got := ValidateReason(strPtr(string(long))); got == nil || len(*got) != MaxReasonLen {
		t.Errorf("truncation failed")
	}
}
