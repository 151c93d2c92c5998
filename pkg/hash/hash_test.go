package hash

import "testing"

func TestSHA256Hex(t *testing.T) {
	// Known vector: SHA256("abc")
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got := SHA256Hex("abc"); got != want {
		t.Errorf("SHA256Hex(\"abc\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Deterministic(t *testing.T) {
	if SHA256Hex("clutch3") != SHA256Hex("clutch3") {
		t.Error("same input should produce same hash")
	}
	if SHA256Hex("a") == SHA256Hex("b") {
		t.Error("different inputs should produce different hashes")
	}
}

func TestShortHex(t *testing.T) {
	full := SHA256Hex("192.0.2.1")

	tests := []struct {
		n    int
		want string
	}{
		{4, full[:4]},
		{12, full[:12]},
		{64, full},
		{100, full}, // longer than the hash returns the whole hash
	}
	for _, tt := range tests {
		if got := ShortHex("192.0.2.1", tt.n); got != tt.want {
			t.Errorf("ShortHex(n=%d) = %s, want %s", tt.n, got, tt.want)
		}
	}
}

func TestIteratedSHA256(t *testing.T) {
	one := IteratedSHA256("input", 1)
	if one != SHA256Hex("input") {
		t.Errorf("1 iteration should equal plain SHA256")
	}

	two := IteratedSHA256("input", 2)
	if two == one {
		t.Error("2 iterations should differ from 1")
	}
	if len(two) != 64 {
		t.Errorf("hash length = %d, want 64", len(two))
	}
}

func TestHashIP_SaltMatters(t *testing.T) {
	a := HashIP("192.0.2.1", "salt-a")
	b := HashIP("192.0.2.1", "salt-b")
	if a == b {
		t.Error("different salts should produce different hashes")
	}
}
