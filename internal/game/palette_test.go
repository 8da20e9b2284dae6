package game

import "testing"

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want RGB
	}{
		{"#000000", RGB{}},
		{"#ff8000", RGB{R: 255, G: 128, B: 0}},
		{"#1E90FF", RGB{R: 30, G: 144, B: 255}},
	} {
		got, err := ParseHex(tc.in)
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if back, _ := ParseHex(got.Hex()); back != got {
			t.Fatalf("Hex round trip of %v gave %v", got, back)
		}
	}
	if _, err := ParseHex("blue"); err == nil {
		t.Fatalf("expected error for non-hex colour")
	}
}

func TestNextPlayerColorCycles(t *testing.T) {
	c := PlayerColors[0]
	for range PlayerColors {
		c = NextPlayerColor(c)
	}
	if c != PlayerColors[0] {
		t.Fatalf("cycle did not wrap: %v", c)
	}
	if got := NextPlayerColor(RGB{R: 1, G: 2, B: 3}); got != PlayerColors[0] {
		t.Fatalf("unknown colour should restart the cycle, got %v", got)
	}
}
