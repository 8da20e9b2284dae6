package game

import (
	"math"
	"testing"
)

func TestPulseTurnsAroundAfterPassingTop(t *testing.T) {
	var p Pulse
	for range 10 {
		p.Advance()
	}
	if math.Abs(p.Scale()-1.1) > 1e-9 {
		t.Fatalf("scale after 10 ticks = %f, want 1.1", p.Scale())
	}
	if !p.Rising() {
		t.Fatalf("pulse turned around early")
	}
	p.Advance()
	if p.Rising() {
		t.Fatalf("pulse should turn around on tick 11")
	}
	p.Advance()
	if math.Abs(p.Scale()-1.1) > 1e-9 {
		t.Fatalf("scale on the way down = %f, want 1.1", p.Scale())
	}
}

func TestPulseStaysNearBounds(t *testing.T) {
	var p Pulse
	lo, hi := 1.0, 1.0
	for range 1000 {
		p.Advance()
		lo = math.Min(lo, p.Scale())
		hi = math.Max(hi, p.Scale())
	}
	if lo < 0.89-1e-9 || hi > 1.11+1e-9 {
		t.Fatalf("pulse range [%f,%f], want within [0.89,1.11]", lo, hi)
	}
	if lo > 0.9 || hi < 1.1 {
		t.Fatalf("pulse range [%f,%f] never reached the bounds", lo, hi)
	}
}
