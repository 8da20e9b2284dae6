package terminal

import (
	"testing"
	"time"

	"cubecar/internal/game"
)

func TestHeldKeysExpire(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	if got := h.State(t0); got != (game.KeyState{}) {
		t.Fatalf("fresh state=%v want none held", got)
	}

	h.Press(game.DirLeft, t0)
	h.Press(game.DirUp, t0.Add(50*time.Millisecond))

	ks := h.State(t0.Add(80 * time.Millisecond))
	if !ks.Held(game.DirLeft) || !ks.Held(game.DirUp) {
		t.Fatalf("state=%v want left and up held", ks)
	}
	if ks.Held(game.DirRight) || ks.Held(game.DirDown) {
		t.Fatalf("state=%v want only left and up", ks)
	}

	ks = h.State(t0.Add(120 * time.Millisecond))
	if ks.Held(game.DirLeft) {
		t.Fatalf("left still held after timeout")
	}
	if !ks.Held(game.DirUp) {
		t.Fatalf("up released early")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(100 * time.Millisecond)
	t0 := time.Unix(1000, 0)
	for i := range 5 {
		h.Press(game.DirRight, t0.Add(time.Duration(i)*60*time.Millisecond))
	}
	if !h.State(t0.Add(300 * time.Millisecond)).Held(game.DirRight) {
		t.Fatalf("repeated key should stay held")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(time.Second)
	now := time.Unix(1000, 0)
	h.Press(game.DirDown, now)
	h.Release()
	if got := h.State(now); got != (game.KeyState{}) {
		t.Fatalf("state after release=%v want none", got)
	}
}
