package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"cubecar/internal/game"
)

// KeyHoldTimeout is how long a key counts as held after its last press or
// repeat. Terminals report no key releases, so holds are emulated.
const KeyHoldTimeout = 250 * time.Millisecond

// HeldKeys tracks the last press time per direction.
type HeldKeys struct {
	last    [game.DirectionCount]time.Time
	timeout time.Duration
}

func NewHeldKeys(timeout time.Duration) *HeldKeys {
	return &HeldKeys{timeout: timeout}
}

func (h *HeldKeys) Press(dir game.Direction, now time.Time) {
	h.last[dir] = now
}

// Release drops every hold, e.g. on focus loss.
func (h *HeldKeys) Release() {
	h.last = [game.DirectionCount]time.Time{}
}

// State returns the directions pressed within the timeout before now.
func (h *HeldKeys) State(now time.Time) game.KeyState {
	var ks game.KeyState
	for dir := range h.last {
		t := h.last[dir]
		if !t.IsZero() && now.Sub(t) < h.timeout {
			ks.Set(game.Direction(dir), true)
		}
	}
	return ks
}

// Direction maps WASD and the arrow keys to a movement direction.
func Direction(ev *tcell.EventKey) (game.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.DirUp, true
	case tcell.KeyDown:
		return game.DirDown, true
	case tcell.KeyLeft:
		return game.DirLeft, true
	case tcell.KeyRight:
		return game.DirRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.DirUp, true
		case 's', 'S':
			return game.DirDown, true
		case 'a', 'A':
			return game.DirLeft, true
		case 'd', 'D':
			return game.DirRight, true
		}
	}
	return 0, false
}

// EditFor maps the settings hotkeys to an edit.
func EditFor(ev *tcell.EventKey) game.Edit {
	if ev.Key() != tcell.KeyRune {
		return game.EditNone
	}
	switch ev.Rune() {
	case '+', '=':
		return game.EditAccelUp
	case '-', '_':
		return game.EditAccelDown
	case ']':
		return game.EditScaleUp
	case '[':
		return game.EditScaleDown
	case 'c', 'C':
		return game.EditNextColor
	case 'r', 'R':
		return game.EditRegenerate
	}
	return game.EditNone
}

// IsQuit reports Escape, Ctrl-C and q.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
