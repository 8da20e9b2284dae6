package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubecar/internal/game"
)

// Movement keys: WASD and the arrow keys both steer.
var movementKeys = map[glfw.Key]game.Direction{
	glfw.KeyW:     game.DirUp,
	glfw.KeyUp:    game.DirUp,
	glfw.KeyS:     game.DirDown,
	glfw.KeyDown:  game.DirDown,
	glfw.KeyA:     game.DirLeft,
	glfw.KeyLeft:  game.DirLeft,
	glfw.KeyD:     game.DirRight,
	glfw.KeyRight: game.DirRight,
}

// Settings hotkeys.
var editKeys = map[glfw.Key]game.Edit{
	glfw.KeyEqual:        game.EditAccelUp,
	glfw.KeyKPAdd:        game.EditAccelUp,
	glfw.KeyMinus:        game.EditAccelDown,
	glfw.KeyKPSubtract:   game.EditAccelDown,
	glfw.KeyRightBracket: game.EditScaleUp,
	glfw.KeyLeftBracket:  game.EditScaleDown,
	glfw.KeyC:            game.EditNextColor,
	glfw.KeyR:            game.EditRegenerate,
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Keys polls the movement keys. A direction is held if any of its keys is down.
func Keys(window *glfw.Window) game.KeyState {
	var ks game.KeyState
	for key, dir := range movementKeys {
		if window.GetKey(key) == glfw.Press {
			ks.Set(dir, true)
		}
	}
	return ks
}

// Edit returns the settings edit whose hotkey went down this frame, if any.
func (in *Input) Edit(window *glfw.Window) game.Edit {
	edit := game.EditNone
	for key, e := range editKeys {
		// Poll every key so the edge state stays current.
		if in.JustPressed(window, key) && edit == game.EditNone {
			edit = e
		}
	}
	return edit
}
