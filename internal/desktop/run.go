// Package desktop is the GLFW/OpenGL frontend: one simulation step per
// display refresh, drawn with the shape and sprite programs.
package desktop

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cubecar/internal/config"
	"cubecar/internal/game"
)

// Title is the window title for the given settings.
func Title(s game.Settings) string {
	return fmt.Sprintf("%s | accel %.1f | cubes %d", s.Name, s.Acceleration, s.CubeScale)
}

// Run opens a window the size of the canvas and plays sim until the window closes or Escape is
// pressed. Dropping an image file on the window swaps the player image.
func Run(sim *game.Simulation) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	winW, winH := int(sim.Width), int(sim.Height)
	window, err := initWindow(winW, winH, Title(sim.Settings()))
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.SetPlayerImage(sim.Settings().Image)

	var dropped []string
	window.SetDropCallback(func(_ *glfw.Window, names []string) {
		dropped = append(dropped, names...)
	})

	input := NewInput()
	var snap game.Snapshot

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		if w, h := window.GetSize(); w > 0 && h > 0 && (w != winW || h != winH) {
			winW, winH = w, h
			sim.Resize(float64(w), float64(h))
		}

		for _, path := range dropped {
			img, err := config.LoadImage(path)
			if err != nil {
				log.Printf("desktop: %v", err)
				continue
			}
			sim.SetPlayerImage(img)
			rend.SetPlayerImage(img)
			log.Printf("desktop: player image %s", path)
		}
		dropped = dropped[:0]

		if edit := input.Edit(window); edit != game.EditNone {
			if err := sim.Edit(edit); err != nil {
				log.Printf("desktop: %v", err)
			}
			window.SetTitle(Title(sim.Settings()))
		}

		sim.Step(Keys(window))

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		sim.SnapshotInto(&snap)
		rend.DrawFrame(&snap, fbW, fbH)
		window.SwapBuffers()
	}
	return nil
}
