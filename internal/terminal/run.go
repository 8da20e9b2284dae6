// Package terminal is the tcell frontend: the canvas is rasterised into
// half-block cells and held keys are emulated from key repeats.
package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"cubecar/internal/game"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

type App struct {
	screen tcell.Screen
	sim    *game.Simulation
	keys   *HeldKeys

	cols, rows int
	snap       game.Snapshot
	raster     Raster
	styles     map[[2]game.RGB]tcell.Style
}

// NewApp wraps an initialised screen. The simulation canvas should match
// CanvasSize of the screen.
func NewApp(screen tcell.Screen, sim *game.Simulation) *App {
	cols, rows := screen.Size()
	return &App{
		screen: screen,
		sim:    sim,
		keys:   NewHeldKeys(KeyHoldTimeout),
		cols:   cols,
		rows:   rows,
		styles: make(map[[2]game.RGB]tcell.Style),
	}
}

// Run plays until a quit key. The caller owns screen.Fini.
func (a *App) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			a.sim.Step(a.keys.State(now))
			a.draw()
		}
	}
}

func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			return false
		}
		if dir, ok := Direction(ev); ok {
			a.keys.Press(dir, time.Now())
			return true
		}
		if edit := EditFor(ev); edit != game.EditNone {
			if err := a.sim.Edit(edit); err != nil {
				log.Printf("terminal: %v", err)
			}
		}
	case *tcell.EventFocus:
		if !ev.Focused {
			a.keys.Release()
		}
	case *tcell.EventResize:
		a.cols, a.rows = a.screen.Size()
		a.sim.Resize(CanvasSize(a.cols, a.rows))
		a.screen.Sync()
	}
	return true
}

func (a *App) draw() {
	a.sim.SnapshotInto(&a.snap)
	a.raster.Draw(&a.snap, a.cols, a.rows)

	for y := 0; y < a.rows; y++ {
		for x := 0; x < a.cols; x++ {
			top := a.raster.At(x, 2*y)
			bottom := a.raster.At(x, 2*y+1)
			a.screen.SetContent(x, y, '▀', nil, a.style(top, bottom))
		}
	}
	a.drawHUD()
	a.screen.Show()
}

func (a *App) style(fg, bg game.RGB) tcell.Style {
	key := [2]game.RGB{fg, bg}
	if st, ok := a.styles[key]; ok {
		return st
	}
	st := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B))).
		Background(tcell.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	if len(a.styles) > 4096 {
		clear(a.styles)
	}
	a.styles[key] = st
	return st
}

// HUD is the status line text.
func HUD(s game.Settings, radius float64) string {
	return fmt.Sprintf(" %s  size %.0f  accel %.1f  cubes %d  [wasd] move [+/-] accel [[/]] cubes [c] colour [r] new field [q] quit ",
		s.Name, radius, s.Acceleration, s.CubeScale)
}

func (a *App) drawHUD() {
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, ch := range HUD(a.sim.Settings(), a.sim.Player.Radius) {
		if x >= a.cols {
			break
		}
		a.screen.SetContent(x, 0, ch, nil, st)
		x++
	}
}
