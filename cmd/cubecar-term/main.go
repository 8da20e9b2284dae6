// Command cubecar-term runs the game in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"cubecar/internal/applog"
	"cubecar/internal/config"
	"cubecar/internal/game"
	"cubecar/internal/terminal"
)

func main() {
	cfg, err := config.Load("cubecar-term", os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cubecar-term: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, tcell.NewScreen); err != nil {
		fmt.Fprintf(os.Stderr, "cubecar-term: %v\n", err)
		os.Exit(1)
	}
}

// run owns the log file and the screen so both are released on every return
// path before main prints an error.
func run(cfg config.Config, newScreen func() (tcell.Screen, error)) error {
	defer applog.Close(applog.Setup(cfg.Debug))
	for _, w := range cfg.Warnings {
		log.Printf("config: %s", w)
	}

	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer screen.Fini()
	screen.EnableFocus()
	screen.HideCursor()

	// The terminal decides the canvas; -width and -height only apply to the
	// desktop window.
	cols, rows := screen.Size()
	w, h := terminal.CanvasSize(cols, rows)
	sim, err := game.NewSimulation(w, h, cfg.Settings(), cfg.Seed)
	if err != nil {
		log.Printf("new simulation: %v", err)
		return err
	}
	sim.Events.SubscribeAll(applog.LogEvent)
	log.Printf("session %s seed %d terminal %dx%d", sim.ID, cfg.Seed, cols, rows)

	terminal.NewApp(screen, sim).Run()
	return nil
}
