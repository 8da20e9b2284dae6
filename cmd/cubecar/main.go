// Command cubecar runs the game in a desktop window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"cubecar/internal/applog"
	"cubecar/internal/config"
	"cubecar/internal/desktop"
	"cubecar/internal/game"
)

func main() {
	cfg, err := config.Load("cubecar", os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "cubecar: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "cubecar: %v\n", err)
		os.Exit(1)
	}
}

// run owns the log file so it is closed on every return path.
func run(cfg config.Config) error {
	defer applog.Close(applog.Setup(cfg.Debug))
	for _, w := range cfg.Warnings {
		log.Printf("config: %s", w)
	}

	sim, err := game.NewSimulation(float64(cfg.Width), float64(cfg.Height), cfg.Settings(), cfg.Seed)
	if err != nil {
		log.Printf("new simulation: %v", err)
		return err
	}
	sim.Events.SubscribeAll(applog.LogEvent)
	log.Printf("session %s seed %d canvas %dx%d", sim.ID, cfg.Seed, cfg.Width, cfg.Height)

	if err := desktop.Run(sim); err != nil {
		log.Printf("desktop: %v", err)
		return err
	}
	return nil
}
