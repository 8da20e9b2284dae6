package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"cubecar/internal/applog"
	"cubecar/internal/config"
	"cubecar/internal/game"
)

func simulationScreen() (tcell.Screen, error) {
	return tcell.NewSimulationScreen("UTF-8"), nil
}

func TestRunReleasesLogOnError(t *testing.T) {
	t.Chdir(t.TempDir())
	prev := log.Writer()
	t.Cleanup(func() { log.SetOutput(prev) })

	cfg := config.Default()
	cfg.Debug = true
	cfg.CubeScale = 100000 // larger than any terminal canvas
	cfg.Warnings = []string{`ignoring CUBECAR_ACCEL="fast"`}

	err := run(cfg, simulationScreen)
	if !errors.Is(err, game.ErrPlacementInfeasible) {
		t.Fatalf("run err got=%v want=%v", err, game.ErrPlacementInfeasible)
	}
	if log.Writer() != io.Discard {
		t.Fatalf("log still attached to the file after run returned")
	}

	data, err := os.ReadFile(filepath.Join(applog.LogDir, applog.LogFileName))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `config: ignoring CUBECAR_ACCEL="fast"`) {
		t.Fatalf("log missing env warning: %q", out)
	}
	if !strings.Contains(out, "new simulation:") {
		t.Fatalf("log missing startup error: %q", out)
	}
}
