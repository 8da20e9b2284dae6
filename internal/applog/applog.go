// Package applog routes the standard logger to a rotating file when debug
// logging is on and discards it otherwise, so nothing is written over the
// game screen.
package applog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"cubecar/internal/game"
)

const (
	LogDir      = "logs"
	LogFileName = "cubecar.log"
	MaxLogSize  = 10 * 1024 * 1024
)

// Setup configures the standard logger. It returns the open log file, or nil
// when logging is disabled or the file could not be opened.
func Setup(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(LogDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(LogDir, LogFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > MaxLogSize {
		rotated := filepath.Join(LogDir, fmt.Sprintf("cubecar-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotate log: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	return f
}

// LogEvent writes one line per simulation event. Subscribe it with
// EventBus.SubscribeAll.
func LogEvent(e game.Event) {
	switch e.Type {
	case game.EventFieldGenerated:
		log.Printf("tick %d: %s, %d cubes", e.Tick, e.Type, e.Count)
	default:
		log.Printf("tick %d: %s cube=%s at (%.0f,%.0f) size=%.1f", e.Tick, e.Type, e.CubeID, e.X, e.Y, e.Size)
	}
}

// Close detaches the standard logger from f and closes it. f may be nil.
func Close(f *os.File) {
	if f == nil {
		return
	}
	log.SetOutput(io.Discard)
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %v\n", err)
	}
}
