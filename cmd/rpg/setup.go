package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpg/internal/config"
)

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadGameConfig loads tuning and content and applies --difficulty.
func loadGameConfig() (config.TuningConfig, *config.Content, error) {
	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		return tuning, nil, fmt.Errorf("load tuning: %w", err)
	}
	if flagDifficulty != "" {
		preset, ok := config.ParseDifficultyPreset(flagDifficulty)
		if !ok {
			return tuning, nil, fmt.Errorf("invalid difficulty %q (use: easy, normal, hard)", flagDifficulty)
		}
		config.ApplyPreset(&tuning, preset)
	}

	content, err := config.LoadContent(flagContent)
	if err != nil {
		return tuning, nil, fmt.Errorf("load content: %w", err)
	}
	return tuning, content, nil
}

// newLogger creates the process logger at --log-level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "rpg",
		Level:           level,
	})
	return logger, nil
}

// openLogFile opens ~/.rpg/rpg.log for appending. The terminal belongs to
// the game while it runs.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".rpg")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "rpg.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}
