package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/platform/tui"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Pick a class and play",
	Long: `Start the class picker, then play until you die or quit.
Runs are recorded in the run database when they end.

Controls:
  Left/Right, h/l  - Move
  Space/Up         - Jump (twice with Double Jump)
  Down + attack    - Downward attack while airborne
  Z/X              - Attack
  A S D F G        - Skill hotkeys
  Q/W              - HP/MP potion
  1-4              - Switch weapon
  Tab              - Skills (learn with Enter, bind with A-G)
  O                - Shop
  V                - Class advancement (level 30)
  P/Esc            - Pause (B abandons the run)
  R                - Restart (after game over)
  Ctrl+C           - Quit

Examples:
  rpg play
  rpg play --difficulty easy
  rpg play --seed 42
  rpg play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	tuning, content, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	logFile, err := openLogFile()
	if err != nil {
		fail("%v", err)
	}
	defer logFile.Close()
	logger, err := newLogger(logFile)
	if err != nil {
		fail("%v", err)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed

	opts := tui.Options{
		Content: content,
		Tuning:  tuning,
		Store:   store,
		Logger:  logger,
		Runtime: rt,
	}
	logger.Info("session started", "difficulty", tuning.Difficulty.Preset, "seed", flagSeed)

	if err := tui.Run(opts); err != nil {
		fail("%v", err)
	}
}
