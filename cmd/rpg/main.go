// rpg is a side-scrolling action RPG that runs in the terminal.
//
// Usage:
//
//	rpg play               - Pick a class and play
//	rpg classes            - List classes, weapons and skills
//	rpg scores [class]     - Show the best runs
//	rpg sim                - Run one headless autopilot game
//	rpg bench              - Run many headless games in parallel
//	rpg serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.rpg/runs.db)
//	--config <path>       - Custom tuning YAML
//	--content <path>      - Custom content YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagContent    string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rpg",
	Short: "TUI RPG - a side-scrolling action RPG in your terminal",
	Long: `TUI RPG is a side-scrolling action RPG played in the terminal.
Pick one of five classes, fight through biomes of monsters, learn skills
and beat the boss every fifth stage.

Available commands:
  play     - Pick a class and play
  classes  - List classes, weapons and skills
  scores   - View the best runs
  sim      - Run one headless autopilot game
  bench    - Run many headless games in parallel
  serve    - Start SSH server for remote play

Examples:
  rpg play
  rpg play --difficulty hard
  rpg sim --class Archer --ticks 20000 --seed 7
  rpg bench --runs 50
  rpg serve --ssh :2222
  rpg scores Mage`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rpg/runs.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Path to custom content YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(serveCmd)
}
