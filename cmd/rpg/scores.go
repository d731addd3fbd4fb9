package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-rpg/internal/platform/tui"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresStats bool
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [class]",
	Short: "Show the best runs",
	Long: `Display the best runs, across all classes or for one class.
Runs rank by furthest stage, then level, then kills.

Examples:
  rpg scores
  rpg scores Archer
  rpg scores --stats
  rpg scores --tui
  rpg scores Mage --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-class totals instead of runs")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the leaderboard interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the runs of the class (or all runs)")
}

func runScores(_ *cobra.Command, args []string) {
	class := ""
	if len(args) == 1 {
		class = args[0]
	}

	_, content, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	if class != "" && content.Class(class) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown class %q\n", class)
		fmt.Fprintln(os.Stderr, "Run 'rpg classes' to see available classes.")
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearRuns(class); err != nil {
			fail("%v", err)
		}
		fmt.Println("Runs cleared.")
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(content, store, width, height); err != nil {
			fail("%v", err)
		}
	case flagScoresStats:
		printStats(store)
	default:
		printRuns(store, class)
	}
}

func printRuns(store *storage.Store, class string) {
	var (
		runs []storage.RunRecord
		err  error
	)
	title := "Best Runs"
	if class == "" {
		runs, err = store.TopRuns(flagScoresLimit)
	} else {
		runs, err = store.TopRunsByClass(class, flagScoresLimit)
		title += " - " + class
	}
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rpg play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %5s  %5s  %5s  %6s  %-12s  %s\n", "Rank", "Class", "Stage", "Level", "Kills", "Gold", "Cause", "Date")
	fmt.Printf("  %-4s  %-8s  %5s  %5s  %5s  %6s  %-12s  %s\n", "----", "-----", "-----", "-----", "-----", "----", "-----", "----")
	for i, r := range runs {
		name := r.Class
		if r.Advanced {
			name += "+"
		}
		cause := r.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("  %-4d  %-8s  %5d  %5d  %5d  %6d  %-12s  %s\n",
			i+1, name, r.MaxStage, r.Level, r.Kills, r.Gold, cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if class != "" {
		if best, err := store.BestStage(class); err == nil {
			fmt.Println()
			fmt.Printf("Best stage: %d\n", best)
		}
	}
}

func printStats(store *storage.Store) {
	stats, err := store.RunStats()
	if err != nil {
		fail("retrieving stats: %v", err)
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	classes := make([]string, 0, len(stats))
	for c := range stats {
		classes = append(classes, c)
	}
	sort.Strings(classes)

	fmt.Printf("  %-8s  %4s  %9s  %9s  %8s  %6s  %s\n", "Class", "Runs", "BestStage", "BestLevel", "AvgStage", "Kills", "Last played")
	for _, c := range classes {
		s := stats[c]
		fmt.Printf("  %-8s  %4d  %9d  %9d  %8.1f  %6d  %s\n",
			s.Class, s.Runs, s.BestStage, s.BestLevel, s.AvgStage, s.TotalKills, s.LastPlayed.Format("2006-01-02 15:04"))
	}
}
