package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	flagBenchRuns     int
	flagBenchTicks    int
	flagBenchParallel int
	flagBenchClass    string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run many headless games in parallel",
	Long: `Run many autopilot games at once, one world per goroutine, and
report how far each class gets and how fast the simulation runs.

Seeds are derived from --seed, so a bench with a fixed seed is repeatable.

Examples:
  rpg bench
  rpg bench --runs 100 --ticks 36000
  rpg bench --class Gunner --parallel 4 --seed 1`,
	Args: cobra.NoArgs,
	Run:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagBenchRuns, "runs", 20, "Number of runs")
	benchCmd.Flags().IntVar(&flagBenchTicks, "ticks", 18000, "Tick limit per run")
	benchCmd.Flags().IntVar(&flagBenchParallel, "parallel", runtime.NumCPU(), "Runs in flight at once")
	benchCmd.Flags().StringVar(&flagBenchClass, "class", "", "Only bench this class (default: rotate through all)")
}

func runBench(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	tuning, content, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}
	if flagBenchRuns <= 0 {
		fail("--runs must be positive")
	}

	classes := make([]string, 0, len(content.Classes))
	if flagBenchClass != "" {
		if content.Class(flagBenchClass) == nil {
			fail("unknown class %q", flagBenchClass)
		}
		classes = append(classes, flagBenchClass)
	} else {
		for _, c := range content.Classes {
			classes = append(classes, c.ID)
		}
	}

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]simResult, flagBenchRuns)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(max(flagBenchParallel, 1))

	start := time.Now()
	for i := range results {
		class := classes[i%len(classes)]
		seed := base + int64(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := simulate(content, tuning, logger, class, seed, flagBenchTicks)
			if err != nil {
				return fmt.Errorf("run %d (%s, seed %d): %w", i, class, seed, err)
			}
			results[i] = res
			logger.Debug("run finished", "run", i, "class", class, "stage", res.Stage, "ticks", res.Ticks)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail("%v", err)
	}
	elapsed := time.Since(start)

	printBench(results, classes, elapsed)
}

type classSummary struct {
	runs, deaths          int
	bestStage, totalStage int
	bestLevel             int
	ticks                 uint64
}

func printBench(results []simResult, classes []string, elapsed time.Duration) {
	byClass := make(map[string]*classSummary, len(classes))
	var totalTicks uint64
	for _, r := range results {
		s := byClass[r.Class]
		if s == nil {
			s = &classSummary{}
			byClass[r.Class] = s
		}
		s.runs++
		if r.Dead {
			s.deaths++
		}
		s.bestStage = max(s.bestStage, r.Stage)
		s.bestLevel = max(s.bestLevel, r.Level)
		s.totalStage += r.Stage
		s.ticks += r.Ticks
		totalTicks += r.Ticks
	}

	names := make([]string, 0, len(byClass))
	for name := range byClass {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("  %-8s  %4s  %6s  %9s  %9s  %9s\n", "Class", "Runs", "Deaths", "AvgStage", "BestStage", "BestLevel")
	fmt.Printf("  %-8s  %4s  %6s  %9s  %9s  %9s\n", "-----", "----", "------", "--------", "---------", "---------")
	for _, name := range names {
		s := byClass[name]
		fmt.Printf("  %-8s  %4d  %6d  %9.1f  %9d  %9d\n",
			name, s.runs, s.deaths, float64(s.totalStage)/float64(s.runs), s.bestStage, s.bestLevel)
	}

	fmt.Println()
	fmt.Printf("%d runs, %d ticks in %s", len(results), totalTicks, elapsed.Round(time.Millisecond))
	if secs := elapsed.Seconds(); secs > 0 {
		fmt.Printf(" (%.0f ticks/s)", float64(totalTicks)/secs)
	}
	fmt.Println()
}
