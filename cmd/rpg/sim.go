package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/game"
	"github.com/vovakirdan/tui-rpg/internal/quest"
	"github.com/vovakirdan/tui-rpg/internal/storage"
)

var (
	flagSimClass string
	flagSimTicks int
	flagSimSave  bool
)

// manageEvery is how often, in ticks, the autopilot spends points and gold.
const manageEvery = 60

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run one headless autopilot game",
	Long: `Run a game without a terminal. The autopilot walks right, fights,
casts skills, drinks potions and spends skill points and gold.

The same --seed always produces the same run and the same final hash.

Examples:
  rpg sim
  rpg sim --class Mage --ticks 36000 --seed 7
  rpg sim --log-level debug
  rpg sim --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagSimClass, "class", "Warrior", "Class to play")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 18000, "Ticks to simulate (60 per second of game time)")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record the run in the run database")
}

// simResult summarizes one headless run.
type simResult struct {
	Class    string
	Seed     int64
	Ticks    uint64
	Stage    int
	Level    int
	Kills    int
	Gold     int
	Advanced bool
	Dead     bool
	Cause    string
	Quests   int
	Hash     uint64
	Elapsed  time.Duration
}

// simulate plays one run with the autopilot until death or maxTicks.
func simulate(content *config.Content, tuning config.TuningConfig, logger *log.Logger, class string, seed int64, maxTicks int) (simResult, error) {
	journal := quest.NewJournal(content)
	w := game.New(content, tuning, game.WithLogger(logger), game.WithQuestTracker(journal))
	if !w.Reset(class, seed) {
		return simResult{}, fmt.Errorf("unknown class %q", class)
	}
	pilot := game.NewAutopilot(content, seed)

	res := simResult{Class: class, Seed: seed}
	start := time.Now()
	snap := w.Snapshot()
	for i := 0; i < maxTicks && !snap.GameOver; i++ {
		if i%manageEvery == 0 {
			pilot.Manage(w)
			if journal.NeedsQuest() {
				//nolint:errcheck // A biome without quests just runs without one
				journal.Next(context.Background(), nil, w.Biome(), w.Player().Level, w.Stage(), w.Rand())
			}
		}
		step := w.Advance(1, pilot.Next(snap), true)
		snap = step.Snapshot
		for _, e := range step.Events {
			switch e.Kind {
			case game.EventGameOver:
				res.Cause = e.Subject
			case game.EventStageLoaded, game.EventBossDefeated, game.EventLevelUp, game.EventClassAdvanced:
				logger.Debug(e.Message, "class", class, "seed", seed, "tick", e.Tick)
			}
		}
	}

	p := &snap.Player
	res.Ticks = snap.Tick
	res.Stage = p.MaxStage
	res.Level = p.Level
	res.Kills = p.Kills
	res.Gold = p.Gold
	res.Advanced = p.Advanced
	res.Dead = p.Dead
	res.Quests = journal.CompletedCount()
	res.Hash = snap.Hash()
	res.Elapsed = time.Since(start)
	return res, nil
}

func (r simResult) record() storage.RunRecord {
	return storage.RunRecord{
		Class:    r.Class,
		Level:    r.Level,
		MaxStage: r.Stage,
		Gold:     r.Gold,
		Kills:    r.Kills,
		Ticks:    r.Ticks,
		Cause:    r.Cause,
		Advanced: r.Advanced,
		Seed:     r.Seed,
	}
}

func runSim(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	tuning, content, err := loadGameConfig()
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res, err := simulate(content, tuning, logger, flagSimClass, seed, flagSimTicks)
	if err != nil {
		fail("%v", err)
	}

	outcome := "survived"
	if res.Dead {
		outcome = "died"
		if res.Cause != "" {
			outcome += " to " + res.Cause
		}
	}
	fmt.Printf("%s (seed %d) %s after %d ticks\n", res.Class, res.Seed, outcome, res.Ticks)
	fmt.Printf("  Stage:  %d\n", res.Stage)
	fmt.Printf("  Level:  %d\n", res.Level)
	fmt.Printf("  Kills:  %d\n", res.Kills)
	fmt.Printf("  Gold:   %d\n", res.Gold)
	fmt.Printf("  Quests: %d\n", res.Quests)
	fmt.Printf("  Hash:   %016x\n", res.Hash)
	fmt.Printf("  Took:   %s\n", res.Elapsed.Round(time.Millisecond))

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()
	id, err := store.SaveRun(res.record())
	if err != nil {
		fail("%v", err)
	}
	fmt.Printf("Saved run %s\n", id)
}
