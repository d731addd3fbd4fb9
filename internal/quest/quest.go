// Package quest tracks the active quest and produces new ones from a
// pluggable generator with a static, biome-keyed fallback.
package quest

//go:generate mockgen -destination=mock/mock_quest.go -package=questmock github.com/vovakirdan/tui-rpg/internal/quest Tracker,Generator

import (
	"context"

	"github.com/vovakirdan/tui-rpg/internal/config"
)

// Quest is a kill-and-collect objective.
type Quest struct {
	ID            string
	Title         string
	Description   string
	TargetMonster string
	ItemName      string
	TargetCount   int
	CurrentCount  int
	Completed     bool
	RewardExp     int
	RewardGold    int
}

// Remaining returns how many items are still needed.
func (q Quest) Remaining() int {
	if q.CurrentCount >= q.TargetCount {
		return 0
	}
	return q.TargetCount - q.CurrentCount
}

// Update reports the quest state after a collected item.
type Update struct {
	Quest     Quest
	Completed bool // true only on the pickup that completed the quest
}

// Tracker is what the simulation asks about quest progress.
type Tracker interface {
	// Target reports whether monsterType is the active quest target and
	// which item it drops for the quest.
	Target(monsterType string) (itemName string, ok bool)
	// Collect records a picked-up quest item for monsterType.
	Collect(monsterType string) (Update, bool)
}

// Request describes the context a generator writes a quest for.
type Request struct {
	Biome    string
	Monsters []string
	Level    int
	Stage    int
}

// Generator produces quest text and targets, typically from a remote service.
type Generator interface {
	Generate(ctx context.Context, req Request) (Quest, error)
}

// FromTemplate scales a static template to the player's level and stage.
func FromTemplate(t config.QuestTemplate, itemName string, level, stage int) Quest {
	// count * (1 + (level%5)/10), rounded up
	count := (t.Count*(10+level%5) + 9) / 10
	if count < 1 {
		count = 1
	}
	q := Quest{
		Title:         t.Title,
		Description:   t.Description,
		TargetMonster: t.TargetMonster,
		ItemName:      itemName,
		TargetCount:   count,
	}
	q.RewardExp, q.RewardGold = Rewards(count, stage)
	return q
}

// Rewards returns the exp and gold paid for a quest of count items.
func Rewards(count, stage int) (exp, gold int) {
	s := stage
	if s < 1 {
		s = 1
	}
	return count * 30 * s, count * 10 * s
}
