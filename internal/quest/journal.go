package quest

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-rpg/internal/config"
)

// GenerateTimeout bounds a single generator call.
const GenerateTimeout = 3 * time.Second

// ErrNoTemplates is returned when a biome has no static quests to fall back on.
var ErrNoTemplates = errors.New("quest: biome has no templates")

// Journal holds the active quest and implements Tracker.
// It is owned by the session that owns the world and is not safe for
// concurrent use.
type Journal struct {
	content   *config.Content
	active    *Quest
	completed int
}

// NewJournal creates an empty journal.
func NewJournal(content *config.Content) *Journal {
	return &Journal{content: content}
}

// Active returns the current quest, if any.
func (j *Journal) Active() (Quest, bool) {
	if j.active == nil {
		return Quest{}, false
	}
	return *j.active, true
}

// CompletedCount returns how many quests were finished in this journal.
func (j *Journal) CompletedCount() int {
	return j.completed
}

// NeedsQuest reports whether a new quest should be requested.
func (j *Journal) NeedsQuest() bool {
	return j.active == nil || j.active.Completed
}

// Accept replaces the active quest.
func (j *Journal) Accept(q Quest) {
	q.CurrentCount = 0
	q.Completed = false
	j.active = &q
}

// Abandon drops the active quest.
func (j *Journal) Abandon() {
	j.active = nil
}

// Target implements Tracker.
func (j *Journal) Target(monsterType string) (string, bool) {
	if j.active == nil || j.active.Completed || j.active.TargetMonster != monsterType {
		return "", false
	}
	return j.active.ItemName, true
}

// Collect implements Tracker.
func (j *Journal) Collect(monsterType string) (Update, bool) {
	if _, ok := j.Target(monsterType); !ok {
		return Update{}, false
	}
	q := j.active
	q.CurrentCount++
	u := Update{}
	if q.CurrentCount >= q.TargetCount {
		q.CurrentCount = q.TargetCount
		q.Completed = true
		u.Completed = true
		j.completed++
	}
	u.Quest = *q
	return u, true
}

// Next produces a quest for the biome, accepts it and returns it.
// A nil or failing generator falls back to a random static template; the
// generator error is returned alongside the fallback quest for logging only.
func (j *Journal) Next(ctx context.Context, gen Generator, biome *config.BiomeDef, level, stage int, rng *rand.Rand) (Quest, error) {
	var genErr error
	if gen != nil {
		q, err := j.generate(ctx, gen, biome, level, stage)
		if err == nil {
			q.ID = newID(rng)
			j.Accept(q)
			return q, nil
		}
		genErr = fmt.Errorf("quest: generator failed, using static quest: %w", err)
	}

	if biome == nil || len(biome.Quests) == 0 {
		return Quest{}, errors.Join(genErr, ErrNoTemplates)
	}
	t := biome.Quests[rng.Intn(len(biome.Quests))]
	q := FromTemplate(t, j.itemName(t.TargetMonster), level, stage)
	q.ID = newID(rng)
	j.Accept(q)
	return q, genErr
}

func (j *Journal) generate(ctx context.Context, gen Generator, biome *config.BiomeDef, level, stage int) (Quest, error) {
	ctx, cancel := context.WithTimeout(ctx, GenerateTimeout)
	defer cancel()

	req := Request{Level: level, Stage: stage}
	if biome != nil {
		req.Biome = biome.Name
		req.Monsters = biome.Monsters
	}
	q, err := gen.Generate(ctx, req)
	if err != nil {
		return Quest{}, err
	}
	if j.content != nil && j.content.Enemy(q.TargetMonster) == nil {
		return Quest{}, fmt.Errorf("unknown target monster %q", q.TargetMonster)
	}
	if q.TargetCount <= 0 {
		return Quest{}, fmt.Errorf("invalid target count %d", q.TargetCount)
	}
	if q.ItemName == "" {
		q.ItemName = j.itemName(q.TargetMonster)
	}
	if q.RewardExp == 0 && q.RewardGold == 0 {
		q.RewardExp, q.RewardGold = Rewards(q.TargetCount, stage)
	}
	return q, nil
}

func (j *Journal) itemName(monster string) string {
	if j.content != nil {
		if a := j.content.Enemy(monster); a != nil && a.DropName != "" {
			return a.DropName
		}
	}
	return monster + " Trophy"
}

// newID derives a quest id from the session rng so seeded runs stay reproducible.
func newID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
