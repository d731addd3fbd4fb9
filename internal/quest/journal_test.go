package quest_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/quest"
	questmock "github.com/vovakirdan/tui-rpg/internal/quest/mock"
)

func TestFromTemplateScaling(t *testing.T) {
	tmpl := config.QuestTemplate{Title: "Slimes", TargetMonster: "Slime", Count: 5}

	tests := []struct {
		level, stage int
		wantCount    int
		wantExp      int
		wantGold     int
	}{
		{level: 5, stage: 1, wantCount: 5, wantExp: 150, wantGold: 50},
		{level: 1, stage: 1, wantCount: 6, wantExp: 180, wantGold: 60},
		{level: 4, stage: 3, wantCount: 7, wantExp: 630, wantGold: 210},
		{level: 2, stage: 0, wantCount: 6, wantExp: 180, wantGold: 60},
	}
	for _, tt := range tests {
		q := quest.FromTemplate(tmpl, "Water Drop", tt.level, tt.stage)
		assert.Equal(t, tt.wantCount, q.TargetCount, "level %d", tt.level)
		assert.Equal(t, tt.wantExp, q.RewardExp, "level %d stage %d", tt.level, tt.stage)
		assert.Equal(t, tt.wantGold, q.RewardGold, "level %d stage %d", tt.level, tt.stage)
		assert.Equal(t, "Water Drop", q.ItemName)
	}

	ten := config.QuestTemplate{TargetMonster: "Zombie", Count: 10}
	assert.Equal(t, 11, quest.FromTemplate(ten, "", 1, 1).TargetCount)
}

func TestJournalCollect(t *testing.T) {
	j := quest.NewJournal(config.MustDefaultContent())
	j.Accept(quest.Quest{Title: "Boars", TargetMonster: "Boar", ItemName: "Boar Meat", TargetCount: 2})

	_, ok := j.Target("Slime")
	assert.False(t, ok)

	item, ok := j.Target("Boar")
	require.True(t, ok)
	assert.Equal(t, "Boar Meat", item)

	u, ok := j.Collect("Boar")
	require.True(t, ok)
	assert.False(t, u.Completed)
	assert.Equal(t, 1, u.Quest.CurrentCount)

	u, ok = j.Collect("Boar")
	require.True(t, ok)
	assert.True(t, u.Completed)
	assert.True(t, u.Quest.Completed)
	assert.Equal(t, 1, j.CompletedCount())
	assert.True(t, j.NeedsQuest())

	// A completed quest no longer matches.
	_, ok = j.Collect("Boar")
	assert.False(t, ok)
}

func TestJournalNextFallsBackWithoutGenerator(t *testing.T) {
	content := config.MustDefaultContent()
	j := quest.NewJournal(content)

	q, err := j.Next(context.Background(), nil, content.BiomeFor(1), 1, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.NotEmpty(t, q.ID)
	assert.Contains(t, content.BiomeFor(1).Monsters, q.TargetMonster)
	assert.Equal(t, content.Enemy(q.TargetMonster).DropName, q.ItemName)

	active, ok := j.Active()
	require.True(t, ok)
	assert.Equal(t, q, active)
}

func TestJournalNextSeededIDs(t *testing.T) {
	content := config.MustDefaultContent()
	a := quest.NewJournal(content)
	b := quest.NewJournal(content)

	qa, _ := a.Next(context.Background(), nil, content.BiomeFor(4), 3, 4, rand.New(rand.NewSource(9)))
	qb, _ := b.Next(context.Background(), nil, content.BiomeFor(4), 3, 4, rand.New(rand.NewSource(9)))
	assert.Equal(t, qa, qb)
}

func TestJournalNextUsesGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := questmock.NewMockGenerator(ctrl)
	content := config.MustDefaultContent()
	biome := content.BiomeFor(7)

	gen.EXPECT().
		Generate(gomock.Any(), quest.Request{Biome: biome.Name, Monsters: biome.Monsters, Level: 20, Stage: 7}).
		Return(quest.Quest{Title: "Cold Feet", TargetMonster: "Penguin", TargetCount: 3}, nil)

	j := quest.NewJournal(content)
	q, err := j.Next(context.Background(), gen, biome, 20, 7, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, "Cold Feet", q.Title)
	assert.Equal(t, "Fish", q.ItemName)
	assert.Equal(t, 3*30*7, q.RewardExp)
	assert.Equal(t, 3*10*7, q.RewardGold)
}

func TestJournalNextGeneratorFailure(t *testing.T) {
	content := config.MustDefaultContent()
	biome := content.BiomeFor(10)
	boom := errors.New("service unavailable")

	tests := []struct {
		name string
		ret  quest.Quest
		err  error
	}{
		{name: "error", err: boom},
		{name: "unknown monster", ret: quest.Quest{TargetMonster: "Kraken", TargetCount: 1}},
		{name: "zero count", ret: quest.Quest{TargetMonster: "Robot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			gen := questmock.NewMockGenerator(ctrl)
			gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(tt.ret, tt.err)

			j := quest.NewJournal(content)
			q, err := j.Next(context.Background(), gen, biome, 10, 10, rand.New(rand.NewSource(2)))
			require.Error(t, err)
			if tt.err != nil {
				assert.ErrorIs(t, err, boom)
			}
			// The static fallback is still accepted.
			assert.Contains(t, biome.Monsters, q.TargetMonster)
			_, ok := j.Active()
			assert.True(t, ok)
		})
	}
}

func TestJournalNextNoTemplates(t *testing.T) {
	j := quest.NewJournal(nil)
	_, err := j.Next(context.Background(), nil, &config.BiomeDef{Name: "Void"}, 1, 1, rand.New(rand.NewSource(1)))
	assert.ErrorIs(t, err, quest.ErrNoTemplates)
	assert.True(t, j.NeedsQuest())
}

func TestChatLine(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	assert.NotEmpty(t, quest.ChatLine("Slime", rng))
	assert.NotEmpty(t, quest.ChatLine("Nobody", rng))
}
