package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTuningMatchesHardcoded(t *testing.T) {
	cfg, err := LoadTuning("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTuningConfig(), cfg)
}

func TestLoadTuningCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	data := "physics:\n  gravity: 1.5\ndifficulty:\n  preset: hard\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadTuning(path)
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Physics.Gravity)
	assert.Equal(t, DifficultyHard, cfg.Difficulty.Preset)
}

func TestLoadTuningErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		wantErr string
	}{
		{name: "missing file", missing: true, wantErr: "failed to read config"},
		{name: "bad yaml", content: "physics: [1, 2", wantErr: "failed to parse config"},
		{name: "bad preset", content: "difficulty:\n  preset: nightmare\n", wantErr: "invalid difficulty preset"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if !tt.missing {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}
			_, err := LoadTuning(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadContentDefaults(t *testing.T) {
	c, err := LoadContent("")
	require.NoError(t, err)

	assert.Len(t, c.Classes, 5)
	assert.Len(t, c.Enemies, 24)
	assert.Len(t, c.Biomes, 6)
	for _, b := range c.Biomes {
		assert.Len(t, b.Monsters, 4, b.Name)
		assert.NotEmpty(t, b.Quests, b.Name)
	}

	for _, cl := range c.Classes {
		w := c.Weapon(cl.Weapon)
		require.NotNil(t, w, cl.ID)
		assert.False(t, w.Advanced, "%s starts with a base weapon", cl.ID)
		adv := c.Weapon(cl.AdvancedWeapon)
		require.NotNil(t, adv, cl.ID)
		assert.True(t, adv.Advanced, "%s advances into an advanced weapon", cl.ID)
	}
}

func TestContentSkillEffects(t *testing.T) {
	c := MustDefaultContent()

	for _, s := range c.Skills {
		switch s.Kind {
		case SkillActive:
			assert.NotEqual(t, EffectNone, s.Effect.Type, "active skill %s has no effect", s.ID)
			assert.Positive(t, s.Cooldown, "active skill %s has no cooldown", s.ID)
		case SkillBuff:
			assert.Positive(t, s.Duration, "buff %s has no duration", s.ID)
			if s.Effect.Type == EffectRandomBuff {
				assert.NotEmpty(t, s.Effect.Pool, s.ID)
			} else {
				assert.NotEmpty(t, s.Buff.Name, s.ID)
			}
		case SkillPassive:
			assert.Equal(t, EffectNone, s.Effect.Type, "passive %s has an effect", s.ID)
		default:
			t.Errorf("skill %s has unknown kind %q", s.ID, s.Kind)
		}
	}

	// Every class has at least one level-1 active skill.
	for _, cl := range c.Classes {
		found := false
		for _, s := range c.ClassSkills(cl.ID) {
			if s.Kind == SkillActive && s.ReqLevel == 1 {
				found = true
			}
		}
		assert.True(t, found, "class %s has no starter skill", cl.ID)
	}
}

func TestClassSkillsSharedFirst(t *testing.T) {
	c := MustDefaultContent()
	skills := c.ClassSkills("Warrior")
	require.NotEmpty(t, skills)
	assert.Equal(t, ClassAll, skills[0].Class)

	for _, s := range skills {
		assert.Contains(t, []string{ClassAll, "Warrior"}, s.Class)
	}
}

func TestBiomeFor(t *testing.T) {
	c := MustDefaultContent()
	tests := []struct {
		stage int
		want  string
	}{
		{1, "Peaceful Forest"},
		{3, "Peaceful Forest"},
		{4, "Sand Dunes"},
		{9, "Frozen Peaks"},
		{12, "Cyber City"},
		{15, "Celestial Realm"},
		{16, "Burning Hell"},
		{500, "Burning Hell"},
		{0, "Burning Hell"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.BiomeFor(tt.stage).Name, "stage %d", tt.stage)
	}
}

func TestMaxExpFor(t *testing.T) {
	c := &Content{ExpCurve: []int{100, 150}, ExpGrowth: 1.2}

	assert.Equal(t, 100, c.MaxExpFor(1, 0))
	assert.Equal(t, 150, c.MaxExpFor(2, 100))
	assert.Equal(t, 180, c.MaxExpFor(3, 150))
	assert.Equal(t, 216, c.MaxExpFor(4, 180))
}

func TestValidateReportsAllProblems(t *testing.T) {
	c := &Content{
		Classes: []ClassDef{{ID: "Knight", Weapon: "Lance", AdvancedWeapon: "Sword"}},
		Weapons: []WeaponDef{{ID: "Sword"}},
		Enemies: []EnemyArchetype{{ID: "Rat"}},
		Biomes: []BiomeDef{{
			Name:     "Cellar",
			Monsters: []string{"Rat", "Bat"},
			Quests:   []QuestTemplate{{Title: "Bats", TargetMonster: "Bat"}},
		}},
		Skills: []SkillDef{
			{ID: "Bash", Class: "Knight", MaxLevel: 1, ReqSkill: "Slam"},
			{ID: "Zap", Class: "Wizard", MaxLevel: 0},
		},
		ExpCurve: []int{100, 100},
	}

	err := c.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{
		`unknown weapon "Lance"`,
		`unknown monster "Bat"`,
		`targets unknown monster "Bat"`,
		`unknown prerequisite "Slam"`,
		`unknown class "Wizard"`,
		"max_level must be positive",
		"strictly increasing",
	} {
		assert.True(t, strings.Contains(msg, want), "missing %q in %s", want, msg)
	}
}

func TestParseDifficultyPreset(t *testing.T) {
	tests := []struct {
		in    string
		want  DifficultyPreset
		valid bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyNormal, false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficultyPreset(tt.in)
		if got != tt.want || ok != tt.valid {
			t.Errorf("ParseDifficultyPreset(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.valid)
		}
	}
}

func TestStageScaling(t *testing.T) {
	cfg := DefaultTuningConfig()
	s := NewStageScaling(cfg)

	assert.Equal(t, 30, s.HP(30, 1))
	assert.Equal(t, 200, s.HP(100, 6))
	assert.Equal(t, 10, s.Damage(10, 1))
	assert.Equal(t, 1, s.Damage(0, 1), "damage never drops below one")

	assert.Equal(t, 7, s.SpawnFloor(1))
	assert.Equal(t, 20, s.SpawnFloor(50), "spawn floor is capped")
	assert.Equal(t, 3, s.InitialRoster(1))
	assert.Equal(t, 4, s.InitialRoster(2))

	assert.False(t, s.IsBossStage(4))
	assert.True(t, s.IsBossStage(5))
	assert.True(t, s.IsBossStage(10))

	ApplyPreset(&cfg, DifficultyHard)
	hard := NewStageScaling(cfg)
	assert.Greater(t, hard.HP(100, 3), s.HP(100, 3))
	assert.Greater(t, hard.Damage(100, 3), s.Damage(100, 3))
}
