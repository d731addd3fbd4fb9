package config

import "math"

// StageScaling calculates enemy stats and population from the stage number.
type StageScaling struct {
	cfg   DifficultyConfig
	spawn SpawnConfig
	mult  presetMult
}

type presetMult struct {
	hp, damage, exp float64
}

func multFor(p DifficultyPreset) presetMult {
	switch p {
	case DifficultyEasy:
		return presetMult{hp: 0.75, damage: 0.6, exp: 1.0}
	case DifficultyHard:
		return presetMult{hp: 1.5, damage: 1.5, exp: 1.25}
	default:
		return presetMult{hp: 1, damage: 1, exp: 1}
	}
}

// NewStageScaling creates a scaling model from the tuning.
func NewStageScaling(t TuningConfig) *StageScaling {
	return &StageScaling{
		cfg:   t.Difficulty,
		spawn: t.Spawn,
		mult:  multFor(t.Difficulty.Preset),
	}
}

func (s *StageScaling) factor(perStage float64, stage int) float64 {
	if stage < 1 {
		stage = 1
	}
	return 1 + perStage*float64(stage-1)
}

// HP returns the max hp of an archetype at stage.
func (s *StageScaling) HP(base, stage int) int {
	return atLeastOne(float64(base) * s.factor(s.cfg.HPPerStage, stage) * s.mult.hp)
}

// Damage returns the contact damage of an archetype at stage.
func (s *StageScaling) Damage(base, stage int) int {
	return atLeastOne(float64(base) * s.factor(s.cfg.DamagePerStage, stage) * s.mult.damage)
}

// Exp returns the exp award of an archetype at stage.
func (s *StageScaling) Exp(base, stage int) int {
	return atLeastOne(float64(base) * s.factor(s.cfg.ExpPerStage, stage) * s.mult.exp)
}

// SpawnFloor returns the live non-boss enemy count the spawner maintains.
func (s *StageScaling) SpawnFloor(stage int) int {
	n := s.spawn.FloorBase + int(s.spawn.FloorPerStage*float64(stage))
	if s.spawn.FloorCap > 0 && n > s.spawn.FloorCap {
		n = s.spawn.FloorCap
	}
	return n
}

// InitialRoster returns how many enemies are placed when a stage loads.
func (s *StageScaling) InitialRoster(stage int) int {
	return s.spawn.InitialBase + int(math.Floor(s.spawn.InitialPerStage*float64(stage)))
}

// IsBossStage reports whether stage spawns a boss.
func (s *StageScaling) IsBossStage(stage int) bool {
	return s.spawn.BossInterval > 0 && stage > 0 && stage%s.spawn.BossInterval == 0
}

func atLeastOne(v float64) int {
	n := int(math.Floor(v))
	if n < 1 {
		return 1
	}
	return n
}
