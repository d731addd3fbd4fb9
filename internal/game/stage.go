package game

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// StagePhase is the stage controller state.
type StagePhase int

const (
	StageLoading StagePhase = iota
	StageActive
	StageCleared
)

func (p StagePhase) String() string {
	switch p {
	case StageLoading:
		return "loading"
	case StageActive:
		return "active"
	case StageCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// loadStage rebuilds the world for w.stage: biome, platforms and the
// initial roster. Every live entity is dropped.
func (w *World) loadStage() {
	w.phase = StageLoading
	wc := w.tuning.World

	w.biome = w.content.BiomeFor(w.stage)
	w.worldWidth = wc.BaseWidth + wc.WidthPerStage*float64(w.stage)

	w.enemies = nil
	w.projectiles = nil
	w.items = nil
	w.particles = nil
	w.gateWarned = false
	w.generatePlatforms()

	boss := w.scaling.IsBossStage(w.stage)
	for range w.scaling.InitialRoster(w.stage) {
		w.spawnEnemy(false)
	}
	if boss {
		w.spawnEnemy(true)
	}
	w.spawnTimer = w.tuning.Spawn.Interval

	name := ""
	if w.biome != nil {
		name = w.biome.Name
	}
	w.log.Info("stage loaded", "stage", w.stage, "biome", name, "enemies", len(w.enemies), "boss", boss)
	w.emit(EventStageLoaded, name, w.stage, "Stage %d: %s", w.stage, name)
	w.phase = StageActive
}

// generatePlatforms lays out the ground and a scatter of floating ledges.
// Candidates too close to an accepted ledge are discarded.
func (w *World) generatePlatforms() {
	sc := w.tuning.Stage
	ground := w.tuning.Physics.GroundY

	w.platforms = w.platforms[:0]
	w.platforms = append(w.platforms, Platform{
		Rect:   core.NewRect(-sc.GroundOverhang, ground, w.worldWidth+2*sc.GroundOverhang, sc.GroundDepth),
		Ground: true,
	})

	n := sc.PlatformBase
	if sc.PlatformPerPixels > 0 {
		n += int(w.worldWidth / sc.PlatformPerPixels)
	}
	span := math.Max(0, w.worldWidth-2*sc.PlatformMargin)
	for range n {
		x := sc.PlatformMargin + w.rng.Float64()*span
		y := ground - sc.PlatformMinRise - w.rng.Float64()*(sc.PlatformMaxRise-sc.PlatformMinRise)
		width := sc.PlatformMinWidth + w.rng.Float64()*(sc.PlatformMaxWidth-sc.PlatformMinWidth)
		if w.crowded(x, y) {
			continue
		}
		w.platforms = append(w.platforms, Platform{Rect: core.NewRect(x, y, width, sc.PlatformHeight)})
	}
}

func (w *World) crowded(x, y float64) bool {
	sc := w.tuning.Stage
	for _, pl := range w.platforms[1:] {
		if math.Abs(pl.X-x) < sc.PlatformMinDX && math.Abs(pl.Y-y) < sc.PlatformMinDY {
			return true
		}
	}
	return false
}

// spawnEnemy places a random monster of the biome pool away from the
// player. Bosses are scaled-up archetypes.
func (w *World) spawnEnemy(boss bool) *Enemy {
	if w.biome == nil || len(w.biome.Monsters) == 0 {
		return nil
	}
	arch := w.content.Enemy(w.biome.Monsters[w.rng.Intn(len(w.biome.Monsters))])
	if arch == nil {
		return nil
	}
	sp := w.tuning.Spawn

	e := &Enemy{
		ID:     w.newID(),
		Type:   arch,
		W:      arch.Width,
		H:      arch.Height,
		HP:     w.scaling.HP(arch.HP, w.stage),
		Damage: w.scaling.Damage(arch.Damage, w.stage),
		Exp:    w.scaling.Exp(arch.Exp, w.stage),
		Speed:  arch.Speed,
		Ranged: arch.Ranged,
		Scale:  1,
		Facing: -1,
	}
	if boss {
		e.Boss = true
		e.Scale = sp.BossSizeMult
		e.W *= sp.BossSizeMult
		e.H *= sp.BossSizeMult
		e.HP = int(float64(e.HP) * sp.BossHPMult)
		e.Damage = int(float64(e.Damage) * sp.BossDamageMult)
		e.Exp = int(float64(e.Exp) * sp.BossExpMult)
	}
	e.MaxHP = e.HP

	e.X = w.spawnX(e.W, boss)
	e.Y = w.tuning.Physics.GroundY - e.H
	e.Grounded = true
	e.PatrolMin = math.Max(0, e.X-sp.PatrolRange)
	e.PatrolMax = math.Min(w.worldWidth-e.W, e.X+sp.PatrolRange)
	e.AttackTimer = w.rng.Intn(max(1, w.tuning.AI.AttackInterval))

	w.enemies = append(w.enemies, e)
	if boss {
		w.log.Info("boss spawned", "type", arch.ID, "stage", w.stage, "hp", e.HP)
	}
	return e
}

// spawnX picks a horizontal position at least SpawnDistance from the player.
// Bosses wait near the exit.
func (w *World) spawnX(width float64, boss bool) float64 {
	sp := w.tuning.Spawn
	hi := math.Max(0, w.worldWidth-width)
	if boss {
		return math.Max(0, hi-w.tuning.World.ExitMargin*4)
	}
	px := w.player.X
	x := w.rng.Float64() * hi
	if math.Abs(x-px) >= sp.SpawnDistance {
		return x
	}
	// Push out to whichever side has room.
	if px+sp.SpawnDistance <= hi {
		return px + sp.SpawnDistance + w.rng.Float64()*(hi-px-sp.SpawnDistance)
	}
	return math.Max(0, px-sp.SpawnDistance-w.rng.Float64()*math.Max(0, px-sp.SpawnDistance))
}

func (w *World) liveEnemies() (n int) {
	for _, e := range w.enemies {
		if !e.Dead && !e.Boss {
			n++
		}
	}
	return n
}

// stepSpawner tops the live population back up to the stage floor.
func (w *World) stepSpawner() {
	if w.spawnTimer > 0 {
		w.spawnTimer--
		return
	}
	w.spawnTimer = w.tuning.Spawn.Interval
	if w.liveEnemies() >= w.scaling.SpawnFloor(w.stage) {
		return
	}
	if w.rng.Float64() < w.tuning.Spawn.Chance {
		w.spawnEnemy(false)
	}
}

// checkStageExit handles the player reaching the right edge of the stage.
func (w *World) checkStageExit() {
	p := w.player
	edge := w.worldWidth - w.tuning.World.ExitMargin
	if p.Dead || p.X+p.W < edge {
		return
	}

	if boss := w.Boss(); boss != nil {
		p.X = edge - p.W
		if p.VX > 0 {
			p.VX = 0
		}
		interval := uint64(max(1, w.tuning.Stage.GateWarningInterval))
		if !w.gateWarned || w.tick-w.lastGateWarn >= interval {
			w.gateWarned = true
			w.lastGateWarn = w.tick
			w.log.Warn("boss gate: defeat the boss to continue", "boss", boss.Type.ID, "stage", w.stage)
			w.emit(EventBossGate, boss.Type.ID, boss.HP, "Defeat %s to proceed!", boss.Type.ID)
		}
		return
	}

	w.phase = StageCleared
	w.emit(EventStageCleared, "", w.stage, "Stage %d cleared", w.stage)
	w.stage++
	if w.stage > p.MaxStage {
		p.MaxStage = w.stage
	}
	p.X = w.tuning.World.StartX
	p.Y = w.tuning.Physics.GroundY - p.H
	p.VX, p.VY = 0, 0
	w.loadStage()
}
