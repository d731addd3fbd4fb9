package game

import (
	"hash/fnv"
	"maps"
	"math"
	"slices"
)

// Snapshot is a read-only copy of the world after a tick. Mutating it never
// affects the simulation.
type Snapshot struct {
	Tick       uint64
	Stage      int
	Biome      string
	Phase      StagePhase
	WorldWidth float64
	GameOver   bool

	Player      Player
	Boss        *Enemy // nil without a live boss
	Enemies     []Enemy
	Projectiles []Projectile
	Items       []Item
	Particles   []Particle
	Platforms   []Platform
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       w.tick,
		Stage:      w.stage,
		Phase:      w.phase,
		WorldWidth: w.worldWidth,
		Platforms:  slices.Clone(w.platforms),
	}
	if w.biome != nil {
		s.Biome = w.biome.Name
	}
	if w.player != nil {
		s.Player = *w.player
		s.Player.Weapons = slices.Clone(w.player.Weapons)
		s.Player.Skills = maps.Clone(w.player.Skills)
		s.Player.Slots = maps.Clone(w.player.Slots)
		s.Player.Cooldowns = maps.Clone(w.player.Cooldowns)
		s.Player.Buffs = make(map[string]*Buff, len(w.player.Buffs))
		for id, b := range w.player.Buffs {
			cp := *b
			s.Player.Buffs[id] = &cp
		}
		s.GameOver = w.player.Dead
	}

	s.Enemies = make([]Enemy, 0, len(w.enemies))
	for _, e := range w.enemies {
		s.Enemies = append(s.Enemies, *e)
		if e.Boss && !e.Dead && s.Boss == nil {
			s.Boss = &s.Enemies[len(s.Enemies)-1]
		}
	}
	s.Projectiles = make([]Projectile, 0, len(w.projectiles))
	for _, pr := range w.projectiles {
		cp := *pr
		cp.hit = nil
		s.Projectiles = append(s.Projectiles, cp)
	}
	s.Items = make([]Item, 0, len(w.items))
	for _, it := range w.items {
		s.Items = append(s.Items, *it)
	}
	s.Particles = make([]Particle, 0, len(w.particles))
	for _, pt := range w.particles {
		s.Particles = append(s.Particles, *pt)
	}
	return s
}

// Hash fingerprints the gameplay state for determinism tests. Particles are
// cosmetic and left out.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v uint64) {
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		h.Write(buf[:])
	}
	putF := func(f float64) { put(math.Float64bits(f)) }
	putI := func(i int) { put(uint64(int64(i))) } //#nosec G115 -- hash computation

	put(s.Tick)
	putI(s.Stage)
	putI(int(s.Phase))

	p := &s.Player
	putF(p.X)
	putF(p.Y)
	putF(p.VX)
	putF(p.VY)
	putI(p.HP)
	putI(p.MP)
	putI(p.Level)
	putI(p.Exp)
	putI(p.Gold)
	putI(p.Kills)
	putI(p.SP)

	for _, e := range s.Enemies {
		putI(e.ID)
		putF(e.X)
		putF(e.Y)
		putI(e.HP)
		putI(int(e.State))
	}
	for _, pr := range s.Projectiles {
		putI(pr.ID)
		putF(pr.X)
		putF(pr.Y)
		putI(pr.Life)
	}
	for _, it := range s.Items {
		putI(it.ID)
		putI(int(it.Kind))
		putF(it.X)
		putF(it.Y)
	}
	return h.Sum64()
}
