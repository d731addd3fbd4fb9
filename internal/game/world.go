// Package game is the real-time simulation core: entities, physics, combat,
// skills, enemy AI and the stage state machine, advanced one tick at a time
// by a host that owns the frame clock.
package game

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/quest"
)

// World is the single mutable game state of a session. It is not safe for
// concurrent use; the host that calls Advance owns it.
type World struct {
	content *config.Content
	tuning  config.TuningConfig
	scaling *config.StageScaling
	log     *log.Logger
	quests  quest.Tracker

	rng  *rand.Rand
	seed int64

	classSkills []*config.SkillDef

	tick   uint64
	epoch  int
	nextID int

	phase      StagePhase
	stage      int
	biome      *config.BiomeDef
	worldWidth float64

	player      *Player
	enemies     []*Enemy
	projectiles []*Projectile
	items       []*Item
	particles   []*Particle
	platforms   []Platform

	deferred []deferredEffect
	events   []Event

	spawnTimer   int
	lastGateWarn uint64
	gateWarned   bool
	jumpHeld     bool
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger for stage, boss and command diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithQuestTracker connects the quest collaborator.
func WithQuestTracker(t quest.Tracker) Option {
	return func(w *World) {
		w.quests = t
	}
}

// New creates a world. Call Reset to pick a class and start a run.
func New(content *config.Content, tuning config.TuningConfig, opts ...Option) *World {
	w := &World{
		content: content,
		tuning:  tuning,
		scaling: config.NewStageScaling(tuning),
		log:     log.New(io.Discard),
		rng:     rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Reset starts a fresh run with the given class and seed.
// It returns false if the class is unknown.
func (w *World) Reset(class string, seed int64) bool {
	cl := w.content.Class(class)
	if cl == nil {
		w.log.Debug("reset rejected: unknown class", "class", class)
		return false
	}
	w.seed = seed
	w.rng = rand.New(rand.NewSource(seed))
	w.tick = 0
	w.nextID = 0
	w.epoch++
	w.deferred = nil
	w.events = nil
	w.jumpHeld = false
	w.gateWarned = false

	w.player = w.newPlayer(cl)
	w.classSkills = w.content.ClassSkills(cl.ID)
	w.stage = 1
	w.loadStage()
	return true
}

func (w *World) newPlayer(cl *config.ClassDef) *Player {
	t := w.tuning.Player
	return &Player{
		X:          w.tuning.World.StartX,
		Y:          w.tuning.Physics.GroundY - t.Height,
		W:          t.Width,
		H:          t.Height,
		Facing:     1,
		Grounded:   true,
		HP:         t.HP,
		MaxHP:      t.HP,
		MP:         t.MP,
		MaxMP:      t.MP,
		Level:      1,
		MaxExp:     w.content.MaxExpFor(1, 0),
		Attack:     t.Attack,
		Class:      cl.ID,
		Weapon:     cl.Weapon,
		Weapons:    []string{cl.Weapon},
		HPPotions:  t.Potions,
		MPPotions:  t.Potions,
		MaxPotions: t.MaxPotions,
		MaxStage:   1,
		Skills:     make(map[string]int),
		Slots:      make(map[core.Action]string),
		Cooldowns:  make(map[string]int),
		Buffs:      make(map[string]*Buff),
		MaxJumps:   t.MaxJumps,
	}
}

// Player returns the live player. Hosts must treat it as read-only.
func (w *World) Player() *Player { return w.player }

// Stage returns the current stage number.
func (w *World) Stage() int { return w.stage }

// Tick returns the number of active ticks simulated since Reset.
func (w *World) Tick() uint64 { return w.tick }

// Content returns the content tables the world runs on.
func (w *World) Content() *config.Content { return w.content }

// Biome returns the current biome.
func (w *World) Biome() *config.BiomeDef { return w.biome }

// Rand exposes the session rng for collaborators that must stay reproducible.
func (w *World) Rand() *rand.Rand { return w.rng }

// Boss returns the live boss, or nil.
func (w *World) Boss() *Enemy {
	for _, e := range w.enemies {
		if e.Boss && !e.Dead {
			return e
		}
	}
	return nil
}

func (w *World) newID() int {
	w.nextID++
	return w.nextID
}

// skillDef returns the definition of a skill usable by the player's class.
func (w *World) skillDef(id string) *config.SkillDef {
	s := w.content.Skill(id)
	if s == nil || w.player == nil {
		return nil
	}
	if s.Class != config.ClassAll && s.Class != w.player.Class {
		return nil
	}
	return s
}

type deferredEffect struct {
	at    uint64
	epoch int
	fn    func(*World)
}

// schedule runs fn delay ticks from now, unless the run ends first.
func (w *World) schedule(delay int, fn func(*World)) {
	if delay < 1 {
		delay = 1
	}
	w.deferred = append(w.deferred, deferredEffect{
		at:    w.tick + uint64(delay),
		epoch: w.epoch,
		fn:    fn,
	})
}

// runDeferred fires due entries in scheduling order. Entries from an older
// epoch belong to a finished run and are dropped.
func (w *World) runDeferred() {
	if len(w.deferred) == 0 {
		return
	}
	pending := w.deferred
	w.deferred = nil
	var keep []deferredEffect
	for _, d := range pending {
		if d.epoch != w.epoch {
			continue
		}
		if d.at > w.tick {
			keep = append(keep, d)
			continue
		}
		if w.player.Dead {
			continue
		}
		d.fn(w)
	}
	w.deferred = append(keep, w.deferred...)
}

func (w *World) spawnParticle(p Particle) {
	w.particles = append(w.particles, &p)
}

func (w *World) damageNumber(x, y float64, text string, c core.Color) {
	w.spawnParticle(Particle{Kind: ParticleText, X: x, Y: y, VY: -3, Text: text, Color: c, Life: 60})
}
