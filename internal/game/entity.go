package game

import (
	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

// Buff is an active timed modifier on the player.
type Buff struct {
	Spec      config.BuffSpec
	Remaining int
}

// Player is the single controllable character.
type Player struct {
	X, Y   float64
	VX, VY float64
	W, H   float64
	Facing float64 // -1 left, 1 right

	Grounded bool
	Dead     bool

	HP, MaxHP int
	MP, MaxMP int
	Shield    int
	mpFrac    float64
	drainFrac float64

	Level, Exp, MaxExp int
	Attack             int
	SP                 int

	Class    string
	Advanced bool
	Weapon   string
	Weapons  []string // unlocked, in unlock order

	AttackCooldown int
	Invincible     int
	Guard          int

	Gold       int
	HPPotions  int
	MPPotions  int
	MaxPotions int
	MaxStage   int
	Kills      int

	Skills    map[string]int
	Slots     map[core.Action]string
	Cooldowns map[string]int
	Buffs     map[string]*Buff

	Jumps, MaxJumps int
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// HasWeapon reports whether id is unlocked.
func (p *Player) HasWeapon(id string) bool {
	for _, w := range p.Weapons {
		if w == id {
			return true
		}
	}
	return false
}

// SlotOf returns the hotkey a skill is bound to.
func (p *Player) SlotOf(skillID string) (core.Action, bool) {
	for k, v := range p.Slots {
		if v == skillID {
			return k, true
		}
	}
	return core.ActionNone, false
}

// AIState is the per-tick behavior an enemy resolved to.
type AIState int

const (
	AIPatrol AIState = iota
	AIAggro
	AIAttacking
	AIFrozen
	AIStunned
)

func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "patrol"
	case AIAggro:
		return "aggro"
	case AIAttacking:
		return "attacking"
	case AIFrozen:
		return "frozen"
	case AIStunned:
		return "stunned"
	default:
		return "unknown"
	}
}

// Enemy is a live monster. Type is resolved once at spawn.
type Enemy struct {
	ID     int
	Type   *config.EnemyArchetype
	X, Y   float64
	VX, VY float64
	W, H   float64
	Facing float64

	HP, MaxHP int
	Damage    int
	Exp       int
	Speed     float64
	Ranged    bool
	Boss      bool
	Scale     float64

	PatrolMin, PatrolMax float64
	AttackTimer          int

	Freeze    int
	Stun      int
	Slow      int
	HitFreeze int

	State    AIState
	Grounded bool
	Dead     bool
	Fade     int
}

// Rect returns the enemy's bounding box.
func (e *Enemy) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Locked reports whether a status effect holds the enemy in place.
func (e *Enemy) Locked() bool {
	return e.Freeze > 0 || e.Stun > 0
}

// Projectile is anything that moves and hits: arrows, bullets, spells,
// traps and summons.
type Projectile struct {
	ID     int
	X, Y   float64
	VX, VY float64
	W, H   float64
	Damage int
	Life   int

	Enemy      bool // fired by an enemy, targets the player
	Magic      bool
	Piercing   bool
	Explosion  float64 // blast radius on impact, 0 for none
	Trap       bool
	Gravity    bool
	Homing     bool
	Summon     bool
	Stationary bool

	FireInterval int
	FireRange    float64
	fireTimer    int
	orbit        float64

	Owner   int // enemy id for enemy shots
	SkillID string
	Weapon  string
	Status  config.StatusSpec
	Glyph   string

	hit  map[int]bool // enemies already struck by a piercing projectile
	dead bool
}

// Rect returns the projectile's bounding box.
func (pr *Projectile) Rect() core.Rect {
	return core.NewRect(pr.X, pr.Y, pr.W, pr.H)
}

// ItemKind is the type of a loot drop.
type ItemKind int

const (
	ItemGold ItemKind = iota
	ItemHPPotion
	ItemMPPotion
	ItemWeapon
	ItemQuest
)

func (k ItemKind) String() string {
	switch k {
	case ItemGold:
		return "gold"
	case ItemHPPotion:
		return "hp potion"
	case ItemMPPotion:
		return "mp potion"
	case ItemWeapon:
		return "weapon"
	case ItemQuest:
		return "quest item"
	default:
		return "unknown"
	}
}

// Item is loot lying in the world.
type Item struct {
	ID      int
	Kind    ItemKind
	X, Y    float64
	VX, VY  float64
	W, H    float64
	Value   int
	Weapon  string
	Name    string // quest item name
	Monster string // quest item source
	Life    int
}

// Rect returns the item's bounding box.
func (it *Item) Rect() core.Rect {
	return core.NewRect(it.X, it.Y, it.W, it.H)
}

// ParticleKind hints the renderer how to draw a particle.
type ParticleKind int

const (
	ParticleText ParticleKind = iota
	ParticleRing
	ParticleBurst
	ParticlePillar
)

// Particle is cosmetic. Only its creation and expiry are part of the
// simulation.
type Particle struct {
	Kind   ParticleKind
	X, Y   float64
	VX, VY float64
	Text   string
	Color  core.Color
	Life   int
	Radius float64
}

// Platform is a static one-way ledge. The ground is a very wide platform.
type Platform struct {
	core.Rect
	Ground bool
}
