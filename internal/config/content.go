package config

import (
	"errors"
	"fmt"
	"math"
)

// Content holds the static game tables: classes, weapons, enemies, biomes,
// skills and the experience curve.
type Content struct {
	Classes   []ClassDef       `yaml:"classes"`
	Weapons   []WeaponDef      `yaml:"weapons"`
	Enemies   []EnemyArchetype `yaml:"enemies"`
	Biomes    []BiomeDef       `yaml:"biomes"`
	Skills    []SkillDef       `yaml:"skills"`
	ExpCurve  []int            `yaml:"exp_curve"` // exp needed at level 1, 2, ...
	ExpGrowth float64          `yaml:"exp_growth"`

	classByID  map[string]*ClassDef
	weaponByID map[string]*WeaponDef
	enemyByID  map[string]*EnemyArchetype
	skillByID  map[string]*SkillDef
}

// ClassDef describes a playable class and its weapon line.
type ClassDef struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	AdvancedName   string `yaml:"advanced_name"`
	Weapon         string `yaml:"weapon"`
	AdvancedWeapon string `yaml:"advanced_weapon"`
	Glyph          string `yaml:"glyph"`
}

// WeaponKind separates hitbox weapons from projectile weapons.
type WeaponKind string

const (
	WeaponMelee  WeaponKind = "melee"
	WeaponRanged WeaponKind = "ranged"
)

// WeaponDef describes weapon stats.
type WeaponDef struct {
	ID         string     `yaml:"id"`
	Kind       WeaponKind `yaml:"kind"`
	Range      float64    `yaml:"range"`
	DamageMult float64    `yaml:"damage_mult"`
	Cooldown   int        `yaml:"cooldown"`
	Speed      float64    `yaml:"speed"`
	Reach      bool       `yaml:"reach"` // reach weapons have a tip sweet spot
	Advanced   bool       `yaml:"advanced"`
	Glyph      string     `yaml:"glyph"`
}

// EnemyArchetype describes one monster type at stage 0 before scaling.
type EnemyArchetype struct {
	ID              string  `yaml:"id"`
	Glyph           string  `yaml:"glyph"`
	HP              int     `yaml:"hp"`
	Damage          int     `yaml:"damage"`
	Exp             int     `yaml:"exp"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	DropName        string  `yaml:"drop_name"`
	Ranged          bool    `yaml:"ranged"`
	ProjectileGlyph string  `yaml:"projectile_glyph"`
}

// BiomeDef is a themed range of stages with its monster pool.
type BiomeDef struct {
	Name       string          `yaml:"name"`
	StartStage int             `yaml:"start_stage"`
	EndStage   int             `yaml:"end_stage"`
	Monsters   []string        `yaml:"monsters"`
	Quests     []QuestTemplate `yaml:"quests"`
}

// QuestTemplate is a static quest used when no generator is available.
type QuestTemplate struct {
	Title         string `yaml:"title"`
	TargetMonster string `yaml:"target_monster"`
	Count         int    `yaml:"count"`
	Description   string `yaml:"description"`
}

// SkillKind is the broad category of a skill.
type SkillKind string

const (
	SkillPassive SkillKind = "passive"
	SkillActive  SkillKind = "active"
	SkillBuff    SkillKind = "buff"
)

// ClassAll marks skills shared by every class.
const ClassAll = "All"

// SkillDef describes one entry of the skill tree.
type SkillDef struct {
	ID         string      `yaml:"id"`
	Name       string      `yaml:"name"`
	Class      string      `yaml:"class"`
	Kind       SkillKind   `yaml:"kind"`
	MaxLevel   int         `yaml:"max_level"`
	ReqLevel   int         `yaml:"req_level"`
	ReqSkill   string      `yaml:"req_skill"`
	MPCost     int         `yaml:"mp_cost"`
	Cooldown   int         `yaml:"cooldown"`
	DamageMult float64     `yaml:"damage_mult"`
	Duration   int         `yaml:"duration"`
	HPCost     float64     `yaml:"hp_cost"` // fraction of max hp paid on cast
	Effect     EffectSpec  `yaml:"effect"`
	Passive    PassiveSpec `yaml:"passive"`
	Buff       BuffSpec    `yaml:"buff"`
}

// EffectType selects which fields of EffectSpec are meaningful.
type EffectType string

const (
	EffectNone       EffectType = ""
	EffectStrike     EffectType = "strike"
	EffectProjectile EffectType = "projectile"
	EffectRain       EffectType = "rain"
	EffectSummon     EffectType = "summon"
	EffectHeal       EffectType = "heal"
	EffectTeleport   EffectType = "teleport"
	EffectSlow       EffectType = "slow"
	EffectGuard      EffectType = "guard"
	EffectBuff       EffectType = "buff"
	EffectRandomBuff EffectType = "random_buff"
)

// StrikeShape selects the region of a strike.
type StrikeShape string

const (
	ShapeForward StrikeShape = "forward"
	ShapeArea    StrikeShape = "area"
	ShapeScreen  StrikeShape = "screen"
)

// EffectSpec is the data-driven description of what an active skill does.
type EffectSpec struct {
	Type EffectType `yaml:"type"`

	// strike
	Shape       StrikeShape `yaml:"shape"`
	Range       float64     `yaml:"range"`
	Height      float64     `yaml:"height"`
	Hits        int         `yaml:"hits"`
	HitInterval int         `yaml:"hit_interval"`
	Dash        float64     `yaml:"dash"`
	Leap        float64     `yaml:"leap"`
	Delay       int         `yaml:"delay"`

	// projectile, rain
	Count        int     `yaml:"count"`
	Spread       float64 `yaml:"spread"`
	Speed        float64 `yaml:"speed"`
	Waves        int     `yaml:"waves"`
	WaveInterval int     `yaml:"wave_interval"`
	Interval     int     `yaml:"interval"`
	Piercing     bool    `yaml:"piercing"`
	Explosion    float64 `yaml:"explosion"` // blast radius, 0 for none
	Trap         bool    `yaml:"trap"`
	Gravity      bool    `yaml:"gravity"`
	Homing       bool    `yaml:"homing"`
	Magic        bool    `yaml:"magic"`
	Recoil       float64 `yaml:"recoil"`
	Lob          float64 `yaml:"lob"` // initial upward speed for thrown projectiles
	Size         float64 `yaml:"size"`
	Life         int     `yaml:"life"`
	Glyph        string  `yaml:"glyph"`

	// summon
	FireInterval int     `yaml:"fire_interval"`
	FireRange    float64 `yaml:"fire_range"`
	Stationary   bool    `yaml:"stationary"`

	// heal, teleport, slow, guard
	Fraction float64 `yaml:"fraction"`
	PerLevel float64 `yaml:"per_level"`
	Radius   float64 `yaml:"radius"`
	Distance float64 `yaml:"distance"`
	Duration int     `yaml:"duration"`

	// random_buff
	Pool []BuffSpec `yaml:"pool"`

	Status StatusSpec `yaml:"status"`
}

// StatusSpec lists status effects applied on hit, in ticks.
type StatusSpec struct {
	Freeze int `yaml:"freeze"`
	Stun   int `yaml:"stun"`
	Slow   int `yaml:"slow"`
}

// IsZero reports whether no status is applied.
func (s StatusSpec) IsZero() bool {
	return s.Freeze == 0 && s.Stun == 0 && s.Slow == 0
}

// PassiveSpec lists per-level bonuses granted by a passive skill.
type PassiveSpec struct {
	MaxHP          int      `yaml:"max_hp"`
	Speed          float64  `yaml:"speed"`
	Damage         float64  `yaml:"damage"`
	Weapons        []string `yaml:"weapons"` // damage bonus only applies with these weapons
	Defense        float64  `yaml:"defense"`
	Reflect        float64  `yaml:"reflect"`
	ManaGuard      float64  `yaml:"mana_guard"`
	MPRegen        float64  `yaml:"mp_regen"`
	Range          float64  `yaml:"range"`
	Crit           float64  `yaml:"crit"`
	Evasion        float64  `yaml:"evasion"`
	Exp            float64  `yaml:"exp"`
	LowHPDamage    float64  `yaml:"low_hp_damage"`
	LowHPThreshold float64  `yaml:"low_hp_threshold"`
	ExtraJumps     int      `yaml:"extra_jumps"`
}

// BuffSpec lists the stat modifiers of a timed buff.
type BuffSpec struct {
	Name             string  `yaml:"name"`
	Damage           float64 `yaml:"damage"`
	Speed            float64 `yaml:"speed"`
	Defense          float64 `yaml:"defense"`
	Crit             float64 `yaml:"crit"`
	Evasion          float64 `yaml:"evasion"`
	HPDrain          float64 `yaml:"hp_drain"` // hp lost per tick, never lethal
	Shield           int     `yaml:"shield"`   // flat pool granted on cast, dropped on expiry
	PerLevel         float64 `yaml:"per_level"`
	DurationPerLevel int     `yaml:"duration_per_level"`
}

// Scaled returns the buff modifiers at the given skill level.
func (b BuffSpec) Scaled(level int) BuffSpec {
	f := 1 + b.PerLevel*float64(level-1)
	out := b
	out.Damage *= f
	out.Speed *= f
	out.Defense *= f
	out.Crit *= f
	out.Evasion *= f
	out.Shield = int(math.Round(float64(b.Shield) * f))
	return out
}

// index builds the lookup maps. It is called by the loader.
func (c *Content) index() {
	c.classByID = make(map[string]*ClassDef, len(c.Classes))
	for i := range c.Classes {
		c.classByID[c.Classes[i].ID] = &c.Classes[i]
	}
	c.weaponByID = make(map[string]*WeaponDef, len(c.Weapons))
	for i := range c.Weapons {
		c.weaponByID[c.Weapons[i].ID] = &c.Weapons[i]
	}
	c.enemyByID = make(map[string]*EnemyArchetype, len(c.Enemies))
	for i := range c.Enemies {
		c.enemyByID[c.Enemies[i].ID] = &c.Enemies[i]
	}
	c.skillByID = make(map[string]*SkillDef, len(c.Skills))
	for i := range c.Skills {
		c.skillByID[c.Skills[i].ID] = &c.Skills[i]
	}
}

// Class returns the class definition, or nil.
func (c *Content) Class(id string) *ClassDef {
	if c.classByID == nil {
		c.index()
	}
	return c.classByID[id]
}

// Weapon returns the weapon definition, or nil.
func (c *Content) Weapon(id string) *WeaponDef {
	if c.weaponByID == nil {
		c.index()
	}
	return c.weaponByID[id]
}

// Enemy returns the enemy archetype, or nil.
func (c *Content) Enemy(id string) *EnemyArchetype {
	if c.enemyByID == nil {
		c.index()
	}
	return c.enemyByID[id]
}

// Skill returns the skill definition, or nil.
func (c *Content) Skill(id string) *SkillDef {
	if c.skillByID == nil {
		c.index()
	}
	return c.skillByID[id]
}

// ClassSkills returns the skills usable by a class, shared ones first.
func (c *Content) ClassSkills(class string) []*SkillDef {
	var out []*SkillDef
	for i := range c.Skills {
		if c.Skills[i].Class == ClassAll {
			out = append(out, &c.Skills[i])
		}
	}
	for i := range c.Skills {
		if c.Skills[i].Class == class {
			out = append(out, &c.Skills[i])
		}
	}
	return out
}

// BiomeIndex returns the index of the biome whose range holds stage.
// Stages outside every range fall back to the last biome.
func (c *Content) BiomeIndex(stage int) int {
	for i, b := range c.Biomes {
		if stage >= b.StartStage && stage <= b.EndStage {
			return i
		}
	}
	return len(c.Biomes) - 1
}

// BiomeFor returns the biome for a stage.
func (c *Content) BiomeFor(stage int) *BiomeDef {
	i := c.BiomeIndex(stage)
	if i < 0 {
		return nil
	}
	return &c.Biomes[i]
}

// MaxExpFor returns the exp needed to clear level. Past the end of the curve
// the previous requirement grows by ExpGrowth.
func (c *Content) MaxExpFor(level, prev int) int {
	if level >= 1 && level <= len(c.ExpCurve) {
		return c.ExpCurve[level-1]
	}
	growth := c.ExpGrowth
	if growth <= 1 {
		growth = 1.2
	}
	return int(math.Floor(float64(prev) * growth))
}

// Validate checks that the tables reference each other consistently.
func (c *Content) Validate() error {
	c.index()
	var errs []error

	if len(c.Classes) == 0 {
		errs = append(errs, errors.New("no classes defined"))
	}
	for _, cl := range c.Classes {
		if c.Weapon(cl.Weapon) == nil {
			errs = append(errs, fmt.Errorf("class %s: unknown weapon %q", cl.ID, cl.Weapon))
		}
		if c.Weapon(cl.AdvancedWeapon) == nil {
			errs = append(errs, fmt.Errorf("class %s: unknown advanced weapon %q", cl.ID, cl.AdvancedWeapon))
		}
	}
	if len(c.Biomes) == 0 {
		errs = append(errs, errors.New("no biomes defined"))
	}
	for _, b := range c.Biomes {
		if len(b.Monsters) == 0 {
			errs = append(errs, fmt.Errorf("biome %s: empty monster pool", b.Name))
		}
		for _, m := range b.Monsters {
			if c.Enemy(m) == nil {
				errs = append(errs, fmt.Errorf("biome %s: unknown monster %q", b.Name, m))
			}
		}
		for _, q := range b.Quests {
			if c.Enemy(q.TargetMonster) == nil {
				errs = append(errs, fmt.Errorf("biome %s: quest %q targets unknown monster %q", b.Name, q.Title, q.TargetMonster))
			}
		}
	}
	for _, s := range c.Skills {
		if s.ReqSkill != "" && c.Skill(s.ReqSkill) == nil {
			errs = append(errs, fmt.Errorf("skill %s: unknown prerequisite %q", s.ID, s.ReqSkill))
		}
		if s.MaxLevel <= 0 {
			errs = append(errs, fmt.Errorf("skill %s: max_level must be positive", s.ID))
		}
		if s.Class != ClassAll && c.Class(s.Class) == nil {
			errs = append(errs, fmt.Errorf("skill %s: unknown class %q", s.ID, s.Class))
		}
	}
	for i := 1; i < len(c.ExpCurve); i++ {
		if c.ExpCurve[i] <= c.ExpCurve[i-1] {
			errs = append(errs, fmt.Errorf("exp_curve must be strictly increasing at index %d", i))
			break
		}
	}
	if len(c.ExpCurve) == 0 {
		errs = append(errs, errors.New("exp_curve is empty"))
	}

	return errors.Join(errs...)
}
