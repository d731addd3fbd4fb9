// Package config provides YAML-based tuning and content loading for the game,
// plus the stage difficulty scaling model.
package config

// TuningConfig contains every numeric knob of the simulation.
type TuningConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Combat     CombatConfig     `yaml:"combat"`
	Loot       LootConfig       `yaml:"loot"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	AI         AIConfig         `yaml:"ai"`
	Stage      StageConfig      `yaml:"stage"`
	Shop       ShopConfig       `yaml:"shop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines movement and collision parameters in pixels per tick.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	Accel           float64 `yaml:"accel"` // fraction of the gap to target speed closed per tick
	MoveSpeed       float64 `yaml:"move_speed"`
	JumpForce       float64 `yaml:"jump_force"`
	DoubleJumpScale float64 `yaml:"double_jump_scale"`
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`
	GroundY         float64 `yaml:"ground_y"`
	DeathY          float64 `yaml:"death_y"`
	PlatformInset   float64 `yaml:"platform_inset"` // horizontal inset when testing platform overlap
	PlatformSnap    float64 `yaml:"platform_snap"`  // tolerance below a platform top that still lands
}

// WorldConfig defines viewport and stage geometry.
type WorldConfig struct {
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	BaseWidth      float64 `yaml:"base_width"`
	WidthPerStage  float64 `yaml:"width_per_stage"`
	ExitMargin     float64 `yaml:"exit_margin"`
	StartX         float64 `yaml:"start_x"`
}

// PlayerConfig defines the starting character and progression gains.
type PlayerConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HP            int     `yaml:"hp"`
	MP            int     `yaml:"mp"`
	Attack        int     `yaml:"attack"`
	Potions       int     `yaml:"potions"`
	MaxPotions    int     `yaml:"max_potions"`
	MaxJumps      int     `yaml:"max_jumps"`
	Invincibility int     `yaml:"invincibility"` // ticks of grace after a hit
	KnockbackX    float64 `yaml:"knockback_x"`
	KnockbackY    float64 `yaml:"knockback_y"`
	MPRegen       float64 `yaml:"mp_regen"`
	PotionHeal    int     `yaml:"potion_heal"`
	LevelHP       int     `yaml:"level_hp"`
	LevelMP       int     `yaml:"level_mp"`
	LevelAttack   int     `yaml:"level_attack"`
	LevelSP       int     `yaml:"level_sp"`
	AdvanceLevel  int     `yaml:"advance_level"`
	AdvanceAttack int     `yaml:"advance_attack"`
	AdvanceHP     int     `yaml:"advance_hp"`
}

// CombatConfig defines damage resolution and attack shapes.
type CombatConfig struct {
	Variance          float64 `yaml:"variance"`
	CritChance        float64 `yaml:"crit_chance"`
	CritMultiplier    float64 `yaml:"crit_multiplier"`
	KnockbackX        float64 `yaml:"knockback_x"`
	KnockbackY        float64 `yaml:"knockback_y"`
	HitFreeze         int     `yaml:"hit_freeze"`
	DeathFade         int     `yaml:"death_fade"`
	MinDamage         int     `yaml:"min_damage"`
	DefenseCap        float64 `yaml:"defense_cap"`
	EvasionCap        float64 `yaml:"evasion_cap"`
	ManaGuardCap      float64 `yaml:"mana_guard_cap"`
	MeleeWindup       int     `yaml:"melee_windup"`
	MeleeAlignY       float64 `yaml:"melee_align_y"`
	TipStart          float64 `yaml:"tip_start"` // fraction of reach where the sweet spot begins
	TipBonus          float64 `yaml:"tip_bonus"`
	CloseEnd          float64 `yaml:"close_end"` // fraction of reach under which reach weapons are clumsy
	ClosePenalty      float64 `yaml:"close_penalty"`
	PogoVelocity      float64 `yaml:"pogo_velocity"`
	DownAttackDepth   float64 `yaml:"down_attack_depth"` // fraction of weapon range
	SkillRangeScale   float64 `yaml:"skill_range_scale"`
	ProjectileLife    int     `yaml:"projectile_life"`
	ProjectileSize    float64 `yaml:"projectile_size"`
	SkillLevelScale   float64 `yaml:"skill_level_scale"`
	ScreenHalfWidth   float64 `yaml:"screen_half_width"`
	RainHeight        float64 `yaml:"rain_height"`
	RainSpeed         float64 `yaml:"rain_speed"`
	RainLife          int     `yaml:"rain_life"`
	SummonOrbitHeight float64 `yaml:"summon_orbit_height"`
	SummonSpeed       float64 `yaml:"summon_speed"`
	SummonShotSpeed   float64 `yaml:"summon_shot_speed"`
	SummonShotDamage  float64 `yaml:"summon_shot_damage"` // fraction of the summon's damage per shot
	HomingTurn        float64 `yaml:"homing_turn"`
}

// LootConfig defines drop rolls and item physics.
type LootConfig struct {
	QuestDropChance  float64 `yaml:"quest_drop_chance"`
	GoldDropChance   float64 `yaml:"gold_drop_chance"`
	PotionDropChance float64 `yaml:"potion_drop_chance"`
	GoldLife         int     `yaml:"gold_life"`
	QuestItemLife    int     `yaml:"quest_item_life"`
	PotionLife       int     `yaml:"potion_life"`
	WeaponLife       int     `yaml:"weapon_life"`
	MagnetRadius     float64 `yaml:"magnet_radius"`
	MagnetPull       float64 `yaml:"magnet_pull"`
	Bounce           float64 `yaml:"bounce"`
	Damping          float64 `yaml:"damping"`
	Size             float64 `yaml:"size"`
	BossGoldMult     float64 `yaml:"boss_gold_mult"`
	BossPotions      int     `yaml:"boss_potions"`
}

// SpawnConfig defines enemy population rules.
type SpawnConfig struct {
	InitialBase     int     `yaml:"initial_base"`
	InitialPerStage float64 `yaml:"initial_per_stage"`
	FloorBase       int     `yaml:"floor_base"`
	FloorPerStage   float64 `yaml:"floor_per_stage"`
	FloorCap        int     `yaml:"floor_cap"`
	Interval        int     `yaml:"interval"`
	Chance          float64 `yaml:"chance"`
	BossInterval    int     `yaml:"boss_interval"`
	BossHPMult      float64 `yaml:"boss_hp_mult"`
	BossDamageMult  float64 `yaml:"boss_damage_mult"`
	BossExpMult     float64 `yaml:"boss_exp_mult"`
	BossSizeMult    float64 `yaml:"boss_size_mult"`
	PatrolRange     float64 `yaml:"patrol_range"`
	SpawnDistance   float64 `yaml:"spawn_distance"` // minimum horizontal distance from the player
}

// AIConfig defines enemy behavior bands.
type AIConfig struct {
	AggroX           float64 `yaml:"aggro_x"`
	AggroY           float64 `yaml:"aggro_y"`
	RangedRange      float64 `yaml:"ranged_range"`
	MeleeRange       float64 `yaml:"melee_range"`
	MeleeAlignY      float64 `yaml:"melee_align_y"`
	AttackInterval   int     `yaml:"attack_interval"`
	PatrolSpeedScale float64 `yaml:"patrol_speed_scale"`
	SlowFactor       float64 `yaml:"slow_factor"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`
	ProjectileLife   int     `yaml:"projectile_life"`
	ProjectileSize   float64 `yaml:"projectile_size"`
}

// StageConfig defines stage generation.
type StageConfig struct {
	GateWarningInterval int     `yaml:"gate_warning_interval"`
	PlatformBase        int     `yaml:"platform_base"`
	PlatformPerPixels   float64 `yaml:"platform_per_pixels"`
	PlatformMinWidth    float64 `yaml:"platform_min_width"`
	PlatformMaxWidth    float64 `yaml:"platform_max_width"`
	PlatformHeight      float64 `yaml:"platform_height"`
	PlatformMargin      float64 `yaml:"platform_margin"`
	PlatformMinRise     float64 `yaml:"platform_min_rise"`
	PlatformMaxRise     float64 `yaml:"platform_max_rise"`
	PlatformMinDX       float64 `yaml:"platform_min_dx"`
	PlatformMinDY       float64 `yaml:"platform_min_dy"`
	GroundOverhang      float64 `yaml:"ground_overhang"`
	GroundDepth         float64 `yaml:"ground_depth"`
}

// ShopConfig defines shop prices and upgrade gains.
type ShopConfig struct {
	PotionPrice int         `yaml:"potion_price"`
	Attack      UpgradeCost `yaml:"attack"`
	HP          UpgradeCost `yaml:"hp"`
	MP          UpgradeCost `yaml:"mp"`
}

// UpgradeCost prices an upgrade as Base * Scale^(bought steps).
type UpgradeCost struct {
	Base  int     `yaml:"base"`
	Scale float64 `yaml:"scale"`
	Step  int     `yaml:"step"` // stat gained per purchase
	From  int     `yaml:"from"` // stat value before any purchase
}

// DifficultyConfig defines how enemies scale with the stage number.
type DifficultyConfig struct {
	Preset         DifficultyPreset `yaml:"preset"`
	HPPerStage     float64          `yaml:"hp_per_stage"`
	DamagePerStage float64          `yaml:"damage_per_stage"`
	ExpPerStage    float64          `yaml:"exp_per_stage"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	}
	return DifficultyNormal, false
}
