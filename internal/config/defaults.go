package config

import (
	_ "embed"
)

//go:embed defaults/tuning.yaml
var defaultTuningYAML []byte

//go:embed defaults/content.yaml
var defaultContentYAML []byte

// DefaultTuningConfig returns the hardcoded tuning used when no YAML parses.
func DefaultTuningConfig() TuningConfig {
	return TuningConfig{
		Physics: PhysicsConfig{
			Gravity:         0.6,
			Friction:        0.8,
			Accel:           0.25,
			MoveSpeed:       5,
			JumpForce:       -14,
			DoubleJumpScale: 0.8,
			MaxFallSpeed:    18,
			GroundY:         500,
			DeathY:          1500,
			PlatformInset:   10,
			PlatformSnap:    20,
		},
		World: WorldConfig{
			ViewportWidth:  1024,
			ViewportHeight: 600,
			BaseWidth:      3000,
			WidthPerStage:  200,
			ExitMargin:     50,
			StartX:         100,
		},
		Player: PlayerConfig{
			Width:         50,
			Height:        60,
			HP:            100,
			MP:            100,
			Attack:        10,
			Potions:       3,
			MaxPotions:    3,
			MaxJumps:      1,
			Invincibility: 60,
			KnockbackX:    10,
			KnockbackY:    -5,
			MPRegen:       0.05,
			PotionHeal:    50,
			LevelHP:       50,
			LevelMP:       30,
			LevelAttack:   2,
			LevelSP:       3,
			AdvanceLevel:  30,
			AdvanceAttack: 20,
			AdvanceHP:     200,
		},
		Combat: CombatConfig{
			Variance:          0.2,
			CritChance:        0.05,
			CritMultiplier:    2,
			KnockbackX:        6,
			KnockbackY:        -4,
			HitFreeze:         5,
			DeathFade:         30,
			MinDamage:         1,
			DefenseCap:        0.8,
			EvasionCap:        0.6,
			ManaGuardCap:      0.8,
			MeleeWindup:       6,
			MeleeAlignY:       50,
			TipStart:          0.7,
			TipBonus:          1.3,
			CloseEnd:          0.3,
			ClosePenalty:      0.8,
			PogoVelocity:      -11,
			DownAttackDepth:   0.6,
			SkillRangeScale:   1.5,
			ProjectileLife:    60,
			ProjectileSize:    20,
			SkillLevelScale:   0.1,
			ScreenHalfWidth:   512,
			RainHeight:        0,
			RainSpeed:         15,
			RainLife:          100,
			SummonOrbitHeight: 80,
			SummonSpeed:       0.08,
			SummonShotSpeed:   12,
			SummonShotDamage:  0.5,
			HomingTurn:        0.15,
		},
		Loot: LootConfig{
			QuestDropChance:  0.9,
			GoldDropChance:   0.8,
			PotionDropChance: 0.05,
			GoldLife:         400,
			QuestItemLife:    1200,
			PotionLife:       600,
			WeaponLife:       1800,
			MagnetRadius:     400,
			MagnetPull:       2,
			Bounce:           -0.5,
			Damping:          0.9,
			Size:             20,
			BossGoldMult:     5,
			BossPotions:      2,
		},
		Spawn: SpawnConfig{
			InitialBase:     3,
			InitialPerStage: 0.5,
			FloorBase:       6,
			FloorPerStage:   1,
			FloorCap:        20,
			Interval:        80,
			Chance:          0.6,
			BossInterval:    5,
			BossHPMult:      10,
			BossDamageMult:  2,
			BossExpMult:     10,
			BossSizeMult:    2,
			PatrolRange:     200,
			SpawnDistance:   300,
		},
		AI: AIConfig{
			AggroX:           600,
			AggroY:           300,
			RangedRange:      400,
			MeleeRange:       50,
			MeleeAlignY:      50,
			AttackInterval:   120,
			PatrolSpeedScale: 0.5,
			SlowFactor:       0.5,
			ProjectileSpeed:  5,
			ProjectileLife:   100,
			ProjectileSize:   15,
		},
		Stage: StageConfig{
			GateWarningInterval: 120,
			PlatformBase:        10,
			PlatformPerPixels:   300,
			PlatformMinWidth:    150,
			PlatformMaxWidth:    350,
			PlatformHeight:      20,
			PlatformMargin:      400,
			PlatformMinRise:     100,
			PlatformMaxRise:     250,
			PlatformMinDX:       100,
			PlatformMinDY:       50,
			GroundOverhang:      1000,
			GroundDepth:         200,
		},
		Shop: ShopConfig{
			PotionPrice: 50,
			Attack:      UpgradeCost{Base: 100, Scale: 1.5, Step: 5, From: 10},
			HP:          UpgradeCost{Base: 50, Scale: 1.2, Step: 50, From: 100},
			MP:          UpgradeCost{Base: 50, Scale: 1.2, Step: 30, From: 100},
		},
		Difficulty: DifficultyConfig{
			Preset:         DifficultyNormal,
			HPPerStage:     0.2,
			DamagePerStage: 0.1,
			ExpPerStage:    0.1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config document.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "tuning":
		return defaultTuningYAML
	case "content":
		return defaultContentYAML
	default:
		return nil
	}
}
