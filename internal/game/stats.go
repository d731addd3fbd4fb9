package game

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-rpg/internal/config"
)

// passiveSum adds f(spec)*level over every learned passive of the player's
// class, in skill-tree order.
func (w *World) passiveSum(f func(config.PassiveSpec) float64) float64 {
	var total float64
	for _, s := range w.classSkills {
		lvl := w.player.Skills[s.ID]
		if lvl <= 0 || s.Kind != config.SkillPassive {
			continue
		}
		total += f(s.Passive) * float64(lvl)
	}
	return total
}

// buffSum adds f(buff) over active buffs. Buffs are keyed by the skill that
// cast them and visited in skill-tree order.
func (w *World) buffSum(f func(config.BuffSpec) float64) float64 {
	var total float64
	for _, s := range w.classSkills {
		if b, ok := w.player.Buffs[s.ID]; ok && b.Remaining > 0 {
			total += f(b.Spec)
		}
	}
	return total
}

func (w *World) speedMult() float64 {
	return 1 +
		w.passiveSum(func(p config.PassiveSpec) float64 { return p.Speed }) +
		w.buffSum(func(b config.BuffSpec) float64 { return b.Speed })
}

// damageMult is the player's outgoing damage multiplier with the current
// weapon, excluding skill and weapon base multipliers.
func (w *World) damageMult() float64 {
	p := w.player
	m := 1 + w.passiveSum(func(s config.PassiveSpec) float64 {
		if len(s.Weapons) > 0 && !slices.Contains(s.Weapons, p.Weapon) {
			return 0
		}
		return s.Damage
	})
	m += w.buffSum(func(b config.BuffSpec) float64 { return b.Damage })

	if p.MaxHP > 0 {
		ratio := float64(p.HP) / float64(p.MaxHP)
		m += w.passiveSum(func(s config.PassiveSpec) float64 {
			if s.LowHPDamage == 0 || ratio >= s.LowHPThreshold {
				return 0
			}
			return s.LowHPDamage
		})
	}
	return m
}

func (w *World) critChance() float64 {
	return w.tuning.Combat.CritChance +
		w.passiveSum(func(p config.PassiveSpec) float64 { return p.Crit }) +
		w.buffSum(func(b config.BuffSpec) float64 { return b.Crit })
}

func (w *World) defense() float64 {
	d := w.passiveSum(func(p config.PassiveSpec) float64 { return p.Defense }) +
		w.buffSum(func(b config.BuffSpec) float64 { return b.Defense })
	return math.Min(d, w.tuning.Combat.DefenseCap)
}

func (w *World) evasion() float64 {
	e := w.passiveSum(func(p config.PassiveSpec) float64 { return p.Evasion }) +
		w.buffSum(func(b config.BuffSpec) float64 { return b.Evasion })
	return math.Min(e, w.tuning.Combat.EvasionCap)
}

func (w *World) manaGuard() float64 {
	g := w.passiveSum(func(p config.PassiveSpec) float64 { return p.ManaGuard })
	return math.Min(g, w.tuning.Combat.ManaGuardCap)
}

func (w *World) reflect() float64 {
	return w.passiveSum(func(p config.PassiveSpec) float64 { return p.Reflect })
}

func (w *World) mpRegen() float64 {
	return w.tuning.Player.MPRegen + w.passiveSum(func(p config.PassiveSpec) float64 { return p.MPRegen })
}

func (w *World) rangeMult() float64 {
	return 1 + w.passiveSum(func(p config.PassiveSpec) float64 { return p.Range })
}

func (w *World) expMult() float64 {
	return 1 + w.passiveSum(func(p config.PassiveSpec) float64 { return p.Exp })
}

// weapon returns the definition of the equipped weapon.
func (w *World) weapon() *config.WeaponDef {
	return w.content.Weapon(w.player.Weapon)
}
