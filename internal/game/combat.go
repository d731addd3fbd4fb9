package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

// applyDamage resolves a player-sourced hit on an enemy and returns the
// damage dealt. dir is the knockback direction (-1, 0 or 1).
func (w *World) applyDamage(e *Enemy, raw float64, dir float64, status config.StatusSpec) int {
	if e.Dead {
		return 0
	}
	c := w.tuning.Combat

	dmg := raw * (1 + (w.rng.Float64()*2-1)*c.Variance)
	crit := w.rng.Float64() < w.critChance()
	if crit {
		dmg *= c.CritMultiplier
	}
	n := int(math.Floor(dmg))
	if n < c.MinDamage {
		n = c.MinDamage
	}
	e.HP -= n

	if !e.Boss && !e.Locked() {
		e.VX = dir * c.KnockbackX
		e.VY = c.KnockbackY
	}
	e.HitFreeze = c.HitFreeze
	if status.Freeze > e.Freeze {
		e.Freeze = status.Freeze
	}
	if status.Stun > e.Stun {
		e.Stun = status.Stun
	}
	if status.Slow > e.Slow {
		e.Slow = status.Slow
	}

	text, color := fmt.Sprint(n), core.ColorOrange
	if crit {
		text, color = fmt.Sprintf("%d!", n), core.ColorBrightYellow
	}
	w.damageNumber(e.X+e.W/2, e.Y, text, color)
	w.spawnParticle(Particle{Kind: ParticleRing, X: e.X + e.W/2, Y: e.Y + e.H/2, Life: 10, Radius: e.W / 2, Color: core.ColorWhite})
	w.emit(EventEnemyHit, e.Type.ID, n, "%s takes %d", e.Type.ID, n)

	if e.HP <= 0 {
		w.killEnemy(e)
	}
	return n
}

// killEnemy handles the first transition of an enemy to dead.
func (w *World) killEnemy(e *Enemy) {
	p := w.player
	lt := w.tuning.Loot

	e.HP = 0
	e.Dead = true
	e.Fade = w.tuning.Combat.DeathFade
	e.VX = 0

	exp := int(math.Floor(float64(e.Exp) * w.expMult()))
	p.Exp += exp
	p.Kills++

	if w.quests != nil {
		if name, ok := w.quests.Target(e.Type.ID); ok && w.rng.Float64() < lt.QuestDropChance {
			w.dropItem(e, Item{Kind: ItemQuest, Value: 1, Name: name, Monster: e.Type.ID, Life: lt.QuestItemLife})
		}
	}
	if w.rng.Float64() < lt.GoldDropChance {
		gold := int(math.Floor(float64(e.Exp) * (0.5 + w.rng.Float64())))
		if gold < 1 {
			gold = 1
		}
		w.dropItem(e, Item{Kind: ItemGold, Value: gold, Life: lt.GoldLife})
	}
	if w.rng.Float64() < lt.PotionDropChance {
		kind := ItemHPPotion
		if w.rng.Intn(2) == 1 {
			kind = ItemMPPotion
		}
		w.dropItem(e, Item{Kind: kind, Value: 1, Life: lt.PotionLife})
	}

	if e.Boss {
		w.dropBossBundle(e)
		w.log.Info("boss defeated", "type", e.Type.ID, "stage", w.stage)
		w.emit(EventBossDefeated, e.Type.ID, exp, "Boss %s defeated! +%d EXP", e.Type.ID, exp)
	} else {
		w.emit(EventEnemyKilled, e.Type.ID, exp, "+%d EXP", exp)
	}

	w.checkLevelUp()
}

func (w *World) dropItem(e *Enemy, it Item) {
	size := w.tuning.Loot.Size
	it.ID = w.newID()
	it.X = e.X + e.W/2 - size/2
	it.Y = e.Y
	it.W, it.H = size, size
	it.VX = (w.rng.Float64() - 0.5) * 5
	it.VY = -6
	w.items = append(w.items, &it)
}

// dropBossBundle guarantees gold, potions and, while the player is missing
// weapons of the current tier, a new weapon.
func (w *World) dropBossBundle(e *Enemy) {
	lt := w.tuning.Loot
	gold := int(float64(e.Exp) * lt.BossGoldMult / float64(max(1, w.tuning.Spawn.BossExpMult)))
	w.dropItem(e, Item{Kind: ItemGold, Value: max(gold, 1), Life: lt.GoldLife})
	for range lt.BossPotions {
		w.dropItem(e, Item{Kind: ItemHPPotion, Value: 1, Life: lt.PotionLife})
	}
	if id := w.missingWeapon(); id != "" {
		w.dropItem(e, Item{Kind: ItemWeapon, Weapon: id, Life: lt.WeaponLife})
	}
}

// missingWeapon picks a random weapon of the player's tier that is not yet
// unlocked.
func (w *World) missingWeapon() string {
	var missing []string
	for _, wd := range w.content.Weapons {
		if wd.Advanced == w.player.Advanced && !w.player.HasWeapon(wd.ID) {
			missing = append(missing, wd.ID)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return missing[w.rng.Intn(len(missing))]
}

// checkLevelUp converts exp into levels. A single award can cross several
// thresholds.
func (w *World) checkLevelUp() {
	p := w.player
	t := w.tuning.Player
	for p.MaxExp > 0 && p.Exp >= p.MaxExp {
		p.Exp -= p.MaxExp
		p.Level++
		p.MaxExp = w.content.MaxExpFor(p.Level, p.MaxExp)
		p.MaxHP += t.LevelHP
		p.MaxMP += t.LevelMP
		p.Attack += t.LevelAttack
		p.SP += t.LevelSP
		p.HP = p.MaxHP
		p.MP = p.MaxMP
		p.mpFrac = 0

		w.damageNumber(p.X, p.Y-40, "LEVEL UP!", core.ColorBrightYellow)
		w.spawnParticle(Particle{Kind: ParticlePillar, X: p.X + p.W/2, Y: p.Y + p.H, VY: -2, Life: 60, Color: core.ColorGold})
		w.emit(EventLevelUp, p.Class, p.Level, "Level up! Lv.%d", p.Level)
	}
}

// damagePlayer runs the incoming-damage pipeline: evasion, defense, mana
// guard, shield, reflect, then hp. src may be nil for projectiles whose
// shooter is gone. It returns the hp actually lost.
func (w *World) damagePlayer(raw int, src *Enemy, dir float64) int {
	p := w.player
	c := w.tuning.Combat
	if p.Dead || p.Invincible > 0 {
		return 0
	}
	if p.Guard > 0 {
		w.damageNumber(p.X, p.Y, "GUARD", core.ColorCyan)
		return 0
	}
	if ev := w.evasion(); ev > 0 && w.rng.Float64() < ev {
		w.damageNumber(p.X, p.Y, "MISS", core.ColorWhite)
		w.emit(EventPlayerEvaded, srcName(src), 0, "evaded")
		return 0
	}

	dmg := int(math.Floor(float64(raw) * (1 - w.defense())))
	if dmg < c.MinDamage {
		dmg = c.MinDamage
	}
	if g := w.manaGuard(); g > 0 && p.MP > 0 {
		diverted := min(int(math.Floor(float64(dmg)*g)), p.MP)
		p.MP -= diverted
		dmg -= diverted
	}
	if p.Shield > 0 {
		absorbed := min(p.Shield, dmg)
		p.Shield -= absorbed
		dmg -= absorbed
	}
	if r := w.reflect(); r > 0 && src != nil && !src.Dead {
		if back := math.Floor(float64(dmg) * r); back >= 1 {
			w.applyDamage(src, back, -dir, config.StatusSpec{})
		}
	}

	p.HP = max(0, p.HP-dmg)
	p.Invincible = w.tuning.Player.Invincibility
	if dir != 0 {
		p.VX = dir * w.tuning.Player.KnockbackX
	}
	p.VY = w.tuning.Player.KnockbackY
	p.Grounded = false

	w.damageNumber(p.X, p.Y, fmt.Sprintf("-%d", dmg), core.ColorRed)
	w.emit(EventPlayerHit, srcName(src), dmg, "-%d HP", dmg)

	if p.HP <= 0 {
		w.killPlayer(srcName(src))
	}
	return dmg
}

func (w *World) killPlayer(cause string) {
	p := w.player
	if p.Dead {
		return
	}
	p.HP = 0
	p.Dead = true
	p.VX, p.VY = 0, 0
	w.epoch++
	w.deferred = nil
	w.log.Info("player died", "cause", cause, "stage", w.stage, "level", p.Level)
	w.emit(EventGameOver, cause, w.stage, "Game over on stage %d", w.stage)
}

func srcName(e *Enemy) string {
	if e == nil || e.Type == nil {
		return ""
	}
	return e.Type.ID
}

// enemiesIn returns live enemies intersecting r, in spawn order.
func (w *World) enemiesIn(r core.Rect) []*Enemy {
	var out []*Enemy
	for _, e := range w.enemies {
		if !e.Dead && e.Rect().Intersects(r) {
			out = append(out, e)
		}
	}
	return out
}

// nearestEnemy returns the closest live enemy to (x, y) within maxDist.
func (w *World) nearestEnemy(x, y, maxDist float64) *Enemy {
	var best *Enemy
	bestDist := maxDist
	for _, e := range w.enemies {
		if e.Dead {
			continue
		}
		if d := core.Dist(x, y, e.X+e.W/2, e.Y+e.H/2); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}
