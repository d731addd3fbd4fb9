package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

type aim struct {
	x, y float64
	ok   bool
}

// ActivateSkill casts a learned active or buff skill facing forward.
// It reports whether the cast happened.
func (w *World) ActivateSkill(id string) bool {
	return w.activate(id, aim{})
}

func (w *World) activate(id string, at aim) bool {
	p := w.player
	if p == nil || p.Dead {
		return false
	}
	s := w.skillDef(id)
	lvl := 0
	if s != nil {
		lvl = p.Skills[id]
	}
	if s == nil || lvl <= 0 || s.Kind == config.SkillPassive {
		w.log.Debug("skill ignored", "skill", id, "level", lvl)
		return false
	}

	hpCost := int(float64(p.MaxHP) * s.HPCost)
	switch {
	case p.Cooldowns[id] > 0:
		return w.skillFailed(s, "%s is on cooldown", s.Name)
	case p.MP < s.MPCost:
		return w.skillFailed(s, "Not enough MP for %s", s.Name)
	case hpCost > 0 && p.HP <= hpCost:
		return w.skillFailed(s, "Not enough HP for %s", s.Name)
	}

	p.MP -= s.MPCost
	p.HP -= hpCost
	p.Cooldowns[id] = s.Cooldown
	w.cast(s, lvl, at)
	w.emit(EventSkillCast, s.ID, lvl, "%s Lv.%d", s.Name, lvl)
	return true
}

func (w *World) skillFailed(s *config.SkillDef, format string, args ...any) bool {
	w.emit(EventSkillFailed, s.ID, 0, format, args...)
	return false
}

// skillDamage is the raw damage one hit of a skill carries.
func (w *World) skillDamage(s *config.SkillDef, lvl int) float64 {
	weaponMult := 1.0
	if wd := w.weapon(); wd != nil {
		weaponMult = wd.DamageMult
	}
	return float64(w.player.Attack) *
		s.DamageMult *
		(1 + float64(lvl)*w.tuning.Combat.SkillLevelScale) *
		w.damageMult() *
		weaponMult
}

func (w *World) cast(s *config.SkillDef, lvl int, at aim) {
	dmg := w.skillDamage(s, lvl)
	switch s.Effect.Type {
	case config.EffectStrike:
		w.castStrike(s, dmg)
	case config.EffectProjectile:
		w.castProjectile(s, dmg)
	case config.EffectRain:
		w.castRain(s, dmg)
	case config.EffectSummon:
		w.castSummon(s, dmg)
	case config.EffectHeal:
		w.castHeal(s, lvl, dmg)
	case config.EffectTeleport:
		w.castTeleport(s, at)
	case config.EffectSlow:
		w.castSlow(s, lvl)
	case config.EffectGuard:
		w.player.Guard = s.Effect.Duration
		w.damageNumber(w.player.X, w.player.Y-20, s.Name, core.ColorCyan)
	case config.EffectBuff:
		w.addBuff(s, s.Buff, lvl)
	case config.EffectRandomBuff:
		if pool := s.Effect.Pool; len(pool) > 0 {
			w.addBuff(s, pool[w.rng.Intn(len(pool))], lvl)
		}
	}
}

// castStrike resolves a shaped hit, optionally after a dash or a leap and
// repeated over several ticks.
func (w *World) castStrike(s *config.SkillDef, dmg float64) {
	e := s.Effect
	p := w.player
	if e.Dash != 0 {
		p.X = core.ClampF(p.X+p.Facing*e.Dash, 0, math.Max(0, w.worldWidth-p.W))
	}
	if e.Leap != 0 {
		p.VY = e.Leap
		p.Grounded = false
	}
	for i := range max(1, e.Hits) {
		at := e.Delay + i*e.HitInterval
		if at == 0 {
			w.strike(s, dmg)
			continue
		}
		w.schedule(at, func(w *World) { w.strike(s, dmg) })
	}
}

func (w *World) strike(s *config.SkillDef, dmg float64) {
	p := w.player
	box := w.strikeBox(s.Effect)
	cx := p.Rect().CenterX()
	for _, e := range w.enemiesIn(box) {
		dir := core.Sign(e.Rect().CenterX() - cx)
		if dir == 0 {
			dir = p.Facing
		}
		w.applyDamage(e, dmg, dir, s.Effect.Status)
	}
	w.spawnParticle(Particle{Kind: ParticleBurst, X: box.CenterX(), Y: box.CenterY(), Life: 15, Radius: box.W / 2, Color: core.ColorYellow})
}

// strikeBox is the region a strike covers at the moment it lands.
func (w *World) strikeBox(e config.EffectSpec) core.Rect {
	p := w.player
	r := p.Rect()
	reach := e.Range * w.rangeMult()
	h := e.Height
	if h <= 0 {
		h = p.H + w.tuning.Combat.MeleeAlignY
	}
	y := r.CenterY() - h/2

	switch e.Shape {
	case config.ShapeScreen:
		half := w.tuning.Combat.ScreenHalfWidth
		vh := w.tuning.World.ViewportHeight
		return core.NewRect(r.CenterX()-half, r.CenterY()-vh, half*2, vh*2)
	case config.ShapeArea:
		return core.NewRect(r.CenterX()-reach, y, reach*2, h)
	}
	if p.Facing < 0 {
		return core.NewRect(r.CenterX()-reach, y, reach, h)
	}
	return core.NewRect(r.CenterX(), y, reach, h)
}

// castProjectile fires one or more volleys. Only the first volley leaves
// this tick.
func (w *World) castProjectile(s *config.SkillDef, dmg float64) {
	e := s.Effect
	p := w.player
	for i := range max(1, e.Waves) {
		if i == 0 {
			w.volley(s, dmg)
			continue
		}
		w.schedule(i*e.WaveInterval, func(w *World) { w.volley(s, dmg) })
	}
	if e.Recoil != 0 {
		p.VX = -p.Facing * e.Recoil
		p.VY = math.Min(p.VY, -4)
		p.Grounded = false
	}
}

func (w *World) volley(s *config.SkillDef, dmg float64) {
	e := s.Effect
	p := w.player
	c := w.tuning.Combat

	size := e.Size
	if size <= 0 {
		size = c.ProjectileSize
	}
	life := e.Life
	if life <= 0 {
		life = int(float64(c.ProjectileLife) * c.SkillRangeScale)
	}
	speed := e.Speed
	if speed <= 0 {
		speed = 12
	}
	count := max(1, e.Count)
	r := p.Rect()

	for i := range count {
		pr := &Projectile{
			ID:        w.newID(),
			W:         size,
			H:         size,
			Damage:    max(1, int(dmg)),
			Life:      life,
			Magic:     e.Magic,
			Piercing:  e.Piercing,
			Explosion: e.Explosion,
			Gravity:   e.Gravity,
			Homing:    e.Homing,
			SkillID:   s.ID,
			Status:    e.Status,
			Glyph:     e.Glyph,
		}
		if e.Trap {
			pr.Trap = true
			pr.X = r.CenterX() + p.Facing*r.W - size/2
			pr.Y = r.Bottom() - size
			w.projectiles = append(w.projectiles, pr)
			continue
		}
		pr.X = r.CenterX() - size/2 + p.Facing*r.W/2
		pr.Y = r.CenterY() - size/2
		pr.VX = p.Facing * speed
		pr.VY = e.Lob + (float64(i)-float64(count-1)/2)*e.Spread
		w.projectiles = append(w.projectiles, pr)
	}
}

// castRain drops projectiles from the sky around the player, one every
// Interval ticks.
func (w *World) castRain(s *config.SkillDef, dmg float64) {
	for i := range max(1, s.Effect.Count) {
		if i == 0 {
			w.rainDrop(s, dmg)
			continue
		}
		w.schedule(i*s.Effect.Interval, func(w *World) { w.rainDrop(s, dmg) })
	}
}

func (w *World) rainDrop(s *config.SkillDef, dmg float64) {
	e := s.Effect
	c := w.tuning.Combat
	p := w.player
	size := e.Size
	if size <= 0 {
		size = c.ProjectileSize
	}
	center := p.Rect().CenterX() + p.Facing*e.Spread/4
	w.projectiles = append(w.projectiles, &Projectile{
		ID:        w.newID(),
		X:         center + (w.rng.Float64()-0.5)*e.Spread - size/2,
		Y:         c.RainHeight,
		VX:        (w.rng.Float64() - 0.5) * 2,
		VY:        c.RainSpeed,
		W:         size,
		H:         size * 2,
		Damage:    max(1, int(dmg)),
		Life:      c.RainLife,
		Magic:     e.Magic,
		Piercing:  e.Piercing,
		Explosion: e.Explosion,
		SkillID:   s.ID,
		Status:    e.Status,
		Glyph:     e.Glyph,
	})
}

// castSummon replaces any live summon of the same skill.
func (w *World) castSummon(s *config.SkillDef, dmg float64) {
	e := s.Effect
	p := w.player
	for _, pr := range w.projectiles {
		if pr.Summon && pr.SkillID == s.ID {
			pr.dead = true
		}
	}
	size := e.Size
	if size <= 0 {
		size = w.tuning.Combat.ProjectileSize * 2
	}
	r := p.Rect()
	y := p.Y - w.tuning.Combat.SummonOrbitHeight
	if e.Stationary {
		y = r.Bottom() - size
	}
	w.projectiles = append(w.projectiles, &Projectile{
		ID:           w.newID(),
		X:            r.CenterX() - size/2,
		Y:            y,
		W:            size,
		H:            size,
		Damage:       max(1, int(dmg)),
		Life:         max(1, e.Life),
		Magic:        e.Magic,
		Summon:       true,
		Stationary:   e.Stationary,
		FireInterval: max(1, e.FireInterval),
		FireRange:    e.FireRange,
		SkillID:      s.ID,
		Glyph:        e.Glyph,
	})
}

// castHeal restores a fraction of max hp and scorches enemies in radius.
func (w *World) castHeal(s *config.SkillDef, lvl int, dmg float64) {
	e := s.Effect
	p := w.player
	amount := int(float64(p.MaxHP) * (e.Fraction + e.PerLevel*float64(lvl-1)))
	p.HP = min(p.MaxHP, p.HP+amount)
	w.damageNumber(p.X, p.Y-20, fmt.Sprintf("+%d", amount), core.ColorGreen)

	if e.Radius > 0 {
		r := p.Rect()
		area := core.NewRect(r.CenterX()-e.Radius, r.CenterY()-e.Radius, e.Radius*2, e.Radius*2)
		for _, en := range w.enemiesIn(area) {
			w.applyDamage(en, dmg, core.Sign(en.Rect().CenterX()-r.CenterX()), e.Status)
		}
	}
	w.spawnParticle(Particle{Kind: ParticleRing, X: p.Rect().CenterX(), Y: p.Rect().CenterY(), Life: 30, Radius: e.Radius, Color: core.ColorGreen})
}

// castTeleport blinks toward the aim point, or forward without one.
func (w *World) castTeleport(s *config.SkillDef, at aim) {
	p := w.player
	dist := s.Effect.Distance
	dx := p.Facing * dist
	if at.ok {
		dx = core.ClampF(at.x-p.Rect().CenterX(), -dist, dist)
		if dx != 0 {
			p.Facing = core.Sign(dx)
		}
	}
	from := p.Rect()
	p.X = core.ClampF(p.X+dx, 0, math.Max(0, w.worldWidth-p.W))
	w.spawnParticle(Particle{Kind: ParticleRing, X: from.CenterX(), Y: from.CenterY(), Life: 15, Radius: p.W, Color: core.ColorBrightBlue})
}

func (w *World) castSlow(s *config.SkillDef, lvl int) {
	e := s.Effect
	p := w.player
	ticks := int(float64(e.Duration) * (1 + e.PerLevel*float64(lvl-1)))
	r := p.Rect()
	area := core.NewRect(r.CenterX()-e.Radius, r.CenterY()-e.Radius, e.Radius*2, e.Radius*2)
	for _, en := range w.enemiesIn(area) {
		en.Slow = max(en.Slow, ticks)
	}
	w.spawnParticle(Particle{Kind: ParticleRing, X: r.CenterX(), Y: r.CenterY(), Life: 30, Radius: e.Radius, Color: core.ColorMagenta})
}

// addBuff adds or refreshes the buff keyed by the casting skill.
func (w *World) addBuff(s *config.SkillDef, spec config.BuffSpec, lvl int) {
	p := w.player
	dur := s.Duration + spec.DurationPerLevel*(lvl-1)
	if dur <= 0 {
		dur = 600
	}
	scaled := spec.Scaled(lvl)
	if scaled.Name == "" {
		scaled.Name = s.Name
	}
	p.Buffs[s.ID] = &Buff{Spec: scaled, Remaining: dur}
	if scaled.Shield > 0 {
		p.Shield = max(p.Shield, scaled.Shield)
	}
	w.damageNumber(p.X, p.Y-20, scaled.Name, core.ColorCyan)
	w.spawnParticle(Particle{Kind: ParticlePillar, X: p.Rect().CenterX(), Y: p.Rect().Bottom(), VY: -5, Life: 30, Color: core.ColorYellow})
}
