package game

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

// basicAttack swings or fires the equipped weapon. Melee hits land after
// the wind-up and use the player's position at that moment.
func (w *World) basicAttack(in core.InputFrame) {
	p := w.player
	wd := w.weapon()
	if wd == nil || p.AttackCooldown > 0 {
		return
	}
	p.AttackCooldown = wd.Cooldown

	dmg := float64(p.Attack) * wd.DamageMult * w.damageMult()
	reach := wd.Range * w.rangeMult()
	if wd.Kind == config.WeaponRanged {
		w.fireWeapon(wd, dmg, reach)
		return
	}

	down := !p.Grounded && in.IsHeld(core.ActionDown)
	w.schedule(w.tuning.Combat.MeleeWindup, func(w *World) {
		w.meleeHit(wd, dmg, reach, down)
	})
}

// meleeBox is the weapon hitbox in front of, or below, the player.
func (w *World) meleeBox(reach float64, down bool) core.Rect {
	p := w.player
	c := w.tuning.Combat
	if down {
		return core.NewRect(p.X-c.MeleeAlignY/2, p.Y+p.H, p.W+c.MeleeAlignY, reach*c.DownAttackDepth)
	}
	y := p.Y - c.MeleeAlignY/2
	h := p.H + c.MeleeAlignY
	if p.Facing < 0 {
		return core.NewRect(p.X-reach, y, reach, h)
	}
	return core.NewRect(p.X+p.W, y, reach, h)
}

func (w *World) meleeHit(wd *config.WeaponDef, dmg, reach float64, down bool) {
	p := w.player
	box := w.meleeBox(reach, down)
	hit := false
	for _, e := range w.enemiesIn(box) {
		mult := 1.0
		if wd.Reach && !down {
			mult = w.tipMult(e, reach)
		}
		dir := p.Facing
		if down {
			dir = core.Sign(e.Rect().CenterX() - p.Rect().CenterX())
		}
		w.applyDamage(e, dmg*mult, dir, config.StatusSpec{})
		hit = true
	}
	w.spawnParticle(Particle{Kind: ParticleBurst, X: box.CenterX(), Y: box.CenterY(), Life: 8, Radius: box.W / 2, Color: core.ColorWhite})

	if down && hit {
		p.VY = w.tuning.Combat.PogoVelocity
		p.Jumps = 0
		p.Grounded = false
	}
}

// tipMult rewards reach weapons for hitting with the tip and penalizes
// enemies hugging the player.
func (w *World) tipMult(e *Enemy, reach float64) float64 {
	c := w.tuning.Combat
	p := w.player
	front := p.X + p.W
	if p.Facing < 0 {
		front = p.X
	}
	frac := math.Abs(e.Rect().CenterX()-front) / reach
	switch {
	case frac >= c.TipStart:
		return c.TipBonus
	case frac < c.CloseEnd:
		return c.ClosePenalty
	}
	return 1
}

func (w *World) fireWeapon(wd *config.WeaponDef, dmg, reach float64) {
	p := w.player
	c := w.tuning.Combat
	speed := wd.Speed
	if speed <= 0 {
		speed = 12
	}
	life := min(c.ProjectileLife, int(math.Ceil(reach/speed)))
	x := p.X + p.W
	if p.Facing < 0 {
		x = p.X - c.ProjectileSize
	}
	w.projectiles = append(w.projectiles, &Projectile{
		ID:     w.newID(),
		X:      x,
		Y:      p.Y + p.H/2 - c.ProjectileSize/2,
		VX:     p.Facing * speed,
		W:      c.ProjectileSize,
		H:      c.ProjectileSize,
		Damage: max(1, int(dmg)),
		Life:   max(1, life),
		Weapon: wd.ID,
		Glyph:  wd.Glyph,
	})
}
