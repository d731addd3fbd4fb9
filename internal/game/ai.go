package game

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// stepEnemies runs AI and physics for every enemy and fades out the dead.
func (w *World) stepEnemies(dt float64) {
	for _, e := range w.enemies {
		if e.Dead {
			if e.Fade > 0 {
				e.Fade--
			}
			continue
		}
		w.think(e, dt)
		w.stepEnemyBody(e, dt)
	}
}

// think re-evaluates the enemy's behavior from scratch each tick.
func (w *World) think(e *Enemy, dt float64) {
	ai := w.tuning.AI

	if e.Freeze > 0 {
		e.Freeze--
		e.State = AIFrozen
		e.VX = 0
		return
	}
	if e.Stun > 0 {
		e.Stun--
		e.State = AIStunned
		e.VX = 0
		return
	}
	if e.Slow > 0 {
		e.Slow--
	}
	if e.HitFreeze > 0 {
		e.HitFreeze--
		e.VX *= math.Pow(w.tuning.Physics.Friction, dt)
		return
	}
	if e.AttackTimer > 0 {
		e.AttackTimer--
	}

	speed := e.Speed
	if e.Slow > 0 {
		speed *= ai.SlowFactor
	}

	p := w.player
	dx := p.Rect().CenterX() - e.Rect().CenterX()
	dy := p.Rect().Bottom() - e.Rect().Bottom()

	if p.Dead || math.Abs(dx) >= ai.AggroX || math.Abs(dy) >= ai.AggroY {
		w.patrol(e, speed*ai.PatrolSpeedScale)
		return
	}

	e.State = AIAggro
	if dx != 0 {
		e.Facing = core.Sign(dx)
	}
	e.VX = e.Facing * speed

	if e.AttackTimer > 0 || !w.inAttackRange(e, dx, dy) {
		return
	}
	e.State = AIAttacking
	e.AttackTimer = ai.AttackInterval
	if e.Ranged {
		w.enemyShoot(e)
		return
	}
	w.damagePlayer(e.Damage, e, e.Facing)
}

func (w *World) inAttackRange(e *Enemy, dx, dy float64) bool {
	ai := w.tuning.AI
	if e.Ranged {
		return math.Abs(dx) < ai.RangedRange
	}
	gap := math.Abs(dx) - (e.W+w.player.W)/2
	return gap < ai.MeleeRange && math.Abs(dy) < ai.MeleeAlignY
}

func (w *World) patrol(e *Enemy, speed float64) {
	e.State = AIPatrol
	if e.Facing == 0 {
		e.Facing = -1
	}
	switch {
	case e.X <= e.PatrolMin:
		e.Facing = 1
	case e.X >= e.PatrolMax:
		e.Facing = -1
	}
	e.VX = e.Facing * speed
}

func (w *World) enemyShoot(e *Enemy) {
	ai := w.tuning.AI
	x := e.X
	if e.Facing > 0 {
		x = e.X + e.W
	}
	glyph := e.Type.ProjectileGlyph
	if glyph == "" {
		glyph = "*"
	}
	w.projectiles = append(w.projectiles, &Projectile{
		ID:     w.newID(),
		X:      x,
		Y:      e.Y + e.H/2 - ai.ProjectileSize/2,
		VX:     e.Facing * ai.ProjectileSpeed,
		W:      ai.ProjectileSize,
		H:      ai.ProjectileSize,
		Damage: e.Damage,
		Life:   ai.ProjectileLife,
		Enemy:  true,
		Glyph:  glyph,
		Owner:  e.ID,
	})
}
