package game

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

const homingRange = 800

// stepProjectiles moves every projectile and resolves its hits. Shots spawned
// by summons this tick start moving next tick.
func (w *World) stepProjectiles(dt float64) {
	ph := w.tuning.Physics
	n := len(w.projectiles)
	for i := 0; i < n; i++ {
		pr := w.projectiles[i]
		if pr.dead {
			continue
		}

		switch {
		case pr.Summon:
			w.stepSummon(pr, dt)
		case pr.Trap:
		default:
			if pr.Homing {
				w.steer(pr)
			}
			if pr.Gravity {
				pr.VY = math.Min(pr.VY+ph.Gravity*dt, ph.MaxFallSpeed)
			}
			pr.X += pr.VX * dt
			pr.Y += pr.VY * dt
		}
		pr.Life--

		switch {
		case pr.Enemy:
			w.hitPlayer(pr)
		case !pr.Summon:
			w.hitEnemies(pr)
		}
		if pr.dead {
			continue
		}

		if !pr.Trap && !pr.Summon && pr.Y+pr.H >= ph.GroundY {
			if pr.Explosion > 0 {
				w.explode(pr)
			}
			pr.dead = true
			continue
		}
		if pr.Life <= 0 {
			if pr.Explosion > 0 && !pr.Enemy {
				w.explode(pr)
			}
			pr.dead = true
		}
	}
}

func (w *World) hitPlayer(pr *Projectile) {
	p := w.player
	if p.Dead || p.Invincible > 0 || !pr.Rect().Intersects(p.Rect()) {
		return
	}
	w.damagePlayer(pr.Damage, w.enemyByID(pr.Owner), core.Sign(pr.VX))
	pr.dead = true
}

func (w *World) hitEnemies(pr *Projectile) {
	r := pr.Rect()
	for _, e := range w.enemies {
		if e.Dead || pr.hit[e.ID] || !r.Intersects(e.Rect()) {
			continue
		}
		if pr.Explosion > 0 {
			w.explode(pr)
			pr.dead = true
			return
		}
		w.applyDamage(e, float64(pr.Damage), core.Sign(pr.VX), pr.Status)
		if !pr.Piercing {
			pr.dead = true
			return
		}
		if pr.hit == nil {
			pr.hit = make(map[int]bool)
		}
		pr.hit[e.ID] = true
	}
}

// explode damages every enemy inside the blast square around the projectile.
func (w *World) explode(pr *Projectile) {
	cx, cy := pr.Rect().CenterX(), pr.Rect().CenterY()
	rad := pr.Explosion
	blast := core.NewRect(cx-rad, cy-rad, rad*2, rad*2)
	for _, e := range w.enemiesIn(blast) {
		w.applyDamage(e, float64(pr.Damage), core.Sign(e.Rect().CenterX()-cx), pr.Status)
	}
	w.spawnParticle(Particle{Kind: ParticleBurst, X: cx, Y: cy, Life: 20, Radius: rad, Color: core.ColorOrange})
}

func (w *World) steer(pr *Projectile) {
	cx, cy := pr.Rect().CenterX(), pr.Rect().CenterY()
	target := w.nearestEnemy(cx, cy, homingRange)
	if target == nil {
		return
	}
	speed := math.Hypot(pr.VX, pr.VY)
	dx := target.Rect().CenterX() - cx
	dy := target.Rect().CenterY() - cy
	d := math.Hypot(dx, dy)
	if d == 0 || speed == 0 {
		return
	}
	turn := w.tuning.Combat.HomingTurn
	pr.VX += (dx/d*speed - pr.VX) * turn
	pr.VY += (dy/d*speed - pr.VY) * turn
}

// stepSummon trails the player and fires at the nearest enemy in range.
func (w *World) stepSummon(pr *Projectile, dt float64) {
	c := w.tuning.Combat
	p := w.player
	if !pr.Stationary {
		pr.orbit += 0.1 * dt
		tx := p.X + p.W/2 - pr.W/2 - p.Facing*40
		ty := p.Y - c.SummonOrbitHeight + math.Sin(pr.orbit)*10
		pr.X += (tx - pr.X) * c.SummonSpeed * dt
		pr.Y += (ty - pr.Y) * c.SummonSpeed * dt
	}

	if pr.fireTimer > 0 {
		pr.fireTimer--
		return
	}
	cx, cy := pr.Rect().CenterX(), pr.Rect().CenterY()
	target := w.nearestEnemy(cx, cy, pr.FireRange)
	if target == nil {
		return
	}
	pr.fireTimer = pr.FireInterval

	dx := target.Rect().CenterX() - cx
	dy := target.Rect().CenterY() - cy
	d := math.Hypot(dx, dy)
	if d == 0 {
		d = 1
	}
	size := c.ProjectileSize * 0.75
	w.projectiles = append(w.projectiles, &Projectile{
		ID:      w.newID(),
		X:       cx - size/2,
		Y:       cy - size/2,
		VX:      dx / d * c.SummonShotSpeed,
		VY:      dy / d * c.SummonShotSpeed,
		W:       size,
		H:       size,
		Damage:  max(1, int(float64(pr.Damage)*c.SummonShotDamage)),
		Life:    c.ProjectileLife,
		Magic:   pr.Magic,
		SkillID: pr.SkillID,
		Glyph:   "*",
	})
}

func (w *World) enemyByID(id int) *Enemy {
	if id == 0 {
		return nil
	}
	for _, e := range w.enemies {
		if e.ID == id {
			return e
		}
	}
	return nil
}
