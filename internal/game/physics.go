package game

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// landing resolves a box that moved this tick against the ground and the
// one-way platforms. prevBottom is the box bottom before the move. It returns
// the corrected top y and whether the box is now standing on something.
//
// Platforms only catch boxes that are descending and whose previous bottom
// was at or above the platform top (within the snap tolerance), so entities
// jump through them from below. The ground catches anything that was not
// already under it.
func (w *World) landing(r core.Rect, prevBottom, vy, inset float64) (float64, bool) {
	if vy < 0 {
		return r.Y, false
	}
	snap := w.tuning.Physics.PlatformSnap
	bottom := r.Bottom()
	top := math.Inf(1)
	for i := range w.platforms {
		pl := &w.platforms[i]
		in := inset
		if pl.Ground {
			in = 0
		}
		if r.Right() <= pl.X+in || r.X >= pl.Right()-in {
			continue
		}
		if bottom < pl.Y {
			continue
		}
		if !pl.Ground && prevBottom > pl.Y+snap {
			continue
		}
		if pl.Ground && prevBottom > pl.Bottom() {
			continue
		}
		if pl.Y < top {
			top = pl.Y
		}
	}
	if math.IsInf(top, 1) {
		return r.Y, false
	}
	return top - r.H, true
}

// stepPlayer applies movement input, jumping, gravity and collision.
func (w *World) stepPlayer(dt float64, in core.InputFrame) {
	p := w.player
	ph := w.tuning.Physics

	maxSpeed := ph.MoveSpeed * w.speedMult()
	left, right := in.IsHeld(core.ActionLeft), in.IsHeld(core.ActionRight)
	switch {
	case left && !right:
		p.VX += (-maxSpeed - p.VX) * math.Min(1, ph.Accel*dt)
		p.VX = core.ClampF(p.VX, -maxSpeed, maxSpeed)
		p.Facing = -1
	case right && !left:
		p.VX += (maxSpeed - p.VX) * math.Min(1, ph.Accel*dt)
		p.VX = core.ClampF(p.VX, -maxSpeed, maxSpeed)
		p.Facing = 1
	default:
		p.VX *= math.Pow(ph.Friction, dt)
		if math.Abs(p.VX) < 0.1 {
			p.VX = 0
		}
	}

	jump := in.IsHeld(core.ActionJump) || in.Has(core.ActionJump)
	if jump && !w.jumpHeld {
		switch {
		case p.Grounded:
			p.VY = ph.JumpForce
			p.Jumps = 1
			p.Grounded = false
			w.emit(EventJump, "", 1, "jump")
		case p.Jumps < p.MaxJumps:
			p.VY = ph.JumpForce * ph.DoubleJumpScale
			p.Jumps++
			w.spawnParticle(Particle{Kind: ParticleBurst, X: p.X + p.W/2, Y: p.Y + p.H, VX: -p.Facing * 2, Life: 20, Color: core.ColorWhite})
			w.emit(EventJump, "", p.Jumps, "double jump")
		}
	}
	w.jumpHeld = jump

	p.VY = math.Min(p.VY+ph.Gravity*dt, ph.MaxFallSpeed)
	prevBottom := p.Y + p.H
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if y, ok := w.landing(p.Rect(), prevBottom, p.VY, ph.PlatformInset); ok {
		p.Y = y
		p.VY = 0
		p.Grounded = true
		p.Jumps = 0
	} else {
		p.Grounded = false
	}

	if p.X < 0 {
		p.X = 0
		p.VX = 0
	}
	if p.Y > ph.DeathY {
		w.log.Info("player fell out of the world", "stage", w.stage)
		w.killPlayer("fell")
	}
}

// stepEnemyBody integrates an enemy after AI chose its horizontal velocity.
func (w *World) stepEnemyBody(e *Enemy, dt float64) {
	ph := w.tuning.Physics
	e.VY = math.Min(e.VY+ph.Gravity*dt, ph.MaxFallSpeed)
	prevBottom := e.Y + e.H
	e.X += e.VX * dt
	e.Y += e.VY * dt

	if y, ok := w.landing(e.Rect(), prevBottom, e.VY, 0); ok {
		e.Y = y
		e.VY = 0
		e.Grounded = true
	} else {
		e.Grounded = false
	}
	e.X = core.ClampF(e.X, 0, math.Max(0, w.worldWidth-e.W))
}

// stepItems moves loot, pulls it toward the player and resolves pickups.
func (w *World) stepItems(dt float64) {
	p := w.player
	lt := w.tuning.Loot
	ph := w.tuning.Physics

	for _, it := range w.items {
		if it.Life <= 0 {
			continue
		}
		dx := p.X - it.X
		dy := (p.Y + p.H/2) - it.Y
		if dist := math.Hypot(dx, dy); dist > 0 && dist < lt.MagnetRadius {
			it.VX += dx / dist * lt.MagnetPull * dt
			it.VY += dy / dist * lt.MagnetPull * dt
		}

		it.VY = math.Min(it.VY+ph.Gravity*dt, ph.MaxFallSpeed)
		prevBottom := it.Y + it.H
		it.X += it.VX * dt
		it.Y += it.VY * dt
		if y, ok := w.landing(it.Rect(), prevBottom, it.VY, 0); ok {
			it.Y = y
			it.VY *= lt.Bounce
			it.VX *= lt.Damping
		}

		if !p.Dead && it.Rect().Intersects(p.Rect()) {
			w.pickup(it)
			if it.Life <= 0 {
				continue
			}
		}
		it.Life--
	}
}

func (w *World) stepParticles(dt float64) {
	for _, pt := range w.particles {
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.Life--
	}
}

// cull drops expired entities.
func (w *World) cull() {
	w.enemies = filter(w.enemies, func(e *Enemy) bool { return !e.Dead || e.Fade > 0 })
	w.projectiles = filter(w.projectiles, func(pr *Projectile) bool { return !pr.dead && pr.Life > 0 })
	w.items = filter(w.items, func(it *Item) bool { return it.Life > 0 })
	w.particles = filter(w.particles, func(pt *Particle) bool { return pt.Life > 0 })
}

func filter[T any](s []T, keep func(T) bool) []T {
	out := s[:0]
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}
	clear(s[len(out):])
	return out
}
