package game

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// StepResult is the outcome of one Advance call.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Advance runs one simulation tick. dt is the elapsed time in 60 Hz frames
// and only scales motion; every timer counts whole ticks. While inactive
// (paused) or dead nothing progresses and only the snapshot is produced.
func (w *World) Advance(dt float64, in core.InputFrame, active bool) StepResult {
	if w.player == nil {
		return StepResult{}
	}
	if !active || w.player.Dead {
		return StepResult{Snapshot: w.Snapshot(), Events: w.DrainEvents()}
	}
	dt = clampDelta(dt)

	w.runDeferred()
	w.stepTimers()
	w.handleInput(in)
	w.stepPlayer(dt, in)
	w.stepProjectiles(dt)
	w.stepSpawner()
	w.stepEnemies(dt)
	w.stepItems(dt)
	w.stepParticles(dt)
	w.checkStageExit()
	w.cull()
	w.tick++

	return StepResult{Snapshot: w.Snapshot(), Events: w.DrainEvents()}
}

// clampDelta keeps dt inside (0, 2]. A non-positive or NaN delta counts as
// one nominal frame.
func clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt <= 0 {
		return 1
	}
	return math.Min(dt, 2)
}

// stepTimers counts down player timers, expires buffs and regenerates mp.
func (w *World) stepTimers() {
	p := w.player
	if p.AttackCooldown > 0 {
		p.AttackCooldown--
	}
	if p.Invincible > 0 {
		p.Invincible--
	}
	if p.Guard > 0 {
		p.Guard--
	}

	for _, s := range w.classSkills {
		if cd := p.Cooldowns[s.ID]; cd > 0 {
			p.Cooldowns[s.ID] = cd - 1
		}
		b, ok := p.Buffs[s.ID]
		if !ok {
			continue
		}
		if b.Spec.HPDrain > 0 {
			w.drain(b.Spec.HPDrain)
		}
		b.Remaining--
		if b.Remaining <= 0 {
			if b.Spec.Shield > 0 {
				p.Shield = 0
			}
			delete(p.Buffs, s.ID)
		}
	}

	if p.MP < p.MaxMP {
		p.mpFrac += w.mpRegen()
		if whole := int(p.mpFrac); whole > 0 {
			p.MP = min(p.MaxMP, p.MP+whole)
			p.mpFrac -= float64(whole)
		}
	} else {
		p.mpFrac = 0
	}
	p.HP = core.Clamp(p.HP, 0, p.MaxHP)
	p.MP = core.Clamp(p.MP, 0, p.MaxMP)
}

// drain removes hp a fraction at a time. It never kills.
func (w *World) drain(perTick float64) {
	p := w.player
	p.drainFrac += perTick
	whole := int(p.drainFrac)
	if whole <= 0 {
		return
	}
	p.drainFrac -= float64(whole)
	p.HP = max(1, p.HP-whole)
}

func (w *World) handleInput(in core.InputFrame) {
	p := w.player
	if in.Has(core.ActionPotionHP) {
		w.ConsumePotion(PotionHP)
	}
	if in.Has(core.ActionPotionMP) {
		w.ConsumePotion(PotionMP)
	}
	for i, a := range core.WeaponActions {
		if in.Has(a) && i < len(p.Weapons) {
			w.SwitchWeapon(p.Weapons[i])
		}
	}

	x, y, ok := in.Aim()
	for _, a := range core.SkillActions {
		if !in.Has(a) {
			continue
		}
		if id, bound := p.Slots[a]; bound {
			w.activate(id, aim{x: x, y: y, ok: ok})
		}
	}

	if in.Has(core.ActionAttack) || in.IsHeld(core.ActionAttack) {
		w.basicAttack(in)
	}
}
