package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

// Autopilot plays the game headlessly: it walks right, fights what it meets
// and keeps itself alive with potions. It is deterministic for a seed.
type Autopilot struct {
	content   *config.Content
	rng       *rand.Rand
	jumped    bool
	lastX     float64
	stuck     int
	skillTurn int
}

// NewAutopilot creates an autopilot with its own random source.
func NewAutopilot(content *config.Content, seed int64) *Autopilot {
	return &Autopilot{content: content, rng: rand.New(rand.NewSource(seed))}
}

// Next decides the input for the tick after s.
func (a *Autopilot) Next(s Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	p := &s.Player
	if s.GameOver {
		return in
	}
	pr := p.Rect()

	var target *Enemy
	best := math.Inf(1)
	for i := range s.Enemies {
		e := &s.Enemies[i]
		if e.Dead {
			continue
		}
		if d := math.Abs(e.Rect().CenterX() - pr.CenterX()); d < best {
			target, best = e, d
		}
	}

	dir := core.ActionRight
	engage := 160.0
	if wd := a.content.Weapon(p.Weapon); wd != nil && wd.Kind == config.WeaponRanged {
		engage = wd.Range * 0.8
	}
	if target != nil && best < engage {
		if target.Rect().CenterX() < pr.CenterX() {
			dir = core.ActionLeft
		}
		in.Set(core.ActionAttack)
		a.castSkill(&in, p)
		if best < pr.W {
			// Back off a little when hugging the enemy.
			dir = opposite(dir)
		}
	}
	in.Hold(dir)

	if math.Abs(p.X-a.lastX) < 0.5 {
		a.stuck++
	} else {
		a.stuck = 0
	}
	a.lastX = p.X
	wantJump := a.stuck > 20 || a.rng.Float64() < 0.01
	if wantJump && !a.jumped {
		in.Hold(core.ActionJump)
		a.jumped = true
		a.stuck = 0
	} else {
		a.jumped = false
	}
	if !p.Grounded && target != nil && target.Rect().Y > pr.Bottom() {
		in.Hold(core.ActionDown)
	}

	if p.MaxHP > 0 && float64(p.HP) < float64(p.MaxHP)*0.3 {
		in.Set(core.ActionPotionHP)
	}
	if p.MaxMP > 0 && float64(p.MP) < float64(p.MaxMP)*0.2 {
		in.Set(core.ActionPotionMP)
	}
	return in
}

// castSkill presses the next bound skill hotkey that is off cooldown.
func (a *Autopilot) castSkill(in *core.InputFrame, p *Player) {
	n := len(core.SkillActions)
	for i := range n {
		act := core.SkillActions[(a.skillTurn+i)%n]
		id, ok := p.Slots[act]
		if !ok || p.Cooldowns[id] > 0 {
			continue
		}
		in.Set(act)
		a.skillTurn = (a.skillTurn + i + 1) % n
		return
	}
}

func opposite(a core.Action) core.Action {
	if a == core.ActionLeft {
		return core.ActionRight
	}
	return core.ActionLeft
}

// Manage spends the player's progress through the command API the way a
// simple human would: skill points, hotkeys, advancement and potions.
func (a *Autopilot) Manage(w *World) {
	p := w.player
	if p == nil || p.Dead {
		return
	}
	w.AdvanceClass()

	for p.SP > 0 {
		upgraded := false
		for _, s := range w.classSkills {
			if w.UpgradeSkill(s.ID) {
				upgraded = true
				break
			}
		}
		if !upgraded {
			break
		}
	}

	for _, s := range w.classSkills {
		if s.Kind == config.SkillPassive || p.Skills[s.ID] < 1 {
			continue
		}
		if _, bound := p.SlotOf(s.ID); bound {
			continue
		}
		for _, act := range core.SkillActions {
			if _, taken := p.Slots[act]; !taken {
				w.AssignSkillSlot(s.ID, act)
				break
			}
		}
	}

	if p.HPPotions < p.MaxPotions {
		w.Purchase(ShopHPPotion, w.PriceOf(ShopHPPotion))
	}
}
