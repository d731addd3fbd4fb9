package game

import (
	"math"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

// Commands are invoked by hosts on explicit user action. Each returns false
// and leaves the world untouched when it is rejected.

// PotionKind selects a potion.
type PotionKind int

const (
	PotionHP PotionKind = iota
	PotionMP
)

// ShopItem is something the shop sells.
type ShopItem int

const (
	ShopHPPotion ShopItem = iota
	ShopMPPotion
	ShopAttack
	ShopMaxHP
	ShopMaxMP
)

func (s ShopItem) String() string {
	switch s {
	case ShopHPPotion:
		return "hp potion"
	case ShopMPPotion:
		return "mp potion"
	case ShopAttack:
		return "attack upgrade"
	case ShopMaxHP:
		return "max hp upgrade"
	case ShopMaxMP:
		return "max mp upgrade"
	default:
		return "unknown"
	}
}

// ConsumePotion drinks a potion. It fails with none left or when the
// resource is already full.
func (w *World) ConsumePotion(kind PotionKind) bool {
	p := w.player
	if p == nil || p.Dead {
		return false
	}
	heal := w.tuning.Player.PotionHeal
	switch kind {
	case PotionHP:
		if p.HPPotions <= 0 || p.HP >= p.MaxHP {
			return false
		}
		p.HPPotions--
		p.HP = min(p.MaxHP, p.HP+heal)
		w.damageNumber(p.X, p.Y, "+HP", core.ColorGreen)
		w.emit(EventPotionUsed, "hp", heal, "HP potion (%d left)", p.HPPotions)
	case PotionMP:
		if p.MPPotions <= 0 || p.MP >= p.MaxMP {
			return false
		}
		p.MPPotions--
		p.MP = min(p.MaxMP, p.MP+heal)
		w.damageNumber(p.X, p.Y, "+MP", core.ColorBlue)
		w.emit(EventPotionUsed, "mp", heal, "MP potion (%d left)", p.MPPotions)
	default:
		return false
	}
	return true
}

// SwitchWeapon equips an unlocked weapon.
func (w *World) SwitchWeapon(id string) bool {
	p := w.player
	if p == nil || !p.HasWeapon(id) || w.content.Weapon(id) == nil {
		return false
	}
	if p.Weapon == id {
		return true
	}
	p.Weapon = id
	p.AttackCooldown = 0
	return true
}

// UpgradeSkill spends one skill point on a skill of the player's class.
func (w *World) UpgradeSkill(id string) bool {
	p := w.player
	s := w.skillDef(id)
	switch {
	case p == nil || s == nil:
		return false
	case p.SP <= 0:
		return false
	case p.Skills[id] >= s.MaxLevel:
		return false
	case p.Level < s.ReqLevel:
		return false
	case s.ReqSkill != "" && p.Skills[s.ReqSkill] < 1:
		w.log.Debug("skill upgrade rejected: missing prerequisite", "skill", id, "requires", s.ReqSkill)
		return false
	}
	p.Skills[id]++
	p.SP--
	w.applyPassiveGain(s, 1)
	return true
}

// applyPassiveGain applies one-off stat gains of a passive for n new levels.
func (w *World) applyPassiveGain(s *config.SkillDef, n int) {
	if s.Kind != config.SkillPassive || n <= 0 {
		return
	}
	p := w.player
	if hp := s.Passive.MaxHP * n; hp > 0 {
		p.MaxHP += hp
		p.HP += hp
	}
	p.MaxJumps += s.Passive.ExtraJumps * n
}

// AssignSkillSlot binds a learned skill to a skill hotkey. Binding the same
// pair again clears it. A skill lives on at most one hotkey.
func (w *World) AssignSkillSlot(id string, hotkey core.Action) bool {
	p := w.player
	s := w.skillDef(id)
	if p == nil || s == nil || s.Kind == config.SkillPassive || p.Skills[id] < 1 || !isSkillAction(hotkey) {
		return false
	}
	if p.Slots[hotkey] == id {
		delete(p.Slots, hotkey)
		return true
	}
	for _, a := range core.SkillActions {
		if p.Slots[a] == id {
			delete(p.Slots, a)
		}
	}
	p.Slots[hotkey] = id
	return true
}

func isSkillAction(a core.Action) bool {
	for _, s := range core.SkillActions {
		if s == a {
			return true
		}
	}
	return false
}

// AdvanceClass promotes the player once the level requirement is met.
func (w *World) AdvanceClass() bool {
	p := w.player
	t := w.tuning.Player
	if p == nil || p.Dead || p.Advanced || p.Level < t.AdvanceLevel {
		return false
	}
	cl := w.content.Class(p.Class)
	if cl == nil {
		return false
	}
	p.Advanced = true
	p.Attack += t.AdvanceAttack
	p.MaxHP += t.AdvanceHP
	p.HP = p.MaxHP
	if !p.HasWeapon(cl.AdvancedWeapon) {
		p.Weapons = append(p.Weapons, cl.AdvancedWeapon)
	}
	p.Weapon = cl.AdvancedWeapon

	w.log.Info("class advanced", "class", cl.ID, "name", cl.AdvancedName, "level", p.Level)
	w.emit(EventClassAdvanced, cl.AdvancedName, p.Level, "Advanced to %s!", cl.AdvancedName)
	return true
}

// PriceOf returns the current shop price of an item, or -1 if unknown.
// Upgrades get more expensive with every step already bought.
func (w *World) PriceOf(item ShopItem) int {
	sh := w.tuning.Shop
	p := w.player
	if p == nil {
		return -1
	}
	switch item {
	case ShopHPPotion, ShopMPPotion:
		return sh.PotionPrice
	case ShopAttack:
		return upgradePrice(sh.Attack, p.Attack)
	case ShopMaxHP:
		return upgradePrice(sh.HP, p.MaxHP)
	case ShopMaxMP:
		return upgradePrice(sh.MP, p.MaxMP)
	}
	return -1
}

func upgradePrice(c config.UpgradeCost, current int) int {
	steps := 0.0
	if c.Step > 0 {
		steps = math.Max(0, math.Floor(float64(current-c.From)/float64(c.Step)))
	}
	price := math.Floor(float64(c.Base) * math.Pow(c.Scale, steps))
	if price >= math.MaxInt || math.IsNaN(price) {
		return math.MaxInt
	}
	return int(price)
}

// Purchase buys an item for cost gold.
func (w *World) Purchase(item ShopItem, cost int) bool {
	p := w.player
	sh := w.tuning.Shop
	if p == nil || p.Dead || cost < 0 || p.Gold < cost {
		return false
	}
	switch item {
	case ShopHPPotion:
		if p.HPPotions >= p.MaxPotions {
			return false
		}
		p.HPPotions++
	case ShopMPPotion:
		if p.MPPotions >= p.MaxPotions {
			return false
		}
		p.MPPotions++
	case ShopAttack:
		p.Attack += sh.Attack.Step
	case ShopMaxHP:
		p.MaxHP += sh.HP.Step
		p.HP = p.MaxHP
	case ShopMaxMP:
		p.MaxMP += sh.MP.Step
		p.MP = p.MaxMP
	default:
		return false
	}
	p.Gold -= cost
	w.log.Debug("purchase", "item", item, "cost", cost, "gold", p.Gold)
	return true
}

// debugGold is the purse DebugUnlockAll tops up to.
const debugGold = 999_999

// DebugUnlockAll levels the player up to the advancement level, maxes every
// class skill, unlocks every weapon and fills gold and resources.
func (w *World) DebugUnlockAll() {
	p := w.player
	if p == nil || p.Dead {
		return
	}
	for p.Level < w.tuning.Player.AdvanceLevel && p.MaxExp > 0 {
		p.Exp = p.MaxExp
		w.checkLevelUp()
	}
	for _, s := range w.classSkills {
		gained := s.MaxLevel - p.Skills[s.ID]
		if gained <= 0 {
			continue
		}
		p.Skills[s.ID] = s.MaxLevel
		w.applyPassiveGain(s, gained)
	}
	for _, wd := range w.content.Weapons {
		if !p.HasWeapon(wd.ID) {
			p.Weapons = append(p.Weapons, wd.ID)
		}
	}
	p.HP = p.MaxHP
	p.MP = p.MaxMP
	p.HPPotions = p.MaxPotions
	p.MPPotions = p.MaxPotions
	p.Gold = max(p.Gold, debugGold)
	w.log.Debug("debug unlock", "class", p.Class, "level", p.Level)
}

// Restart starts a new run with a fresh seed drawn from the current one.
func (w *World) Restart(class string) bool {
	if class == "" && w.player != nil {
		class = w.player.Class
	}
	return w.Reset(class, w.rng.Int63())
}
