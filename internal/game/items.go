package game

import (
	"fmt"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// pickup applies an item to the player. Potions beyond the carry limit are
// left where they lie.
func (w *World) pickup(it *Item) {
	p := w.player
	switch it.Kind {
	case ItemGold:
		p.Gold += it.Value
		w.damageNumber(it.X, it.Y, fmt.Sprintf("+%dG", it.Value), core.ColorGold)
	case ItemHPPotion:
		if p.HPPotions >= p.MaxPotions {
			return
		}
		p.HPPotions++
	case ItemMPPotion:
		if p.MPPotions >= p.MaxPotions {
			return
		}
		p.MPPotions++
	case ItemWeapon:
		if !p.HasWeapon(it.Weapon) {
			p.Weapons = append(p.Weapons, it.Weapon)
			w.emit(EventWeaponUnlocked, it.Weapon, len(p.Weapons), "New weapon: %s", it.Weapon)
		}
	case ItemQuest:
		w.collectQuestItem(it)
	}
	it.Life = 0
	w.emit(EventItemPickup, it.Kind.String(), it.Value, "Picked up %s", it.Kind)
}

func (w *World) collectQuestItem(it *Item) {
	if w.quests == nil {
		return
	}
	up, ok := w.quests.Collect(it.Monster)
	if !ok {
		return
	}
	q := up.Quest
	w.emit(EventQuestProgress, q.ItemName, q.CurrentCount, "%s %d/%d", q.ItemName, q.CurrentCount, q.TargetCount)
	if !up.Completed {
		return
	}
	p := w.player
	p.Exp += q.RewardExp
	p.Gold += q.RewardGold
	w.log.Info("quest complete", "title", q.Title, "exp", q.RewardExp, "gold", q.RewardGold)
	w.emit(EventQuestComplete, q.Title, q.RewardExp, "Quest complete: %s (+%d EXP, +%d G)", q.Title, q.RewardExp, q.RewardGold)
	w.checkLevelUp()
}
