package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

func TestConsumePotion(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	p := w.Player()

	assert.False(t, w.ConsumePotion(PotionHP), "full hp")
	assert.Equal(t, 3, p.HPPotions)

	p.HP = 20
	require.True(t, w.ConsumePotion(PotionHP))
	assert.Equal(t, 70, p.HP)
	assert.Equal(t, 2, p.HPPotions)

	require.True(t, w.ConsumePotion(PotionHP))
	assert.Equal(t, p.MaxHP, p.HP, "healing clamps at max")

	p.MP = 0
	p.MPPotions = 0
	assert.False(t, w.ConsumePotion(PotionMP), "none left")
	assert.False(t, w.ConsumePotion(PotionKind(7)))
}

func TestPotionHotkey(t *testing.T) {
	w := newTestWorld(t, "Mage")
	quiet(w)
	p := w.Player()
	p.MP = 10

	in := idle()
	in.Set(core.ActionPotionMP)
	res := w.Advance(1, in, true)
	assert.Equal(t, 2, p.MPPotions)
	assert.GreaterOrEqual(t, p.MP, 60)
	assert.Contains(t, eventKinds(res.Events), EventPotionUsed)
}

func TestSwitchWeapon(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()

	assert.False(t, w.SwitchWeapon("Bow"), "locked")
	assert.Equal(t, "Sword", p.Weapon)

	p.Weapons = append(p.Weapons, "Bow")
	p.AttackCooldown = 10
	require.True(t, w.SwitchWeapon("Bow"))
	assert.Equal(t, "Bow", p.Weapon)
	assert.Zero(t, p.AttackCooldown)

	in := idle()
	in.Set(core.WeaponActions[0])
	w.Advance(1, in, true)
	assert.Equal(t, "Sword", p.Weapon)
	assert.Contains(t, p.Weapons, p.Weapon)
}

func TestUpgradeSkillGates(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()

	assert.False(t, w.UpgradeSkill("PowerStrike"), "no skill points")

	p.SP = 20
	require.True(t, w.UpgradeSkill("PowerStrike"))
	assert.Equal(t, 1, p.Skills["PowerStrike"])
	assert.Equal(t, 19, p.SP)

	assert.False(t, w.UpgradeSkill("SlashBlast"), "level too low")
	p.Level = 10
	require.True(t, w.UpgradeSkill("SlashBlast"))

	assert.False(t, w.UpgradeSkill("DoubleShot"), "another class")
	assert.False(t, w.UpgradeSkill("Nope"))

	p.Skills["PowerStrike"] = 10
	assert.False(t, w.UpgradeSkill("PowerStrike"), "max level")
}

func TestUpgradeSkillRequiresPrerequisite(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()
	p.SP = 5
	p.Level = 10
	assert.False(t, w.UpgradeSkill("SlashBlast"))
	assert.Equal(t, 5, p.SP)
}

func TestAssignSkillSlot(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()
	p.Skills["PowerStrike"] = 1
	p.Skills["PowerGuard"] = 1

	assert.False(t, w.AssignSkillSlot("PowerGuard", core.ActionSkill1), "passives cannot be bound")
	assert.False(t, w.AssignSkillSlot("SlashBlast", core.ActionSkill1), "unlearned")
	assert.False(t, w.AssignSkillSlot("PowerStrike", core.ActionJump), "not a skill hotkey")

	require.True(t, w.AssignSkillSlot("PowerStrike", core.ActionSkill1))
	assert.Equal(t, "PowerStrike", p.Slots[core.ActionSkill1])

	require.True(t, w.AssignSkillSlot("PowerStrike", core.ActionSkill3))
	assert.NotContains(t, p.Slots, core.ActionSkill1, "a skill moves rather than duplicates")
	act, ok := p.SlotOf("PowerStrike")
	require.True(t, ok)
	assert.Equal(t, core.ActionSkill3, act)

	require.True(t, w.AssignSkillSlot("PowerStrike", core.ActionSkill3))
	assert.Empty(t, p.Slots, "binding the same pair again clears it")
}

func TestAdvanceClass(t *testing.T) {
	w := newTestWorld(t, "Lancer")
	w.DrainEvents()
	p := w.Player()

	assert.False(t, w.AdvanceClass())
	p.Level = 30
	attack, maxHP := p.Attack, p.MaxHP

	require.True(t, w.AdvanceClass())
	assert.True(t, p.Advanced)
	assert.Equal(t, attack+20, p.Attack)
	assert.Equal(t, maxHP+200, p.MaxHP)
	assert.Equal(t, p.MaxHP, p.HP)
	assert.Equal(t, "Polearm", p.Weapon)
	assert.Contains(t, p.Weapons, "Spear")
	assert.Contains(t, eventKinds(w.DrainEvents()), EventClassAdvanced)

	assert.False(t, w.AdvanceClass(), "advancement happens once")
}

func TestShopPrices(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()

	tests := []struct {
		item ShopItem
		set  func()
		want int
	}{
		{ShopHPPotion, func() {}, 50},
		{ShopAttack, func() { p.Attack = 10 }, 100},
		{ShopAttack, func() { p.Attack = 15 }, 150},
		{ShopAttack, func() { p.Attack = 24 }, 225},
		{ShopMaxHP, func() { p.MaxHP = 100 }, 50},
		{ShopMaxHP, func() { p.MaxHP = 150 }, 60},
		{ShopMaxMP, func() { p.MaxMP = 40 }, 50},
		{ShopItem(42), func() {}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.item.String(), func(t *testing.T) {
			tc.set()
			assert.Equal(t, tc.want, w.PriceOf(tc.item))
		})
	}
}

func TestPurchase(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()

	assert.False(t, w.Purchase(ShopAttack, 100), "no gold")
	assert.False(t, w.Purchase(ShopAttack, -5))

	p.Gold = 500
	require.True(t, w.Purchase(ShopAttack, w.PriceOf(ShopAttack)))
	assert.Equal(t, 15, p.Attack)
	assert.Equal(t, 400, p.Gold)
	assert.Equal(t, 150, w.PriceOf(ShopAttack))

	require.True(t, w.Purchase(ShopMaxHP, w.PriceOf(ShopMaxHP)))
	assert.Equal(t, 150, p.MaxHP)
	assert.Equal(t, 150, p.HP)

	assert.False(t, w.Purchase(ShopHPPotion, 50), "already carrying the maximum")
	p.HPPotions = 1
	require.True(t, w.Purchase(ShopHPPotion, 50))
	assert.Equal(t, 2, p.HPPotions)
	assert.Equal(t, 300, p.Gold)
}

func TestUpgradePriceSaturates(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()

	prev := 0
	for atk := 10; atk <= 2000; atk += 5 {
		p.Attack = atk
		price := w.PriceOf(ShopAttack)
		require.GreaterOrEqual(t, price, prev, "attack %d", atk)
		prev = price
	}
	assert.Equal(t, math.MaxInt, prev)

	p.Attack = 500
	p.Gold = 1 << 40
	assert.False(t, w.Purchase(ShopAttack, w.PriceOf(ShopAttack)), "unaffordable, not negative")
	p.Attack = 100
	price := w.PriceOf(ShopAttack)
	require.Positive(t, price)
	require.True(t, w.Purchase(ShopAttack, price))
	assert.Equal(t, 105, p.Attack)
}

func TestDebugUnlockAll(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	p := w.Player()
	p.HP = 1

	w.DebugUnlockAll()
	for _, s := range w.classSkills {
		assert.Equal(t, s.MaxLevel, p.Skills[s.ID], s.ID)
	}
	assert.Len(t, p.Weapons, len(w.content.Weapons))
	assert.Equal(t, p.MaxHP, p.HP)
	assert.Equal(t, p.MaxPotions, p.HPPotions)
	assert.GreaterOrEqual(t, p.Level, w.tuning.Player.AdvanceLevel)
	assert.Greater(t, p.MaxHP, 100)
	assert.Greater(t, p.SP, 0)
	assert.GreaterOrEqual(t, p.Gold, debugGold)
	assert.True(t, w.AdvanceClass(), "debug unlock reaches the advancement level")
}

func TestRestartKeepsClass(t *testing.T) {
	w := newTestWorld(t, "Mage")
	w.damagePlayer(10000, nil, 1)
	require.True(t, w.Player().Dead)

	require.True(t, w.Restart(""))
	assert.Equal(t, "Mage", w.Player().Class)
	assert.False(t, w.Player().Dead)
	assert.Equal(t, 1, w.Stage())

	require.True(t, w.Restart("Gunner"))
	assert.Equal(t, "Gunner", w.Player().Class)
	assert.False(t, w.Restart("Bard"))
}
