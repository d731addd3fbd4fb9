package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/quest"
	questmock "github.com/vovakirdan/tui-rpg/internal/quest/mock"
)

func TestMeleeAttackLandsAfterWindup(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	p := w.Player()
	e := placeEnemy(w, "Slime", p.X+p.W+10)

	in := idle()
	in.Set(core.ActionAttack)
	w.Advance(1, in, true)
	assert.Equal(t, 1000, e.HP, "hit before wind-up")
	assert.Equal(t, 20, p.AttackCooldown)

	for range w.tuning.Combat.MeleeWindup {
		w.Advance(1, idle(), true)
	}
	assert.Less(t, e.HP, 1000)
	assert.Zero(t, e.VX, "status-locked enemies take no knockback")
}

func TestMeleeMissesBehind(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	p := w.Player()
	e := placeEnemy(w, "Slime", p.X+p.W+400)

	in := idle()
	in.Set(core.ActionAttack)
	w.Advance(1, in, true)
	for range 10 {
		w.Advance(1, idle(), true)
	}
	assert.Equal(t, 1000, e.HP)
}

func TestPogoBounce(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	w.platforms = w.platforms[:1]
	p := w.Player()
	e := placeEnemy(w, "Slime", p.X)
	p.Y = e.Y - 30 - p.H
	p.VY = 0
	p.Grounded = false

	in := idle()
	in.Set(core.ActionAttack)
	in.Hold(core.ActionDown)
	w.Advance(1, in, true)

	hold := idle()
	hold.Hold(core.ActionDown)
	for range w.tuning.Combat.MeleeWindup {
		w.Advance(1, hold, true)
	}
	assert.Less(t, e.HP, 1000)
	assert.Less(t, p.VY, 0.0, "a downward hit bounces the player up")
	assert.Zero(t, p.Jumps)
}

func TestTipMultiplier(t *testing.T) {
	w := newTestWorld(t, "Lancer")
	quiet(w)
	p := w.Player()
	p.Facing = 1
	reach := 200.0
	front := p.X + p.W
	c := w.tuning.Combat

	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"hugging", 20, c.ClosePenalty},
		{"middle", 100, 1},
		{"tip", 180, c.TipBonus},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Enemy{X: front + tc.dist - 10, W: 20, H: 20}
			assert.Equal(t, tc.want, w.tipMult(e, reach))
		})
	}
}

func TestRangedAttackSpawnsProjectile(t *testing.T) {
	w := newTestWorld(t, "Archer")
	quiet(w)
	p := w.Player()
	e := placeEnemy(w, "Slime", p.X+p.W+150)

	in := idle()
	in.Set(core.ActionAttack)
	res := w.Advance(1, in, true)
	require.Len(t, res.Snapshot.Projectiles, 1)
	shot := res.Snapshot.Projectiles[0]
	assert.False(t, shot.Enemy)
	assert.Equal(t, "Bow", shot.Weapon)
	assert.Greater(t, shot.VX, 0.0)

	for range 30 {
		w.Advance(1, idle(), true)
	}
	assert.Less(t, e.HP, 1000)
	assert.Empty(t, w.projectiles)
}

func TestKillGrantsExpAndLoot(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	w.DrainEvents()
	e := placeEnemy(w, "Slime", 600)
	e.HP = 1
	e.Exp = 40

	dealt := w.applyDamage(e, 10, 1, config.StatusSpec{})
	require.Positive(t, dealt)

	p := w.Player()
	assert.True(t, e.Dead)
	assert.Equal(t, w.tuning.Combat.DeathFade, e.Fade)
	assert.Equal(t, 40, p.Exp)
	assert.Equal(t, 1, p.Kills)
	assert.Contains(t, eventKinds(w.DrainEvents()), EventEnemyKilled)

	// A second hit on a dead enemy is ignored.
	assert.Zero(t, w.applyDamage(e, 10, 1, config.StatusSpec{}))
	assert.Equal(t, 40, p.Exp)
}

func TestStatusApplication(t *testing.T) {
	w := newTestWorld(t, "Mage")
	quiet(w)
	e := placeEnemy(w, "Slime", 600)
	e.Freeze = 0

	w.applyDamage(e, 1, 1, config.StatusSpec{Stun: 30, Slow: 60})
	assert.Equal(t, 30, e.Stun)
	assert.Equal(t, 60, e.Slow)

	w.think(e, 1)
	assert.Equal(t, AIStunned, e.State)
	assert.Equal(t, 29, e.Stun)
	assert.Zero(t, e.VX)
}

func TestBossKillDropsBundle(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	e := placeEnemy(w, "Boar", 600)
	e.Boss = true
	e.HP = 1
	e.Exp = 1000

	w.applyDamage(e, 10, 1, config.StatusSpec{})

	var gold, potions, weapons int
	for _, it := range w.items {
		switch it.Kind {
		case ItemGold:
			gold++
		case ItemHPPotion, ItemMPPotion:
			potions++
		case ItemWeapon:
			weapons++
			assert.False(t, w.Player().HasWeapon(it.Weapon))
		}
	}
	assert.GreaterOrEqual(t, gold, 1)
	assert.GreaterOrEqual(t, potions, w.tuning.Loot.BossPotions)
	assert.Equal(t, 1, weapons)
	assert.Contains(t, eventKinds(w.DrainEvents()), EventBossDefeated)
}

func TestEnemyMeleeHitsPlayer(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	p := w.Player()
	e := placeEnemy(w, "Boar", p.X+p.W+5)
	e.Freeze = 0
	e.AttackTimer = 0

	w.think(e, 1)
	assert.Equal(t, AIAttacking, e.State)
	assert.Less(t, p.HP, p.MaxHP)
	assert.Equal(t, w.tuning.AI.AttackInterval, e.AttackTimer)
}

func TestEnemyPatrolsWhenFar(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	p := w.Player()
	e := placeEnemy(w, "Snail", p.X+2000)
	e.Freeze = 0
	e.PatrolMin, e.PatrolMax = e.X-100, e.X+100

	w.think(e, 1)
	assert.Equal(t, AIPatrol, e.State)

	e.X = e.PatrolMin - 1
	w.think(e, 1)
	assert.Equal(t, 1.0, e.Facing)
}

func TestRangedEnemyShoots(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	p := w.Player()
	e := placeEnemy(w, "Cactus", p.X+300)
	e.Freeze = 0
	e.AttackTimer = 0

	w.think(e, 1)
	require.Len(t, w.projectiles, 1)
	shot := w.projectiles[0]
	assert.True(t, shot.Enemy)
	assert.Equal(t, e.ID, shot.Owner)
	assert.Less(t, shot.VX, 0.0)
}

func TestQuestItemPickup(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := questmock.NewMockTracker(ctrl)
	tracker.EXPECT().Collect("Slime").Return(quest.Update{
		Quest: quest.Quest{
			Title:        "Sticky Business",
			ItemName:     "Water Drop",
			TargetCount:  1,
			CurrentCount: 1,
			Completed:    true,
			RewardExp:    30,
			RewardGold:   10,
		},
		Completed: true,
	}, true)

	w := newTestWorld(t, "Warrior", WithQuestTracker(tracker))
	quiet(w)
	w.DrainEvents()
	p := w.Player()
	w.items = append(w.items, &Item{
		ID: w.newID(), Kind: ItemQuest, X: p.X, Y: p.Y + 10, W: 20, H: 20,
		Name: "Water Drop", Monster: "Slime", Value: 1, Life: 100,
	})

	res := w.Advance(1, idle(), true)
	kinds := eventKinds(res.Events)
	assert.Contains(t, kinds, EventQuestProgress)
	assert.Contains(t, kinds, EventQuestComplete)
	assert.Equal(t, 30, p.Exp)
	assert.Equal(t, 10, p.Gold)
	assert.Empty(t, w.items)
}

func TestKillAsksTrackerForQuestDrop(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := questmock.NewMockTracker(ctrl)
	tracker.EXPECT().Target("Slime").Return("Water Drop", true)

	w := newTestWorld(t, "Warrior", WithQuestTracker(tracker))
	quiet(w)
	w.tuning.Loot.QuestDropChance = 1
	e := placeEnemy(w, "Slime", 600)
	e.HP = 1

	w.applyDamage(e, 10, 1, config.StatusSpec{})

	var found bool
	for _, it := range w.items {
		if it.Kind == ItemQuest {
			found = true
			assert.Equal(t, "Water Drop", it.Name)
			assert.Equal(t, "Slime", it.Monster)
		}
	}
	assert.True(t, found)
}

func TestPotionPickupRespectsCap(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	quiet(w)
	p := w.Player()
	require.Equal(t, p.MaxPotions, p.HPPotions)

	it := &Item{Kind: ItemHPPotion, Value: 1, Life: 10}
	w.pickup(it)
	assert.Equal(t, p.MaxPotions, p.HPPotions)
	assert.Equal(t, 10, it.Life, "full inventory leaves the potion on the ground")

	p.HPPotions--
	w.pickup(it)
	assert.Equal(t, p.MaxPotions, p.HPPotions)
	assert.Zero(t, it.Life)
}
