package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
)

var classIDs = []string{"Warrior", "Lancer", "Archer", "Gunner", "Mage"}

var fuzzActions = []core.Action{
	core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionDown, core.ActionAttack,
	core.ActionSkill1, core.ActionSkill2, core.ActionSkill3, core.ActionSkill4, core.ActionSkill5,
	core.ActionPotionHP, core.ActionPotionMP, core.ActionWeapon1, core.ActionWeapon2,
}

func drawInput(t *rapid.T) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range rapid.SliceOfN(rapid.SampledFrom(fuzzActions), 0, 4).Draw(t, "pressed") {
		in.Set(a)
	}
	for _, a := range rapid.SliceOfN(rapid.SampledFrom(fuzzActions[:5]), 0, 3).Draw(t, "held") {
		in.Hold(a)
	}
	return in
}

// TestInvariantsUnderRandomPlay drives a world with random input and
// commands and checks the player invariants after every tick.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		class := rapid.SampledFrom(classIDs).Draw(t, "class")
		w := New(config.MustDefaultContent(), config.DefaultTuningConfig())
		require.True(t, w.Reset(class, rapid.Int64().Draw(t, "seed")))
		w.Player().SP = 30
		w.Player().Gold = 1000

		maxStage, advanced := 1, false
		steps := rapid.IntRange(50, 300).Draw(t, "steps")
		for i := range steps {
			switch rapid.IntRange(0, 9).Draw(t, "command") {
			case 0:
				w.UpgradeSkill(rapid.SampledFrom(w.classSkills).Draw(t, "skill").ID)
			case 1:
				s := rapid.SampledFrom(w.classSkills).Draw(t, "slotSkill")
				w.AssignSkillSlot(s.ID, rapid.SampledFrom(core.SkillActions).Draw(t, "slot"))
			case 2:
				item := ShopItem(rapid.IntRange(0, 4).Draw(t, "shop"))
				w.Purchase(item, w.PriceOf(item))
			case 3:
				w.Player().Level += rapid.IntRange(0, 10).Draw(t, "levels")
				w.AdvanceClass()
			}

			dt := rapid.Float64Range(0, 3).Draw(t, "dt")
			res := w.Advance(dt, drawInput(t), true)
			p := w.Player()

			if p.HP < 0 || p.HP > p.MaxHP {
				t.Fatalf("tick %d: hp %d outside [0, %d]", i, p.HP, p.MaxHP)
			}
			if p.MP < 0 || p.MP > p.MaxMP {
				t.Fatalf("tick %d: mp %d outside [0, %d]", i, p.MP, p.MaxMP)
			}
			if p.HPPotions > p.MaxPotions || p.MPPotions > p.MaxPotions {
				t.Fatalf("tick %d: potions %d/%d over cap %d", i, p.HPPotions, p.MPPotions, p.MaxPotions)
			}
			if !p.HasWeapon(p.Weapon) {
				t.Fatalf("tick %d: equipped %s is not unlocked", i, p.Weapon)
			}
			if p.MaxStage < maxStage || (advanced && !p.Advanced) {
				t.Fatalf("tick %d: progress went backwards", i)
			}
			maxStage, advanced = p.MaxStage, p.Advanced

			seen := map[string]bool{}
			for _, a := range core.SkillActions {
				id, ok := p.Slots[a]
				if !ok {
					continue
				}
				if seen[id] {
					t.Fatalf("tick %d: %s bound twice", i, id)
				}
				seen[id] = true
			}
			if res.Snapshot.GameOver != p.Dead {
				t.Fatalf("tick %d: snapshot game over %v, player dead %v", i, res.Snapshot.GameOver, p.Dead)
			}
		}
	})
}

func TestUpgradePriceNeverDrops(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := config.UpgradeCost{
			Base:  rapid.IntRange(1, 500).Draw(t, "base"),
			Scale: rapid.Float64Range(1, 2).Draw(t, "scale"),
			Step:  rapid.IntRange(1, 100).Draw(t, "step"),
			From:  rapid.IntRange(0, 200).Draw(t, "from"),
		}
		cur := rapid.IntRange(0, 2000).Draw(t, "current")
		if upgradePrice(c, cur+c.Step) < upgradePrice(c, cur) {
			t.Fatalf("price dropped after buying a step")
		}
		if upgradePrice(c, cur) < c.Base {
			t.Fatalf("price below base")
		}
	})
}

func playSession(t *testing.T, class string, seed int64, ticks int) []uint64 {
	t.Helper()
	content := config.MustDefaultContent()
	w := New(content, config.DefaultTuningConfig())
	require.True(t, w.Reset(class, seed))
	pilot := NewAutopilot(content, seed)

	hashes := make([]uint64, 0, ticks/60+1)
	snap := w.Snapshot()
	for i := range ticks {
		if i%60 == 0 {
			pilot.Manage(w)
		}
		res := w.Advance(1, pilot.Next(snap), true)
		snap = res.Snapshot
		if i%60 == 0 {
			hashes = append(hashes, snap.Hash())
		}
	}
	return append(hashes, snap.Hash())
}

func TestDeterministicReplay(t *testing.T) {
	for _, class := range classIDs {
		t.Run(class, func(t *testing.T) {
			a := playSession(t, class, 1234, 1500)
			b := playSession(t, class, 1234, 1500)
			assert.Equal(t, a, b)

			c := playSession(t, class, 4321, 1500)
			assert.NotEqual(t, a[len(a)-1], c[len(c)-1], "different seeds should diverge")
		})
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	w := newTestWorld(t, "Warrior")
	s := w.Snapshot()
	s.Player.HP = -50
	s.Player.Skills["PowerStrike"] = 9
	s.Player.Weapons[0] = "Cannon"
	if len(s.Enemies) > 0 {
		s.Enemies[0].HP = -1
	}

	p := w.Player()
	assert.Equal(t, 100, p.HP)
	assert.Zero(t, p.Skills["PowerStrike"])
	assert.Equal(t, "Sword", p.Weapons[0])
	for _, e := range w.enemies {
		assert.Positive(t, e.HP)
	}
}
