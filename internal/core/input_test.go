package core

import "testing"

func TestInputFrameHeldVsPressed(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionRight)
	f.Set(ActionAttack)

	if !f.IsHeld(ActionRight) || f.Has(ActionRight) {
		t.Error("Right should be held, not pressed")
	}
	if !f.Has(ActionAttack) || f.IsHeld(ActionAttack) {
		t.Error("Attack should be pressed, not held")
	}

	f.ClearPressed()
	if f.Has(ActionAttack) {
		t.Error("ClearPressed() should drop edge events")
	}
	if !f.IsHeld(ActionRight) {
		t.Error("ClearPressed() should keep held keys")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) || f.IsHeld(ActionJump) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set() on zero frame should allocate")
	}
}

func TestInputFrameAimAndClone(t *testing.T) {
	f := NewInputFrame()
	f.SetAim(120, 340)
	f.Hold(ActionLeft)

	c := f.Clone()
	f.Clear()

	x, y, ok := c.Aim()
	if !ok || x != 120 || y != 340 {
		t.Errorf("Aim() = (%v, %v, %v), expected (120, 340, true)", x, y, ok)
	}
	if !c.IsHeld(ActionLeft) {
		t.Error("Clone() should be independent of Clear()")
	}
	if _, _, ok := f.Aim(); ok {
		t.Error("Clear() should drop the aim point")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionSkill1:  "Skill1",
		ActionSkill5:  "Skill5",
		ActionWeapon3: "Weapon3",
		ActionAttack:  "Attack",
		Action(999):   "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	tests := []struct {
		ms       float64
		expected float64
	}{
		{1000.0 / 60.0, 1},
		{100, 2},
		{-5, 0},
	}
	for _, tc := range tests {
		if got := FrameDelta(tc.ms); got != tc.expected {
			t.Errorf("FrameDelta(%v) = %v, expected %v", tc.ms, got, tc.expected)
		}
	}
}
