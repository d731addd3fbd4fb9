package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('l'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('z'), core.ActionAttack},
		{runeKey('q'), core.ActionPotionHP},
		{runeKey('w'), core.ActionPotionMP},
		{runeKey('a'), core.ActionSkill1},
		{runeKey('g'), core.ActionSkill5},
		{runeKey('1'), core.ActionWeapon1},
		{runeKey('4'), core.ActionWeapon4},
		{runeKey('o'), core.ActionNone},
		{tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
	}
	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.want {
			t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestKeyStatePressIsOneShot(t *testing.T) {
	s := NewKeyState()
	s.Press(core.ActionSkill1)

	in := s.Frame()
	if !in.Has(core.ActionSkill1) {
		t.Fatal("first frame should carry the press")
	}
	if in.IsHeld(core.ActionSkill1) {
		t.Error("skills are not held")
	}
	if s.Frame().Has(core.ActionSkill1) {
		t.Error("press should not repeat on the next frame")
	}
}

func TestKeyStateHoldExpires(t *testing.T) {
	s := NewKeyState()
	s.Press(core.ActionRight)

	for i := range holdTicks[core.ActionRight] {
		if !s.Frame().IsHeld(core.ActionRight) {
			t.Fatalf("right released early at frame %d", i)
		}
	}
	if s.Frame().IsHeld(core.ActionRight) {
		t.Error("right still held after its hold window")
	}
}

func TestKeyStateRepeatExtendsHold(t *testing.T) {
	s := NewKeyState()
	s.Press(core.ActionLeft)
	for range 8 {
		s.Frame()
	}
	s.Press(core.ActionLeft)
	for range 5 {
		if !s.Frame().IsHeld(core.ActionLeft) {
			t.Fatal("key repeat should keep left held")
		}
	}
}

func TestKeyStateOppositeDirectionsCancel(t *testing.T) {
	s := NewKeyState()
	s.Press(core.ActionLeft)
	s.Press(core.ActionRight)

	in := s.Frame()
	if in.IsHeld(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !in.IsHeld(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestKeyStateReset(t *testing.T) {
	s := NewKeyState()
	s.Press(core.ActionAttack)
	s.Press(core.ActionJump)
	s.Reset()

	in := s.Frame()
	if in.Has(core.ActionJump) || in.IsHeld(core.ActionAttack) {
		t.Error("Reset should forget presses and holds")
	}
}

func TestKeyStateIgnoresNone(t *testing.T) {
	s := NewKeyState()
	s.Press(core.ActionNone)
	if s.Frame().Has(core.ActionNone) {
		t.Error("ActionNone should not be recorded")
	}
}
