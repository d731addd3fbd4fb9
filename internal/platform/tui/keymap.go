package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rpg/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left     key.Binding
	Right    key.Binding
	Jump     key.Binding
	Down     key.Binding
	Attack   key.Binding
	PotionHP key.Binding
	PotionMP key.Binding
	Skills   [5]key.Binding
	Weapons  [4]key.Binding

	Pause      key.Binding
	SkillPanel key.Binding
	Shop       key.Binding
	Advance    key.Binding
	Restart    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Jump, k.Attack, k.Skills[0], k.PotionHP, k.SkillPanel, k.Shop, k.Pause, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Down, k.Attack},
		{k.Skills[0], k.Skills[1], k.Skills[2], k.Skills[3], k.Skills[4]},
		{k.PotionHP, k.PotionMP, k.Weapons[0], k.Advance},
		{k.SkillPanel, k.Shop, k.Pause, k.Restart, k.Quit},
	}
}

// DefaultGameKeyMap returns the default bindings.
func DefaultGameKeyMap() GameKeyMap {
	skill := func(k, n string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, "skill "+n))
	}
	weapon := func(k string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp("1-4", "weapon"))
	}
	return GameKeyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "move")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Jump:     key.NewBinding(key.WithKeys(" ", "up", "k"), key.WithHelp("space", "jump")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down attack")),
		Attack:   key.NewBinding(key.WithKeys("z", "x"), key.WithHelp("z", "attack")),
		PotionHP: key.NewBinding(key.WithKeys("q"), key.WithHelp("q/w", "potions")),
		PotionMP: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "mp potion")),
		Skills:   [5]key.Binding{skill("a", "1"), skill("s", "2"), skill("d", "3"), skill("f", "4"), skill("g", "5")},
		Weapons:  [4]key.Binding{weapon("1"), weapon("2"), weapon("3"), weapon("4")},

		Pause:      key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		SkillPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "skills")),
		Shop:       key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "shop")),
		Advance:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "advance class")),
		Restart:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Action maps a key to a simulation action. It returns ActionNone for keys
// that are not part of play.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Attack):
		return core.ActionAttack
	case key.Matches(msg, k.PotionHP):
		return core.ActionPotionHP
	case key.Matches(msg, k.PotionMP):
		return core.ActionPotionMP
	}
	for i, b := range k.Skills {
		if key.Matches(msg, b) {
			return core.SkillActions[i]
		}
	}
	for i, b := range k.Weapons {
		if key.Matches(msg, b) {
			return core.WeaponActions[i]
		}
	}
	return core.ActionNone
}

// holdTicks is how long a key counts as held after its last press.
// Terminals only report presses, so holding is inferred from key repeat.
var holdTicks = map[core.Action]int{
	core.ActionLeft:   10,
	core.ActionRight:  10,
	core.ActionDown:   10,
	core.ActionAttack: 10,
	core.ActionJump:   3,
}

// KeyState turns a stream of key presses into per-tick input frames.
type KeyState struct {
	pressed []core.Action
	held    map[core.Action]int
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{held: make(map[core.Action]int)}
}

// Press records a key press.
func (s *KeyState) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	s.pressed = append(s.pressed, a)
	if n, ok := holdTicks[a]; ok {
		s.held[a] = n
		// Opposite directions cancel.
		switch a {
		case core.ActionLeft:
			delete(s.held, core.ActionRight)
		case core.ActionRight:
			delete(s.held, core.ActionLeft)
		}
	}
}

// Frame builds the input for one tick and ages held keys.
func (s *KeyState) Frame() core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range s.pressed {
		in.Set(a)
	}
	s.pressed = s.pressed[:0]
	for a, n := range s.held {
		in.Hold(a)
		if n <= 1 {
			delete(s.held, a)
		} else {
			s.held[a] = n - 1
		}
	}
	return in
}

// Reset forgets every key.
func (s *KeyState) Reset() {
	s.pressed = s.pressed[:0]
	clear(s.held)
}
