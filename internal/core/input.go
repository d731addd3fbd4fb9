package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // Left arrow, H - move left
	ActionRight           // Right arrow, L - move right
	ActionUp              // Up arrow - menu navigation
	ActionDown            // Down arrow - drop attack while airborne
	ActionJump            // Space
	ActionAttack          // Z - basic attack
	ActionPotionHP        // Q
	ActionPotionMP        // W
	ActionSkill1          // A
	ActionSkill2          // S
	ActionSkill3          // D
	ActionSkill4          // F
	ActionSkill5          // G
	ActionWeapon1         // 1
	ActionWeapon2         // 2
	ActionWeapon3         // 3
	ActionWeapon4         // 4
	ActionConfirm         // Enter
	ActionBack            // Esc, B
	ActionRestart         // R - restart after game over
	ActionQuit            // Ctrl+C
	ActionPause           // P
)

// SkillActions lists the skill hotkey actions in slot order.
var SkillActions = []Action{ActionSkill1, ActionSkill2, ActionSkill3, ActionSkill4, ActionSkill5}

// WeaponActions lists the weapon hotkey actions in slot order.
var WeaponActions = []Action{ActionWeapon1, ActionWeapon2, ActionWeapon3, ActionWeapon4}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionPotionHP:
		return "PotionHP"
	case ActionPotionMP:
		return "PotionMP"
	case ActionSkill1, ActionSkill2, ActionSkill3, ActionSkill4, ActionSkill5:
		return "Skill" + string(rune('1'+int(a-ActionSkill1)))
	case ActionWeapon1, ActionWeapon2, ActionWeapon3, ActionWeapon4:
		return "Weapon" + string(rune('1'+int(a-ActionWeapon1)))
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Held carries level-triggered keys (movement, jump, down) that stay true for
// as long as the key is down. Pressed carries edge-triggered events (attack,
// potions, skills, weapon hotkeys) that fire once.
type InputFrame struct {
	Held    map[Action]bool
	Pressed map[Action]bool

	aimX, aimY float64
	hasAim     bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held:    make(map[Action]bool),
		Pressed: make(map[Action]bool),
	}
}

// Set marks an edge-triggered action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// Hold marks a level-triggered action as currently held.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed != nil && f.Pressed[a]
}

// IsHeld returns true if the action is held down.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held != nil && f.Held[a]
}

// SetAim records a world-space pointer position.
func (f *InputFrame) SetAim(x, y float64) {
	f.aimX, f.aimY, f.hasAim = x, y, true
}

// Aim returns the pointer position and whether one was set.
func (f InputFrame) Aim() (x, y float64, ok bool) {
	return f.aimX, f.aimY, f.hasAim
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Held {
		delete(f.Held, k)
	}
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	f.hasAim = false
}

// ClearPressed drops edge-triggered events, keeping held keys.
func (f *InputFrame) ClearPressed() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	clone.aimX, clone.aimY, clone.hasAim = f.aimX, f.aimY, f.hasAim
	return clone
}
