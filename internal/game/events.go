package game

import "fmt"

// EventKind identifies a semantic game event for log, sound and HUD hosts.
type EventKind int

const (
	EventEnemyHit EventKind = iota
	EventEnemyKilled
	EventBossDefeated
	EventPlayerHit
	EventPlayerEvaded
	EventGameOver
	EventLevelUp
	EventItemPickup
	EventQuestProgress
	EventQuestComplete
	EventSkillCast
	EventSkillFailed
	EventStageLoaded
	EventStageCleared
	EventBossGate
	EventWeaponUnlocked
	EventClassAdvanced
	EventPotionUsed
	EventJump
)

var eventNames = [...]string{
	EventEnemyHit:       "enemy_hit",
	EventEnemyKilled:    "enemy_killed",
	EventBossDefeated:   "boss_defeated",
	EventPlayerHit:      "player_hit",
	EventPlayerEvaded:   "player_evaded",
	EventGameOver:       "game_over",
	EventLevelUp:        "level_up",
	EventItemPickup:     "item_pickup",
	EventQuestProgress:  "quest_progress",
	EventQuestComplete:  "quest_complete",
	EventSkillCast:      "skill_cast",
	EventSkillFailed:    "skill_failed",
	EventStageLoaded:    "stage_loaded",
	EventStageCleared:   "stage_cleared",
	EventBossGate:       "boss_gate",
	EventWeaponUnlocked: "weapon_unlocked",
	EventClassAdvanced:  "class_advanced",
	EventPotionUsed:     "potion_used",
	EventJump:           "jump",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is emitted by the world during a tick or command and drained by
// Advance.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Subject string // monster type, skill id, item name, weapon id...
	Value   int    // damage, exp, gold, level...
	Message string
}

func (w *World) emit(kind EventKind, subject string, value int, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	w.events = append(w.events, Event{
		Kind:    kind,
		Tick:    w.tick,
		Subject: subject,
		Value:   value,
		Message: msg,
	})
}

// DrainEvents returns and clears events raised outside Advance, such as by
// commands.
func (w *World) DrainEvents() []Event {
	ev := w.events
	w.events = nil
	return ev
}
