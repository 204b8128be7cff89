package event

// EventType represents the type of game event
type EventType int

const (
	// EventHit requests damage application on an entity
	// Trigger: ProjectileSystem on overlap
	// Consumer: CombatSystem | Payload: HitPayload
	EventHit EventType = iota

	// EventShot announces a projectile launch
	// Trigger: PlayerSystem, BehaviorSystem, CombatSystem (reflection)
	// Consumer: frontend cue drain | Payload: ShotPayload
	EventShot

	// EventDamaged announces health actually lost
	// Trigger: CombatSystem after a real hit
	// Consumer: frontend cue drain | Payload: DamagedPayload
	EventDamaged

	// EventKill announces an enemy death with its bounty
	// Trigger: DeathSystem
	// Consumer: ScoreSystem, frontend cue drain | Payload: KillPayload
	EventKill

	// EventDodge announces a player dodge start
	// Trigger: PlayerSystem
	// Consumer: frontend cue drain | Payload: nil
	EventDodge

	// EventGameOver announces the player's death, fired once
	// Trigger: DeathSystem
	// Consumer: frontend cue drain | Payload: nil
	EventGameOver
)

// String returns the event name for logs.
func (t EventType) String() string {
	switch t {
	case EventHit:
		return "hit"
	case EventShot:
		return "shot"
	case EventDamaged:
		return "damaged"
	case EventKill:
		return "kill"
	case EventDodge:
		return "dodge"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}
