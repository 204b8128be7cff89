package component

import (
	"time"
)

// Archetype selects the enemy attack strategy.
type Archetype uint8

const (
	ArchetypeHornet Archetype = iota
	ArchetypeSpider
	ArchetypeBeetle
)

// String returns the archetype name for logs.
func (a Archetype) String() string {
	switch a {
	case ArchetypeHornet:
		return "hornet"
	case ArchetypeSpider:
		return "spider"
	case ArchetypeBeetle:
		return "beetle"
	}
	return "unknown"
}

// BehaviorState is the distance-driven enemy state.
type BehaviorState uint8

const (
	BehaviorIdle BehaviorState = iota
	BehaviorSeeking
	BehaviorAttacking
	BehaviorDefending
)

// BehaviorComponent holds the enemy state machine and its ranges.
type BehaviorComponent struct {
	Archetype Archetype
	State     BehaviorState

	// DetectionRange wakes the enemy; beyond it the enemy idles
	DetectionRange float64

	// AttackRange enables attacks and halves approach speed
	AttackRange float64

	// StopRange halts the approach entirely
	StopRange float64

	// Bounty is the score awarded on kill
	Bounty int

	// Volley is the position inside the current attack cycle,
	// 0 when no cycle is running
	Volley int

	// VolleyRemaining separates volleys inside one cycle
	VolleyRemaining time.Duration

	// DefendRemaining is the active guard countdown; while positive the
	// enemy reflects incoming projectiles instead of taking damage
	DefendRemaining time.Duration
}

// Defending reports whether the guard window is open.
func (b BehaviorComponent) Defending() bool {
	return b.DefendRemaining > 0
}
