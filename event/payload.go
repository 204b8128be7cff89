package event

import (
	"github.com/lixenwraith/warrenfall/core"
)

// HitPayload carries a projectile overlap to the combat system.
type HitPayload struct {
	// Target is the entity the projectile touched
	Target core.Entity

	// Attacker is the entity that fired the projectile
	Attacker core.Entity

	// Amount is the damage to apply; negative values clamp to zero
	Amount int

	// DirX and DirY are the projectile flight direction, used as the
	// knockback direction
	DirX, DirY float64

	// Speed is the projectile flight speed, used to pace reflections
	Speed float64
}

// ShotPayload describes a launched projectile.
type ShotPayload struct {
	Shooter core.Entity
	X, Y    float64
}

// DamagedPayload describes health actually lost.
type DamagedPayload struct {
	Target core.Entity
	Amount int
}

// KillPayload describes an enemy death.
type KillPayload struct {
	Entity core.Entity
	Bounty int
}
