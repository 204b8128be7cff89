package parameter

import "time"

// Damage and Invulnerability
const (
	// DefaultGraceDuration is the invulnerability window granted by a hit
	// when the entity does not configure its own
	DefaultGraceDuration = 250 * time.Millisecond

	// BlinkRate scales the invulnerability timer inside the sine that
	// drives the visibility flicker
	BlinkRate = 50.0
)

// Knockback
const (
	// KnockbackForceScale converts damage into initial knockback force:
	// force = damage * KnockbackForceScale / maxHealth
	KnockbackForceScale = 100.0

	// KnockbackSpeedScale converts force into displacement speed
	// (world units per second per unit of force)
	KnockbackSpeedScale = 10.0

	// KnockbackMaxTravel is the distance cap on a single knockback,
	// whatever the initial force
	KnockbackMaxTravel = 64.0

	// DefaultKnockbackResistance is the force decay rate (per second)
	// when the entity does not configure its own
	DefaultKnockbackResistance = 40.0
)
