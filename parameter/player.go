package parameter

import "time"

// Player Vitals
const (
	PlayerMaxHealth = 6

	// PlayerGraceDuration is the invulnerability window after a hit
	PlayerGraceDuration = 1000 * time.Millisecond

	PlayerKnockbackResistance = 70.0
)

// Player Movement
const (
	// PlayerSpeed is the walk speed in world units per second
	PlayerSpeed = 100.0
)

// Player Attack
const (
	PlayerAttackCooldown = 250 * time.Millisecond
	PlayerShotSpeed      = 500.0
	PlayerShotDamage     = 1
)

// Player Dodge
const (
	// PlayerDodgeCooldown is the minimum interval between dodge starts
	PlayerDodgeCooldown = 1200 * time.Millisecond

	// PlayerDodgeDuration is the dash length; the player is invulnerable
	// for the whole dash
	PlayerDodgeDuration = 400 * time.Millisecond

	// PlayerDodgeSpeed replaces walk speed while dashing
	PlayerDodgeSpeed = 200.0
)
