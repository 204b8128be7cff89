package component

import (
	"time"
)

// CombatComponent holds attack timing and projectile parameters.
type CombatComponent struct {
	// Damage dealt per projectile hit
	Damage int

	// AttackCooldown is the full interval between attacks
	AttackCooldown time.Duration

	// AttackRemaining is the active cooldown countdown
	AttackRemaining time.Duration

	// CanAttack is true exactly when AttackRemaining has expired
	CanAttack bool

	// Attacking is true while an attack cycle is in progress
	Attacking bool

	// ShotSpeed is the launch speed of fired projectiles
	ShotSpeed float64
}
