package component

import (
	"time"
)

// HealthComponent holds hit points and the post-hit grace state.
type HealthComponent struct {
	// Current is the remaining health, never negative
	Current int

	// Max is the full health, used to scale knockback force
	Max int

	// Grace is the invulnerability window granted by each real hit
	Grace time.Duration

	// InvulnRemaining is the active invulnerability countdown
	InvulnRemaining time.Duration

	// Visible is the blink output; false hides the entity while the
	// grace flicker is in its dark phase
	Visible bool
}

// Dead reports whether the entity has run out of health.
func (h HealthComponent) Dead() bool {
	return h.Current == 0
}

// Invulnerable reports whether damage is currently ignored.
func (h HealthComponent) Invulnerable() bool {
	return h.InvulnRemaining > 0
}
