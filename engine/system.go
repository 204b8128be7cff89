package engine

import (
	"time"
)

// System processes one concern of the simulation per tick.
type System interface {
	// Name identifies the system in logs
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Update advances the system by dt
	Update(w *World, dt time.Duration)
}
