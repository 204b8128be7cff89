package component

import (
	"time"
)

// PlayerComponent holds the state only the player carries.
type PlayerComponent struct {
	// FaceX and FaceY remember the last non-zero move direction;
	// a dodge with no movement input dashes this way
	FaceX, FaceY float64

	// Dodging is true during the dash phase
	Dodging bool

	// DodgeRemaining is the dash countdown
	DodgeRemaining time.Duration

	// DodgeTimer blocks the next dodge until it expires
	DodgeTimer time.Duration

	// DodgeDirX and DodgeDirY fix the dash direction at dodge start
	DodgeDirX, DodgeDirY float64
}
