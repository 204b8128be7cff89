package parameter

import "time"

// Score and Session
const (
	// ScoreInterval is the period of the passive score tick; enemy
	// spawning shares this timer
	ScoreInterval = 1000 * time.Millisecond

	// GameOverFadeRate is the overlay fade-in speed after game over,
	// in alpha units per second (capped at GameOverFadeMax)
	GameOverFadeRate = 64.0
	GameOverFadeMax  = 255.0
)
