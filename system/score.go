package system

import (
	"time"

	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
)

// ScoreSystem tallies the run: a survival trickle every interval plus
// the bounty of each kill. The tally freezes the moment the run ends,
// after which the system only times the game over fade.
type ScoreSystem struct {
	ctx *engine.GameContext
	acc time.Duration
}

// NewScoreSystem creates the scoring system
func NewScoreSystem(ctx *engine.GameContext) *ScoreSystem {
	return &ScoreSystem{ctx: ctx}
}

// Name returns the system's name
func (s *ScoreSystem) Name() string {
	return "score"
}

// Priority returns the system's priority
func (s *ScoreSystem) Priority() int {
	return parameter.PriorityScore
}

// Update accrues survival and bounty score while the run lasts
func (s *ScoreSystem) Update(w *engine.World, dt time.Duration) {
	if s.ctx.GameOver {
		s.ctx.GameOverElapsed += dt
		return
	}

	// 1. Bounties from this tick's kills, read without consuming so
	// the frontend still sees them as cues
	for _, ev := range s.ctx.Events.Peek(event.EventKill) {
		if payload, ok := ev.Payload.(event.KillPayload); ok {
			s.ctx.Score += payload.Bounty
		}
	}

	// 2. Survival trickle
	s.acc += dt
	for s.acc >= parameter.ScoreInterval {
		s.acc -= parameter.ScoreInterval
		s.ctx.Score++
	}
}
