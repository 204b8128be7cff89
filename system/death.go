package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
)

// DeathSystem is the single reaper. Everything whose health reached
// zero this tick funnels through here: enemies pay their bounty, spent
// projectiles vanish, and the player flips the run into game over but
// stays in the world for the fade.
type DeathSystem struct {
	ctx *engine.GameContext
}

// NewDeathSystem creates the death sweep system
func NewDeathSystem(ctx *engine.GameContext) *DeathSystem {
	return &DeathSystem{ctx: ctx}
}

// Name returns the system's name
func (s *DeathSystem) Name() string {
	return "death"
}

// Priority returns the system's priority
func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

// Update sweeps zero-health entities out of the world
func (s *DeathSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Components

	// 1. Collect first, remove after, so the sweep never mutates what
	// it is iterating
	var doomed []core.Entity
	for _, e := range c.Health.GetAllEntities() {
		health, _ := c.Health.GetComponent(e)
		if !health.Dead() {
			continue
		}

		if e == s.ctx.Player {
			if !s.ctx.GameOver {
				s.ctx.GameOver = true
				s.ctx.Events.Push(event.EventGameOver, nil)
			}
			continue
		}

		if beh, ok := c.Behavior.GetComponent(e); ok {
			s.ctx.Events.Push(event.EventKill, event.KillPayload{
				Entity: e,
				Bounty: beh.Bounty,
			})
			logrus.Debugf("killed %s, bounty %d", beh.Archetype, beh.Bounty)
		}
		doomed = append(doomed, e)
	}

	// 2. Remove
	for _, e := range doomed {
		s.ctx.Roster.Drop(e)
		w.DestroyEntity(e)
	}
}
