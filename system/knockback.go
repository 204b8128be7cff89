package system

import (
	"time"

	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/physics"
)

// KnockbackSystem plays out pending impulses. Force decays against the
// entity's resistance while the displacement it drives is capped by the
// travel budget, so heavy hits shove hard and settle fast.
type KnockbackSystem struct {
	ctx *engine.GameContext
}

// NewKnockbackSystem creates the knockback system
func NewKnockbackSystem(ctx *engine.GameContext) *KnockbackSystem {
	return &KnockbackSystem{ctx: ctx}
}

// Name returns the system's name
func (s *KnockbackSystem) Name() string {
	return "knockback"
}

// Priority returns the system's priority
func (s *KnockbackSystem) Priority() int {
	return parameter.PriorityKnockback
}

// Update advances every active impulse by one tick
func (s *KnockbackSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Components
	dtSec := dt.Seconds()

	for _, e := range c.Knockback.GetAllEntities() {
		kb, _ := c.Knockback.GetComponent(e)
		if !kb.Active() {
			continue
		}
		health, ok := c.Health.GetComponent(e)
		if ok && health.Dead() {
			continue
		}
		kin, hasKin := c.Kinetic.GetComponent(e)
		col, hasCol := c.Collider.GetComponent(e)
		if !hasKin || !hasCol {
			continue
		}

		// 1. Displacement for this tick, clamped to the travel budget
		travel := kb.Force * parameter.KnockbackSpeedScale * dtSec
		if remaining := kb.MaxTravel - kb.Travelled; travel > remaining {
			travel = remaining
		}

		// 2. Shove through the collision resolver
		if travel > 0 {
			dx := kb.DirX * travel
			dy := kb.DirY * travel
			obstacles := obstaclesFor(s.ctx, e, kin.X, kin.Y, travel)
			physics.Move(&kin, col, dx, dy, obstacles)
			kb.Travelled += travel
			c.Kinetic.SetComponent(e, kin)
		}

		// 3. Decay
		kb.Force -= kb.Resistance * dtSec
		if kb.Force < 0 {
			kb.Force = 0
		}
		c.Knockback.SetComponent(e, kb)
	}
}
