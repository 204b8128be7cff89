package system

import (
	"math"
	"time"

	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/parameter"
)

// CooldownSystem counts every timer down before the rest of the tick
// reads them: attack cooldowns, invulnerability grace, volley spacing,
// guard windows and the player's dodge clocks. It also drives the
// visibility flicker while grace is active.
type CooldownSystem struct {
	ctx *engine.GameContext
}

// NewCooldownSystem creates the timer system
func NewCooldownSystem(ctx *engine.GameContext) *CooldownSystem {
	return &CooldownSystem{ctx: ctx}
}

// Name returns the system's name
func (s *CooldownSystem) Name() string {
	return "cooldown"
}

// Priority returns the system's priority
func (s *CooldownSystem) Priority() int {
	return parameter.PriorityCooldown
}

// Update advances all timers by dt
func (s *CooldownSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Components

	// 1. Attack cooldowns
	for _, e := range c.Combat.GetAllEntities() {
		combat, _ := c.Combat.GetComponent(e)
		combat.AttackRemaining -= dt
		if combat.AttackRemaining < 0 {
			combat.AttackRemaining = 0
		}
		combat.CanAttack = combat.AttackRemaining == 0
		c.Combat.SetComponent(e, combat)
	}

	// 2. Invulnerability grace and blink
	for _, e := range c.Health.GetAllEntities() {
		health, _ := c.Health.GetComponent(e)
		health.InvulnRemaining -= dt
		if health.InvulnRemaining < 0 {
			health.InvulnRemaining = 0
		}
		if health.InvulnRemaining > 0 {
			health.Visible = math.Sin(health.InvulnRemaining.Seconds()*parameter.BlinkRate) >= 0
		} else {
			health.Visible = true
		}
		c.Health.SetComponent(e, health)
	}

	// 3. Volley spacing and guard windows
	for _, e := range c.Behavior.GetAllEntities() {
		beh, _ := c.Behavior.GetComponent(e)
		beh.VolleyRemaining -= dt
		if beh.VolleyRemaining < 0 {
			beh.VolleyRemaining = 0
		}
		beh.DefendRemaining -= dt
		if beh.DefendRemaining < 0 {
			beh.DefendRemaining = 0
		}
		c.Behavior.SetComponent(e, beh)
	}

	// 4. Dodge clocks
	for _, e := range c.Player.GetAllEntities() {
		pc, _ := c.Player.GetComponent(e)
		pc.DodgeTimer -= dt
		if pc.DodgeTimer < 0 {
			pc.DodgeTimer = 0
		}
		pc.DodgeRemaining -= dt
		if pc.DodgeRemaining <= 0 {
			pc.DodgeRemaining = 0
			pc.Dodging = false
		}
		c.Player.SetComponent(e, pc)
	}
}
