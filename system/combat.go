package system

import (
	"time"

	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/vmath"
)

// CombatSystem settles the tick's hits. Guarding targets throw the
// shot back at the attacker, invulnerable targets shrug it off, and
// everyone else takes damage, a fresh grace window, and a shove.
type CombatSystem struct {
	ctx *engine.GameContext
}

// NewCombatSystem creates the combat resolution system
func NewCombatSystem(ctx *engine.GameContext) *CombatSystem {
	return &CombatSystem{ctx: ctx}
}

// Name returns the system's name
func (s *CombatSystem) Name() string {
	return "combat"
}

// Priority returns the system's priority
func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

// Update consumes and resolves every hit event queued this tick
func (s *CombatSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Components

	for _, ev := range s.ctx.Events.Take(event.EventHit) {
		payload, ok := ev.Payload.(event.HitPayload)
		if !ok {
			continue
		}
		health, ok := c.Health.GetComponent(payload.Target)
		if !ok || health.Dead() {
			continue
		}

		// 1. A guarding target reflects instead of taking the hit
		if beh, hasBeh := c.Behavior.GetComponent(payload.Target); hasBeh && beh.Defending() {
			s.reflect(c, payload)
			continue
		}

		amount := payload.Amount
		if amount < 0 {
			amount = 0
		}

		// 2. Grace window: real damage bounces off, a harmless tap
		// only stretches the window
		if health.Invulnerable() {
			if amount == 0 {
				health.InvulnRemaining = health.Grace
				c.Health.SetComponent(payload.Target, health)
			}
			continue
		}
		if amount == 0 {
			continue
		}

		// 3. Damage, fresh grace, and the knockback impulse scaled
		// against the target's bulk
		health.Current -= amount
		if health.Current < 0 {
			health.Current = 0
		}
		health.InvulnRemaining = health.Grace
		c.Health.SetComponent(payload.Target, health)

		if kb, hasKb := c.Knockback.GetComponent(payload.Target); hasKb && health.Max > 0 {
			kb.Force = float64(amount) * parameter.KnockbackForceScale / float64(health.Max)
			kb.DirX = payload.DirX
			kb.DirY = payload.DirY
			kb.Travelled = 0
			c.Knockback.SetComponent(payload.Target, kb)
		}

		s.ctx.Events.Push(event.EventDamaged, event.DamagedPayload{
			Target: payload.Target,
			Amount: amount,
		})
	}
}

// reflect throws a blocked shot back at its attacker at a fraction of
// the incoming speed. A dead or vanished attacker just absorbs the
// block.
func (s *CombatSystem) reflect(c *engine.ComponentStore, payload event.HitPayload) {
	attackerHealth, ok := c.Health.GetComponent(payload.Attacker)
	if !ok || attackerHealth.Dead() {
		return
	}
	attackerKin, hasKin := c.Kinetic.GetComponent(payload.Attacker)
	attackerCol, hasCol := c.Collider.GetComponent(payload.Attacker)
	if !hasKin || !hasCol {
		return
	}
	kin, hasKin := c.Kinetic.GetComponent(payload.Target)
	col, hasCol := c.Collider.GetComponent(payload.Target)
	combat, hasCombat := c.Combat.GetComponent(payload.Target)
	if !hasKin || !hasCol || !hasCombat {
		return
	}

	box := col.Rect(kin.X, kin.Y)
	cx, cy := box.CenterX(), box.CenterY()
	attackerBox := attackerCol.Rect(attackerKin.X, attackerKin.Y)
	dirX, dirY := vmath.Normalize(attackerBox.CenterX()-cx, attackerBox.CenterY()-cy)
	if dirX == 0 && dirY == 0 {
		return
	}

	speed := payload.Speed * parameter.BeetleReflectSpeedRatio
	engine.BuildProjectile(s.ctx, payload.Target, cx, cy, dirX, dirY, speed, combat.Damage, payload.Attacker, 0)
	s.ctx.Events.Push(event.EventShot, event.ShotPayload{Shooter: payload.Target, X: cx, Y: cy})
}
