package system

import (
	"math"
	"time"

	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/physics"
	"github.com/lixenwraith/warrenfall/vmath"
)

// BehaviorSystem drives the enemy state machines. Each archetype
// shares the same range ladder (detect, attack, stop) and differs in
// its attack: hornets snipe, spiders burst in eight directions,
// beetles walk a volley ladder and then turtle behind a guard.
type BehaviorSystem struct {
	ctx *engine.GameContext
}

// NewBehaviorSystem creates the enemy behavior system
func NewBehaviorSystem(ctx *engine.GameContext) *BehaviorSystem {
	return &BehaviorSystem{ctx: ctx}
}

// Name returns the system's name
func (s *BehaviorSystem) Name() string {
	return "behavior"
}

// Priority returns the system's priority
func (s *BehaviorSystem) Priority() int {
	return parameter.PriorityBehavior
}

// Update steps every enemy state machine against the player position
func (s *BehaviorSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Components

	playerKin, haveKin := c.Kinetic.GetComponent(s.ctx.Player)
	playerCol, haveCol := c.Collider.GetComponent(s.ctx.Player)
	playerHealth, haveHealth := c.Health.GetComponent(s.ctx.Player)
	playerAlive := haveKin && haveCol && haveHealth && !playerHealth.Dead()

	var px, py float64
	if playerAlive {
		box := playerCol.Rect(playerKin.X, playerKin.Y)
		px, py = box.CenterX(), box.CenterY()
	}

	dtSec := dt.Seconds()

	for _, e := range c.Behavior.GetAllEntities() {
		beh, _ := c.Behavior.GetComponent(e)
		health, ok := c.Health.GetComponent(e)
		if !ok || health.Dead() {
			continue
		}
		kin, _ := c.Kinetic.GetComponent(e)
		col, _ := c.Collider.GetComponent(e)
		combat, _ := c.Combat.GetComponent(e)

		// 1. Guard phase overrides everything else
		if beh.Defending() {
			beh.State = component.BehaviorDefending
			if health.InvulnRemaining < beh.DefendRemaining {
				health.InvulnRemaining = beh.DefendRemaining
			}
			kin.DirX, kin.DirY = 0, 0
			c.Behavior.SetComponent(e, beh)
			c.Health.SetComponent(e, health)
			c.Kinetic.SetComponent(e, kin)
			continue
		}

		// 2. A started volley ladder runs to completion even if the
		// player slips out of range
		if beh.Archetype == component.ArchetypeBeetle && beh.Volley > 0 {
			beh.State = component.BehaviorAttacking
			if beh.VolleyRemaining == 0 {
				s.fireBeetleVolley(e, &beh, &combat, kin, col)
			}
			kin.DirX, kin.DirY = 0, 0
			c.Behavior.SetComponent(e, beh)
			c.Combat.SetComponent(e, combat)
			c.Kinetic.SetComponent(e, kin)
			continue
		}

		if !playerAlive {
			beh.State = component.BehaviorIdle
			kin.DirX, kin.DirY = 0, 0
			c.Behavior.SetComponent(e, beh)
			c.Kinetic.SetComponent(e, kin)
			continue
		}

		// 3. Range ladder against the player center
		box := col.Rect(kin.X, kin.Y)
		ex, ey := box.CenterX(), box.CenterY()

		dist := vmath.Distance(ex, ey, px, py)
		switch {
		case dist > beh.DetectionRange:
			beh.State = component.BehaviorIdle
		case dist > beh.AttackRange:
			beh.State = component.BehaviorSeeking
		default:
			beh.State = component.BehaviorAttacking
		}

		// 4. Approach: full speed while seeking, half while attacking,
		// parked inside stop range
		dirX, dirY := vmath.Normalize(px-ex, py-ey)
		speed := 0.0
		switch beh.State {
		case component.BehaviorSeeking:
			speed = kin.Speed
		case component.BehaviorAttacking:
			if dist > beh.StopRange {
				speed = kin.Speed / 2
			}
		}
		if speed > 0 {
			dx := dirX * speed * dtSec
			dy := dirY * speed * dtSec
			obstacles := obstaclesFor(s.ctx, e, kin.X, kin.Y, vmath.Magnitude(dx, dy))
			physics.Move(&kin, col, dx, dy, obstacles)
			kin.DirX, kin.DirY = dirX, dirY
		} else {
			kin.DirX, kin.DirY = 0, 0
		}

		// 5. Attack
		if beh.State == component.BehaviorAttacking && combat.CanAttack {
			box = col.Rect(kin.X, kin.Y)
			ex, ey = box.CenterX(), box.CenterY()
			switch beh.Archetype {
			case component.ArchetypeHornet:
				aimX, aimY := vmath.Normalize(px-ex, py-ey)
				engine.BuildProjectile(s.ctx, e, ex, ey, aimX, aimY, combat.ShotSpeed, combat.Damage, s.ctx.Player, 0)
				combat.AttackRemaining = combat.AttackCooldown
				combat.CanAttack = false
				s.ctx.Events.Push(event.EventShot, event.ShotPayload{Shooter: e, X: ex, Y: ey})
			case component.ArchetypeSpider:
				for i := 0; i < parameter.SpiderBurstCount; i++ {
					shotX, shotY := vmath.Rotate(0, 1, float64(i)*2*math.Pi/float64(parameter.SpiderBurstCount))
					engine.BuildProjectile(s.ctx, e, ex, ey, shotX, shotY, combat.ShotSpeed, combat.Damage, s.ctx.Player, 0)
				}
				combat.AttackRemaining = combat.AttackCooldown
				combat.CanAttack = false
				s.ctx.Events.Push(event.EventShot, event.ShotPayload{Shooter: e, X: ex, Y: ey})
			case component.ArchetypeBeetle:
				s.fireBeetleVolley(e, &beh, &combat, kin, col)
			}
		}

		c.Behavior.SetComponent(e, beh)
		c.Combat.SetComponent(e, combat)
		c.Health.SetComponent(e, health)
		c.Kinetic.SetComponent(e, kin)
	}
}

// fireBeetleVolley emits the next ring of the ladder. Ring size grows
// quadratically with the volley number, and the final ring flips the
// beetle into its guard phase with the long cooldown running behind it.
func (s *BehaviorSystem) fireBeetleVolley(e core.Entity, beh *component.BehaviorComponent, combat *component.CombatComponent, kin component.KineticComponent, col component.ColliderComponent) {
	box := col.Rect(kin.X, kin.Y)
	ex, ey := box.CenterX(), box.CenterY()

	beh.Volley++
	n := (beh.Volley + 1) * (beh.Volley + 1)
	for i := 0; i < n; i++ {
		shotX, shotY := vmath.Rotate(0, 1, float64(i)*2*math.Pi/float64(n))
		engine.BuildProjectile(s.ctx, e, ex, ey, shotX, shotY, combat.ShotSpeed, combat.Damage, s.ctx.Player, 0)
	}
	s.ctx.Events.Push(event.EventShot, event.ShotPayload{Shooter: e, X: ex, Y: ey})

	if beh.Volley >= parameter.BeetleVolleyCount {
		beh.Volley = 0
		beh.VolleyRemaining = 0
		beh.DefendRemaining = parameter.BeetleDefendDuration
		beh.State = component.BehaviorDefending
		combat.AttackRemaining = combat.AttackCooldown
		combat.CanAttack = false
	} else {
		beh.VolleyRemaining = parameter.BeetleVolleyInterval
	}
}
