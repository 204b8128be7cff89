package system

import (
	"time"

	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/physics"
	"github.com/lixenwraith/warrenfall/registry"
	"github.com/lixenwraith/warrenfall/vmath"
)

// PlayerSystem turns the tick's intent into player action: walking,
// dodging with invulnerability frames, and firing at the aim point.
// A dead player ignores intent entirely; knockback and timers keep
// settling in their own systems.
type PlayerSystem struct {
	ctx *engine.GameContext
}

// NewPlayerSystem creates the player input system
func NewPlayerSystem(ctx *engine.GameContext) *PlayerSystem {
	return &PlayerSystem{ctx: ctx}
}

// Name returns the system's name
func (s *PlayerSystem) Name() string {
	return "player"
}

// Priority returns the system's priority
func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

// Update applies the folded intent to the player entity
func (s *PlayerSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Components
	e := s.ctx.Player

	health, ok := c.Health.GetComponent(e)
	if !ok || health.Dead() {
		return
	}
	kin, _ := c.Kinetic.GetComponent(e)
	col, _ := c.Collider.GetComponent(e)
	combat, _ := c.Combat.GetComponent(e)
	pc, _ := c.Player.GetComponent(e)

	in := s.ctx.Intent
	dtSec := dt.Seconds()

	// 1. Facing follows the last non-zero movement input
	moveX, moveY := vmath.Normalize(in.MoveX, in.MoveY)
	if moveX != 0 || moveY != 0 {
		pc.FaceX, pc.FaceY = moveX, moveY
	}

	// 2. Dodge start: dash along the move direction with full
	// invulnerability, attack locked past the dash
	if in.Dodge && !pc.Dodging && pc.DodgeTimer == 0 {
		pc.Dodging = true
		pc.DodgeRemaining = parameter.PlayerDodgeDuration
		pc.DodgeTimer = parameter.PlayerDodgeCooldown
		pc.DodgeDirX, pc.DodgeDirY = moveX, moveY
		if pc.DodgeDirX == 0 && pc.DodgeDirY == 0 {
			pc.DodgeDirX, pc.DodgeDirY = pc.FaceX, pc.FaceY
		}
		if health.InvulnRemaining < parameter.PlayerDodgeDuration {
			health.InvulnRemaining = parameter.PlayerDodgeDuration
		}
		combat.AttackRemaining = parameter.PlayerAttackCooldown + parameter.PlayerDodgeCooldown/2
		combat.CanAttack = false
		s.ctx.Events.Push(event.EventDodge, nil)
	}

	// 3. Movement through the collision resolver
	var dx, dy float64
	if pc.Dodging {
		dx = pc.DodgeDirX * parameter.PlayerDodgeSpeed * dtSec
		dy = pc.DodgeDirY * parameter.PlayerDodgeSpeed * dtSec
		kin.DirX, kin.DirY = pc.DodgeDirX, pc.DodgeDirY
	} else {
		dx = moveX * kin.Speed * dtSec
		dy = moveY * kin.Speed * dtSec
		kin.DirX, kin.DirY = moveX, moveY
	}
	if dx != 0 || dy != 0 {
		obstacles := obstaclesFor(s.ctx, e, kin.X, kin.Y, vmath.Magnitude(dx, dy))
		physics.Move(&kin, col, dx, dy, obstacles)
	}

	// 4. Attack toward the aim point
	if in.Attack && combat.CanAttack && !pc.Dodging {
		box := col.Rect(kin.X, kin.Y)
		cx, cy := box.CenterX(), box.CenterY()
		dirX, dirY := vmath.Normalize(in.AimX-cx, in.AimY-cy)
		if dirX == 0 && dirY == 0 {
			dirX, dirY = pc.FaceX, pc.FaceY
		}
		engine.BuildProjectile(s.ctx, e, cx, cy, dirX, dirY, combat.ShotSpeed, combat.Damage, 0, registry.GroupEnemies)
		combat.AttackRemaining = combat.AttackCooldown
		combat.CanAttack = false
		s.ctx.Events.Push(event.EventShot, event.ShotPayload{Shooter: e, X: cx, Y: cy})
	}

	// 5. Write back
	c.Kinetic.SetComponent(e, kin)
	c.Health.SetComponent(e, health)
	c.Combat.SetComponent(e, combat)
	c.Player.SetComponent(e, pc)
}
