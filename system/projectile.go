package system

import (
	"time"

	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/physics"
	"github.com/lixenwraith/warrenfall/vmath"
)

// hitCandidate pairs a targetable entity with its hitbox for the
// per-step overlap test.
type hitCandidate struct {
	entity core.Entity
	hitbox core.Rect
}

// ProjectileSystem flies every shot along its heading and checks hits
// step by step so fast projectiles cannot skip through a target. Shots
// clamp against walls, actor bodies stay passable, and anything spent
// is handed to the death sweep by zeroing its health.
type ProjectileSystem struct {
	ctx *engine.GameContext
}

// NewProjectileSystem creates the projectile system
func NewProjectileSystem(ctx *engine.GameContext) *ProjectileSystem {
	return &ProjectileSystem{ctx: ctx}
}

// Name returns the system's name
func (s *ProjectileSystem) Name() string {
	return "projectile"
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return parameter.PriorityProjectile
}

// Update advances every live projectile by one tick
func (s *ProjectileSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Components
	dtSec := dt.Seconds()
	bounds := s.ctx.Grid.PixelBounds()

	for _, e := range c.Projectile.GetAllEntities() {
		proj, _ := c.Projectile.GetComponent(e)
		health, ok := c.Health.GetComponent(e)
		if !ok || health.Dead() {
			continue
		}
		kin, _ := c.Kinetic.GetComponent(e)
		col, _ := c.Collider.GetComponent(e)

		dx := kin.DirX * kin.Speed * dtSec
		dy := kin.DirY * kin.Speed * dtSec

		// 1. Gather what this shot is allowed to hit
		candidates := s.collectCandidates(c, proj)

		// 2. Walk the path, testing the shrunk hitbox against each
		// candidate at every step; nearest center wins a crowded step
		var struck core.Entity
		onStep := func(box core.Rect) bool {
			hitbox := box.Inset(col.HitInset, col.HitInset)
			bestDistSq := 0.0
			for _, cand := range candidates {
				if !hitbox.Overlaps(cand.hitbox) {
					continue
				}
				dsq := vmath.DistanceSq(hitbox.CenterX(), hitbox.CenterY(), cand.hitbox.CenterX(), cand.hitbox.CenterY())
				if struck == 0 || dsq < bestDistSq {
					struck = cand.entity
					bestDistSq = dsq
				}
			}
			return struck != 0
		}

		x, y, hitX, hitY := physics.ResolveFunc(col.Rect(kin.X, kin.Y), dx, dy, tileObstacles(s.ctx, kin.X, kin.Y, vmath.Magnitude(dx, dy)), onStep)
		kin.X, kin.Y = x, y
		c.Kinetic.SetComponent(e, kin)

		// 3. Spend the shot on whatever ended the flight
		switch {
		case struck != 0:
			s.ctx.Events.Push(event.EventHit, event.HitPayload{
				Target:   struck,
				Attacker: proj.Owner,
				Amount:   proj.Damage,
				DirX:     kin.DirX,
				DirY:     kin.DirY,
				Speed:    kin.Speed,
			})
			health.Current = 0
		case hitX || hitY:
			health.Current = 0
		default:
			box := col.Rect(kin.X, kin.Y)
			if !bounds.Contains(box.CenterX(), box.CenterY()) {
				health.Current = 0
			}
		}
		c.Health.SetComponent(e, health)
	}
}

// collectCandidates resolves the shot's target selection. A pinned
// target takes precedence over the group, and dead entities never
// qualify.
func (s *ProjectileSystem) collectCandidates(c *engine.ComponentStore, proj component.ProjectileComponent) []hitCandidate {
	var out []hitCandidate

	add := func(target core.Entity) {
		if target == proj.Owner {
			return
		}
		health, ok := c.Health.GetComponent(target)
		if !ok || health.Dead() {
			return
		}
		kin, hasKin := c.Kinetic.GetComponent(target)
		col, hasCol := c.Collider.GetComponent(target)
		if !hasKin || !hasCol {
			return
		}
		out = append(out, hitCandidate{entity: target, hitbox: col.Hitbox(kin.X, kin.Y)})
	}

	if proj.Target != 0 {
		add(proj.Target)
		return out
	}
	for _, member := range s.ctx.Roster.Members(proj.TargetGroup) {
		add(member)
	}
	return out
}
