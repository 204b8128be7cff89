package system

import (
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/grid"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/registry"
	"github.com/lixenwraith/warrenfall/vmath"
)

// obstaclesFor collects the solid boxes a mover can clamp against over a
// walk of the given distance: solid tiles in the square neighborhood plus
// the colliders of other living actors nearby.
func obstaclesFor(ctx *engine.GameContext, self core.Entity, x, y, distance float64) []core.Rect {
	rects := tileObstacles(ctx, x, y, distance)

	reach := distance + 2*parameter.EntitySize
	c := &ctx.World.Components
	for _, other := range ctx.Roster.Members(registry.GroupEntities) {
		if other == self {
			continue
		}
		health, ok := c.Health.GetComponent(other)
		if !ok || health.Dead() {
			continue
		}
		kin, ok := c.Kinetic.GetComponent(other)
		if !ok {
			continue
		}
		col, ok := c.Collider.GetComponent(other)
		if !ok {
			continue
		}
		if vmath.Distance(x, y, kin.X, kin.Y) > reach {
			continue
		}
		rects = append(rects, col.Rect(kin.X, kin.Y))
	}
	return rects
}

// tileObstacles collects only the solid tile boxes around the walk.
// Projectiles clamp against these while actor bodies stay passable,
// their hits resolving through the hitbox test instead.
func tileObstacles(ctx *engine.GameContext, x, y, distance float64) []core.Rect {
	radius := 1 + int(distance/parameter.TileSize)
	return ctx.Grid.SolidRects(grid.CellOf(x, y), radius, radius)
}
