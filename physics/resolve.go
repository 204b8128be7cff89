// Package physics resolves requested displacements against solid boxes.
// Movement is axis-separated, X then Y, and walks in steps no larger than
// the mover's own extent so one tick can never tunnel through a tile.
package physics

import (
	"math"

	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/vmath"
)

// StepFunc runs after every axis step with the box at its resolved
// position. Returning true aborts the remaining walk; projectiles use
// this for in-flight hit tests.
type StepFunc func(box core.Rect) bool

// Resolve walks the box by (dx, dy) against the obstacles and returns
// the final top-left corner plus per-axis collision flags. On overlap the
// box is clamped flush to the obstacle edge facing the movement, and that
// axis stops for the rest of the walk.
func Resolve(box core.Rect, dx, dy float64, obstacles []core.Rect) (float64, float64, bool, bool) {
	return ResolveFunc(box, dx, dy, obstacles, nil)
}

// ResolveFunc is Resolve with a per-step callback.
func ResolveFunc(box core.Rect, dx, dy float64, obstacles []core.Rect, onStep StepFunc) (float64, float64, bool, bool) {
	x, y := box.X, box.Y
	dist := vmath.Magnitude(dx, dy)
	if dist == 0 {
		return x, y, false, false
	}
	dirX := dx / dist
	dirY := dy / dist

	remX := vmath.Abs(dx)
	remY := vmath.Abs(dy)
	stepX := box.Width * vmath.Abs(dirX)
	stepY := box.Height * vmath.Abs(dirY)

	hitX, hitY := false, false

	for remX > 0 || remY > 0 {
		// Horizontal
		if remX > 0 {
			if remX <= stepX {
				x += math.Copysign(remX, dirX)
				remX = 0
			} else {
				x += box.Width * dirX
				remX -= stepX
			}
			cur := core.Rect{X: x, Y: y, Width: box.Width, Height: box.Height}
			for _, obs := range obstacles {
				if !cur.Overlaps(obs) {
					continue
				}
				if dirX > 0 {
					x = obs.X - box.Width
				} else {
					x = obs.Right()
				}
				cur.X = x
				hitX = true
				remX = 0
			}
			if onStep != nil && onStep(cur) {
				return x, y, hitX, hitY
			}
		}

		// Vertical
		if remY > 0 {
			if remY <= stepY {
				y += math.Copysign(remY, dirY)
				remY = 0
			} else {
				y += box.Height * dirY
				remY -= stepY
			}
			cur := core.Rect{X: x, Y: y, Width: box.Width, Height: box.Height}
			for _, obs := range obstacles {
				if !cur.Overlaps(obs) {
					continue
				}
				if dirY > 0 {
					y = obs.Y - box.Height
				} else {
					y = obs.Bottom()
				}
				cur.Y = y
				hitY = true
				remY = 0
			}
			if onStep != nil && onStep(cur) {
				return x, y, hitX, hitY
			}
		}
	}
	return x, y, hitX, hitY
}

// Move resolves a displacement for an entity and writes the new position
// back into its kinetic. Returns the per-axis collision flags.
func Move(kin *component.KineticComponent, col component.ColliderComponent, dx, dy float64, obstacles []core.Rect) (bool, bool) {
	x, y, hitX, hitY := Resolve(col.Rect(kin.X, kin.Y), dx, dy, obstacles)
	kin.X = x
	kin.Y = y
	return hitX, hitY
}
