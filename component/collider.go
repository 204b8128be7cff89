package component

import (
	"github.com/lixenwraith/warrenfall/core"
)

// ColliderComponent sizes an entity's solid box and its hit-test box.
type ColliderComponent struct {
	// Width and Height size the solid collider
	Width, Height float64

	// HitInset is the total shrink from collider to hitbox, centered.
	// Damage overlap tests use the hitbox, movement uses the collider.
	HitInset float64
}

// Rect returns the collider box anchored at the entity position.
func (c ColliderComponent) Rect(x, y float64) core.Rect {
	return core.Rect{X: x, Y: y, Width: c.Width, Height: c.Height}
}

// Hitbox returns the inset hit-test box anchored at the entity position.
func (c ColliderComponent) Hitbox(x, y float64) core.Rect {
	return c.Rect(x, y).Inset(c.HitInset, c.HitInset)
}
