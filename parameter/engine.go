package parameter

import "time"

// World Geometry
const (
	// TileSize is the edge length of one grid cell in world units
	TileSize = 16

	// EntitySize is the collider edge length of player and enemies
	EntitySize = 16

	// ProjectileSize is the collider edge length of projectiles
	ProjectileSize = 8

	// HitboxInset is the total shrink applied to a collider to get the
	// hitbox used for damage overlap tests
	HitboxInset = 4
)

// Frame Timing
const (
	// FrameInterval is the target wall-clock duration of one tick
	FrameInterval = time.Second / 60

	// MaxFrameDelta caps dt after a stall so the simulation never
	// advances more than this in one step
	MaxFrameDelta = 100 * time.Millisecond
)
