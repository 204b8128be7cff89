package grid

import (
	"github.com/lixenwraith/warrenfall/cavern"
	"github.com/lixenwraith/warrenfall/core"
)

// Plane selects one of the two tile layers of a cell.
type Plane uint8

const (
	// PlaneBackground holds passable floor texture
	PlaneBackground Plane = iota

	// PlaneForeground holds the tiles actors collide with
	PlaneForeground

	planeCount
)

// Tile is one placed tile. Tiles are owned by the grid; they are not
// world entities.
type Tile struct {
	Pos   core.Point
	Plane Plane
	Code  cavern.TileCode

	// Solid tiles block movement through Collider
	Solid    bool
	Collider core.Rect
}

// Empty reports whether the tile slot holds nothing.
func (t Tile) Empty() bool {
	return t.Code.Type == cavern.TileNone
}
