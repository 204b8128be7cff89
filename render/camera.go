package render

import (
	"math"

	"github.com/lixenwraith/warrenfall/parameter"
)

// Terminal cells are taller than wide, so a square tile spans two
// columns and one row.
const (
	cellWidth  = float64(parameter.TileSize) / 2
	cellHeight = float64(parameter.TileSize)
)

// Camera maps world pixels to view cells. It follows a focus point,
// clamped so the view never slides past the map edge, and centers maps
// smaller than the view.
type Camera struct {
	ViewWidth  float64
	ViewHeight float64
	OffX       float64
	OffY       float64
}

// offset1D resolves one axis of the camera offset
func offset1D(center, displayCenter, mapSize float64) float64 {
	mapCenter := mapSize / 2
	displaySize := displayCenter * 2

	if displaySize >= mapSize {
		return mapCenter - displayCenter
	}
	if displayCenter > center {
		return 0
	}
	if center > mapSize-displayCenter {
		return mapSize - displaySize
	}
	return center - displayCenter
}

// SetView resizes the viewport to the given cell dimensions
func (c *Camera) SetView(cols, rows int) {
	c.ViewWidth = float64(cols) * cellWidth
	c.ViewHeight = float64(rows) * cellHeight
}

// Follow recomputes the offset for a focus point on a map of the given
// pixel size
func (c *Camera) Follow(cx, cy, mapW, mapH float64) {
	c.OffX = offset1D(cx, c.ViewWidth/2, mapW)
	c.OffY = offset1D(cy, c.ViewHeight/2, mapH)
}

// Screen converts a world position to a view cell
func (c *Camera) Screen(wx, wy float64) (int, int) {
	col := int(math.Floor((wx - c.OffX) / cellWidth))
	row := int(math.Floor((wy - c.OffY) / cellHeight))
	return col, row
}

// World converts a view cell back to the world position at its center
func (c *Camera) World(col, row int) (float64, float64) {
	wx := c.OffX + (float64(col)+0.5)*cellWidth
	wy := c.OffY + (float64(row)+0.5)*cellHeight
	return wx, wy
}
