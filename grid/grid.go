// Package grid stores the level's tiles on two planes and answers the
// neighborhood queries movement and spawning run every tick.
package grid

import (
	"math"

	"github.com/lixenwraith/warrenfall/cavern"
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/registry"
)

// Grid is the two-plane tile store. Out-of-bounds reads return empty
// results, never panic; placement outside the bounds is dropped.
type Grid struct {
	width, height int
	cells         [planeCount][]Tile
	sets          [planeCount]*registry.Set[core.Point]
}

// New creates an empty grid of the given cell dimensions.
func New(width, height int) *Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	g := &Grid{width: width, height: height}
	for p := range g.cells {
		g.cells[p] = make([]Tile, width*height)
		g.sets[p] = registry.NewSet[core.Point]()
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether p is a valid cell.
func (g *Grid) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// PixelBounds returns the map extent in world units.
func (g *Grid) PixelBounds() core.Rect {
	return core.Rect{
		Width:  float64(g.width * parameter.TileSize),
		Height: float64(g.height * parameter.TileSize),
	}
}

// CellOf maps a world position to its cell.
func CellOf(x, y float64) core.Point {
	return core.Point{
		X: int(math.Floor(x / parameter.TileSize)),
		Y: int(math.Floor(y / parameter.TileSize)),
	}
}

// Tile returns the tile at p on the plane. The second result is false
// for out-of-bounds positions and empty cells.
func (g *Grid) Tile(p core.Point, plane Plane) (Tile, bool) {
	if !g.InBounds(p) || plane >= planeCount {
		return Tile{}, false
	}
	t := g.cells[plane][p.Y*g.width+p.X]
	if t.Empty() {
		return Tile{}, false
	}
	return t, true
}

// HasTile reports whether a tile is placed at p on the plane.
func (g *Grid) HasTile(p core.Point, plane Plane) bool {
	_, ok := g.Tile(p, plane)
	return ok
}

// TilesSquare returns the non-empty tiles in the square neighborhood of
// p, x in [p.X-rx, p.X+rx] and y in [p.Y-ry, p.Y+ry] inclusive. The
// out-of-bounds part of the square yields nothing.
func (g *Grid) TilesSquare(p core.Point, rx, ry int, plane Plane) []Tile {
	if rx < 0 || ry < 0 || plane >= planeCount {
		return nil
	}
	var tiles []Tile
	for y := p.Y - ry; y <= p.Y+ry; y++ {
		for x := p.X - rx; x <= p.X+rx; x++ {
			if t, ok := g.Tile(core.Point{X: x, Y: y}, plane); ok {
				tiles = append(tiles, t)
			}
		}
	}
	return tiles
}

// SolidRects returns the collider rects of solid foreground tiles in the
// square neighborhood of p. This is the obstacle feed for movement.
func (g *Grid) SolidRects(p core.Point, rx, ry int) []core.Rect {
	tiles := g.TilesSquare(p, rx, ry, PlaneForeground)
	rects := make([]core.Rect, 0, len(tiles))
	for _, t := range tiles {
		if t.Solid {
			rects = append(rects, t.Collider)
		}
	}
	return rects
}

// Place puts a tile at p on the plane, replacing whatever was there.
// Empty codes and out-of-bounds positions are dropped.
func (g *Grid) Place(p core.Point, plane Plane, code cavern.TileCode) {
	if !g.InBounds(p) || plane >= planeCount || code.Type == cavern.TileNone {
		return
	}
	solid, collider := colliderFor(code, p)
	g.cells[plane][p.Y*g.width+p.X] = Tile{
		Pos:      p,
		Plane:    plane,
		Code:     code,
		Solid:    solid,
		Collider: collider,
	}
	g.sets[plane].Add(p)
}

// Remove clears the tile at p on the plane. Removing an empty cell is a
// no-op.
func (g *Grid) Remove(p core.Point, plane Plane) {
	if !g.InBounds(p) || plane >= planeCount {
		return
	}
	g.cells[plane][p.Y*g.width+p.X] = Tile{}
	g.sets[plane].Remove(p)
}

// Clear wipes both planes and their tile sets.
func (g *Grid) Clear() {
	for p := range g.cells {
		for i := range g.cells[p] {
			g.cells[p][i] = Tile{}
		}
		g.sets[p].Clear()
	}
}

// Positions returns a snapshot of the placed tile positions on a plane.
func (g *Grid) Positions(plane Plane) []core.Point {
	if plane >= planeCount {
		return nil
	}
	return g.sets[plane].Items()
}

// Count returns the placed tile count on a plane.
func (g *Grid) Count(plane Plane) int {
	if plane >= planeCount {
		return 0
	}
	return g.sets[plane].Len()
}

// Apply resizes the grid to the layout and loads it: every classified
// foreground tile is placed, and background tiles go only where the
// floor is visible, under open cells and rock.
func (g *Grid) Apply(result cavern.Result) {
	if result.Width != g.width || result.Height != g.height {
		*g = *New(result.Width, result.Height)
	} else {
		g.Clear()
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := core.Point{X: x, Y: y}
			fg := result.Foreground[y][x]
			if fg.Type != cavern.TileNone {
				g.Place(p, PlaneForeground, fg)
				if fg.Type == cavern.TileRock {
					g.Place(p, PlaneBackground, result.Background[y][x])
				}
				continue
			}
			g.Place(p, PlaneBackground, result.Background[y][x])
		}
	}
}

// NearestOpen finds the cell closest to p (in expanding square rings)
// with no foreground tile. Reports false when the map has none.
func (g *Grid) NearestOpen(p core.Point) (core.Point, bool) {
	maxRing := g.width
	if g.height > maxRing {
		maxRing = g.height
	}
	for r := 0; r <= maxRing; r++ {
		for y := p.Y - r; y <= p.Y+r; y++ {
			for x := p.X - r; x <= p.X+r; x++ {
				// Ring perimeter only
				if x != p.X-r && x != p.X+r && y != p.Y-r && y != p.Y+r {
					continue
				}
				c := core.Point{X: x, Y: y}
				if g.InBounds(c) && !g.HasTile(c, PlaneForeground) {
					return c, true
				}
			}
		}
	}
	return core.Point{}, false
}

// colliderFor derives the solid flag and collider box of a tile code.
// Faces and caps are half-height boxes offset to match the visible mass,
// rocks shrink evenly.
func colliderFor(code cavern.TileCode, p core.Point) (bool, core.Rect) {
	base := core.Rect{
		X:      float64(p.X * parameter.TileSize),
		Y:      float64(p.Y * parameter.TileSize),
		Width:  parameter.TileSize,
		Height: parameter.TileSize,
	}
	switch code.Type {
	case cavern.TileWallFace:
		return true, base.Inset(0, 8).Shift(0, -10)
	case cavern.TileWallCap:
		return true, base.Inset(0, 8).Shift(0, 4)
	case cavern.TileRock:
		return true, base.Inset(4, 4)
	}
	return false, core.Rect{}
}
