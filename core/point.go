package core

// Point is a grid cell coordinate, origin top-left, +X right, +Y down.
type Point struct {
	X, Y int
}

// Offset returns the point shifted by (dx, dy) cells.
func (p Point) Offset(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}
