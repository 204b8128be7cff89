package core

// Rect is an axis-aligned box in world units.
// X, Y is the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// CenterX returns the X coordinate of the center.
func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

// CenterY returns the Y coordinate of the center.
func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

// Overlaps reports whether r and o intersect with positive area.
// Edge contact does not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns r shrunk by the total amounts (dw, dh), centered.
// Negative values grow the rect.
func (r Rect) Inset(dw, dh float64) Rect {
	return Rect{
		X:      r.X + dw/2,
		Y:      r.Y + dh/2,
		Width:  r.Width - dw,
		Height: r.Height - dh,
	}
}

// Shift returns r moved by (dx, dy).
func (r Rect) Shift(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
