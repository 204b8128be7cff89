package core

import "testing"

// Test edge accessors
func TestRectEdges(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 4, Height: 6}

	if r.Right() != 14 {
		t.Errorf("Expected right edge 14, got %v", r.Right())
	}
	if r.Bottom() != 26 {
		t.Errorf("Expected bottom edge 26, got %v", r.Bottom())
	}
	if r.CenterX() != 12 || r.CenterY() != 23 {
		t.Errorf("Expected center (12, 23), got (%v, %v)", r.CenterX(), r.CenterY())
	}
}

// Test overlap requires positive area
func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	if !a.Overlaps(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Errorf("Expected intersecting rects to overlap")
	}
	if a.Overlaps(Rect{X: 10, Y: 0, Width: 10, Height: 10}) {
		t.Errorf("Expected edge contact to not count as overlap")
	}
	if a.Overlaps(Rect{X: 11, Y: 0, Width: 10, Height: 10}) {
		t.Errorf("Expected separated rects to not overlap")
	}
	if !a.Overlaps(Rect{X: 2, Y: 2, Width: 2, Height: 2}) {
		t.Errorf("Expected contained rect to overlap")
	}
}

// Test point containment is half-open
func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	if !r.Contains(0, 0) {
		t.Errorf("Expected top-left corner to be inside")
	}
	if r.Contains(10, 5) || r.Contains(5, 10) {
		t.Errorf("Expected right and bottom edges to be outside")
	}
	if !r.Contains(9.999, 9.999) {
		t.Errorf("Expected interior point to be inside")
	}
}

// Test inset shrinks around the center
func TestRectInset(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 16, Height: 16}

	in := r.Inset(4, 8)
	if in.X != 2 || in.Y != 4 || in.Width != 12 || in.Height != 8 {
		t.Errorf("Expected inset rect {2 4 12 8}, got %+v", in)
	}
	if in.CenterX() != r.CenterX() || in.CenterY() != r.CenterY() {
		t.Errorf("Expected inset to preserve the center")
	}

	out := r.Inset(-4, -4)
	if out.X != -2 || out.Width != 20 {
		t.Errorf("Expected negative inset to grow the rect, got %+v", out)
	}
}

// Test shift moves without resizing
func TestRectShift(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}

	s := r.Shift(10, -2)
	if s.X != 11 || s.Y != 0 || s.Width != 3 || s.Height != 4 {
		t.Errorf("Expected shifted rect {11 0 3 4}, got %+v", s)
	}
}

// Test point offset
func TestPointOffset(t *testing.T) {
	p := Point{X: 3, Y: 7}

	q := p.Offset(-1, 2)
	if q.X != 2 || q.Y != 9 {
		t.Errorf("Expected offset point (2, 9), got (%d, %d)", q.X, q.Y)
	}
}
