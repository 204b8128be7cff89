package render

import (
	"testing"
)

// Test a map smaller than the view is centered
func TestCameraCentersSmallMap(t *testing.T) {
	c := &Camera{}
	c.SetView(100, 40)

	c.Follow(100, 100, 480, 480)
	if c.OffX != -160 || c.OffY != -80 {
		t.Errorf("Expected the small map centered at (-160, -80), got (%v, %v)", c.OffX, c.OffY)
	}

	// The focus point does not matter when the whole map fits
	c.Follow(400, 20, 480, 480)
	if c.OffX != -160 || c.OffY != -80 {
		t.Errorf("Expected the offset independent of focus, got (%v, %v)", c.OffX, c.OffY)
	}
}

// Test the view clamps at the map edges and follows in between
func TestCameraFollowClamps(t *testing.T) {
	c := &Camera{}
	c.SetView(40, 20)

	// 1. Near the origin corner
	c.Follow(50, 50, 480, 480)
	if c.OffX != 0 || c.OffY != 0 {
		t.Errorf("Expected the view pinned at the origin, got (%v, %v)", c.OffX, c.OffY)
	}

	// 2. Near the far corner
	c.Follow(460, 470, 480, 480)
	if c.OffX != 160 || c.OffY != 160 {
		t.Errorf("Expected the view pinned at the far edge, got (%v, %v)", c.OffX, c.OffY)
	}

	// 3. In the open middle the focus sits on the view center
	c.Follow(240, 200, 480, 480)
	if c.OffX != 80 || c.OffY != 40 {
		t.Errorf("Expected the view centered on the focus, got (%v, %v)", c.OffX, c.OffY)
	}
}

// Test world to screen and back lands on the cell center
func TestCameraScreenWorld(t *testing.T) {
	c := &Camera{}
	c.SetView(40, 20)
	c.Follow(240, 240, 480, 480)

	col, row := c.Screen(240, 240)
	if col != 20 || row != 10 {
		t.Errorf("Expected cell (20, 10), got (%d, %d)", col, row)
	}

	wx, wy := c.World(col, row)
	if wx != 244 || wy != 248 {
		t.Errorf("Expected the cell center at (244, 248), got (%v, %v)", wx, wy)
	}

	// The center maps back to the same cell
	col2, row2 := c.Screen(wx, wy)
	if col2 != col || row2 != row {
		t.Errorf("Expected the round trip stable, got (%d, %d)", col2, row2)
	}
}

// Test positions left of the view floor to negative cells
func TestCameraScreenNegative(t *testing.T) {
	c := &Camera{}
	c.SetView(40, 20)
	c.Follow(240, 240, 480, 480)

	col, row := c.Screen(72, 64)
	if col != -1 || row != -1 {
		t.Errorf("Expected cell (-1, -1), got (%d, %d)", col, row)
	}
}
