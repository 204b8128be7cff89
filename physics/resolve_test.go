package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/core"
)

const eps = 1e-9

func box16() core.Rect {
	return core.Rect{X: 0, Y: 0, Width: 16, Height: 16}
}

// Test unobstructed movement lands on the requested displacement
func TestResolveFree(t *testing.T) {
	x, y, hitX, hitY := Resolve(box16(), 30, 10, nil)

	if math.Abs(x-30) > eps || math.Abs(y-10) > eps {
		t.Errorf("Expected free movement to (30, 10), got (%v, %v)", x, y)
	}
	if hitX || hitY {
		t.Errorf("Expected no collision flags in open space")
	}
}

// Test zero displacement is a no-op
func TestResolveZero(t *testing.T) {
	x, y, hitX, hitY := Resolve(box16(), 0, 0, []core.Rect{{X: 1, Y: 1, Width: 2, Height: 2}})

	if x != 0 || y != 0 || hitX || hitY {
		t.Errorf("Expected zero displacement to change nothing, got (%v, %v) %v %v", x, y, hitX, hitY)
	}
}

// Test clamping flush against each obstacle side
func TestResolveClamp(t *testing.T) {
	cases := []struct {
		name         string
		dx, dy       float64
		obs          core.Rect
		wantX, wantY float64
		wantHitX     bool
		wantHitY     bool
	}{
		{"east", 100, 0, core.Rect{X: 40, Y: 0, Width: 16, Height: 16}, 24, 0, true, false},
		{"west", -100, 0, core.Rect{X: -40, Y: 0, Width: 16, Height: 16}, -24, 0, true, false},
		{"south", 0, 100, core.Rect{X: 0, Y: 30, Width: 16, Height: 16}, 0, 14, false, true},
		{"north", 0, -100, core.Rect{X: 0, Y: -30, Width: 16, Height: 16}, 0, -14, false, true},
	}

	for _, c := range cases {
		x, y, hitX, hitY := Resolve(box16(), c.dx, c.dy, []core.Rect{c.obs})
		if x != c.wantX || y != c.wantY {
			t.Errorf("Expected %s clamp at (%v, %v), got (%v, %v)", c.name, c.wantX, c.wantY, x, y)
		}
		if hitX != c.wantHitX || hitY != c.wantHitY {
			t.Errorf("Expected %s flags (%v, %v), got (%v, %v)", c.name, c.wantHitX, c.wantHitY, hitX, hitY)
		}
	}
}

// Test a blocked axis stops while the free axis keeps sliding
func TestResolveSlide(t *testing.T) {
	wall := core.Rect{X: 20, Y: -100, Width: 16, Height: 300}

	x, y, hitX, hitY := Resolve(box16(), 50, 30, []core.Rect{wall})

	if x != 4 {
		t.Errorf("Expected X clamped flush at 4, got %v", x)
	}
	if math.Abs(y-30) > eps {
		t.Errorf("Expected Y to slide the full 30, got %v", y)
	}
	if !hitX || hitY {
		t.Errorf("Expected only the X flag, got (%v, %v)", hitX, hitY)
	}
}

// Test a fast mover cannot pass through a thin wall
func TestResolveNoTunnel(t *testing.T) {
	thin := core.Rect{X: 100, Y: 0, Width: 4, Height: 16}

	x, _, hitX, _ := Resolve(box16(), 300, 0, []core.Rect{thin})

	if x != 84 {
		t.Errorf("Expected the walk to stop flush at 84, got %v", x)
	}
	if !hitX {
		t.Errorf("Expected a collision flag on the thin wall")
	}
}

// Test pushing into a wall already in contact stays flush
func TestResolveFlushContact(t *testing.T) {
	wall := core.Rect{X: 40, Y: 0, Width: 16, Height: 16}
	start := core.Rect{X: 24, Y: 0, Width: 16, Height: 16}

	x, _, hitX, _ := Resolve(start, 10, 0, []core.Rect{wall})

	if x != 24 || !hitX {
		t.Errorf("Expected to remain flush at 24 with a hit, got %v hit=%v", x, hitX)
	}
}

// Test the step callback sees every resolved position and can abort
func TestResolveFuncAbort(t *testing.T) {
	calls := 0
	x, y, _, _ := ResolveFunc(box16(), 100, 0, nil, func(cur core.Rect) bool {
		calls++
		return true
	})

	if calls != 1 {
		t.Errorf("Expected the walk to abort after one step, got %d calls", calls)
	}
	if x != 16 || y != 0 {
		t.Errorf("Expected the abort position (16, 0), got (%v, %v)", x, y)
	}
}

// Test the callback receives positions in walk order
func TestResolveFuncStepPositions(t *testing.T) {
	var xs []float64
	ResolveFunc(box16(), 48, 0, nil, func(cur core.Rect) bool {
		xs = append(xs, cur.X)
		return false
	})

	want := []float64{16, 32, 48}
	if len(xs) != len(want) {
		t.Fatalf("Expected %d steps, got %d", len(want), len(xs))
	}
	for i := range want {
		if math.Abs(xs[i]-want[i]) > eps {
			t.Errorf("Expected step %d at x=%v, got %v", i, want[i], xs[i])
		}
	}
}

// Test movement writes the resolved position into the kinetic
func TestMoveWritesBack(t *testing.T) {
	kin := component.KineticComponent{X: 5, Y: 6}
	col := component.ColliderComponent{Width: 16, Height: 16}
	wall := core.Rect{X: 40, Y: 0, Width: 16, Height: 32}

	hitX, hitY := Move(&kin, col, 100, 0, []core.Rect{wall})

	if kin.X != 24 || kin.Y != 6 {
		t.Errorf("Expected kinetic at (24, 6), got (%v, %v)", kin.X, kin.Y)
	}
	if !hitX || hitY {
		t.Errorf("Expected only the X flag, got (%v, %v)", hitX, hitY)
	}
}
