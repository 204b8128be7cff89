// Package vmath provides the float math helpers and the PRNG used by the
// simulation. All vector operations work on scalar pairs to avoid forcing a
// vector type on component fields.
package vmath

import "math"

// --- Scalars ---

func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func Sign(x float64) float64 {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Vectors ---

func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

func Magnitude(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSq(x1, y1, x2, y2))
}

// Normalize returns the unit vector of (x, y).
// The zero vector normalizes to (0, 0).
func Normalize(x, y float64) (float64, float64) {
	m := Magnitude(x, y)
	if m == 0 {
		return 0, 0
	}
	return x / m, y / m
}

// Rotate rotates (x, y) by rad radians.
// With +Y pointing down this turns clockwise on screen.
func Rotate(x, y, rad float64) (float64, float64) {
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// --- Randomness ---

// FastRand is a xorshift64 PRNG. Not for cryptographic use.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1).
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Chance reports true with probability p.
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}
