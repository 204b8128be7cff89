package component

// KineticComponent holds continuous position and heading in world units.
type KineticComponent struct {
	// X and Y are the top-left corner of the collider box
	X, Y float64

	// DirX and DirY are the movement heading, normalized or zero
	DirX, DirY float64

	// Speed is the movement rate in world units per second
	Speed float64
}
