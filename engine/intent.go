package engine

// Intent is the player input folded down for one tick. The frontend owns
// key and mouse translation; the simulation only sees this.
type Intent struct {
	// MoveX and MoveY are the raw movement axes in [-1, 1]
	MoveX, MoveY float64

	// AimX and AimY are the aim point in world coordinates
	AimX, AimY float64

	// Attack is true while the fire control is held
	Attack bool

	// Dodge is true for the single tick after the dodge control was
	// pressed; the frontend edge-triggers it
	Dodge bool
}
