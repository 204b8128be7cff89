package component

// KnockbackComponent holds the decaying shove applied by a hit.
type KnockbackComponent struct {
	// Force is the current knockback strength; displacement per second
	// is Force scaled by parameter.KnockbackSpeedScale
	Force float64

	// DirX and DirY are the shove direction, normalized
	DirX, DirY float64

	// Resistance is the force decay rate per second
	Resistance float64

	// Travelled accumulates distance moved by this knockback
	Travelled float64

	// MaxTravel caps Travelled; the shove stops at the cap even if
	// force remains
	MaxTravel float64
}

// Active reports whether the shove still moves the entity.
func (k KnockbackComponent) Active() bool {
	return k.Force > 0 && k.Travelled < k.MaxTravel
}
