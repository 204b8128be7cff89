package parameter

// Map Generation
const (
	MapWidth  = 62
	MapHeight = 62

	// MapBorder is the forced solid ring thickness in cells
	MapBorder = 2

	// MapWallChance is the per-cell wall probability of the initial
	// random fill
	MapWallChance = 0.44

	// MapSmoothPasses is the number of cellular smoothing passes on the
	// foreground matrix
	MapSmoothPasses = 4

	// MapStopWall flips a wall to air when its 8-neighbor wall count is
	// at or below this threshold
	MapStopWall = 3

	// MapStopAir flips air to wall when its 8-neighbor wall count is at
	// or above this threshold
	MapStopAir = 5

	// Background matrix gets extra smoothing with looser thresholds so
	// the floor texture pools differently from the walls
	BackgroundSmoothPasses = 2
	BackgroundStopWall     = 4
	BackgroundStopAir      = 6
)
