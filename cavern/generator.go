// Package cavern generates the tile layout of one level: a random fill
// smoothed into cave pockets, then classified into foreground wall tiles
// and background floor texture.
package cavern

import (
	"math/rand"
	"time"
)

// Cell types
const (
	Wall = true
	Air  = false
)

type Config struct {
	Width, Height int

	// Border is the forced solid ring thickness in cells (minimum 1).
	Border int

	// WallChance is the per-cell wall probability of the initial fill,
	// clamped to [0, 1].
	WallChance float64

	// SmoothPasses cellular passes shape the foreground; a wall with at
	// most StopWall of its 8 neighbors walls opens up, an air cell with
	// at least StopAir wall neighbors fills in.
	SmoothPasses int
	StopWall     int
	StopAir      int

	// The background matrix starts as a copy of the smoothed foreground
	// and takes extra passes with its own thresholds, so floor texture
	// pools independently of the walls. Zero passes keeps the copy.
	BackgroundPasses   int
	BackgroundStopWall int
	BackgroundStopAir  int

	Seed int64 // Optional (0 = Random)
}

type Result struct {
	Width, Height int

	// Walls is the final foreground occupancy matrix, indexed [y][x]
	Walls [][]bool

	// Foreground and Background are the classified tile matrices
	Foreground [][]TileCode
	Background [][]TileCode

	// Seed is the effective seed, recorded for reproduction
	Seed int64
}

// Generate creates a classified cave layout. It never fails: every
// out-of-range config value is clamped to its documented bound.
func Generate(cfg Config) Result {
	// 1. Sanitize Config
	cfg = clampConfig(cfg)

	// 2. RNG Setup
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 3. Random Fill
	walls := randomFill(cfg, rng)

	// 4. Foreground Smoothing
	walls = smooth(walls, cfg.SmoothPasses, cfg.StopWall, cfg.StopAir, cfg.Border)

	// 5. Background Derivation
	bg := copyGrid(walls)
	bg = smooth(bg, cfg.BackgroundPasses, cfg.BackgroundStopWall, cfg.BackgroundStopAir, cfg.Border)

	// 6. Classification
	return Result{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Walls:      walls,
		Foreground: classifyForeground(walls, cfg.Border, rng),
		Background: classifyBackground(bg, rng),
		Seed:       seed,
	}
}

func clampConfig(cfg Config) Config {
	if cfg.Border < 1 {
		cfg.Border = 1
	}
	minSize := cfg.Border*2 + 4
	if cfg.Width < minSize {
		cfg.Width = minSize
	}
	if cfg.Height < minSize {
		cfg.Height = minSize
	}
	if cfg.WallChance < 0 {
		cfg.WallChance = 0
	}
	if cfg.WallChance > 1 {
		cfg.WallChance = 1
	}
	if cfg.SmoothPasses < 0 {
		cfg.SmoothPasses = 0
	}
	if cfg.BackgroundPasses < 0 {
		cfg.BackgroundPasses = 0
	}
	clampThreshold := func(v *int, hi int) {
		if *v < 0 {
			*v = 0
		}
		if *v > hi {
			*v = hi
		}
	}
	clampThreshold(&cfg.StopWall, 8)
	clampThreshold(&cfg.StopAir, 9)
	clampThreshold(&cfg.BackgroundStopWall, 8)
	clampThreshold(&cfg.BackgroundStopAir, 9)
	return cfg
}

// randomFill seeds every interior cell independently; the border ring is
// always wall.
func randomFill(cfg Config, rng *rand.Rand) [][]bool {
	grid := make([][]bool, cfg.Height)
	for y := range grid {
		grid[y] = make([]bool, cfg.Width)
		for x := range grid[y] {
			if onBorder(x, y, cfg.Width, cfg.Height, cfg.Border) {
				grid[y][x] = Wall
				continue
			}
			grid[y][x] = rng.Float64() < cfg.WallChance
		}
	}
	return grid
}

func onBorder(x, y, w, h, border int) bool {
	return x < border || x >= w-border || y < border || y >= h-border
}

// smooth runs cellular passes over the grid. Each pass reads a frozen
// copy, so a cell flip never feeds into its neighbors within the pass.
// Cells whose neighborhood crosses no threshold are left untouched.
func smooth(grid [][]bool, passes, stopWall, stopAir, border int) [][]bool {
	h := len(grid)
	if h == 0 {
		return grid
	}
	w := len(grid[0])

	for pass := 0; pass < passes; pass++ {
		prev := copyGrid(grid)
		for y := border; y < h-border; y++ {
			for x := border; x < w-border; x++ {
				n := countWallNeighbors(prev, x, y)
				if prev[y][x] == Wall {
					if n <= stopWall {
						grid[y][x] = Air
					}
				} else {
					if n >= stopAir {
						grid[y][x] = Wall
					}
				}
			}
		}
	}
	return grid
}

// countWallNeighbors counts walls among the 8 neighbors of (x, y).
// Out-of-bounds neighbors count as wall.
func countWallNeighbors(grid [][]bool, x, y int) int {
	h := len(grid)
	w := len(grid[0])
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				count++
				continue
			}
			if grid[ny][nx] == Wall {
				count++
			}
		}
	}
	return count
}

func copyGrid(grid [][]bool) [][]bool {
	out := make([][]bool, len(grid))
	for y := range grid {
		out[y] = make([]bool, len(grid[y]))
		copy(out[y], grid[y])
	}
	return out
}

// classifyForeground turns the wall matrix into tile codes using the
// 4-neighbor rules: border cells are caps, a wall over a wall is a cap,
// a wall under open air is a rock, anything else is a face variant keyed
// by its flanking walls. The first interior row closes its air gaps with
// faces so the top border shows a proper south side.
func classifyForeground(walls [][]bool, border int, rng *rand.Rand) [][]TileCode {
	h := len(walls)
	w := len(walls[0])
	codes := make([][]TileCode, h)

	for y := range codes {
		codes[y] = make([]TileCode, w)
		for x := range codes[y] {
			if onBorder(x, y, w, h, border) {
				codes[y][x] = TileCode{TileWallCap, rng.Intn(WallCapVariants)}
				continue
			}
			if y == border && walls[y][x] == Air {
				codes[y][x] = TileCode{TileWallFace, FaceBothSides}
				continue
			}
			if walls[y][x] == Air {
				continue
			}

			south := y+1 < h && walls[y+1][x] == Wall
			north := y-1 >= 0 && walls[y-1][x] == Air
			west := x-1 >= 0 && walls[y][x-1] == Wall
			east := x+1 < w && walls[y][x+1] == Wall

			switch {
			case south:
				codes[y][x] = TileCode{TileWallCap, rng.Intn(WallCapVariants)}
			case north:
				codes[y][x] = TileCode{TileRock, rng.Intn(RockVariants)}
			case west && east:
				codes[y][x] = TileCode{TileWallFace, FaceBothSides}
			case west:
				codes[y][x] = TileCode{TileWallFace, FaceWestOnly}
			case east:
				codes[y][x] = TileCode{TileWallFace, FaceEastOnly}
			default:
				codes[y][x] = TileCode{TileWallFace, FaceAlone}
			}
		}
	}
	return codes
}

// Floor texture variant weights
var (
	stoneFloorWeights = []float64{0.45, 0.25, 0.15, 0.15}
	dirtFloorWeights  = []float64{0.35, 0.35, 0.05, 0.05, 0.10, 0.10}
)

// classifyBackground maps the background matrix to floor texture: wall
// pockets read as stone, open regions as dirt.
func classifyBackground(bg [][]bool, rng *rand.Rand) [][]TileCode {
	codes := make([][]TileCode, len(bg))
	for y := range codes {
		codes[y] = make([]TileCode, len(bg[y]))
		for x := range codes[y] {
			if bg[y][x] == Wall {
				codes[y][x] = TileCode{TileStoneFloor, weightedPick(rng, stoneFloorWeights)}
			} else {
				codes[y][x] = TileCode{TileDirtFloor, weightedPick(rng, dirtFloorWeights)}
			}
		}
	}
	return codes
}

func weightedPick(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	roll := rng.Float64() * total
	for i, w := range weights {
		roll -= w
		if roll < 0 {
			return i
		}
	}
	return len(weights) - 1
}
