package system

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/grid"
	"github.com/lixenwraith/warrenfall/parameter"
)

// SpawnSystem trickles enemies into the cavern on the same clock as the
// survival score. Spawns land on floor cells with nothing built over
// them, outside a square clearance around the player, with the roll
// weighted toward the weaker archetypes.
type SpawnSystem struct {
	ctx *engine.GameContext
	acc time.Duration
}

// NewSpawnSystem creates the enemy spawn system
func NewSpawnSystem(ctx *engine.GameContext) *SpawnSystem {
	return &SpawnSystem{ctx: ctx}
}

// Name returns the system's name
func (s *SpawnSystem) Name() string {
	return "spawn"
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

// Update spawns one enemy per elapsed interval while the run lasts
func (s *SpawnSystem) Update(w *engine.World, dt time.Duration) {
	if s.ctx.GameOver {
		return
	}
	s.acc += dt
	for s.acc >= parameter.SpawnInterval {
		s.acc -= parameter.SpawnInterval
		s.spawn(w)
	}
}

// spawn places a single weighted-roll enemy on an open floor cell
func (s *SpawnSystem) spawn(w *engine.World) {
	playerKin, ok := w.Components.Kinetic.GetComponent(s.ctx.Player)
	if !ok {
		return
	}
	playerCell := grid.CellOf(playerKin.X, playerKin.Y)

	// 1. Candidate cells: floor underneath, nothing on top, outside
	// the clearance square
	var candidates []core.Point
	for _, p := range s.ctx.Grid.Positions(grid.PlaneBackground) {
		if s.ctx.Grid.HasTile(p, grid.PlaneForeground) {
			continue
		}
		dx, dy := p.X-playerCell.X, p.Y-playerCell.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx <= parameter.SpawnClearRadius && dy <= parameter.SpawnClearRadius {
			continue
		}
		candidates = append(candidates, p)
	}
	if len(candidates) == 0 {
		return
	}
	p := candidates[s.ctx.Rand.Intn(len(candidates))]

	// 2. Weighted archetype roll
	archetype := component.ArchetypeHornet
	switch roll := s.ctx.Rand.Float64(); {
	case roll < parameter.SpawnWeightHornet:
		archetype = component.ArchetypeHornet
	case roll < parameter.SpawnWeightHornet+parameter.SpawnWeightSpider:
		archetype = component.ArchetypeSpider
	default:
		archetype = component.ArchetypeBeetle
	}

	engine.BuildEnemy(s.ctx, archetype, float64(p.X*parameter.TileSize), float64(p.Y*parameter.TileSize))
	logrus.Debugf("spawned %s at tile (%d, %d)", archetype, p.X, p.Y)
}
