package engine

import (
	"time"

	"github.com/lixenwraith/warrenfall/cavern"
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/grid"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/registry"
	"github.com/lixenwraith/warrenfall/vmath"
)

// GameContext owns one game session: the world, the tile grid, the group
// roster, the event queue and the session state the frontend reads.
type GameContext struct {
	World  *World
	Grid   *grid.Grid
	Roster *registry.Roster
	Events *event.Queue
	Rand   *vmath.FastRand

	// Player is the player entity, never destroyed during a session
	Player core.Entity

	// Intent is the folded input for the next tick; the frontend writes
	// it before Step
	Intent Intent

	// Score is the session score, frozen once GameOver is set
	Score int

	// GameOver flips when the player dies and never clears
	GameOver bool

	// GameOverElapsed accumulates time since GameOver flipped
	GameOverElapsed time.Duration

	// Seed reproduces the session's cavern and spawn rolls
	Seed int64

	// Cues holds the events left over after the last Step, for frontend
	// sound and log hooks; replaced every tick
	Cues []event.GameEvent
}

// NewGameContext generates a cavern, loads the grid and places the player
// at the nearest open cell to the map center. Seed 0 picks a time-based
// seed; the effective seed is recorded for reproduction.
func NewGameContext(seed int64) *GameContext {
	result := cavern.Generate(cavern.Config{
		Width:              parameter.MapWidth,
		Height:             parameter.MapHeight,
		Border:             parameter.MapBorder,
		WallChance:         parameter.MapWallChance,
		SmoothPasses:       parameter.MapSmoothPasses,
		StopWall:           parameter.MapStopWall,
		StopAir:            parameter.MapStopAir,
		BackgroundPasses:   parameter.BackgroundSmoothPasses,
		BackgroundStopWall: parameter.BackgroundStopWall,
		BackgroundStopAir:  parameter.BackgroundStopAir,
		Seed:               seed,
	})

	g := grid.New(result.Width, result.Height)
	g.Apply(result)

	ctx := &GameContext{
		World:  NewWorld(),
		Grid:   g,
		Roster: registry.NewRoster(),
		Events: event.NewQueue(),
		Rand:   vmath.NewFastRand(uint64(result.Seed)),
		Seed:   result.Seed,
	}

	center := core.Point{X: result.Width / 2, Y: result.Height / 2}
	start, ok := g.NearestOpen(center)
	if !ok {
		start = center
	}
	px := float64(start.X*parameter.TileSize) + (parameter.TileSize-parameter.EntitySize)/2
	py := float64(start.Y*parameter.TileSize) + (parameter.TileSize-parameter.EntitySize)/2
	ctx.Player = BuildPlayer(ctx, px, py)

	return ctx
}

// Step advances the session by dt. Systems keep running after game over
// so knockback and timers settle; score and spawning freeze on their own.
// The event queue is emptied every tick: whatever the systems did not
// consume lands in Cues.
func (ctx *GameContext) Step(dt time.Duration) {
	ctx.World.Update(dt)
	ctx.Cues = ctx.Events.Drain()
}

// PlayerHealth returns the player's current and max health.
func (ctx *GameContext) PlayerHealth() (int, int) {
	h, ok := ctx.World.Components.Health.GetComponent(ctx.Player)
	if !ok {
		return 0, 0
	}
	return h.Current, h.Max
}

// PlayerPos returns the player collider's top-left corner.
func (ctx *GameContext) PlayerPos() (float64, float64) {
	k, ok := ctx.World.Components.Kinetic.GetComponent(ctx.Player)
	if !ok {
		return 0, 0
	}
	return k.X, k.Y
}
