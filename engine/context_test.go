package engine

import (
	"testing"

	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/grid"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/registry"
)

// Test a new session places the player on an open cell
func TestNewGameContextPlacesPlayer(t *testing.T) {
	ctx := NewGameContext(42)

	if ctx.Player == 0 {
		t.Fatalf("Expected a player entity")
	}

	c := &ctx.World.Components
	if !c.Kinetic.HasEntity(ctx.Player) || !c.Collider.HasEntity(ctx.Player) ||
		!c.Health.HasEntity(ctx.Player) || !c.Combat.HasEntity(ctx.Player) ||
		!c.Player.HasEntity(ctx.Player) {
		t.Errorf("Expected the full player component set")
	}

	x, y := ctx.PlayerPos()
	cell := grid.CellOf(x, y)
	if ctx.Grid.HasTile(cell, grid.PlaneForeground) {
		t.Errorf("Expected the player start cell %v to be open", cell)
	}

	if !ctx.Roster.Has(ctx.Player, registry.GroupEntities) {
		t.Errorf("Expected the player in the entity group")
	}
	if ctx.Roster.Has(ctx.Player, registry.GroupEnemies) {
		t.Errorf("Expected the player outside the enemy group")
	}

	cur, max := ctx.PlayerHealth()
	if cur != parameter.PlayerMaxHealth || max != parameter.PlayerMaxHealth {
		t.Errorf("Expected full health %d/%d, got %d/%d", parameter.PlayerMaxHealth, parameter.PlayerMaxHealth, cur, max)
	}
}

// Test the same seed reproduces the session layout
func TestNewGameContextDeterministic(t *testing.T) {
	a := NewGameContext(42)
	b := NewGameContext(42)

	if a.Seed != 42 || b.Seed != 42 {
		t.Errorf("Expected the configured seed recorded, got %d and %d", a.Seed, b.Seed)
	}

	ax, ay := a.PlayerPos()
	bx, by := b.PlayerPos()
	if ax != bx || ay != by {
		t.Errorf("Expected identical player starts, got (%v, %v) and (%v, %v)", ax, ay, bx, by)
	}

	if a.Grid.Count(grid.PlaneForeground) != b.Grid.Count(grid.PlaneForeground) {
		t.Errorf("Expected identical foreground tile counts")
	}
	if a.Grid.Count(grid.PlaneBackground) != b.Grid.Count(grid.PlaneBackground) {
		t.Errorf("Expected identical background tile counts")
	}
}

// Test a zero seed rolls a fresh one
func TestNewGameContextRollsSeed(t *testing.T) {
	ctx := NewGameContext(0)

	if ctx.Seed == 0 {
		t.Errorf("Expected a nonzero effective seed")
	}
}

// Test stepping empties the queue into the cue slice
func TestStepDrainsCues(t *testing.T) {
	ctx := NewGameContext(7)

	ctx.Events.Push(event.EventShot, event.ShotPayload{Shooter: ctx.Player})
	ctx.Step(parameter.FrameInterval)

	if ctx.Events.Len() != 0 {
		t.Errorf("Expected the queue empty after a step, got %d events", ctx.Events.Len())
	}
	if len(ctx.Cues) != 1 || ctx.Cues[0].Type != event.EventShot {
		t.Errorf("Expected the unconsumed shot as a cue, got %v", ctx.Cues)
	}

	// A quiet tick replaces the cues with nothing
	ctx.Step(parameter.FrameInterval)
	if len(ctx.Cues) != 0 {
		t.Errorf("Expected no cues on a quiet tick, got %d", len(ctx.Cues))
	}
}
