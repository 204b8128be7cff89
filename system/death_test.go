package system

import (
	"testing"

	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/registry"
)

// Test a dead enemy pays its bounty and leaves the world
func TestDeathSweepsEnemy(t *testing.T) {
	ctx := newTestContext()
	sys := NewDeathSystem(ctx)
	c := &ctx.World.Components

	hornet := buildHornet(ctx, 240, 160)
	health, _ := c.Health.GetComponent(hornet)
	health.Current = 0
	c.Health.SetComponent(hornet, health)

	sys.Update(ctx.World, parameter.FrameInterval)

	kills := ctx.Events.Take(event.EventKill)
	if len(kills) != 1 {
		t.Fatalf("Expected 1 kill event, got %d", len(kills))
	}
	payload := kills[0].Payload.(event.KillPayload)
	if payload.Entity != hornet || payload.Bounty != parameter.HornetBounty {
		t.Errorf("Expected bounty %d for the hornet, got %+v", parameter.HornetBounty, payload)
	}

	if ctx.World.HasAnyComponent(hornet) {
		t.Errorf("Expected the hornet fully removed")
	}
	if ctx.Roster.Groups(hornet) != registry.GroupNone {
		t.Errorf("Expected the hornet out of every group")
	}
}

// Test spent projectiles vanish without a bounty
func TestDeathSweepsProjectile(t *testing.T) {
	ctx := newTestContext()
	sys := NewDeathSystem(ctx)
	c := &ctx.World.Components

	shot := engine.BuildProjectile(ctx, ctx.Player, 168, 168, 1, 0, 500, 1, 0, registry.GroupEnemies)
	health, _ := c.Health.GetComponent(shot)
	health.Current = 0
	c.Health.SetComponent(shot, health)

	sys.Update(ctx.World, parameter.FrameInterval)

	if ctx.World.HasAnyComponent(shot) {
		t.Errorf("Expected the spent shot removed")
	}
	if kills := ctx.Events.Take(event.EventKill); len(kills) != 0 {
		t.Errorf("Expected no kill event for a projectile, got %d", len(kills))
	}
}

// Test the living are left alone
func TestDeathSparesLiving(t *testing.T) {
	ctx := newTestContext()
	sys := NewDeathSystem(ctx)

	hornet := buildHornet(ctx, 240, 160)
	sys.Update(ctx.World, parameter.FrameInterval)

	if !ctx.World.HasAnyComponent(hornet) {
		t.Errorf("Expected the living hornet untouched")
	}
	if ctx.Events.Len() != 0 {
		t.Errorf("Expected no events, got %d", ctx.Events.Len())
	}
}

// Test the player's death ends the run but keeps the entity
func TestDeathPlayerGameOver(t *testing.T) {
	ctx := newTestContext()
	sys := NewDeathSystem(ctx)
	c := &ctx.World.Components

	health, _ := c.Health.GetComponent(ctx.Player)
	health.Current = 0
	c.Health.SetComponent(ctx.Player, health)

	sys.Update(ctx.World, parameter.FrameInterval)

	if !ctx.GameOver {
		t.Errorf("Expected the run flagged over")
	}
	if over := ctx.Events.Take(event.EventGameOver); len(over) != 1 {
		t.Errorf("Expected 1 game over event, got %d", len(over))
	}
	if !ctx.World.HasAnyComponent(ctx.Player) {
		t.Errorf("Expected the player entity kept for the fade")
	}

	// The flag fires exactly once
	sys.Update(ctx.World, parameter.FrameInterval)
	if over := ctx.Events.Take(event.EventGameOver); len(over) != 0 {
		t.Errorf("Expected no repeat game over event, got %d", len(over))
	}
}
