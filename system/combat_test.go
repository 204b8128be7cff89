package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/engine"
	"github.com/lixenwraith/warrenfall/event"
	"github.com/lixenwraith/warrenfall/parameter"
)

func pushHit(ctx *engine.GameContext, payload event.HitPayload) {
	ctx.Events.Push(event.EventHit, payload)
}

// Test a clean hit deals damage, grants grace and shoves
func TestCombatDamage(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	spider := engine.BuildEnemy(ctx, component.ArchetypeSpider, 240, 160)
	pushHit(ctx, event.HitPayload{
		Target: spider, Attacker: ctx.Player,
		Amount: 1, DirX: 1, DirY: 0, Speed: 500,
	})

	sys.Update(ctx.World, parameter.FrameInterval)

	health, _ := c.Health.GetComponent(spider)
	if health.Current != parameter.SpiderHealth-1 {
		t.Errorf("Expected health %d, got %d", parameter.SpiderHealth-1, health.Current)
	}
	if health.InvulnRemaining != parameter.EnemyGraceDuration {
		t.Errorf("Expected a fresh grace window, got %v", health.InvulnRemaining)
	}

	kb, _ := c.Knockback.GetComponent(spider)
	wantForce := float64(1) * parameter.KnockbackForceScale / float64(parameter.SpiderHealth)
	if kb.Force != wantForce || kb.DirX != 1 || kb.DirY != 0 {
		t.Errorf("Expected force %v east, got %v (%v, %v)", wantForce, kb.Force, kb.DirX, kb.DirY)
	}
	if kb.Travelled != 0 {
		t.Errorf("Expected a fresh travel budget, got %v", kb.Travelled)
	}

	if damaged := ctx.Events.Take(event.EventDamaged); len(damaged) != 1 {
		t.Errorf("Expected 1 damaged event, got %d", len(damaged))
	}
	if hits := ctx.Events.Take(event.EventHit); len(hits) != 0 {
		t.Errorf("Expected the hit consumed, got %d left", len(hits))
	}
}

// Test the grace window shrugs off real damage
func TestCombatGraceBlocks(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	spider := engine.BuildEnemy(ctx, component.ArchetypeSpider, 240, 160)
	health, _ := c.Health.GetComponent(spider)
	health.InvulnRemaining = 500 * time.Millisecond
	c.Health.SetComponent(spider, health)

	pushHit(ctx, event.HitPayload{Target: spider, Attacker: ctx.Player, Amount: 1})
	sys.Update(ctx.World, parameter.FrameInterval)

	health, _ = c.Health.GetComponent(spider)
	if health.Current != parameter.SpiderHealth {
		t.Errorf("Expected no damage through grace, got %d", health.Current)
	}
	if health.InvulnRemaining != 500*time.Millisecond {
		t.Errorf("Expected the window untouched by a blocked hit, got %v", health.InvulnRemaining)
	}
	if damaged := ctx.Events.Take(event.EventDamaged); len(damaged) != 0 {
		t.Errorf("Expected no damaged event, got %d", len(damaged))
	}
}

// Test a harmless tap stretches an active grace window
func TestCombatZeroDamageRefreshesGrace(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	spider := engine.BuildEnemy(ctx, component.ArchetypeSpider, 240, 160)
	health, _ := c.Health.GetComponent(spider)
	health.InvulnRemaining = 100 * time.Millisecond
	c.Health.SetComponent(spider, health)

	pushHit(ctx, event.HitPayload{Target: spider, Attacker: ctx.Player, Amount: 0})
	sys.Update(ctx.World, parameter.FrameInterval)

	health, _ = c.Health.GetComponent(spider)
	if health.InvulnRemaining != parameter.EnemyGraceDuration {
		t.Errorf("Expected the window stretched to %v, got %v", parameter.EnemyGraceDuration, health.InvulnRemaining)
	}
	if health.Current != parameter.SpiderHealth {
		t.Errorf("Expected no damage from the tap, got %d", health.Current)
	}
}

// Test negative amounts clamp to zero instead of healing
func TestCombatNegativeAmount(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	spider := engine.BuildEnemy(ctx, component.ArchetypeSpider, 240, 160)
	pushHit(ctx, event.HitPayload{Target: spider, Attacker: ctx.Player, Amount: -5})
	sys.Update(ctx.World, parameter.FrameInterval)

	health, _ := c.Health.GetComponent(spider)
	if health.Current != parameter.SpiderHealth {
		t.Errorf("Expected health untouched by a negative amount, got %d", health.Current)
	}
	if health.InvulnRemaining != 0 {
		t.Errorf("Expected no grace from a non-hit, got %v", health.InvulnRemaining)
	}
	if damaged := ctx.Events.Take(event.EventDamaged); len(damaged) != 0 {
		t.Errorf("Expected no damaged event, got %d", len(damaged))
	}
}

// Test damage clamps at zero health without overkill
func TestCombatOverkillClamps(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	hornet := buildHornet(ctx, 240, 160)
	pushHit(ctx, event.HitPayload{Target: hornet, Attacker: ctx.Player, Amount: 99})
	sys.Update(ctx.World, parameter.FrameInterval)

	health, _ := c.Health.GetComponent(hornet)
	if health.Current != 0 {
		t.Errorf("Expected health floored at zero, got %d", health.Current)
	}
}

// Test a guarding target throws the shot back
func TestCombatGuardReflects(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	beetle := engine.BuildEnemy(ctx, component.ArchetypeBeetle, 240, 160)
	beh, _ := c.Behavior.GetComponent(beetle)
	beh.DefendRemaining = time.Second
	c.Behavior.SetComponent(beetle, beh)

	pushHit(ctx, event.HitPayload{
		Target: beetle, Attacker: ctx.Player,
		Amount: 1, DirX: 1, DirY: 0, Speed: 500,
	})
	sys.Update(ctx.World, parameter.FrameInterval)

	health, _ := c.Health.GetComponent(beetle)
	if health.Current != parameter.BeetleHealth {
		t.Errorf("Expected the guard to absorb the hit, got %d health", health.Current)
	}

	if n := c.Projectile.CountEntities(); n != 1 {
		t.Fatalf("Expected 1 reflected projectile, got %d", n)
	}
	shot := c.Projectile.GetAllEntities()[0]
	proj, _ := c.Projectile.GetComponent(shot)
	if proj.Owner != beetle || proj.Target != ctx.Player {
		t.Errorf("Expected the reflection owned by the guard and pinned on the attacker, got %+v", proj)
	}

	kin, _ := c.Kinetic.GetComponent(shot)
	if kin.Speed != 500*parameter.BeetleReflectSpeedRatio {
		t.Errorf("Expected the reflection at half the incoming speed, got %v", kin.Speed)
	}
	// The attacker sits due west of the guard
	if kin.DirX != -1 || kin.DirY != 0 {
		t.Errorf("Expected the reflection aimed west, got (%v, %v)", kin.DirX, kin.DirY)
	}

	if shots := ctx.Events.Take(event.EventShot); len(shots) != 1 {
		t.Errorf("Expected 1 shot event for the reflection, got %d", len(shots))
	}
	if damaged := ctx.Events.Take(event.EventDamaged); len(damaged) != 0 {
		t.Errorf("Expected no damage while guarding, got %d events", len(damaged))
	}
}

// Test a dead attacker just loses the reflected shot
func TestCombatGuardDeadAttacker(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	beetle := engine.BuildEnemy(ctx, component.ArchetypeBeetle, 240, 160)
	beh, _ := c.Behavior.GetComponent(beetle)
	beh.DefendRemaining = time.Second
	c.Behavior.SetComponent(beetle, beh)

	attacker := buildHornet(ctx, 160, 240)
	health, _ := c.Health.GetComponent(attacker)
	health.Current = 0
	c.Health.SetComponent(attacker, health)

	pushHit(ctx, event.HitPayload{Target: beetle, Attacker: attacker, Amount: 1, DirX: 1, Speed: 100})
	sys.Update(ctx.World, parameter.FrameInterval)

	if n := c.Projectile.CountEntities(); n != 0 {
		t.Errorf("Expected no reflection at a dead attacker, got %d", n)
	}
}

// Test hits on the dead are dropped
func TestCombatDeadTargetIgnored(t *testing.T) {
	ctx := newTestContext()
	sys := NewCombatSystem(ctx)
	c := &ctx.World.Components

	hornet := buildHornet(ctx, 240, 160)
	health, _ := c.Health.GetComponent(hornet)
	health.Current = 0
	c.Health.SetComponent(hornet, health)

	pushHit(ctx, event.HitPayload{Target: hornet, Attacker: ctx.Player, Amount: 1})
	sys.Update(ctx.World, parameter.FrameInterval)

	if ctx.Events.Len() != 0 {
		t.Errorf("Expected no follow-up events on a dead target, got %d", ctx.Events.Len())
	}
}
