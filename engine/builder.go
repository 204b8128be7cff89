package engine

import (
	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/parameter"
	"github.com/lixenwraith/warrenfall/registry"
)

// BuildPlayer assembles the player entity at (x, y) and joins it to the
// entity group.
func BuildPlayer(ctx *GameContext, x, y float64) core.Entity {
	e := ctx.World.CreateEntity()
	c := &ctx.World.Components

	c.Kinetic.SetComponent(e, component.KineticComponent{
		X: x, Y: y,
		Speed: parameter.PlayerSpeed,
	})
	c.Collider.SetComponent(e, component.ColliderComponent{
		Width:    parameter.EntitySize,
		Height:   parameter.EntitySize,
		HitInset: parameter.HitboxInset,
	})
	c.Health.SetComponent(e, component.HealthComponent{
		Current: parameter.PlayerMaxHealth,
		Max:     parameter.PlayerMaxHealth,
		Grace:   parameter.PlayerGraceDuration,
		Visible: true,
	})
	c.Combat.SetComponent(e, component.CombatComponent{
		Damage:         parameter.PlayerShotDamage,
		AttackCooldown: parameter.PlayerAttackCooldown,
		CanAttack:      true,
		ShotSpeed:      parameter.PlayerShotSpeed,
	})
	c.Knockback.SetComponent(e, component.KnockbackComponent{
		Resistance: parameter.PlayerKnockbackResistance,
		MaxTravel:  parameter.KnockbackMaxTravel,
	})
	c.Player.SetComponent(e, component.PlayerComponent{
		FaceX: 0, FaceY: 1,
	})

	ctx.Roster.Join(e, registry.GroupEntities)
	return e
}

// BuildEnemy assembles an enemy of the given archetype at (x, y) and joins
// it to the entity and enemy groups.
func BuildEnemy(ctx *GameContext, a component.Archetype, x, y float64) core.Entity {
	e := ctx.World.CreateEntity()
	c := &ctx.World.Components

	kin := component.KineticComponent{X: x, Y: y}
	health := component.HealthComponent{
		Grace:   parameter.EnemyGraceDuration,
		Visible: true,
	}
	combat := component.CombatComponent{
		Damage:    parameter.EnemyShotDamage,
		CanAttack: true,
	}
	knock := component.KnockbackComponent{
		MaxTravel: parameter.KnockbackMaxTravel,
	}
	behavior := component.BehaviorComponent{Archetype: a}

	switch a {
	case component.ArchetypeHornet:
		kin.Speed = parameter.HornetSpeed
		health.Current = parameter.HornetHealth
		health.Max = parameter.HornetHealth
		combat.AttackCooldown = parameter.HornetAttackCooldown
		combat.ShotSpeed = parameter.HornetShotSpeed
		knock.Resistance = parameter.HornetKnockbackResistance
		behavior.DetectionRange = parameter.HornetDetectionRange
		behavior.AttackRange = parameter.HornetAttackRange
		behavior.StopRange = parameter.HornetStopRange
		behavior.Bounty = parameter.HornetBounty

	case component.ArchetypeSpider:
		kin.Speed = parameter.SpiderSpeed
		health.Current = parameter.SpiderHealth
		health.Max = parameter.SpiderHealth
		combat.AttackCooldown = parameter.SpiderAttackCooldown
		combat.ShotSpeed = parameter.SpiderShotSpeed
		knock.Resistance = parameter.SpiderKnockbackResistance
		behavior.DetectionRange = parameter.SpiderDetectionRange
		behavior.AttackRange = parameter.SpiderAttackRange
		behavior.StopRange = parameter.SpiderStopRange
		behavior.Bounty = parameter.SpiderBounty

	case component.ArchetypeBeetle:
		kin.Speed = parameter.BeetleSpeed
		health.Current = parameter.BeetleHealth
		health.Max = parameter.BeetleHealth
		combat.AttackCooldown = parameter.BeetleAttackCooldown
		combat.ShotSpeed = parameter.BeetleShotSpeed
		knock.Resistance = parameter.BeetleKnockbackResistance
		behavior.DetectionRange = parameter.BeetleDetectionRange
		behavior.AttackRange = parameter.BeetleAttackRange
		behavior.StopRange = parameter.BeetleStopRange
		behavior.Bounty = parameter.BeetleBounty
	}

	c.Kinetic.SetComponent(e, kin)
	c.Collider.SetComponent(e, component.ColliderComponent{
		Width:    parameter.EntitySize,
		Height:   parameter.EntitySize,
		HitInset: parameter.HitboxInset,
	})
	c.Health.SetComponent(e, health)
	c.Combat.SetComponent(e, combat)
	c.Knockback.SetComponent(e, knock)
	c.Behavior.SetComponent(e, behavior)

	ctx.Roster.Join(e, registry.GroupEntities, registry.GroupEnemies)
	return e
}

// BuildProjectile assembles a projectile centered on (cx, cy) flying along
// the normalized (dirX, dirY). Target and group select what it can hit.
func BuildProjectile(ctx *GameContext, owner core.Entity, cx, cy, dirX, dirY, speed float64, damage int, target core.Entity, group registry.GroupID) core.Entity {
	e := ctx.World.CreateEntity()
	c := &ctx.World.Components

	half := float64(parameter.ProjectileSize) / 2
	c.Kinetic.SetComponent(e, component.KineticComponent{
		X: cx - half, Y: cy - half,
		DirX: dirX, DirY: dirY,
		Speed: speed,
	})
	c.Collider.SetComponent(e, component.ColliderComponent{
		Width:    parameter.ProjectileSize,
		Height:   parameter.ProjectileSize,
		HitInset: parameter.HitboxInset,
	})
	// Projectile lifetime rides the health path so the death sweep
	// removes spent projectiles with everything else
	c.Health.SetComponent(e, component.HealthComponent{
		Current: 1,
		Max:     1,
		Visible: true,
	})
	c.Projectile.SetComponent(e, component.ProjectileComponent{
		Damage:      damage,
		Owner:       owner,
		Target:      target,
		TargetGroup: group,
	})

	ctx.Roster.Join(e, registry.GroupProjectiles)
	return e
}
