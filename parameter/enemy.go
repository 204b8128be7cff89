package parameter

import "time"

// Shared Enemy Tuning
const (
	// EnemyGraceDuration is the post-hit invulnerability window for all
	// enemy archetypes
	EnemyGraceDuration = 800 * time.Millisecond

	EnemyShotDamage = 1
)

// Hornet (pursuer, single aimed shot)
const (
	HornetHealth              = 1
	HornetDetectionRange      = 200.0
	HornetAttackRange         = 160.0
	HornetStopRange           = 50.0
	HornetSpeed               = 80.0
	HornetKnockbackResistance = 200.0
	HornetAttackCooldown      = 750 * time.Millisecond
	HornetShotSpeed           = 100.0
	HornetBounty              = 10
)

// Spider (radial burst)
const (
	SpiderHealth              = 2
	SpiderDetectionRange      = 300.0
	SpiderAttackRange         = 180.0
	SpiderStopRange           = 100.0
	SpiderSpeed               = 150.0
	SpiderKnockbackResistance = 200.0
	SpiderAttackCooldown      = 1000 * time.Millisecond
	SpiderShotSpeed           = 120.0
	SpiderBounty              = 20

	// SpiderBurstCount is the number of evenly spread projectiles per
	// attack (compass directions)
	SpiderBurstCount = 8
)

// Beetle (counted volleys, then a reflecting guard)
const (
	BeetleHealth              = 3
	BeetleDetectionRange      = 400.0
	BeetleAttackRange         = 150.0
	BeetleStopRange           = 100.0
	BeetleSpeed               = 40.0
	BeetleKnockbackResistance = 100.0
	BeetleAttackCooldown      = 3000 * time.Millisecond
	BeetleShotSpeed           = 80.0
	BeetleBounty              = 40

	// BeetleVolleyCount is volleys per attack cycle; volley n fires
	// (n+1)*(n+1) projectiles in an evenly spaced ring
	BeetleVolleyCount = 3

	// BeetleVolleyInterval separates volleys inside one cycle
	BeetleVolleyInterval = 200 * time.Millisecond

	// BeetleDefendDuration is the guard window after the last volley;
	// hits taken while guarding reflect back at the attacker
	BeetleDefendDuration = 1500 * time.Millisecond

	// BeetleReflectSpeedRatio scales the attacker's shot speed for the
	// reflected projectile
	BeetleReflectSpeedRatio = 0.5
)

// Spawning
const (
	// SpawnInterval is the pause between spawn attempts, on the same
	// clock as the survival score trickle
	SpawnInterval = 1000 * time.Millisecond

	// SpawnClearRadius is the square tile radius around the player kept
	// free of spawns
	SpawnClearRadius = 10

	SpawnWeightHornet = 0.70
	SpawnWeightSpider = 0.25
	SpawnWeightBeetle = 0.05
)
