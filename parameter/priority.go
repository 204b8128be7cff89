package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityCooldown   = 10 // Timers tick before anything reads them
	PriorityPlayer     = 20
	PriorityBehavior   = 30
	PriorityKnockback  = 40 // After movement intent, before projectiles
	PriorityProjectile = 50
	PriorityCombat     = 60 // Consumes hit events from projectiles
	PriorityDeath      = 70 // Collects zero-health entities after combat
	PriorityScore      = 80 // Consumes kill events from death
	PrioritySpawn      = 90
)
