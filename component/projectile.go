package component

import (
	"github.com/lixenwraith/warrenfall/core"
	"github.com/lixenwraith/warrenfall/registry"
)

// ProjectileComponent marks an entity as a projectile in flight.
// Exactly one of Target or TargetGroup should be set; when both are,
// the single target wins.
type ProjectileComponent struct {
	// Damage applied on hit
	Damage int

	// Owner is the entity that fired the projectile; reflections aim
	// back at it
	Owner core.Entity

	// Target is a single entity to hit-test against, 0 for none
	Target core.Entity

	// TargetGroup is a registry group to hit-test against,
	// registry.GroupNone for none
	TargetGroup registry.GroupID
}
