package engine

import (
	"github.com/lixenwraith/warrenfall/component"
	"github.com/lixenwraith/warrenfall/core"
)

// AnyStore is the type-erased store view used for entity lifecycle sweeps
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	ClearAllComponents()
}

// ComponentStore holds a typed store per component kind.
// Public for direct system access.
type ComponentStore struct {
	Kinetic    *Store[component.KineticComponent]
	Collider   *Store[component.ColliderComponent]
	Health     *Store[component.HealthComponent]
	Combat     *Store[component.CombatComponent]
	Knockback  *Store[component.KnockbackComponent]
	Behavior   *Store[component.BehaviorComponent]
	Projectile *Store[component.ProjectileComponent]
	Player     *Store[component.PlayerComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetic:    NewStore[component.KineticComponent](),
		Collider:   NewStore[component.ColliderComponent](),
		Health:     NewStore[component.HealthComponent](),
		Combat:     NewStore[component.CombatComponent](),
		Knockback:  NewStore[component.KnockbackComponent](),
		Behavior:   NewStore[component.BehaviorComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Player:     NewStore[component.PlayerComponent](),
	}
}

// all returns the stores as the type-erased lifecycle view.
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{
		c.Kinetic,
		c.Collider,
		c.Health,
		c.Combat,
		c.Knockback,
		c.Behavior,
		c.Projectile,
		c.Player,
	}
}
