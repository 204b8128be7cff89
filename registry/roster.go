package registry

import (
	"github.com/lixenwraith/warrenfall/core"
)

// GroupID is a bit flag naming one membership group.
type GroupID uint8

const (
	// GroupEntities holds every living actor including the player
	GroupEntities GroupID = 1 << iota

	// GroupEnemies holds hostile actors, the player's projectile targets
	GroupEnemies

	// GroupProjectiles holds projectiles in flight
	GroupProjectiles
)

// GroupNone is the empty group reference.
const GroupNone GroupID = 0

// Has reports whether the mask contains flag.
func (g GroupID) Has(flag GroupID) bool {
	return g&flag != 0
}

// Roster tracks entity group membership both ways: per-group member sets
// and a per-entity mask of joined groups, so dropping an entity detaches
// it from every group in one call.
type Roster struct {
	groups map[GroupID]*Set[core.Entity]
	joined map[core.Entity]GroupID
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		groups: make(map[GroupID]*Set[core.Entity]),
		joined: make(map[core.Entity]GroupID),
	}
}

func (r *Roster) group(g GroupID) *Set[core.Entity] {
	set, ok := r.groups[g]
	if !ok {
		set = NewSet[core.Entity]()
		r.groups[g] = set
	}
	return set
}

// Join adds the entity to each given group.
func (r *Roster) Join(e core.Entity, groups ...GroupID) {
	for _, g := range groups {
		if g == GroupNone {
			continue
		}
		r.group(g).Add(e)
		r.joined[e] |= g
	}
}

// Leave removes the entity from one group.
func (r *Roster) Leave(e core.Entity, g GroupID) {
	if set, ok := r.groups[g]; ok {
		set.Remove(e)
	}
	if mask, ok := r.joined[e]; ok {
		mask &^= g
		if mask == 0 {
			delete(r.joined, e)
		} else {
			r.joined[e] = mask
		}
	}
}

// Drop detaches the entity from every group it joined.
func (r *Roster) Drop(e core.Entity) {
	mask, ok := r.joined[e]
	if !ok {
		return
	}
	for bit := GroupID(1); bit != 0; bit <<= 1 {
		if mask.Has(bit) {
			r.groups[bit].Remove(e)
		}
	}
	delete(r.joined, e)
}

// Has reports whether the entity belongs to the group.
func (r *Roster) Has(e core.Entity, g GroupID) bool {
	set, ok := r.groups[g]
	return ok && set.Has(e)
}

// Groups returns the mask of groups the entity joined.
func (r *Roster) Groups(e core.Entity) GroupID {
	return r.joined[e]
}

// Members returns a snapshot of the group's entities.
func (r *Roster) Members(g GroupID) []core.Entity {
	set, ok := r.groups[g]
	if !ok {
		return nil
	}
	return set.Items()
}

// Count returns the group's member count.
func (r *Roster) Count(g GroupID) int {
	set, ok := r.groups[g]
	if !ok {
		return 0
	}
	return set.Len()
}

// Clear empties every group and the membership index.
func (r *Roster) Clear() {
	for _, set := range r.groups {
		set.Clear()
	}
	r.joined = make(map[core.Entity]GroupID)
}
