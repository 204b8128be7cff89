// Package registry provides the membership collections actors and tiles
// belong to: dedup sets with O(1) add/remove and an entity roster that
// tracks which groups each entity joined so removal detaches everywhere.
package registry

// Set is an unordered deduplicating collection.
// Uses sparse set pattern: an index map plus a dense slice for iteration.
type Set[T comparable] struct {
	index map[T]int
	items []T
}

// NewSet creates an empty set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{
		index: make(map[T]int),
		items: make([]T, 0, 64),
	}
}

// Add inserts v. Adding a present member is a no-op.
// Reports whether the set changed.
func (s *Set[T]) Add(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// Remove deletes v. Removing an absent member is a no-op.
// Reports whether the set changed.
func (s *Set[T]) Remove(v T) bool {
	i, ok := s.index[v]
	if !ok {
		return false
	}
	last := len(s.items) - 1
	if i != last {
		s.items[i] = s.items[last]
		s.index[s.items[i]] = i
	}
	s.items = s.items[:last]
	delete(s.index, v)
	return true
}

// Has reports membership.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the member count.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns a snapshot of the members. The snapshot stays valid while
// the set mutates, so callers may remove members mid-iteration.
func (s *Set[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Clear removes all members.
func (s *Set[T]) Clear() {
	s.index = make(map[T]int)
	s.items = s.items[:0]
}
