package engine

import (
	"sort"

	"github.com/seedrunner/seedrunner/core"
)

// Store is a generic container for a specific component type T with deferred
// removal. Execution is single-threaded (see World.Update); the pending set
// is the substitute for locking, letting systems request removals mid-tick
// without invalidating iteration snapshots already in flight
type Store[T any] struct {
	components map[core.Entity]T
	pending    map[core.Entity]struct{}
}

// Entry is one (entity, component) pair of a deterministic snapshot
type Entry[T any] struct {
	Entity core.Entity
	Value  T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T, 64),
		pending:    make(map[core.Entity]struct{}),
	}
}

// Add inserts or updates a component for an entity
// Re-adding cancels any queued removal for the entity: last write wins
func (s *Store[T]) Add(e core.Entity, val T) {
	s.components[e] = val
	delete(s.pending, e)
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has checks if the entity currently has this component
// A queued removal has no effect until the flush
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes a component immediately, clearing any queued removal
// Safe no-op if the component is absent
func (s *Store[T]) Remove(e core.Entity) {
	delete(s.components, e)
	delete(s.pending, e)
}

// QueueRemoval stages the entity for deletion at the next flush
// No-op if the component is absent
func (s *Store[T]) QueueRemoval(e core.Entity) {
	if _, ok := s.components[e]; ok {
		s.pending[e] = struct{}{}
	}
}

// FlushQueuedRemovals deletes every queued entity and clears the queue
func (s *Store[T]) FlushQueuedRemovals() {
	if len(s.pending) == 0 {
		return
	}
	for e := range s.pending {
		delete(s.components, e)
	}
	clear(s.pending)
}

// Entries returns a snapshot of all pairs sorted ascending by entity id
// Iteration order must never depend on map enumeration; replay determinism
// rides on this
func (s *Store[T]) Entries() []Entry[T] {
	result := make([]Entry[T], 0, len(s.components))
	for e, v := range s.components {
		result = append(result, Entry[T]{Entity: e, Value: v})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Entity < result[j].Entity
	})
	return result
}

// Clear drops all components and all queued removals
func (s *Store[T]) Clear() {
	clear(s.components)
	clear(s.pending)
}

// Len returns the number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.components)
}
