package engine

import (
	"github.com/seedrunner/seedrunner/core"
)

// AnyStore provides type-erased operations for lifecycle management
// This interface lets the World drive the per-tick removal-flush protocol
// over every registered store without knowing the concrete component type
type AnyStore interface {
	// Has checks if the entity currently has this component
	Has(e core.Entity) bool

	// Remove deletes a component immediately
	Remove(e core.Entity)

	// QueueRemoval stages the entity for deletion at the next flush
	QueueRemoval(e core.Entity)

	// FlushQueuedRemovals deletes every queued entity and clears the queue
	FlushQueuedRemovals()

	// Clear drops all components and all queued removals
	Clear()
}
