package engine

// KeyID is the flat string namespace shared by component and resource keys
type KeyID string

// ComponentKey names one component slot, carrying the component type as a
// phantom parameter so store lookups cast exactly once, at the API boundary.
// A given id must always be paired with the same component type
type ComponentKey[T any] struct {
	id KeyID
}

// NewComponentKey mints a typed component slot key
func NewComponentKey[T any](id string) ComponentKey[T] {
	return ComponentKey[T]{id: KeyID(id)}
}

// ID returns the raw key for the world's untyped operations
func (k ComponentKey[T]) ID() KeyID { return k.id }

// ResourceKey names one world-wide singleton value, typed the same way
type ResourceKey[T any] struct {
	id KeyID
}

// NewResourceKey mints a typed resource key
func NewResourceKey[T any](id string) ResourceKey[T] {
	return ResourceKey[T]{id: KeyID(id)}
}

// ID returns the raw key for the world's untyped operations
func (k ResourceKey[T]) ID() KeyID { return k.id }
