package engine

import (
	"fmt"
	"sort"

	"github.com/seedrunner/seedrunner/core"
)

// componentRemoval records one (entity, slot) pair queued during a tick so
// the flush can reconcile the entity→component index afterwards
type componentRemoval struct {
	entity core.Entity
	key    KeyID
}

// World is the top-level simulation container. It owns the entity set, the
// registry of typed component stores, the singleton resource map, and the
// ordered system list. All destructive mutation requested during a tick is
// deferred and drained exclusively at the end of Update, so in-tick iteration
// never skips or duplicates entries
//
// A World is single-threaded by design: a tick runs fully synchronously and
// the host invokes Update serially. No locking, no parallel systems
type World struct {
	nextEntityID   core.Entity
	entities       map[core.Entity]struct{}
	pendingDestroy map[core.Entity]struct{}

	stores    map[KeyID]AnyStore
	storeKeys []KeyID // sorted; fixes the flush order across runs

	resources map[KeyID]any

	systems []System

	// entityComponents is the reverse index entity → attached slots,
	// maintained by the World-level mutators and the flush protocol
	entityComponents map[core.Entity]map[KeyID]struct{}

	pendingComponentRemovals []componentRemoval
	pendingEntityRemovals    []core.Entity
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		nextEntityID:     1,
		entities:         make(map[core.Entity]struct{}),
		pendingDestroy:   make(map[core.Entity]struct{}),
		stores:           make(map[KeyID]AnyStore),
		resources:        make(map[KeyID]any),
		systems:          make([]System, 0),
		entityComponents: make(map[core.Entity]map[KeyID]struct{}),
	}
}

// === Entities ===

// CreateEntity allocates the next id and marks it alive
// IDs are never reused within a run
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	w.entities[id] = struct{}{}
	return id
}

// DestroyEntity marks an entity pending-destruction and queues removal of
// every component currently attached to it. Idempotent; has no observable
// effect on HasComponent/GetComponent until the next flush
func (w *World) DestroyEntity(e core.Entity) {
	if _, alive := w.entities[e]; !alive {
		return
	}
	if _, already := w.pendingDestroy[e]; already {
		return
	}
	w.pendingDestroy[e] = struct{}{}
	for key := range w.entityComponents[e] {
		w.stores[key].QueueRemoval(e)
		w.pendingComponentRemovals = append(w.pendingComponentRemovals, componentRemoval{entity: e, key: key})
	}
	w.pendingEntityRemovals = append(w.pendingEntityRemovals, e)
}

// IsEntityAlive reports whether the entity exists and is not marked
// pending-destruction
func (w *World) IsEntityAlive(e core.Entity) bool {
	if _, ok := w.entities[e]; !ok {
		return false
	}
	_, doomed := w.pendingDestroy[e]
	return !doomed
}

// === Component stores ===

// RegisterStore creates and registers the store for a component slot
// Registering the same key twice is a caller programming error
func RegisterStore[T any](w *World, key ComponentKey[T]) *Store[T] {
	if _, exists := w.stores[key.id]; exists {
		panic(fmt.Sprintf("Component store already registered: %s", key.id))
	}
	store := NewStore[T]()
	w.stores[key.id] = store
	w.storeKeys = append(w.storeKeys, key.id)
	sort.Slice(w.storeKeys, func(i, j int) bool { return w.storeKeys[i] < w.storeKeys[j] })
	return store
}

// StoreFor looks up the typed store for a key
// The single checked cast from the type-erased registry happens here
func StoreFor[T any](w *World, key ComponentKey[T]) (*Store[T], bool) {
	store, ok := w.stores[key.id].(*Store[T])
	return store, ok
}

// AddComponent attaches a component value to a living entity, cancelling any
// pending removal of the same slot. Mutating a dead entity or an unregistered
// slot is a caller programming error
func AddComponent[T any](w *World, e core.Entity, key ComponentKey[T], val T) {
	if !w.IsEntityAlive(e) {
		panic(fmt.Sprintf("Cannot add component %s to dead entity %d", key.id, e))
	}
	store, ok := StoreFor(w, key)
	if !ok {
		panic(fmt.Sprintf("Component store not registered: %s", key.id))
	}
	store.Add(e, val)
	attached, ok := w.entityComponents[e]
	if !ok {
		attached = make(map[KeyID]struct{}, 4)
		w.entityComponents[e] = attached
	}
	attached[key.id] = struct{}{}
}

// GetComponent retrieves a component value; zero value and false for any
// unknown entity, absent component, or unregistered slot. Never panics
func GetComponent[T any](w *World, e core.Entity, key ComponentKey[T]) (T, bool) {
	store, ok := StoreFor(w, key)
	if !ok {
		var zero T
		return zero, false
	}
	return store.Get(e)
}

// HasComponent reports whether the entity currently has the slot attached
// False for unknown entities and unregistered slots. Never panics
func (w *World) HasComponent(e core.Entity, key KeyID) bool {
	store, ok := w.stores[key]
	return ok && store.Has(e)
}

// RemoveComponent deletes a component immediately. Safe no-op if absent
func (w *World) RemoveComponent(e core.Entity, key KeyID) {
	store, ok := w.stores[key]
	if !ok {
		return
	}
	store.Remove(e)
	w.detachFromIndex(e, key)
}

// QueueRemoveComponent stages a component for deletion at the end-of-tick
// flush. Safe no-op if the component or the store is absent
func (w *World) QueueRemoveComponent(e core.Entity, key KeyID) {
	store, ok := w.stores[key]
	if !ok || !store.Has(e) {
		return
	}
	store.QueueRemoval(e)
	w.pendingComponentRemovals = append(w.pendingComponentRemovals, componentRemoval{entity: e, key: key})
}

// === Resources ===

// RegisterResource installs a world-wide singleton value
// Duplicate registration is a caller programming error
func RegisterResource[T any](w *World, key ResourceKey[T], val T) {
	if _, exists := w.resources[key.id]; exists {
		panic(fmt.Sprintf("Resource already registered: %s", key.id))
	}
	w.resources[key.id] = val
}

// Resource retrieves a singleton value; zero value and false if missing or
// if the key was paired with a different stored type
func Resource[T any](w *World, key ResourceKey[T]) (T, bool) {
	val, ok := w.resources[key.id].(T)
	return val, ok
}

// MustResource retrieves a singleton value or panics if missing
// Useful for core resources that must exist while a run is active
func MustResource[T any](w *World, key ResourceKey[T]) T {
	val, ok := Resource(w, key)
	if !ok {
		panic(fmt.Sprintf("Required resource not found: %s", key.id))
	}
	return val
}

// HasResource reports whether a singleton is installed under the key
func (w *World) HasResource(key KeyID) bool {
	_, ok := w.resources[key]
	return ok
}

// RemoveResource uninstalls a singleton, reporting whether anything was
// removed
func (w *World) RemoveResource(key KeyID) bool {
	if _, ok := w.resources[key]; !ok {
		return false
	}
	delete(w.resources, key)
	return true
}

// === Systems ===

// AddSystem appends a system to the tick order
// Re-adding the identical system reference is a no-op, preserving a single
// deterministic call per tick
func (w *World) AddSystem(system System) {
	for _, existing := range w.systems {
		if existing == system {
			return
		}
	}
	w.systems = append(w.systems, system)
}

// === Tick ===

// Update runs every registered system in registration order, then drains the
// deferred component removals, then the deferred entity removals. Component
// removals resolve fully (index included) before entity records are deleted,
// so no destroyed entity is ever observed still owning a component
func (w *World) Update(ctx *TickContext) {
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	for _, system := range systems {
		system.Update(w, ctx)
	}

	w.flushComponentRemovals()
	w.flushEntityRemovals()
}

func (w *World) flushComponentRemovals() {
	// Stores flush in sorted key order; nothing may depend on map enumeration
	for _, key := range w.storeKeys {
		w.stores[key].FlushQueuedRemovals()
	}
	// Reconcile the reverse index. A removal cancelled by a re-add leaves the
	// component in place, so the store is the source of truth here
	for _, rem := range w.pendingComponentRemovals {
		if !w.stores[rem.key].Has(rem.entity) {
			w.detachFromIndex(rem.entity, rem.key)
		}
	}
	w.pendingComponentRemovals = w.pendingComponentRemovals[:0]
}

func (w *World) flushEntityRemovals() {
	for _, e := range w.pendingEntityRemovals {
		// Components added after DestroyEntity was queued are dropped here
		for key := range w.entityComponents[e] {
			w.stores[key].Remove(e)
		}
		delete(w.entityComponents, e)
		delete(w.entities, e)
		delete(w.pendingDestroy, e)
	}
	w.pendingEntityRemovals = w.pendingEntityRemovals[:0]
}

func (w *World) detachFromIndex(e core.Entity, key KeyID) {
	attached, ok := w.entityComponents[e]
	if !ok {
		return
	}
	delete(attached, key)
	if len(attached) == 0 {
		delete(w.entityComponents, e)
	}
}

// Reset wipes all entity, component, and resource data and resets the id
// counter to 1. System registrations and store registrations (the slots, not
// their contents) survive, so a fresh run starts without re-wiring
func (w *World) Reset() {
	clear(w.entities)
	clear(w.pendingDestroy)
	clear(w.entityComponents)
	clear(w.resources)
	w.pendingComponentRemovals = w.pendingComponentRemovals[:0]
	w.pendingEntityRemovals = w.pendingEntityRemovals[:0]
	for _, key := range w.storeKeys {
		w.stores[key].Clear()
	}
	w.nextEntityID = 1
}

// EntityCount returns the number of entity records, pending destruction
// included until the flush
func (w *World) EntityCount() int {
	return len(w.entities)
}
