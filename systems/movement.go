package systems

import (
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/game"
	"github.com/seedrunner/seedrunner/mapgen"
)

// MovementSystem consumes every MoveIntent, applying it when the target tile
// is walkable and unoccupied. Intents resolve in ascending entity id order, so
// two entities contending for a tile always resolve the same way
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *engine.World, ctx *engine.TickContext) {
	m, ok := engine.Resource(w, game.MapKey)
	if !ok {
		return
	}
	intents, ok := engine.StoreFor(w, component.MoveIntentKey)
	if !ok {
		return
	}
	positions, ok := engine.StoreFor(w, component.PositionKey)
	if !ok {
		return
	}

	occupied := make(map[mapgen.Point]struct{}, positions.Len())
	for _, entry := range positions.Entries() {
		occupied[mapgen.Point{X: entry.Value.X, Y: entry.Value.Y}] = struct{}{}
	}

	for _, entry := range intents.Entries() {
		w.RemoveComponent(entry.Entity, component.MoveIntentKey.ID())

		pos, ok := positions.Get(entry.Entity)
		if !ok {
			continue
		}

		target := mapgen.Point{X: pos.X + entry.Value.DX, Y: pos.Y + entry.Value.DY}
		if !m.IsWalkable(target.X, target.Y) {
			continue
		}
		if _, taken := occupied[target]; taken {
			continue
		}

		delete(occupied, mapgen.Point{X: pos.X, Y: pos.Y})
		occupied[target] = struct{}{}
		positions.Add(entry.Entity, component.Position{X: target.X, Y: target.Y})
	}
}
