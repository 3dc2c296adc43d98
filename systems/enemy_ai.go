package systems

import (
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/game"
)

// EnemyAISystem writes MoveIntent for every ChaseAI entity: chase the player
// while inside the aggro radius, otherwise wander with the per-tick chance.
// Entities are visited in ascending id order so the rand stream is stable
type EnemyAISystem struct{}

func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{}
}

func (s *EnemyAISystem) Update(w *engine.World, ctx *engine.TickContext) {
	player, ok := engine.Resource(w, game.PlayerKey)
	if !ok {
		return
	}
	playerPos, ok := engine.GetComponent(w, player, component.PositionKey)
	if !ok {
		return
	}

	ai, ok := engine.StoreFor(w, component.ChaseAIKey)
	if !ok {
		return
	}

	dirs := [4]component.MoveIntent{{DX: 0, DY: -1}, {DX: 0, DY: 1}, {DX: -1, DY: 0}, {DX: 1, DY: 0}}

	for _, entry := range ai.Entries() {
		pos, ok := engine.GetComponent(w, entry.Entity, component.PositionKey)
		if !ok {
			continue
		}

		dx := playerPos.X - pos.X
		dy := playerPos.Y - pos.Y
		dist := abs(dx) + abs(dy)

		if dist <= entry.Value.Aggro && dist > 1 {
			// Close the larger axis first; ties go horizontal
			intent := component.MoveIntent{}
			if abs(dx) >= abs(dy) {
				intent.DX = sign(dx)
			} else {
				intent.DY = sign(dy)
			}
			engine.AddComponent(w, entry.Entity, component.MoveIntentKey, intent)
			continue
		}

		if dist > 1 && ctx.Rand.NextFloat() < entry.Value.Wander {
			engine.AddComponent(w, entry.Entity, component.MoveIntentKey, dirs[ctx.Rand.NextInt(0, 3)])
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
