package systems

import (
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/game"
	"github.com/seedrunner/seedrunner/input"
)

// PlayerControlSystem translates held direction bindings into a one-tick
// MoveIntent on the player entity. Runs before movement
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *engine.World, ctx *engine.TickContext) {
	in, ok := engine.Resource(w, engine.InputKey)
	if !ok {
		return
	}
	player, ok := engine.Resource(w, game.PlayerKey)
	if !ok || !w.IsEntityAlive(player) {
		return
	}

	dx, dy := 0, 0
	if in.IsHeld(input.MoveUp) {
		dy--
	}
	if in.IsHeld(input.MoveDown) {
		dy++
	}
	if in.IsHeld(input.MoveLeft) {
		dx--
	}
	if in.IsHeld(input.MoveRight) {
		dx++
	}
	// Tile movement is four-way; a diagonal chord resolves to horizontal
	if dx != 0 {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return
	}

	engine.AddComponent(w, player, component.MoveIntentKey, component.MoveIntent{DX: dx, DY: dy})
}
