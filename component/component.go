package component

import (
	"github.com/seedrunner/seedrunner/engine"
)

// Position is a tile coordinate on the generated map
type Position struct {
	X, Y int
}

// MoveIntent is a one-tick movement request, written by the control and AI
// systems and consumed (removed) by the movement system
type MoveIntent struct {
	DX, DY int
}

// Health tracks hit points; the death system reaps entities at zero
type Health struct {
	Current int
	Max     int
}

// Melee lets an entity strike an adjacent target. Cooldown is measured in
// logical frames; ReadyAt is the first frame the next strike may land on
type Melee struct {
	Damage   int
	Cooldown int64
	ReadyAt  int64
}

// ChaseAI drives an enemy: chase the player inside the aggro radius
// (manhattan), otherwise wander with the given per-tick chance
type ChaseAI struct {
	Aggro  int
	Wander float64
}

// Player tags the single player-controlled entity
type Player struct{}

// Enemy tags a hostile entity with its presentation data
type Enemy struct {
	Archetype string
	Glyph     rune
}

// Component slot keys, one store per key
var (
	PositionKey   = engine.NewComponentKey[Position]("component.position")
	MoveIntentKey = engine.NewComponentKey[MoveIntent]("component.move_intent")
	HealthKey     = engine.NewComponentKey[Health]("component.health")
	MeleeKey      = engine.NewComponentKey[Melee]("component.melee")
	ChaseAIKey    = engine.NewComponentKey[ChaseAI]("component.chase_ai")
	PlayerKey     = engine.NewComponentKey[Player]("component.player")
	EnemyKey      = engine.NewComponentKey[Enemy]("component.enemy")
)
