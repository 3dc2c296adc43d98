package game

import (
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/core"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/mapgen"
)

// Gameplay resource keys, outside the core.* reserved namespace
var (
	MapKey    = engine.NewResourceKey[*mapgen.TileMap]("game.map")
	PlayerKey = engine.NewResourceKey[core.Entity]("game.player")
)

// RegisterStores installs every component store the gameplay systems touch.
// Call once per world, before the first bootstrap
func RegisterStores(w *engine.World) {
	engine.RegisterStore(w, component.PositionKey)
	engine.RegisterStore(w, component.MoveIntentKey)
	engine.RegisterStore(w, component.HealthKey)
	engine.RegisterStore(w, component.MeleeKey)
	engine.RegisterStore(w, component.ChaseAIKey)
	engine.RegisterStore(w, component.PlayerKey)
	engine.RegisterStore(w, component.EnemyKey)
}
