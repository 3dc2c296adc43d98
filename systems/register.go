package systems

import (
	"github.com/seedrunner/seedrunner/engine"
)

// RegisterAll installs the gameplay systems in simulation order:
// control and AI write intents, movement consumes them, combat resolves
// strikes, death reaps
func RegisterAll(w *engine.World) {
	w.AddSystem(NewPlayerControlSystem())
	w.AddSystem(NewEnemyAISystem())
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewCombatSystem())
	w.AddSystem(NewDeathSystem())
}
