package systems

import (
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/game"
)

// DeathSystem reaps entities whose health reached zero. Enemy deaths queue an
// entity destruction (visible until end of tick); player death ends the run
// through the lifecycle dispatch. Runs last
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem {
	return &DeathSystem{}
}

func (s *DeathSystem) Update(w *engine.World, ctx *engine.TickContext) {
	health, ok := engine.StoreFor(w, component.HealthKey)
	if !ok {
		return
	}
	player, hasPlayer := engine.Resource(w, game.PlayerKey)

	for _, entry := range health.Entries() {
		if entry.Value.Current > 0 {
			continue
		}
		if hasPlayer && entry.Entity == player {
			engine.MustResource(w, engine.LifecycleKey).RequestGameOver()
			continue
		}
		w.DestroyEntity(entry.Entity)
	}
}
