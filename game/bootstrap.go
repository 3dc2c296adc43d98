package game

import (
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/content"
	"github.com/seedrunner/seedrunner/core"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/mapgen"
)

const (
	playerHealth   = 20
	playerDamage   = 4
	playerCooldown = 8

	// Enemies spawn at least this far (manhattan) from the player start
	spawnMinDist = 8
)

// NewBootstrap builds the world-population routine for a run. It is a pure
// function of (world, seed): map layout, enemy placement and archetype
// assignment all draw from a rand stream rebuilt from the seed, so restarting
// with the same seed reproduces the exact same opening state
func NewBootstrap(mapCfg mapgen.Config, table *content.Table, enemyCount int) engine.Bootstrap {
	if table == nil {
		table = content.DefaultTable()
	}
	return func(w *engine.World, seed int64) engine.BootResult {
		rng := core.NewRand(seed)

		m := mapgen.Generate(mapCfg, rng)

		player := w.CreateEntity()
		engine.AddComponent(w, player, component.PositionKey, component.Position{X: m.Start.X, Y: m.Start.Y})
		engine.AddComponent(w, player, component.HealthKey, component.Health{Current: playerHealth, Max: playerHealth})
		engine.AddComponent(w, player, component.MeleeKey, component.Melee{Damage: playerDamage, Cooldown: playerCooldown})
		engine.AddComponent(w, player, component.PlayerKey, component.Player{})

		enemies := make([]core.Entity, 0, enemyCount)
		for i, p := range mapgen.SpawnPoints(m, enemyCount, spawnMinDist, rng) {
			arch := table.At(i)
			e := w.CreateEntity()
			engine.AddComponent(w, e, component.PositionKey, component.Position{X: p.X, Y: p.Y})
			engine.AddComponent(w, e, component.HealthKey, component.Health{Current: arch.Health, Max: arch.Health})
			engine.AddComponent(w, e, component.MeleeKey, component.Melee{Damage: arch.Damage, Cooldown: arch.Cooldown})
			engine.AddComponent(w, e, component.ChaseAIKey, component.ChaseAI{Aggro: arch.Aggro, Wander: arch.Wander})
			engine.AddComponent(w, e, component.EnemyKey, component.Enemy{Archetype: arch.Name, Glyph: arch.Rune()})
			enemies = append(enemies, e)
		}

		engine.RegisterResource(w, MapKey, m)
		engine.RegisterResource(w, PlayerKey, player)

		return engine.BootResult{Map: m, Player: player, Enemies: enemies}
	}
}
