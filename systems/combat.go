package systems

import (
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/core"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/game"
	"github.com/seedrunner/seedrunner/input"
)

// CombatSystem resolves melee strikes between adjacent entities. The player
// strikes only while the attack binding is held; enemies strike the player on
// sight. Cooldowns are frame-based, damage rolls draw from the tick stream
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *engine.World, ctx *engine.TickContext) {
	player, hasPlayer := engine.Resource(w, game.PlayerKey)

	melee, ok := engine.StoreFor(w, component.MeleeKey)
	if !ok {
		return
	}
	health, ok := engine.StoreFor(w, component.HealthKey)
	if !ok {
		return
	}

	attackHeld := false
	if in, ok := engine.Resource(w, engine.InputKey); ok {
		attackHeld = in.IsHeld(input.Attack)
	}

	for _, entry := range melee.Entries() {
		if entry.Value.ReadyAt > ctx.Frame {
			continue
		}
		pos, ok := engine.GetComponent(w, entry.Entity, component.PositionKey)
		if !ok {
			continue
		}

		isPlayer := hasPlayer && entry.Entity == player
		if isPlayer && !attackHeld {
			continue
		}

		target := s.pickTarget(w, pos, isPlayer, player)
		if target == core.NoEntity {
			continue
		}

		hp, ok := health.Get(target)
		if !ok {
			continue
		}
		roll := entry.Value.Damage
		if roll > 1 {
			roll = ctx.Rand.NextInt(1, entry.Value.Damage)
		}
		hp.Current -= roll
		health.Add(target, hp)

		m := entry.Value
		m.ReadyAt = ctx.Frame + m.Cooldown
		melee.Add(entry.Entity, m)
	}
}

// pickTarget returns the victim adjacent to the attacker, or NoEntity. The
// player strikes the lowest-id adjacent enemy; enemies only strike the player
func (s *CombatSystem) pickTarget(w *engine.World, pos component.Position, isPlayer bool, player core.Entity) core.Entity {
	if !isPlayer {
		playerPos, ok := engine.GetComponent(w, player, component.PositionKey)
		if !ok {
			return core.NoEntity
		}
		if abs(playerPos.X-pos.X)+abs(playerPos.Y-pos.Y) == 1 {
			return player
		}
		return core.NoEntity
	}

	enemies, ok := engine.StoreFor(w, component.EnemyKey)
	if !ok {
		return core.NoEntity
	}
	for _, entry := range enemies.Entries() {
		epos, ok := engine.GetComponent(w, entry.Entity, component.PositionKey)
		if !ok {
			continue
		}
		if abs(epos.X-pos.X)+abs(epos.Y-pos.Y) == 1 {
			return entry.Entity
		}
	}
	return core.NoEntity
}
