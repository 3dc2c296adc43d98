package engine

import (
	"time"

	"github.com/seedrunner/seedrunner/core"
)

// TickContext is the per-tick payload handed to every system
// Delta is always exactly one fixed step; Frame counts logical steps since
// the run started; Rand is the run's continuous deterministic stream
type TickContext struct {
	Delta time.Duration
	Frame int64
	Rand  core.Source
}

// System is invoked once per tick with the world and the tick payload
// Systems run in exact registration order every tick, fully synchronously
type System interface {
	Update(w *World, ctx *TickContext)
}
