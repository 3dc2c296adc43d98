package engine

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/seedrunner/seedrunner/core"
	"github.com/seedrunner/seedrunner/input"
	"github.com/seedrunner/seedrunner/mapgen"
)

// State is the run lifecycle state
type State int

const (
	StateInit State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	}
	return "unknown"
}

// BootResult is what the bootstrap collaborator hands back after populating
// the world for a fresh run
type BootResult struct {
	Map     *mapgen.TileMap
	Player  core.Entity
	Enemies []core.Entity
}

// Bootstrap populates an empty world for the given seed
// Called exactly once per Start; must be a pure function of (world, seed) for
// restart reproducibility
type Bootstrap func(w *World, seed int64) BootResult

// Lifecycle is the dispatch resource systems use to end the current run
// Registered under LifecycleKey by the controller; wiped by World.Reset and
// re-registered on restart
type Lifecycle struct {
	RequestGameOver func()
}

// Core-reserved resource keys. External systems mint their own keys and must
// not collide with these
var (
	InputKey     = NewResourceKey[input.Provider]("core.input")
	LifecycleKey = NewResourceKey[*Lifecycle]("core.lifecycle")
)

// RunConfig configures a run controller
type RunConfig struct {
	// Step is the fixed logical step size. Must be strictly positive
	Step time.Duration

	// Seed deterministically initializes the RNG stream for the entire run
	Seed int64

	// Input is polled once per logical step; may be nil in headless tests
	Input input.Provider

	// Bootstrap populates the world on Start; may be nil
	Bootstrap Bootstrap

	// RestartBinding is polled while in game-over to begin a new run
	RestartBinding input.Binding

	// OnGameOver and OnRestart are fire-and-forget presentation hooks
	OnGameOver func(seed int64)
	OnRestart  func()

	Logger *zap.Logger
}

// RunController converts irregular real-time frame deltas into a
// deterministic sequence of fixed-size simulation steps. For a given seed the
// sequence of tick contexts is a pure function of the count of logical steps
// taken, independent of how real elapsed time was chunked across Update calls
type RunController struct {
	world *World

	step time.Duration

	// seed is the immutable snapshot of the configured value; restart always
	// reconstructs from this, never from the advanced RNG state
	seed int64

	rng         *core.Rand
	frame       int64
	accumulator time.Duration
	state       State

	in             input.Provider
	bootstrap      Bootstrap
	restartBinding input.Binding
	onGameOver     func(seed int64)
	onRestart      func()

	boot  BootResult
	runID uuid.UUID
	log   *zap.Logger
}

// NewRunController creates a controller in the init state and installs the
// core-reserved resources. A non-positive step would stall or spin the
// accumulator, so it is rejected as a programmer error
func NewRunController(world *World, cfg RunConfig) *RunController {
	if cfg.Step <= 0 {
		panic("Fixed step must be strictly positive")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := &RunController{
		world:          world,
		step:           cfg.Step,
		seed:           cfg.Seed,
		rng:            core.NewRand(cfg.Seed),
		state:          StateInit,
		in:             cfg.Input,
		bootstrap:      cfg.Bootstrap,
		restartBinding: cfg.RestartBinding,
		onGameOver:     cfg.OnGameOver,
		onRestart:      cfg.OnRestart,
		runID:          uuid.New(),
		log:            log,
	}
	r.registerCoreResources()
	return r
}

// Start moves init → playing, delegating world population to the bootstrap
// collaborator. No-op in any other state, so repeated calls are harmless
func (r *RunController) Start() {
	if r.state != StateInit {
		return
	}
	if r.bootstrap != nil {
		r.boot = r.bootstrap(r.world, r.seed)
	}
	r.state = StatePlaying
	r.log.Info("run started",
		zap.String("run_id", r.runID.String()),
		zap.Int64("seed", r.seed),
	)
}

// Update accumulates real elapsed time and advances the world by zero or
// more fixed steps. Non-positive deltas are ignored in every state
func (r *RunController) Update(delta time.Duration) {
	if delta <= 0 {
		return
	}

	switch r.state {
	case StateInit:
		return

	case StatePlaying:
		r.accumulator += delta
		// TriggerGameOver may fire from inside a system, so the state is
		// re-checked every iteration
		for r.state == StatePlaying && r.accumulator >= r.step {
			r.accumulator -= r.step
			if r.in != nil {
				r.in.BeginFrame(r.frame)
			}
			ctx := &TickContext{Delta: r.step, Frame: r.frame, Rand: r.rng}
			r.world.Update(ctx)
			r.frame++
		}

	case StateGameOver:
		// The world stays frozen; only the restart binding is polled
		r.frame++
		if r.in == nil {
			return
		}
		r.in.BeginFrame(r.frame)
		if r.in.IsPressed(r.restartBinding) {
			r.Restart()
			r.Start()
		}
	}
}

// TriggerGameOver moves playing → game-over. The accumulator is forced to
// exactly one step so a partially accumulated step is neither dropped nor
// double-counted by a later restart. No-op unless currently playing
func (r *RunController) TriggerGameOver() {
	if r.state != StatePlaying {
		return
	}
	r.accumulator = r.step
	r.state = StateGameOver
	r.log.Info("game over",
		zap.String("run_id", r.runID.String()),
		zap.Int64("seed", r.seed),
		zap.Int64("frame", r.frame),
	)
	if r.onGameOver != nil {
		r.onGameOver(r.seed)
	}
}

// Restart wipes the world, zeroes the clock, and rebuilds the RNG from the
// original seed value. Valid from any state; lands in init so the next Start
// replays the run bit-for-bit
func (r *RunController) Restart() {
	r.world.Reset()
	r.frame = 0
	r.accumulator = 0
	r.rng = core.NewRand(r.seed)
	r.registerCoreResources()
	r.runID = uuid.New()
	r.state = StateInit
	r.log.Info("run reset",
		zap.String("run_id", r.runID.String()),
		zap.Int64("seed", r.seed),
	)
	if r.onRestart != nil {
		r.onRestart()
	}
}

// registerCoreResources installs the reserved singletons a run depends on
// Called at construction and again after every reset, which wipes them
func (r *RunController) registerCoreResources() {
	if r.in != nil {
		RegisterResource(r.world, InputKey, r.in)
	}
	RegisterResource(r.world, LifecycleKey, &Lifecycle{
		RequestGameOver: r.TriggerGameOver,
	})
}

// State returns the current lifecycle state
func (r *RunController) State() State { return r.state }

// Frame returns the logical step counter
func (r *RunController) Frame() int64 { return r.frame }

// Seed returns the immutable configured seed
func (r *RunController) Seed() int64 { return r.seed }

// RunID identifies the current run attempt in logs and notifications
func (r *RunController) RunID() uuid.UUID { return r.runID }

// Boot returns the collaborator handles from the most recent Start
func (r *RunController) Boot() BootResult { return r.boot }
