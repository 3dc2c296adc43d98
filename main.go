package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seedrunner/seedrunner/audio"
	"github.com/seedrunner/seedrunner/component"
	"github.com/seedrunner/seedrunner/config"
	"github.com/seedrunner/seedrunner/content"
	"github.com/seedrunner/seedrunner/core"
	"github.com/seedrunner/seedrunner/engine"
	"github.com/seedrunner/seedrunner/game"
	"github.com/seedrunner/seedrunner/input"
	"github.com/seedrunner/seedrunner/mapgen"
	"github.com/seedrunner/seedrunner/systems"
)

// Host owns the terminal, the audio device and the simulation loop
type Host struct {
	screen tcell.Screen
	log    *zap.Logger

	cfg    *config.Config
	keymap input.Keymap
	state  *input.State

	world *engine.World
	ctrl  *engine.RunController
	cues  *audio.Cues
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Format
	if cfg.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	// The terminal owns stdout; logs go to stderr where a 2> redirect can
	// collect them
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}
	return zc.Build()
}

func newHost(cfg *config.Config, seed int64, log *zap.Logger) (*Host, error) {
	keymap, err := input.LoadKeymap(cfg.Paths.Keymap)
	if err != nil {
		return nil, err
	}
	table, err := content.LoadTable(cfg.Paths.Archetypes)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}

	h := &Host{
		screen: screen,
		log:    log,
		cfg:    cfg,
		keymap: keymap,
		state:  input.NewState(),
		world:  engine.NewWorld(),
		cues:   audio.NewCues(),
	}

	if cfg.Audio.Enabled {
		if err := h.cues.Initialize(); err != nil {
			// Non-fatal, the run works without sound
			log.Warn("audio unavailable", zap.Error(err))
		}
	}

	game.RegisterStores(h.world)
	systems.RegisterAll(h.world)

	h.ctrl = engine.NewRunController(h.world, engine.RunConfig{
		Step:  cfg.StepDuration(),
		Seed:  seed,
		Input: h.state,
		Bootstrap: game.NewBootstrap(mapgen.Config{
			Width:    cfg.Map.Width,
			Height:   cfg.Map.Height,
			Braiding: cfg.Map.Braiding,
		}, table, cfg.Map.Enemies),
		RestartBinding: input.Restart,
		OnGameOver:     func(seed int64) { h.cues.GameOver() },
		OnRestart:      func() { h.cues.Restart() },
		Logger:         log,
	})

	return h, nil
}

// keyName converts a terminal key event into a keymap name
func keyName(ev *tcell.EventKey) (string, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return "up", true
	case tcell.KeyDown:
		return "down", true
	case tcell.KeyLeft:
		return "left", true
	case tcell.KeyRight:
		return "right", true
	case tcell.KeyEscape:
		return "esc", true
	case tcell.KeyEnter:
		return "enter", true
	case tcell.KeyTab:
		return "tab", true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space", true
		}
		return string(ev.Rune()), true
	}
	return "", false
}

// handleEvent feeds bound keys to the input state; returns false to quit
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		name, ok := keyName(ev)
		if !ok {
			return true
		}
		binding, ok := h.keymap[name]
		if !ok {
			return true
		}
		if binding == input.Quit {
			return false
		}
		h.state.Feed(binding)

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func (h *Host) run() {
	h.ctrl.Start()
	h.cues.Start()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			eventChan <- h.screen.PollEvent()
		}
	})

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}

		case now := <-ticker.C:
			h.ctrl.Update(now.Sub(last))
			last = now
			h.draw()
		}
	}
}

func (h *Host) draw() {
	h.screen.Clear()

	boot := h.ctrl.Boot()
	if boot.Map != nil {
		h.drawMap(boot.Map)
		h.drawEntities()
	}
	h.drawHUD()
	if h.ctrl.State() == engine.StateGameOver {
		h.drawBanner("GAME OVER - press r to restart, q to quit")
	}

	h.screen.Show()
}

func (h *Host) drawMap(m *mapgen.TileMap) {
	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	floorStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.At(x, y) == mapgen.TileWall {
				h.screen.SetContent(x, y+1, '#', nil, wallStyle)
			} else {
				h.screen.SetContent(x, y+1, '.', nil, floorStyle)
			}
		}
	}
}

func (h *Host) drawEntities() {
	positions, ok := engine.StoreFor(h.world, component.PositionKey)
	if !ok {
		return
	}
	enemyStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
	playerStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)

	player, _ := engine.Resource(h.world, game.PlayerKey)
	for _, entry := range positions.Entries() {
		glyph := '?'
		style := enemyStyle
		if entry.Entity == player {
			glyph = '@'
			style = playerStyle
		} else if enemy, ok := engine.GetComponent(h.world, entry.Entity, component.EnemyKey); ok {
			glyph = enemy.Glyph
		}
		h.screen.SetContent(entry.Value.X, entry.Value.Y+1, glyph, nil, style)
	}
}

func (h *Host) drawHUD() {
	hp := 0
	maxHP := 0
	if player, ok := engine.Resource(h.world, game.PlayerKey); ok {
		if health, ok := engine.GetComponent(h.world, player, component.HealthKey); ok {
			hp, maxHP = health.Current, health.Max
		}
	}
	line := fmt.Sprintf("seed %d  frame %d  %s  hp %d/%d",
		h.ctrl.Seed(), h.ctrl.Frame(), h.ctrl.State(), hp, maxHP)
	h.drawText(0, 0, line, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

func (h *Host) drawBanner(msg string) {
	w, hgt := h.screen.Size()
	x := (w - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	h.drawText(x, hgt/2, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
}

func (h *Host) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (h *Host) cleanup() {
	h.cues.Close()
	h.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "path to seedrunner.toml")
	seedFlag := flag.Int64("seed", 0, "run seed (overrides config; 0 picks one)")
	writeConfig := flag.String("write-config", "", "write a default config to the given path and exit")
	flag.Parse()

	if *writeConfig != "" {
		if err := config.WriteDefault(*writeConfig); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	seed := cfg.Run.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	host, err := newHost(cfg, seed, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer host.cleanup()

	// A panic mid-run must restore the terminal before the trace prints
	core.OnCrashCleanup(host.cleanup)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	host.run()
}
