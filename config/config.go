package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the host configuration, loaded from TOML with sparse overrides
// over the defaults
type Config struct {
	Run     RunConfig     `toml:"run"`
	Map     MapConfig     `toml:"map"`
	Paths   PathsConfig   `toml:"paths"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type RunConfig struct {
	// Seed of 0 means pick one from the wall clock at startup
	Seed int64    `toml:"seed"`
	Step duration `toml:"step"`
}

type MapConfig struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Braiding float64 `toml:"braiding"`
	Enemies  int     `toml:"enemies"`
}

type PathsConfig struct {
	Keymap     string `toml:"keymap"`
	Archetypes string `toml:"archetypes"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// duration adds TOML text unmarshalling to time.Duration
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// StepDuration returns the fixed step as a time.Duration
func (c *Config) StepDuration() time.Duration {
	return time.Duration(c.Run.Step)
}

func defaults() *Config {
	return &Config{
		Run: RunConfig{
			Seed: 0,
			Step: duration(16 * time.Millisecond),
		},
		Map: MapConfig{
			Width:    41,
			Height:   25,
			Braiding: 0.3,
			Enemies:  8,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from a TOML file; an empty path yields defaults
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if time.Duration(c.Run.Step) <= 0 {
		return fmt.Errorf("run.step must be positive")
	}
	if c.Map.Width < 5 || c.Map.Height < 5 {
		return fmt.Errorf("map dimensions must be at least 5x5")
	}
	if c.Map.Braiding < 0 || c.Map.Braiding > 1 {
		return fmt.Errorf("map.braiding must be in [0,1]")
	}
	if c.Map.Enemies < 0 {
		return fmt.Errorf("map.enemies must be non-negative")
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}
	return nil
}

// WriteDefault writes a commented default config to path, refusing to
// overwrite an existing file
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config %s already exists", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(defaults()); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
