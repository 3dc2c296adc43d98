package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTemp(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seedrunner.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.StepDuration() != 16*time.Millisecond {
		t.Errorf("Expected default step 16ms, got %v", cfg.StepDuration())
	}
	if cfg.Map.Width == 0 || cfg.Map.Enemies == 0 {
		t.Errorf("Expected non-zero map defaults, got %+v", cfg.Map)
	}
	if !cfg.Audio.Enabled {
		t.Errorf("Expected audio enabled by default")
	}
}

func TestLoadSparseOverride(t *testing.T) {
	path := writeTemp(t, `
[run]
seed = 90210
step = "33ms"

[map]
enemies = 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Run.Seed != 90210 {
		t.Errorf("Expected seed override, got %d", cfg.Run.Seed)
	}
	if cfg.StepDuration() != 33*time.Millisecond {
		t.Errorf("Expected step 33ms, got %v", cfg.StepDuration())
	}
	if cfg.Map.Enemies != 3 {
		t.Errorf("Expected enemies override, got %d", cfg.Map.Enemies)
	}
	// Untouched sections keep their defaults
	if cfg.Map.Width != 41 {
		t.Errorf("Expected default width preserved, got %d", cfg.Map.Width)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected default log level preserved, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"zero step", "[run]\nstep = \"0s\""},
		{"tiny map", "[map]\nwidth = 2"},
		{"braiding range", "[map]\nbraiding = 1.5"},
		{"negative enemies", "[map]\nenemies = -1"},
		{"bad log format", "[logging]\nformat = \"xml\""},
	}
	for _, tc := range cases {
		if _, err := Load(writeTemp(t, tc.data)); err == nil {
			t.Errorf("Expected error for %s", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Errorf("Expected error for missing file")
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of written defaults failed: %v", err)
	}
	if cfg.StepDuration() != 16*time.Millisecond {
		t.Errorf("Expected written defaults to round-trip, got step %v", cfg.StepDuration())
	}
	if err := WriteDefault(path); err == nil {
		t.Errorf("Expected refusal to overwrite existing config")
	}
}
