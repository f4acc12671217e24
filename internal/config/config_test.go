package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// The embedded YAML and the hardcoded fallback must agree, otherwise a
	// bad embed would silently change the wiring.
	if cfg != Default() {
		t.Errorf("embedded default = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("matrix:\n  clock_pin: 5\ngame:\n  tick_ms: 250\n  poll_interval_ms: 25\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Matrix.ClockPin != 5 {
		t.Errorf("clock_pin = %d, want 5", cfg.Matrix.ClockPin)
	}
	if cfg.Game.Tick() != 250*time.Millisecond {
		t.Errorf("Tick() = %v, want 250ms", cfg.Game.Tick())
	}
	if cfg.Game.PollInterval() != 25*time.Millisecond {
		t.Errorf("PollInterval() = %v, want 25ms", cfg.Game.PollInterval())
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load succeeded on a missing explicit config")
	}
}
