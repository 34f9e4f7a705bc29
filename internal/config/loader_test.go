package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDodgeEmbeddedDefaults(t *testing.T) {
	// No custom path and (almost certainly) no user/local config in the test
	// environment: the embedded YAML should load and match the hardcoded
	// fallback on the values the game depends on.
	cfg, err := LoadDodge("")
	if err != nil {
		t.Fatalf("LoadDodge(\"\") failed: %v", err)
	}

	def := DefaultDodgeConfig()
	if cfg.Spawn.InitialInterval != def.Spawn.InitialInterval {
		t.Errorf("initial_interval = %d, want %d", cfg.Spawn.InitialInterval, def.Spawn.InitialInterval)
	}
	if cfg.Spawn.MinInterval != def.Spawn.MinInterval {
		t.Errorf("min_interval = %d, want %d", cfg.Spawn.MinInterval, def.Spawn.MinInterval)
	}
	if cfg.Spawn.HeartChance != def.Spawn.HeartChance {
		t.Errorf("heart_chance = %d, want %d", cfg.Spawn.HeartChance, def.Spawn.HeartChance)
	}
	if cfg.Asteroid.HitboxScale != 0.6 {
		t.Errorf("asteroid hitbox_scale = %v, want 0.6", cfg.Asteroid.HitboxScale)
	}
	if cfg.Heart.HitboxScale != 1.0 {
		t.Errorf("heart hitbox_scale = %v, want 1.0", cfg.Heart.HitboxScale)
	}
	if cfg.Rules.StartLives != 3 || cfg.Rules.DodgePoints != 5 {
		t.Errorf("rules = %+v, want 3 lives / 5 points", cfg.Rules)
	}
}

func TestLoadDodgeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("spawn:\n  initial_interval: 99\n  min_interval: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDodge(path)
	if err != nil {
		t.Fatalf("LoadDodge(custom) failed: %v", err)
	}
	if cfg.Spawn.InitialInterval != 99 {
		t.Errorf("initial_interval = %d, want 99", cfg.Spawn.InitialInterval)
	}
}

func TestLoadDodgeMissingCustomPath(t *testing.T) {
	if _, err := LoadDodge(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config path")
	}
}

func TestApplyDodgePreset(t *testing.T) {
	tests := []struct {
		preset       DifficultyPreset
		wantInterval int
		wantFloor    int
	}{
		{DifficultyEasy, 50, 15},
		{DifficultyNormal, 40, 10},
		{DifficultyHard, 30, 8},
	}

	for _, tt := range tests {
		cfg := DefaultDodgeConfig()
		ApplyDodgePreset(&cfg, tt.preset)
		if cfg.Spawn.InitialInterval != tt.wantInterval || cfg.Spawn.MinInterval != tt.wantFloor {
			t.Errorf("%s: interval/floor = %d/%d, want %d/%d",
				tt.preset, cfg.Spawn.InitialInterval, cfg.Spawn.MinInterval, tt.wantInterval, tt.wantFloor)
		}
	}

	// Fixed preset pins the interval so the ramp never fires
	cfg := DefaultDodgeConfig()
	ApplyDodgePreset(&cfg, DifficultyFixed)
	if cfg.Spawn.MinInterval != cfg.Spawn.InitialInterval {
		t.Errorf("fixed preset: floor %d != interval %d", cfg.Spawn.MinInterval, cfg.Spawn.InitialInterval)
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %v, %v", p, ok)
	}
	if _, ok := ParsePreset("impossible"); ok {
		t.Error("ParsePreset should reject unknown presets")
	}
}
