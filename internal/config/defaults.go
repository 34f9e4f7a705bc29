package config

import (
	_ "embed"
)

//go:embed defaults/dodge.yaml
var defaultDodgeYAML []byte

// DefaultDodgeConfig returns the hardcoded default configuration. It mirrors
// defaults/dodge.yaml and exists as the last-resort fallback if the embedded
// YAML ever fails to parse.
func DefaultDodgeConfig() DodgeConfig {
	return DodgeConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:        64,
			Height:       26,
			Speed:        6,
			BottomOffset: 60,
		},
		Spawn: SpawnConfig{
			InitialInterval: 40,
			MinInterval:     10,
			HeartChance:     7,
		},
		Asteroid: FallingConfig{
			MinSize:     60,
			MaxSize:     119,
			MinSpeed:    5,
			MaxSpeed:    10,
			HitboxScale: 0.6,
		},
		Heart: FallingConfig{
			MinSize:     30,
			MaxSize:     49,
			MinSpeed:    2,
			MaxSpeed:    4,
			HitboxScale: 1.0,
		},
		Rules: RulesConfig{
			StartLives:  3,
			DodgePoints: 5,
		},
	}
}
