// Package config provides YAML-based game configuration loading and
// difficulty presets for the dodge game.
package config

// DodgeConfig contains all tunables for the dodge game. The defaults
// reproduce the classic balance: 7% heart rate, spawn interval ramping
// from 40 ticks down to 10.
type DodgeConfig struct {
	Field    FieldConfig    `yaml:"field"`
	Player   PlayerConfig   `yaml:"player"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Asteroid FallingConfig  `yaml:"asteroid"`
	Heart    FallingConfig  `yaml:"heart"`
	Rules    RulesConfig    `yaml:"rules"`
}

// FieldConfig defines the simulation play field in pixels. The field is a
// fixed logical coordinate space; the renderer scales it to terminal cells.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Horizontal px per tick while a key is held
	BottomOffset int `yaml:"bottom_offset"` // Distance of the ship's top from the field bottom
}

// SpawnConfig defines the spawn cadence and difficulty ramp.
type SpawnConfig struct {
	InitialInterval int `yaml:"initial_interval"` // Ticks between spawns at session start
	MinInterval     int `yaml:"min_interval"`     // Ramp floor
	HeartChance     int `yaml:"heart_chance"`     // Percent odds a spawn is a heart, in [0,100]
}

// FallingConfig defines size/speed ranges for one kind of falling object.
// Sizes are uniform in [MinSize, MaxSize], speeds in [MinSpeed, MaxSpeed].
type FallingConfig struct {
	MinSize     int     `yaml:"min_size"`
	MaxSize     int     `yaml:"max_size"`
	MinSpeed    int     `yaml:"min_speed"`
	MaxSpeed    int     `yaml:"max_speed"`
	HitboxScale float64 `yaml:"hitbox_scale"`
}

// RulesConfig defines scoring and lives.
type RulesConfig struct {
	StartLives  int `yaml:"start_lives"`
	DodgePoints int `yaml:"dodge_points"` // Points per asteroid that exits without colliding
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
