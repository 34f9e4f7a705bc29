package config

// ApplyDodgePreset adjusts the config for a named difficulty. The dodge
// game's ramp is the spawn-interval decrement itself, so presets shape its
// start, floor, and the heart odds rather than interpolating a level.
func ApplyDodgePreset(cfg *DodgeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.InitialInterval = 50
		cfg.Spawn.MinInterval = 15
		cfg.Spawn.HeartChance = 12
		cfg.Rules.StartLives = 5
	case DifficultyNormal:
		// Baseline config already is normal
	case DifficultyHard:
		cfg.Spawn.InitialInterval = 30
		cfg.Spawn.MinInterval = 8
		cfg.Spawn.HeartChance = 4
		cfg.Rules.StartLives = 2
	case DifficultyFixed:
		// No ramp: pin the interval where it starts
		cfg.Spawn.MinInterval = cfg.Spawn.InitialInterval
	}
}

// ParsePreset maps a CLI string to a preset. Unknown values mean "use the
// config as loaded".
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch s {
	case "easy":
		return DifficultyEasy, true
	case "normal":
		return DifficultyNormal, true
	case "hard":
		return DifficultyHard, true
	case "fixed":
		return DifficultyFixed, true
	}
	return "", false
}
