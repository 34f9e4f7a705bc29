package dodge

import (
	"math/rand"

	"github.com/neilkapoor/asteroid-belt/internal/config"
)

// Spawner decides once per spawn interval whether to create an asteroid or a
// heart, with randomized size, speed, and x position. Each time it fires, the
// interval shrinks by one tick down to a floor, which is the game's entire
// difficulty ramp.
type Spawner struct {
	rng      *rand.Rand
	cfg      *config.DodgeConfig
	interval int // Ticks between spawns, decremented on each fire
	counter  int // Ticks since the last spawn
}

// NewSpawner creates a spawner with its own seeded RNG. The RNG is scoped to
// the session so fixed seeds replay identically.
func NewSpawner(seed int64, cfg *config.DodgeConfig) *Spawner {
	s := &Spawner{cfg: cfg}
	s.Reset(seed)
	return s
}

// Reset restores the initial interval and reseeds the RNG.
func (s *Spawner) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	s.interval = s.cfg.Spawn.InitialInterval
	s.counter = 0
}

// Interval returns the current spawn interval in ticks.
func (s *Spawner) Interval() int {
	return s.interval
}

// MaybeSpawn advances the spawn counter by one tick. When the counter reaches
// the interval it produces a new entity, resets the counter, and tightens the
// interval by one down to the configured floor. Returns nil on non-spawning
// ticks.
func (s *Spawner) MaybeSpawn(fieldW int) *Entity {
	s.counter++
	if s.counter < s.interval {
		return nil
	}
	s.counter = 0
	if s.interval > s.cfg.Spawn.MinInterval {
		s.interval--
	}

	if s.rng.Intn(100) < s.cfg.Spawn.HeartChance {
		return s.spawnFalling(KindHeart, s.cfg.Heart, fieldW)
	}
	return s.spawnFalling(KindAsteroid, s.cfg.Asteroid, fieldW)
}

// spawnFalling creates one falling entity just above the visible field so it
// enters from the top.
func (s *Spawner) spawnFalling(kind Kind, fc config.FallingConfig, fieldW int) *Entity {
	size := s.randRange(fc.MinSize, fc.MaxSize)
	speed := s.randRange(fc.MinSpeed, fc.MaxSpeed)

	// Clamp the x range to at least [0,1) so narrow fields never produce a
	// negative random bound.
	xRange := fieldW - size
	if xRange < 1 {
		xRange = 1
	}

	return &Entity{
		Kind:        kind,
		X:           s.rng.Intn(xRange),
		Y:           -size,
		W:           size,
		H:           size,
		VelY:        speed,
		HitboxScale: fc.HitboxScale,
	}
}

// randRange draws a uniform int in [min, max].
func (s *Spawner) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}
