package dodge

import "github.com/neilkapoor/asteroid-belt/internal/core"

// Event is a life- or score-affecting outcome of one engine pass.
type Event int

const (
	EventAsteroidHit    Event = iota // Asteroid collided with the ship: -1 life
	EventHeartCollected              // Heart collided with the ship: +1 life
	EventAsteroidDodged              // Asteroid exited the field untouched: +points
)

// advance runs one collision-and-lifecycle pass: every entity moves, is
// tested against the player with AABB overlap, and off-field entities are
// dropped. An entity that collides is removed before the miss check runs, so
// each entity yields at most one event per tick.
//
// Removal uses in-place filtered compaction on the entity slice: survivors
// are appended to entities[:0], so there is no iterator to invalidate and no
// per-tick allocation.
func advance(entities []*Entity, player core.Rect, fieldH int) (kept []*Entity, events []Event) {
	kept = entities[:0]
	for _, e := range entities {
		e.Update()

		if e.Bounds().Overlaps(player) {
			switch e.Kind {
			case KindHeart:
				events = append(events, EventHeartCollected)
			case KindAsteroid:
				events = append(events, EventAsteroidHit)
			}
			continue
		}

		// Miss rule: the entity's top edge has passed below the field's
		// bottom edge.
		if e.Y > fieldH {
			if e.Kind == KindAsteroid {
				events = append(events, EventAsteroidDodged)
			}
			continue
		}

		kept = append(kept, e)
	}
	return kept, events
}
