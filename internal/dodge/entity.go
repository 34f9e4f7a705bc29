// Package dodge implements the Asteroid Belt dodge-and-collect game.
// The player steers a ship along the bottom of the field, dodging falling
// asteroids and collecting hearts for extra lives.
package dodge

import (
	"github.com/neilkapoor/asteroid-belt/internal/core"
)

// Kind tags a falling entity. The engine switches on it exhaustively instead
// of inspecting types.
type Kind int

const (
	KindAsteroid Kind = iota
	KindHeart
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAsteroid:
		return "asteroid"
	case KindHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// Entity is a falling object: a visual rectangle moving by a fixed velocity,
// with a collision box shrunk by HitboxScale and centered on the visual box.
type Entity struct {
	Kind        Kind
	X, Y        int
	W, H        int
	VelX, VelY  int
	HitboxScale float64
}

// Update advances position by velocity. No collision awareness here.
func (e *Entity) Update() {
	e.X += e.VelX
	e.Y += e.VelY
}

// Rect returns the visual rectangle.
func (e *Entity) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.W, e.H)
}

// Bounds returns the collision rectangle: the visual rect scaled by
// HitboxScale and re-centered. Asteroids use 0.6 for forgiving collisions,
// hearts use the full sprite.
func (e *Entity) Bounds() core.Rect {
	return e.Rect().Shrink(e.HitboxScale)
}

// Player is the ship: horizontal movement only, clamped to the field.
type Player struct {
	X, Y   int
	W, H   int
	VelX   int
	fieldW int
}

// NewPlayer creates the ship centered horizontally, its top edge at y.
func NewPlayer(fieldW, y, w, h int) *Player {
	return &Player{
		X:      fieldW/2 - w/2,
		Y:      y,
		W:      w,
		H:      h,
		fieldW: fieldW,
	}
}

// SetVelX sets the horizontal velocity for the next update.
func (p *Player) SetVelX(v int) {
	p.VelX = v
}

// Update moves the ship horizontally and clamps it so the visual rectangle
// stays within [0, fieldW].
func (p *Player) Update() {
	p.X = core.Clamp(p.X+p.VelX, 0, p.fieldW-p.W)
}

// Rect returns the visual rectangle.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Bounds returns the collision rectangle. The ship collides at full sprite
// size.
func (p *Player) Bounds() core.Rect {
	return p.Rect()
}
