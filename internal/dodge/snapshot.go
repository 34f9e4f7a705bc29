package dodge

import "github.com/neilkapoor/asteroid-belt/internal/core"

// EntityView is a read-only view of one falling entity for rendering.
type EntityView struct {
	Kind Kind
	Rect core.Rect
}

// Snapshot is the frame-ready view the core hands to the rendering layer:
// positions in field pixels, plus the HUD numbers. The entity slice is a
// copy, safe to hold across ticks.
type Snapshot struct {
	Player    core.Rect
	Entities  []EntityView
	Score     int
	HighScore int
	Lives     int
	// BaseLives and ExtraLives split the life count at the starting
	// threshold of 3: the first three render as red hearts, anything above
	// as blue. The split is data so rendering stays a pure projection.
	BaseLives  int
	ExtraLives int
	GameOver   bool
	Paused     bool
}

// Snapshot captures the current frame state. Safe to call at any phase; an
// Idle game yields an empty snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.player == nil {
		return Snapshot{}
	}

	views := make([]EntityView, len(g.entities))
	for i, e := range g.entities {
		views[i] = EntityView{Kind: e.Kind, Rect: e.Rect()}
	}

	lives := core.Max(0, g.lives)
	return Snapshot{
		Player:     g.player.Rect(),
		Entities:   views,
		Score:      g.score,
		HighScore:  g.highScore,
		Lives:      lives,
		BaseLives:  core.Min(lives, 3),
		ExtraLives: core.Max(0, lives-3),
		GameOver:   g.phase == PhaseOver,
		Paused:     g.paused,
	}
}
