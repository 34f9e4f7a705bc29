// Package session ties a single play session to the score store: it seeds
// the game with the persisted high score at start and writes the final
// score back exactly once when the session ends, whether by game over or
// by the player quitting out.
package session

import (
	"github.com/charmbracelet/log"

	"github.com/neilkapoor/asteroid-belt/internal/storage"
)

// HighScoreSink is the part of the game the recorder talks to.
type HighScoreSink interface {
	SetHighScore(score int)
}

// Recorder persists session results. A nil store disables persistence;
// the game then runs with an in-memory high score only.
type Recorder struct {
	store    storage.Store
	username string
	finished bool
}

// NewRecorder creates a recorder writing to store under the given username.
func NewRecorder(store storage.Store, username string) *Recorder {
	return &Recorder{store: store, username: username}
}

// Begin starts a session: it loads the persisted high score into the game.
// Store read failures degrade to a zero high score rather than blocking play.
func (r *Recorder) Begin(game HighScoreSink) {
	r.finished = false
	if r.store == nil {
		return
	}
	high, err := r.store.HighScore()
	if err != nil {
		log.Warn("could not load high score", "err", err)
		high = 0
	}
	game.SetHighScore(high)
}

// Finish records the session's final score. Only positive scores are
// persisted, and repeated calls after the first are no-ops so that a quit
// followed by a game-over screen cannot double-write.
func (r *Recorder) Finish(score int) {
	if r.finished {
		return
	}
	r.finished = true

	if r.store == nil || score <= 0 {
		return
	}
	if err := r.store.Append(r.username, score); err != nil {
		log.Warn("could not save score", "score", score, "err", err)
	}
}
