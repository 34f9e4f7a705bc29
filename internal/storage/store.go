// Package storage provides score-history persistence. The default backend is
// the classic append-only scores.txt; a SQLite backend is available for
// shared leaderboards (belt serve, --db).
package storage

import "time"

// Entry is a single historical score record. Username and CreatedAt are
// best-effort: the plain file backend stores neither.
type Entry struct {
	Username  string
	Score     int
	CreatedAt time.Time
}

// Store is the score-history collaborator the game session consumes.
// Reads degrade rather than fail: an absent or corrupt history reads as
// empty (high score 0).
type Store interface {
	// HighScore returns the maximum among all persisted scores, 0 when the
	// history is empty.
	HighScore() (int, error)

	// Append durably records a new score. The caller treats errors as
	// non-fatal warnings; gameplay never blocks on persistence.
	Append(username string, score int) error

	// Top returns up to limit entries ordered by score descending.
	Top(limit int) ([]Entry, error)

	Close() error
}
