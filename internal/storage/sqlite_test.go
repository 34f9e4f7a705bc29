package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := OpenSQL(dbPath)
	if err != nil {
		t.Fatalf("OpenSQL() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSQLStoreHighScore(t *testing.T) {
	store, err := OpenSQL(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQL() failed: %v", err)
	}
	defer store.Close()

	// Empty table reads as zero
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() on empty store failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, want 0", high)
	}

	for _, v := range []int{50, 200, 100} {
		if err := store.Append("neil", v); err != nil {
			t.Fatalf("Append(%d) failed: %v", v, err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 200 {
		t.Errorf("HighScore() = %d, want 200", high)
	}
}

func TestSQLStoreTop(t *testing.T) {
	store, err := OpenSQL(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQL() failed: %v", err)
	}
	defer store.Close()

	store.Append("neil", 100)
	store.Append("guest", 300)
	store.Append("neil", 200)

	top, err := store.Top(2)
	if err != nil {
		t.Fatalf("Top() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("Top(2) returned %d entries", len(top))
	}
	if top[0].Score != 300 || top[0].Username != "guest" {
		t.Errorf("Top()[0] = %+v, want guest/300", top[0])
	}
	if top[1].Score != 200 || top[1].Username != "neil" {
		t.Errorf("Top()[1] = %+v, want neil/200", top[1])
	}
}

func TestSQLStoreMatchesFileStoreSemantics(t *testing.T) {
	// Both backends must agree on the high-score contract.
	dir := t.TempDir()
	fileStore, _ := OpenFile(filepath.Join(dir, "scores.txt"))
	sqlStore, err := OpenSQL(filepath.Join(dir, "scores.db"))
	if err != nil {
		t.Fatalf("OpenSQL() failed: %v", err)
	}
	defer sqlStore.Close()

	values := []int{35, 80, 10}
	for _, v := range values {
		fileStore.Append("u", v)
		sqlStore.Append("u", v)
	}

	fh, _ := fileStore.HighScore()
	sh, _ := sqlStore.HighScore()
	if fh != sh || fh != 80 {
		t.Errorf("backends disagree: file=%d sql=%d, want 80", fh, sh)
	}
}
