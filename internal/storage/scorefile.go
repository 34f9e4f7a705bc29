package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// FileStore is the append-only text score history: one non-negative integer
// per line. Reading enumerates every line and takes the maximum; a missing
// file or a malformed line reads as no history, never as an error.
type FileStore struct {
	path string
}

// OpenFile creates a file-backed score store at the given path. The file is
// not created until the first Append; parent directories are. A leading ~ is
// expanded to the home directory.
func OpenFile(path string) (*FileStore, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if dir := filepath.Dir(expanded); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
	}
	return &FileStore{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *FileStore) Path() string {
	return f.path
}

// HighScore scans the history and returns the maximum score, 0 when the file
// is missing, unreadable, or holds no parseable lines.
func (f *FileStore) HighScore() (int, error) {
	scores, err := f.readAll()
	if err != nil {
		return 0, nil
	}
	high := 0
	for _, s := range scores {
		if s > high {
			high = s
		}
	}
	return high, nil
}

// Append writes the score as a new line. The username is not stored; the
// file format predates accounts and is kept compatible.
func (f *FileStore) Append(_ string, score int) error {
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open %s: %w", f.path, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%d\n", score); err != nil {
		return fmt.Errorf("storage: cannot append score: %w", err)
	}
	return nil
}

// Top returns up to limit scores, highest first.
func (f *FileStore) Top(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	scores, err := f.readAll()
	if err != nil {
		return nil, nil
	}

	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > limit {
		scores = scores[:limit]
	}

	entries := make([]Entry, len(scores))
	for i, s := range scores {
		entries[i] = Entry{Score: s}
	}
	return entries, nil
}

// Close is a no-op; the file is opened per operation.
func (f *FileStore) Close() error {
	return nil
}

// readAll parses every line, silently skipping blanks and garbage.
func (f *FileStore) readAll() ([]int, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var scores []int
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		score, err := strconv.Atoi(line)
		if err != nil || score < 0 {
			continue
		}
		scores = append(scores, score)
	}
	return scores, scanner.Err()
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var _ Store = (*FileStore)(nil)
