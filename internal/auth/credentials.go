// Package auth manages player accounts stored in a plain credentials file,
// one "username:password" pair per line. The scheme is deliberately simple
// plaintext matching; it gates the menu, not anything sensitive.
package auth

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUserExists is returned by Register when the username is taken.
var ErrUserExists = errors.New("auth: username already exists")

// Manager reads and appends credentials in the pass file.
type Manager struct {
	path string
}

// NewManager creates a manager for the given credentials file. A leading ~
// is expanded; parent directories are created so Register can append.
func NewManager(path string) (*Manager, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("auth: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("auth: cannot create directory %s: %w", dir, err)
		}
	}
	return &Manager{path: path}, nil
}

// Load reads all credentials into a map. A missing or unreadable file is an
// empty account list, not an error; malformed lines are skipped.
func (m *Manager) Load() map[string]string {
	creds := make(map[string]string)

	file, err := os.Open(m.path)
	if err != nil {
		return creds
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		user, pass, ok := strings.Cut(line, ":")
		if !ok || user == "" {
			continue
		}
		creds[user] = pass
	}
	return creds
}

// Validate reports whether the username exists and the password matches.
func (m *Manager) Validate(username, password string) bool {
	stored, ok := m.Load()[username]
	return ok && stored == password
}

// Exists reports whether the username is already registered.
func (m *Manager) Exists(username string) bool {
	_, ok := m.Load()[username]
	return ok
}

// Register appends a new account. Usernames may not contain the separator
// and must be unique.
func (m *Manager) Register(username, password string) error {
	if username == "" || strings.Contains(username, ":") {
		return fmt.Errorf("auth: invalid username %q", username)
	}
	if m.Exists(username) {
		return ErrUserExists
	}

	file, err := os.OpenFile(m.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("auth: cannot open %s: %w", m.path, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "%s:%s\n", username, password); err != nil {
		return fmt.Errorf("auth: cannot save credentials: %w", err)
	}
	return nil
}
