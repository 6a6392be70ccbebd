// Package sessionfile implements durable session storage backed by a single
// JSON file on disk. The file holds the composed session record so a login
// performed by one process is visible to the next.
package sessionfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/luciano-vc/storeadmin/internal/core/domain"
)

const (
	dirPerm  = 0o700
	filePerm = 0o600
)

type record struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// SessionFile stores the session in a single file. Access is synchronous and
// unlocked; the client is a single process.
type SessionFile struct {
	path string
}

// New creates a session store reading and writing the given file path.
func New(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Read returns the stored session and true, or a zero session and false when
// no session is stored. A file that cannot be parsed or that holds no token
// counts as no session.
func (s *SessionFile) Read() (domain.Session, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Session{}, false
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return domain.Session{}, false
	}

	if rec.Token == "" {
		return domain.Session{}, false
	}

	return domain.NewSession(rec.Username, rec.Token), true
}

// Write persists the session, creating the parent directory if needed.
func (s *SessionFile) Write(session domain.Session) error {
	data, err := json.Marshal(record{
		Username: session.Username,
		Token:    session.Token,
	})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *SessionFile) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}

	return nil
}
