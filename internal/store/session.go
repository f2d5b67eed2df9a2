package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/linkwork-app/linkwork_be/internal/models"
)

// SessionStore holds at most one authenticated user snapshot in its own
// volatile slot, separate from the data file. The snapshot is a copy of the
// user record at login time, not a live reference.
type SessionStore struct {
	path string
	log  zerolog.Logger
	mu   sync.Mutex
}

func NewSessionStore(path string, log zerolog.Logger) *SessionStore {
	return &SessionStore{path: path, log: log}
}

// Restore reads the session slot on process start. Absent or unreadable
// slots just mean no session; nothing is validated against the data store.
func (s *SessionStore) Restore() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn().Err(err).Msg("session slot unreadable, ignoring")
		return nil
	}
	return &u
}

// Set stores the user snapshot; nil clears the slot.
func (s *SessionStore) Set(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == nil {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return nil
	}

	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
