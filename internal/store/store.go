package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/linkwork-app/linkwork_be/internal/models"
)

// ErrUnavailable wraps any I/O failure against the data slot so callers can
// report a single storage failure mode instead of leaking os errors.
var ErrUnavailable = errors.New("storage unavailable")

// Data is the whole persisted document. One file, one JSON object, rewritten
// in full on every mutation.
type Data struct {
	Users     []models.User     `json:"users"`
	Projects  []models.Project  `json:"projects"`
	Proposals []models.Proposal `json:"proposals"`
	Gigs      []models.Gig      `json:"gigs"`
}

// Update is a partial write: only non-nil collections are merged into the
// persisted document, the rest keep whatever is on disk.
type Update struct {
	Users     []models.User
	Projects  []models.Project
	Proposals []models.Proposal
	Gigs      []models.Gig
}

// Store is the single source of truth for all four collections. It is opened
// once in main and handed to the services; nothing else touches the file.
type Store struct {
	path string
	log  zerolog.Logger

	mu   sync.RWMutex
	data Data
}

// Open loads the data slot at path. A missing or unreadable document is not
// an error: the store reseeds and persists the seed. Only real I/O failures
// (permissions, full disk) are returned.
func Open(path string, log zerolog.Logger) (*Store, error) {
	s := &Store{path: path, log: log}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, s.reseed()
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("data slot unreadable, reseeding")
		return s, s.reseed()
	}

	s.data = normalize(data)
	return s, nil
}

func (s *Store) reseed() error {
	seeded := Seed()
	if err := s.write(seeded); err != nil {
		return err
	}
	s.data = seeded
	s.log.Info().Str("path", s.path).Msg("data slot seeded")
	return nil
}

// Save merges the update into the document currently on disk and rewrites it
// in one atomic step (temp file + rename). Re-reading first keeps collections
// written by another process from being clobbered, though the write itself is
// still last-one-wins across processes.
func (s *Store) Save(u Update) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.data
	if raw, err := os.ReadFile(s.path); err == nil {
		var onDisk Data
		if err := json.Unmarshal(raw, &onDisk); err == nil {
			current = normalize(onDisk)
		}
	}

	if u.Users != nil {
		current.Users = u.Users
	}
	if u.Projects != nil {
		current.Projects = u.Projects
	}
	if u.Proposals != nil {
		current.Proposals = u.Proposals
	}
	if u.Gigs != nil {
		current.Gigs = u.Gigs
	}

	if err := s.write(current); err != nil {
		return err
	}
	s.data = current
	return nil
}

func (s *Store) write(data Data) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".linkwork-*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.data.Users...)
}

func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project(nil), s.data.Projects...)
}

func (s *Store) Proposals() []models.Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Proposal(nil), s.data.Proposals...)
}

func (s *Store) Gigs() []models.Gig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Gig(nil), s.data.Gigs...)
}

// normalize guarantees the four-collections invariant: after load every
// collection is non-nil even if the document on disk omitted it.
func normalize(d Data) Data {
	if d.Users == nil {
		d.Users = []models.User{}
	}
	if d.Projects == nil {
		d.Projects = []models.Project{}
	}
	if d.Proposals == nil {
		d.Proposals = []models.Proposal{}
	}
	if d.Gigs == nil {
		d.Gigs = []models.Gig{}
	}
	return d
}
