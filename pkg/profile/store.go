package profile

import (
	"sync/atomic"

	"github.com/smykla-skalski/mcdirs/pkg/logger"
)

// Store holds the most recently loaded Snapshot of a profiles file.
// Reload replaces the snapshot as a whole; readers never observe a partially
// applied reload.
type Store struct {
	path    string
	log     logger.Logger
	current atomic.Pointer[Snapshot]
}

// NewStore creates a Store for the profiles file at path. Nothing is read
// until Reload is called.
func NewStore(path string, log logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
	}
}

// Path returns the profiles file path.
func (s *Store) Path() string {
	return s.path
}

// Reload reads the profiles file and publishes a new snapshot.
// On error the previous snapshot stays current.
func (s *Store) Reload() (*Snapshot, error) {
	snap, err := LoadFile(s.path)
	if err != nil {
		s.log.Error("failed to load launcher profiles", "path", s.path, "error", err)

		return nil, err
	}

	prev := s.current.Swap(snap)

	prevCount := 0
	if prev != nil {
		prevCount = prev.Len()
	}

	s.log.Debug("launcher profiles loaded",
		"path", s.path,
		"profiles", snap.Len(),
		"previous", prevCount,
	)

	return snap, nil
}

// Current returns the current snapshot, or nil before the first successful Reload.
func (s *Store) Current() *Snapshot {
	return s.current.Load()
}
