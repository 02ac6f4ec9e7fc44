package profile

import (
	"encoding/json"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	// latestRelease and latestSnapshot are placeholder version ids written by
	// newer launchers instead of a concrete version.
	latestRelease  = "latest-release"
	latestSnapshot = "latest-snapshot"
)

var (
	// ErrProfileNotFound is returned when no profile matches a lookup.
	ErrProfileNotFound = errors.New("launcher profile not found")

	// ErrNoSelectedProfile is returned when the profiles file selects no profile.
	ErrNoSelectedProfile = errors.New("no selected launcher profile")

	// ErrInvalidProfiles is returned when the profiles file cannot be decoded.
	ErrInvalidProfiles = errors.New("invalid launcher profiles file")
)

// Entry pairs a profile with the key it is stored under in the profiles file.
type Entry struct {
	ID      string
	Profile *LauncherProfile
}

// Snapshot is an immutable view of one load of the profiles file.
type Snapshot struct {
	entries  []Entry
	byID     map[string]*LauncherProfile
	selected string
	source   string
	loadedAt time.Time
}

type rawProfiles struct {
	Profiles        map[string]rawProfile `json:"profiles"`
	SelectedProfile string                `json:"selectedProfile"`
}

type rawProfile struct {
	Name                *string       `json:"name"`
	Type                string        `json:"type"`
	GameDir             *string       `json:"gameDir"`
	LastVersionID       *string       `json:"lastVersionId"`
	AllowedReleaseTypes []ReleaseType `json:"allowedReleaseTypes"`
	LastUsed            string        `json:"lastUsed"`
}

// LoadFile reads and parses a launcher profiles file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from configuration
	if err != nil {
		return nil, errors.Wrapf(err, "reading launcher profiles %s", path)
	}

	snap, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	snap.source = path

	return snap, nil
}

// Parse decodes the launcher profiles JSON document.
func Parse(data []byte) (*Snapshot, error) {
	var raw rawProfiles
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "decoding profiles"), ErrInvalidProfiles)
	}

	snap := &Snapshot{
		entries:  make([]Entry, 0, len(raw.Profiles)),
		byID:     make(map[string]*LauncherProfile, len(raw.Profiles)),
		selected: raw.SelectedProfile,
		loadedAt: time.Now(),
	}

	for id, rp := range raw.Profiles {
		p := rp.toProfile()
		snap.entries = append(snap.entries, Entry{ID: id, Profile: p})
		snap.byID[id] = p
	}

	slices.SortFunc(snap.entries, func(a, b Entry) int {
		return strings.Compare(a.ID, b.ID)
	})

	return snap, nil
}

// toProfile converts the decoded JSON into a LauncherProfile. A missing name
// becomes the empty string, which is how the launcher shows its "(Default)"
// profile.
func (rp rawProfile) toProfile() *LauncherProfile {
	var name string
	if rp.Name != nil {
		name = *rp.Name
	}

	var opts []Option

	if rp.GameDir != nil {
		opts = append(opts, WithGameDir(*rp.GameDir))
	}

	types := rp.AllowedReleaseTypes

	switch {
	case rp.LastVersionID == nil:
		if rp.Type == latestSnapshot && len(types) == 0 {
			types = []ReleaseType{ReleaseTypeSnapshot, ReleaseTypeRelease}
		}
	case *rp.LastVersionID == latestRelease:
		if len(types) == 0 {
			types = []ReleaseType{ReleaseTypeRelease}
		}
	case *rp.LastVersionID == latestSnapshot:
		if len(types) == 0 {
			types = []ReleaseType{ReleaseTypeSnapshot, ReleaseTypeRelease}
		}
	default:
		opts = append(opts, WithLastVersionID(*rp.LastVersionID))
	}

	opts = append(opts, WithAllowedReleaseTypes(types...))

	if rp.LastUsed != "" {
		if t, err := time.Parse(time.RFC3339Nano, rp.LastUsed); err == nil {
			opts = append(opts, WithLastUsed(t))
		}
	}

	return New(name, opts...)
}

// Entries returns all profiles ordered by id.
func (s *Snapshot) Entries() []Entry {
	return slices.Clone(s.entries)
}

// Len returns the number of profiles.
func (s *Snapshot) Len() int {
	return len(s.entries)
}

// Source returns the file the snapshot was loaded from, empty for Parse.
func (s *Snapshot) Source() string {
	return s.source
}

// LoadedAt returns when the snapshot was created.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Lookup finds a profile by id, then by name.
func (s *Snapshot) Lookup(key string) (*LauncherProfile, error) {
	e, err := s.Find(key)
	if err != nil {
		return nil, err
	}

	return e.Profile, nil
}

// Find is Lookup returning the whole entry. When several profiles share a
// name the one with the lowest id wins.
func (s *Snapshot) Find(key string) (Entry, error) {
	if p, ok := s.byID[key]; ok {
		return Entry{ID: key, Profile: p}, nil
	}

	for _, e := range s.entries {
		if e.Profile.Name() == key {
			return e, nil
		}
	}

	return Entry{}, errors.Wrapf(ErrProfileNotFound, "%q", key)
}

// SelectedID returns the id of the selected profile, empty when none is.
func (s *Snapshot) SelectedID() string {
	return s.selected
}

// Selected returns the profile marked as selected in the profiles file.
func (s *Snapshot) Selected() (Entry, error) {
	if s.selected == "" {
		return Entry{}, ErrNoSelectedProfile
	}

	return s.Find(s.selected)
}
