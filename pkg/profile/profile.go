// Package profile provides the launcher profile model and loading of the
// launcher's profiles file into immutable snapshots.
package profile

import (
	"slices"
	"time"
)

// LauncherProfile is a single launcher profile. It is immutable: all fields
// are set by New and a configuration reload produces new values instead of
// modifying existing ones.
type LauncherProfile struct {
	name                string
	gameDir             *string
	lastVersionID       *string
	allowedReleaseTypes []ReleaseType
	lastUsed            time.Time
}

// Option configures a LauncherProfile during construction.
type Option func(*LauncherProfile)

// WithGameDir sets the explicit game directory, stored verbatim.
func WithGameDir(dir string) Option {
	return func(p *LauncherProfile) {
		p.gameDir = &dir
	}
}

// WithLastVersionID sets the explicit version id.
func WithLastVersionID(id string) Option {
	return func(p *LauncherProfile) {
		p.lastVersionID = &id
	}
}

// WithAllowedReleaseTypes sets the release types in scan priority order.
// An empty list keeps the default.
func WithAllowedReleaseTypes(types ...ReleaseType) Option {
	return func(p *LauncherProfile) {
		if len(types) == 0 {
			return
		}

		p.allowedReleaseTypes = slices.Clone(types)
	}
}

// WithLastUsed sets the time the launcher last used the profile.
func WithLastUsed(t time.Time) Option {
	return func(p *LauncherProfile) {
		p.lastUsed = t
	}
}

// New creates a LauncherProfile. Without options the profile uses the
// installation's default directory and the newest stable release.
func New(name string, opts ...Option) *LauncherProfile {
	p := &LauncherProfile{
		name:                name,
		allowedReleaseTypes: DefaultReleaseTypes(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Name returns the profile name. It may be empty.
func (p *LauncherProfile) Name() string {
	return p.name
}

// GameDir returns the configured game directory and whether one is set.
func (p *LauncherProfile) GameDir() (string, bool) {
	if p.gameDir == nil {
		return "", false
	}

	return *p.gameDir, true
}

// LastVersionID returns the configured version id and whether one is set.
func (p *LauncherProfile) LastVersionID() (string, bool) {
	if p.lastVersionID == nil {
		return "", false
	}

	return *p.lastVersionID, true
}

// AllowedReleaseTypes returns a copy of the allowed release types in scan order.
func (p *LauncherProfile) AllowedReleaseTypes() []ReleaseType {
	return slices.Clone(p.allowedReleaseTypes)
}

// LastUsed returns the last-used time, zero if unknown.
func (p *LauncherProfile) LastUsed() time.Time {
	return p.lastUsed
}
