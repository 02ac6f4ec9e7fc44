package resolve

import (
	"github.com/smykla-skalski/mcdirs/internal/directory"
	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

//go:generate mockgen -source=collaborators.go -destination=collaborators_mock.go -package=resolve

// RootProvider exposes the installation root directory.
type RootProvider interface {
	// DefaultRootPath returns the installation root. It must be stable and
	// non-empty for the duration of a resolution.
	DefaultRootPath() string
}

// ProfileDirectoryFactory builds profile directories for raw paths.
type ProfileDirectoryFactory interface {
	CreateProfileDirectory(path string) directory.Directory
}

// VersionDirectoryFactory builds version directories by id. It never returns nil.
type VersionDirectoryFactory interface {
	CreateVersionDirectory(id string) directory.Directory
}

// VersionList finds installed versions by release type.
type VersionList interface {
	// FirstValidForType returns the first valid version directory of exactly
	// the given type, in the list's own order.
	FirstValidForType(t profile.ReleaseType) (directory.Directory, bool)
}
