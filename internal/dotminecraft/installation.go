package dotminecraft

import (
	"path/filepath"

	"github.com/smykla-skalski/mcdirs/internal/directory"
)

// Installation is a Minecraft installation root. It provides the root path
// and builds the profile and version directories that belong to it.
type Installation struct {
	root string
}

// NewInstallation creates an Installation for root. The path is used verbatim
// so network (UNC) roots keep their form.
func NewInstallation(root string) *Installation {
	return &Installation{root: root}
}

// DefaultRootPath returns the installation root.
func (i *Installation) DefaultRootPath() string {
	return i.root
}

// VersionsDir returns the directory holding installed versions.
func (i *Installation) VersionsDir() string {
	return filepath.Join(i.root, versionsDirName)
}

// LibrariesDir returns the shared libraries directory.
func (i *Installation) LibrariesDir() string {
	return filepath.Join(i.root, librariesDirName)
}

// LauncherProfilesFile returns the launcher's profiles file.
func (i *Installation) LauncherProfilesFile() string {
	return filepath.Join(i.root, launcherProfilesName)
}

// IsValid reports whether the root and its libraries directory exist.
func (i *Installation) IsValid() bool {
	return directory.NewProfileDirectory(i.root).IsValid() &&
		directory.NewProfileDirectory(i.LibrariesDir()).IsValid()
}

// CreateProfileDirectory returns the profile directory at path.
//
//nolint:ireturn // satisfies resolve.ProfileDirectoryFactory
func (*Installation) CreateProfileDirectory(path string) directory.Directory {
	return directory.NewProfileDirectory(path)
}

// CreateVersionDirectory returns the version directory for id inside this installation.
//
//nolint:ireturn // satisfies resolve.VersionDirectoryFactory
func (i *Installation) CreateVersionDirectory(id string) directory.Directory {
	return directory.NewVersionDirectory(i.VersionsDir(), id)
}
