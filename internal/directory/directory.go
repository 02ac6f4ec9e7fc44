// Package directory provides the on-disk directory kinds a launcher profile
// resolves to and their validity checks.
package directory

import (
	"os"
	"path/filepath"
)

// Directory is a resolved location together with its validity check.
//
//go:generate mockgen -source=directory.go -destination=directory_mock.go -package=directory
type Directory interface {
	// Path returns the directory path.
	Path() string

	// IsValid reports whether the path exists and has the expected shape.
	IsValid() bool
}

// ProfileDirectory is a game working directory (saves, options, mods).
type ProfileDirectory struct {
	root string
}

// NewProfileDirectory creates a ProfileDirectory. The path is kept verbatim.
func NewProfileDirectory(root string) *ProfileDirectory {
	return &ProfileDirectory{root: root}
}

// Path returns the directory path.
func (d *ProfileDirectory) Path() string {
	return d.root
}

// IsValid reports whether the path is an existing directory.
func (d *ProfileDirectory) IsValid() bool {
	return isDir(d.root)
}

// SavesDir returns the worlds directory inside the profile directory.
func (d *ProfileDirectory) SavesDir() string {
	return filepath.Join(d.root, "saves")
}

// VersionDirectory holds the files of one game version: <id>/<id>.json and <id>/<id>.jar.
type VersionDirectory struct {
	root string
	id   string
}

// NewVersionDirectory creates the VersionDirectory for id inside versionsDir.
func NewVersionDirectory(versionsDir, id string) *VersionDirectory {
	return &VersionDirectory{
		root: filepath.Join(versionsDir, id),
		id:   id,
	}
}

// Path returns the directory path.
func (d *VersionDirectory) Path() string {
	return d.root
}

// ID returns the version id.
func (d *VersionDirectory) ID() string {
	return d.id
}

// JSONFile returns the path of the version manifest.
func (d *VersionDirectory) JSONFile() string {
	return filepath.Join(d.root, d.id+".json")
}

// JarFile returns the path of the client jar.
func (d *VersionDirectory) JarFile() string {
	return filepath.Join(d.root, d.id+".jar")
}

// IsValid reports whether both the manifest and the jar are regular files.
func (d *VersionDirectory) IsValid() bool {
	return isFile(d.JSONFile()) && isFile(d.JarFile())
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.Mode().IsRegular()
}
