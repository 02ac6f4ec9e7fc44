// Package resolve turns launcher profiles into validated profile and version
// directories.
package resolve

import (
	"strings"

	"github.com/smykla-skalski/mcdirs/internal/directory"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

const (
	uncPrefix = `\\`

	rootSuffix      = ".minecraft"
	snapshotsSuffix = ".minecraft_snapshots"

	// snapshotsRootSuffix turns a shared root into its snapshots sibling.
	snapshotsRootSuffix = "_snapshots"
)

// ProfileResolver resolves the working directory of a launcher profile.
type ProfileResolver struct {
	root RootProvider
	dirs ProfileDirectoryFactory
	log  logger.Logger
}

// NewProfileResolver creates a ProfileResolver.
func NewProfileResolver(root RootProvider, dirs ProfileDirectoryFactory, log logger.Logger) *ProfileResolver {
	return &ProfileResolver{
		root: root,
		dirs: dirs,
		log:  log,
	}
}

// Resolve returns the profile directory for p.
//
// Without a configured game directory the installation root is returned as
// is. A configured directory must be valid; if it is not, the snapshots
// sibling of a network-shared root is tried once before failing with a
// *NotFoundError.
//
//nolint:ireturn // the directory flavor is chosen by the factory
func (r *ProfileResolver) Resolve(p *profile.LauncherProfile) (directory.Directory, error) {
	gameDir, ok := p.GameDir()
	if !ok {
		return r.dirs.CreateProfileDirectory(r.root.DefaultRootPath()), nil
	}

	result := r.dirs.CreateProfileDirectory(gameDir)
	if result.IsValid() {
		return result, nil
	}

	rootPath := r.root.DefaultRootPath()

	if isNetworkPath(rootPath) && !isNetworkPath(gameDir) && isSnapshotsSibling(gameDir, rootPath) {
		// Snapshot profiles live next to .minecraft on the same share.
		candidate := rootPath + snapshotsRootSuffix

		r.log.Info("profile directory not found, attempting UNC path",
			"profile", p.Name(),
			"gameDir", gameDir,
			"path", candidate,
		)

		result = r.dirs.CreateProfileDirectory(candidate)
		if result.IsValid() {
			return result, nil
		}
	}

	return nil, profileNotFound(p.Name(), gameDir)
}

// isNetworkPath reports whether path is a UNC path such as \\server\share\foo.
func isNetworkPath(path string) bool {
	return strings.HasPrefix(path, uncPrefix)
}

// isSnapshotsSibling reports whether gameDir names the .minecraft_snapshots
// directory belonging to the .minecraft root.
func isSnapshotsSibling(gameDir, root string) bool {
	return strings.HasSuffix(gameDir, snapshotsSuffix) && strings.HasSuffix(root, rootSuffix)
}
