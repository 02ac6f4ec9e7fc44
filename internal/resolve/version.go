package resolve

import (
	"github.com/smykla-skalski/mcdirs/internal/directory"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

// VersionResolver resolves the version directory of a launcher profile.
type VersionResolver struct {
	factory VersionDirectoryFactory
	list    VersionList
	log     logger.Logger
}

// NewVersionResolver creates a VersionResolver.
func NewVersionResolver(factory VersionDirectoryFactory, list VersionList, log logger.Logger) *VersionResolver {
	return &VersionResolver{
		factory: factory,
		list:    list,
		log:     log,
	}
}

// Resolve returns the version directory for p.
//
// A configured version id is looked up exactly and is never replaced by a
// scan. Without one, the allowed release types are tried in order and the
// first valid version wins.
//
//nolint:ireturn // the directory flavor is chosen by the collaborators
func (r *VersionResolver) Resolve(p *profile.LauncherProfile) (directory.Directory, error) {
	if id, ok := p.LastVersionID(); ok {
		result := r.factory.CreateVersionDirectory(id)
		if result.IsValid() {
			return result, nil
		}

		r.log.Debug("configured version is not installed", "profile", p.Name(), "version", id)

		return nil, versionNotFound(p.Name())
	}

	for _, t := range p.AllowedReleaseTypes() {
		if result, ok := r.list.FirstValidForType(t); ok {
			return result, nil
		}

		r.log.Debug("no valid version of release type", "profile", p.Name(), "type", t)
	}

	return nil, versionNotFound(p.Name())
}
