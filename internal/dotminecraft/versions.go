package dotminecraft

import (
	"encoding/json"
	"io/fs"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/mcdirs/internal/directory"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

// Version describes one installed version.
type Version struct {
	ID          string
	Type        profile.ReleaseType
	ReleaseTime time.Time
}

type versionManifest struct {
	Type        string `json:"type"`
	ReleaseTime string `json:"releaseTime"`
}

// VersionList lists the versions installed under an Installation's versions
// directory. Every call rescans the directory.
type VersionList struct {
	inst *Installation
	log  logger.Logger
}

// NewVersionList creates a VersionList for inst.
func NewVersionList(inst *Installation, log logger.Logger) *VersionList {
	return &VersionList{
		inst: inst,
		log:  log,
	}
}

// Versions returns the installed versions, most recent first. Entries whose
// manifest is missing, unreadable or of an unknown type are skipped. A
// missing versions directory yields an empty list.
func (l *VersionList) Versions() ([]Version, error) {
	versionsDir := l.inst.VersionsDir()

	entries, err := os.ReadDir(versionsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.log.Debug("versions directory does not exist", "path", versionsDir)

			return nil, nil
		}

		return nil, errors.Wrapf(err, "reading versions directory %s", versionsDir)
	}

	versions := make([]Version, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		v, err := l.readVersion(entry.Name())
		if err != nil {
			l.log.Debug("skipping version", "id", entry.Name(), "error", err)

			continue
		}

		versions = append(versions, v)
	}

	slices.SortStableFunc(versions, compareNewestFirst)

	return versions, nil
}

// FirstValidForType returns the most recent valid version directory of type t.
//
//nolint:ireturn // satisfies resolve.VersionList
func (l *VersionList) FirstValidForType(t profile.ReleaseType) (directory.Directory, bool) {
	versions, err := l.Versions()
	if err != nil {
		l.log.Error("failed to list versions", "error", err)

		return nil, false
	}

	for _, v := range versions {
		if v.Type != t {
			continue
		}

		dir := l.inst.CreateVersionDirectory(v.ID)
		if dir.IsValid() {
			return dir, true
		}
	}

	return nil, false
}

func (l *VersionList) readVersion(id string) (Version, error) {
	dir := directory.NewVersionDirectory(l.inst.VersionsDir(), id)

	data, err := os.ReadFile(dir.JSONFile()) //nolint:gosec // G304: path is inside the versions directory
	if err != nil {
		return Version{}, errors.Wrap(err, "reading version manifest")
	}

	var manifest versionManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return Version{}, errors.Wrap(err, "decoding version manifest")
	}

	releaseType, err := profile.ReleaseTypeString(manifest.Type)
	if err != nil {
		return Version{}, errors.Newf("unknown release type %q", manifest.Type)
	}

	v := Version{
		ID:   id,
		Type: releaseType,
	}

	if manifest.ReleaseTime != "" {
		if t, err := time.Parse(time.RFC3339, manifest.ReleaseTime); err == nil {
			v.ReleaseTime = t
		}
	}

	return v, nil
}

// compareNewestFirst orders by release time, then by semantic version when
// both ids parse, then by id, all descending.
func compareNewestFirst(a, b Version) int {
	if c := b.ReleaseTime.Compare(a.ReleaseTime); c != 0 {
		return c
	}

	av, aErr := semver.NewVersion(a.ID)
	bv, bErr := semver.NewVersion(b.ID)

	if aErr == nil && bErr == nil {
		if c := bv.Compare(av); c != 0 {
			return c
		}
	}

	return strings.Compare(b.ID, a.ID)
}
