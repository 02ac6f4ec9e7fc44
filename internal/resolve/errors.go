package resolve

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is matched by every resolution failure.
var ErrNotFound = errors.New("directory not found")

// Kind identifies which directory could not be resolved.
type Kind int

const (
	// KindProfileDirectory is a failed profile directory resolution.
	KindProfileDirectory Kind = iota

	// KindVersionDirectory is a failed version directory resolution.
	KindVersionDirectory
)

func (k Kind) String() string {
	switch k {
	case KindProfileDirectory:
		return "profile-directory"
	case KindVersionDirectory:
		return "version-directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NotFoundError describes a failed resolution.
type NotFoundError struct {
	Kind        Kind
	ProfileName string

	// ConfiguredPath is the game directory from the profile; empty for
	// version directory failures.
	ConfiguredPath string
}

func (e *NotFoundError) Error() string {
	switch e.Kind {
	case KindProfileDirectory:
		return fmt.Sprintf(
			"cannot find valid profile directory for launcher profile '%s': %s",
			e.ProfileName,
			e.ConfiguredPath,
		)
	default:
		return fmt.Sprintf(
			"cannot find valid version directory for launcher profile '%s'",
			e.ProfileName,
		)
	}
}

// Is makes errors.Is(err, ErrNotFound) match.
func (*NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func profileNotFound(name, configured string) error {
	return errors.WithHint(
		&NotFoundError{
			Kind:           KindProfileDirectory,
			ProfileName:    name,
			ConfiguredPath: configured,
		},
		"check the profile's game directory in the launcher, or pass --root with the installation it belongs to",
	)
}

func versionNotFound(name string) error {
	return errors.WithHint(
		&NotFoundError{
			Kind:        KindVersionDirectory,
			ProfileName: name,
		},
		"start the version once in the launcher so its files are downloaded",
	)
}
