// Package dotminecraft provides access to a Minecraft installation root
// (the .minecraft directory): its default location, the directories it
// contains and the versions installed in it.
package dotminecraft

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/cockroachdb/errors"
)

const (
	dotMinecraft    = ".minecraft"
	macOSAppSupport = "minecraft"

	versionsDirName      = "versions"
	librariesDirName     = "libraries"
	launcherProfilesName = "launcher_profiles.json"
)

// ErrNoDefaultRoot is returned when the platform's default root cannot be determined.
var ErrNoDefaultRoot = errors.New("cannot determine default minecraft directory")

// DefaultRoot returns the platform's default installation root.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Mark(errors.Wrap(err, "failed to get home directory"), ErrNoDefaultRoot)
	}

	return defaultRootFor(runtime.GOOS, home, os.Getenv("APPDATA")), nil
}

// defaultRootFor follows the vanilla launcher's layout per platform.
func defaultRootFor(goos, home, appData string) string {
	switch goos {
	case "windows":
		if appData != "" {
			return filepath.Join(appData, dotMinecraft)
		}

		return filepath.Join(home, "AppData", "Roaming", dotMinecraft)
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", macOSAppSupport)
	default:
		return filepath.Join(home, dotMinecraft)
	}
}
