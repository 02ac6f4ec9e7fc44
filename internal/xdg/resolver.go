package xdg

import "path/filepath"

// PathResolver resolves the configuration locations of mcdirs.
// Use ResolverFor when paths should be relative to a specific home directory.
type PathResolver interface {
	ConfigDir() string
	GlobalConfigFile() string
}

// DefaultResolver returns a PathResolver using real XDG paths.
//
//nolint:ireturn // callers depend on the interface
func DefaultResolver() PathResolver {
	return defaultResolver{}
}

type defaultResolver struct{}

func (defaultResolver) ConfigDir() string        { return ConfigDir() }
func (defaultResolver) GlobalConfigFile() string { return GlobalConfigFile() }

// ResolverFor returns a PathResolver rooted at homeDir, ignoring XDG env vars.
//
//nolint:ireturn // callers depend on the interface
func ResolverFor(homeDir string) PathResolver {
	return homeResolver{homeDir: homeDir}
}

type homeResolver struct {
	homeDir string
}

func (r homeResolver) ConfigDir() string {
	return filepath.Join(r.homeDir, ".config", appName)
}

func (r homeResolver) GlobalConfigFile() string {
	return filepath.Join(r.ConfigDir(), configFileName)
}
