// Package config provides configuration schema types for mcdirs.
package config

import (
	"path/filepath"

	"github.com/smykla-skalski/mcdirs/pkg/logger"
)

const (
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = logger.LevelInfo

	// DefaultCheckConcurrency is the number of profiles checked in parallel.
	DefaultCheckConcurrency = 4

	launcherProfilesFile = "launcher_profiles.json"
)

// Config represents the root configuration for mcdirs.
type Config struct {
	// Minecraft locates the installation to resolve against.
	Minecraft *MinecraftConfig `json:"minecraft,omitempty" koanf:"minecraft" toml:"minecraft,omitempty"`

	// Log configures the diagnostic log.
	Log *LogConfig `json:"log,omitempty" koanf:"log" toml:"log,omitempty"`

	// Check configures bulk profile checks.
	Check *CheckConfig `json:"check,omitempty" koanf:"check" toml:"check,omitempty"`
}

// MinecraftConfig locates the installation root and the launcher profiles file.
type MinecraftConfig struct {
	// Root is the installation root (the .minecraft directory). It may be a
	// UNC path when the installation lives on another machine.
	// Default: the platform's default location.
	Root string `json:"root,omitempty" koanf:"root" toml:"root,omitempty"`

	// Profiles is the launcher profiles file.
	// Default: <root>/launcher_profiles.json
	Profiles string `json:"profiles,omitempty" koanf:"profiles" toml:"profiles,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the minimum level written. Default: "INFO"
	Level logger.Level `json:"level" koanf:"level" toml:"level"`

	// File is the log file. Default: $XDG_STATE_HOME/mcdirs/mcdirs.log
	File string `json:"file,omitempty" koanf:"file" toml:"file,omitempty"`
}

// CheckConfig configures `mcdirs profiles --check`.
type CheckConfig struct {
	// Concurrency bounds how many profiles are resolved at once. Default: 4
	Concurrency int `json:"concurrency,omitempty" koanf:"concurrency" toml:"concurrency,omitempty"`
}

// GetRoot returns the configured root, empty when unset.
func (c *Config) GetRoot() string {
	if c == nil || c.Minecraft == nil {
		return ""
	}

	return c.Minecraft.Root
}

// GetProfilesFile returns the launcher profiles file for root.
// Returns <root>/launcher_profiles.json if Profiles is empty.
func (c *Config) GetProfilesFile(root string) string {
	if c == nil || c.Minecraft == nil || c.Minecraft.Profiles == "" {
		return filepath.Join(root, launcherProfilesFile)
	}

	return c.Minecraft.Profiles
}

// GetLogLevel returns the configured log level.
func (c *Config) GetLogLevel() logger.Level {
	if c == nil || c.Log == nil {
		return DefaultLogLevel
	}

	return c.Log.Level
}

// GetLogFile returns the configured log file, empty when unset.
func (c *Config) GetLogFile() string {
	if c == nil || c.Log == nil {
		return ""
	}

	return c.Log.File
}

// GetCheckConcurrency returns the configured check concurrency.
// Returns DefaultCheckConcurrency if unset or not positive.
func (c *Config) GetCheckConcurrency() int {
	if c == nil || c.Check == nil || c.Check.Concurrency <= 0 {
		return DefaultCheckConcurrency
	}

	return c.Check.Concurrency
}
