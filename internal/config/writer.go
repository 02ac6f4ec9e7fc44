package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/mcdirs/internal/xdg"
	"github.com/smykla-skalski/mcdirs/pkg/config"
)

const (
	// ConfigFileMode is the file mode for configuration files.
	ConfigFileMode = 0o600

	// ConfigDirMode is the file mode for configuration directories.
	ConfigDirMode = 0o700
)

// ErrConfigExists is returned when writing would overwrite an existing file.
var ErrConfigExists = errors.New("configuration file already exists")

// Writer handles writing configuration to TOML files.
type Writer struct {
	paths xdg.PathResolver
}

// NewWriter creates a new Writer using the XDG locations.
func NewWriter() *Writer {
	return NewWriterWithResolver(xdg.DefaultResolver())
}

// NewWriterWithResolver creates a new Writer with custom locations (for testing).
func NewWriterWithResolver(paths xdg.PathResolver) *Writer {
	return &Writer{paths: paths}
}

// GlobalConfigPath returns the path to the global configuration file.
func (w *Writer) GlobalConfigPath() string {
	return w.paths.GlobalConfigFile()
}

// WriteGlobal writes cfg to the global configuration file and returns its
// path. An existing file is only replaced when force is set.
func (w *Writer) WriteGlobal(cfg *config.Config, force bool) (string, error) {
	path := w.GlobalConfigPath()

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, errors.WithHint(
				errors.Wrapf(ErrConfigExists, "%s", path),
				"use --force to overwrite it",
			)
		}
	}

	return path, w.WriteFile(path, cfg)
}

// WriteFile writes the configuration to the given path.
func (*Writer) WriteFile(path string, cfg *config.Config) error {
	if cfg == nil {
		return errors.Wrap(ErrInvalidConfig, "config is nil")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, ConfigDirMode); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	var buf bytes.Buffer

	encoder := toml.NewEncoder(&buf)
	encoder.SetIndentTables(true)

	if err := encoder.Encode(cfg); err != nil {
		return errors.Wrap(err, "failed to encode config to TOML")
	}

	if err := os.WriteFile(path, buf.Bytes(), ConfigFileMode); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", path)
	}

	return nil
}
