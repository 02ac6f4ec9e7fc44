// Package config provides internal configuration loading and processing.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"
	tomlparser "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/smykla-skalski/mcdirs/internal/xdg"
	"github.com/smykla-skalski/mcdirs/pkg/config"
)

var (
	// ErrConfigNotFound is returned when an explicitly requested configuration
	// file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidPermissions is returned when config file has insecure permissions.
	ErrInvalidPermissions = errors.New("config file has insecure permissions")
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "MCDIRS_"

// KoanfLoader handles configuration loading from multiple sources using koanf.
// Precedence order (highest to lowest):
// 1. CLI Flags
// 2. Environment Variables (MCDIRS_*)
// 3. Explicit config file (--config)
// 4. Global Config ($XDG_CONFIG_HOME/mcdirs/config.toml)
// 5. Defaults
type KoanfLoader struct {
	k          *koanf.Koanf
	paths      xdg.PathResolver
	configFile string
}

// NewKoanfLoader creates a new KoanfLoader using the XDG locations.
func NewKoanfLoader() *KoanfLoader {
	return NewKoanfLoaderWithResolver(xdg.DefaultResolver())
}

// NewKoanfLoaderWithResolver creates a new KoanfLoader with custom locations (for testing).
func NewKoanfLoaderWithResolver(paths xdg.PathResolver) *KoanfLoader {
	return &KoanfLoader{
		k:     koanf.New("."),
		paths: paths,
	}
}

// WithConfigFile sets an explicit configuration file layered over the
// global one. The file must exist.
func (l *KoanfLoader) WithConfigFile(path string) *KoanfLoader {
	l.configFile = path

	return l
}

// Load loads configuration from all sources with precedence and validates it.
// Defaults → Global TOML → Explicit TOML → Env Vars → CLI Flags
func (l *KoanfLoader) Load(flags map[string]any) (*config.Config, error) {
	cfg, err := l.LoadWithoutValidation(flags)
	if err != nil {
		return nil, err
	}

	if err := NewValidator().Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// LoadWithoutValidation loads configuration without running validation.
func (l *KoanfLoader) LoadWithoutValidation(flags map[string]any) (*config.Config, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(defaultsToMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load defaults")
	}

	globalPath := l.GlobalConfigPath()
	if err := l.loadTOMLFile(globalPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to load global config")
	}

	if l.configFile != "" {
		path, err := xdg.ExpandPath(l.configFile)
		if err != nil {
			return nil, errors.Wrap(err, "invalid config path")
		}

		if err := l.loadTOMLFile(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(ErrConfigNotFound, "%s", path)
			}

			return nil, errors.Wrapf(err, "failed to load config %s", path)
		}
	}

	envOpt := env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: l.envTransform,
	}

	if err := l.k.Load(env.Provider(".", envOpt), nil); err != nil {
		return nil, errors.Wrap(err, "failed to load env vars")
	}

	if len(flags) > 0 {
		if err := l.k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, "failed to load flags")
		}
	}

	var cfg config.Config

	unmarshalConf := koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: decoderConfig(&cfg),
	}

	if err := l.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := expandPaths(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// decoderConfig returns the mapstructure config used to decode into result.
// Log levels arrive as strings from every source and decode through
// encoding.TextUnmarshaler. Values from the environment are weakly typed and
// lists may be given comma-separated.
func decoderConfig(result *config.Config) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		WeaklyTypedInput: true,
		Result:           result,
	}
}

func expandPaths(cfg *config.Config) error {
	var fields []*string

	if cfg.Minecraft != nil {
		fields = append(fields, &cfg.Minecraft.Root, &cfg.Minecraft.Profiles)
	}

	if cfg.Log != nil {
		fields = append(fields, &cfg.Log.File)
	}

	for _, field := range fields {
		expanded, err := xdg.ExpandPath(*field)
		if err != nil {
			return errors.Wrap(err, "invalid path in config")
		}

		*field = expanded
	}

	return nil
}

// loadTOMLFile loads a TOML configuration file with security checks.
func (l *KoanfLoader) loadTOMLFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if info.Mode().Perm()&0o002 != 0 {
		return errors.Wrapf(
			ErrInvalidPermissions,
			"%s is world-writable (mode: %s)",
			path,
			info.Mode().Perm(),
		)
	}

	return l.k.Load(file.Provider(path), tomlparser.Parser())
}

// envTransform transforms environment variable names to config paths.
// MCDIRS_MINECRAFT_ROOT → minecraft.root
func (*KoanfLoader) envTransform(key, value string) (string, any) {
	key = strings.TrimPrefix(key, EnvPrefix)
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", ".")

	return key, value
}

// GlobalConfigPath returns the path to the global configuration file.
func (l *KoanfLoader) GlobalConfigPath() string {
	return l.paths.GlobalConfigFile()
}

// HasGlobalConfig checks if a global configuration file exists.
func (l *KoanfLoader) HasGlobalConfig() bool {
	_, err := os.Stat(l.GlobalConfigPath())

	return err == nil
}
