package config

import (
	"github.com/smykla-skalski/mcdirs/pkg/config"
)

// DefaultConfig returns a Config with all default values populated.
// Minecraft paths stay empty so that they are derived from the platform
// default root at run time.
func DefaultConfig() *config.Config {
	return &config.Config{
		Minecraft: &config.MinecraftConfig{},
		Log: &config.LogConfig{
			Level: config.DefaultLogLevel,
		},
		Check: &config.CheckConfig{
			Concurrency: config.DefaultCheckConcurrency,
		},
	}
}

// defaultsToMap flattens DefaultConfig into koanf keys.
func defaultsToMap() map[string]any {
	return map[string]any{
		"log.level":         config.DefaultLogLevel.String(),
		"check.concurrency": config.DefaultCheckConcurrency,
	}
}
