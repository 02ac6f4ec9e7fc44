// Package main provides the CLI entry point for mcdirs.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/mcdirs/internal/config"
	"github.com/smykla-skalski/mcdirs/internal/resolve"
	"github.com/smykla-skalski/mcdirs/pkg/config"
)

const (
	// ExitCodeOK indicates success.
	ExitCodeOK = 0

	// ExitCodeError indicates a usage, configuration or IO error.
	ExitCodeError = 1

	// ExitCodeNotFound indicates that a directory could not be resolved.
	ExitCodeNotFound = 2
)

var (
	configPath   string
	rootDir      string
	profilesFile string
	logLevel     string
	noColorFlag  bool
)

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() int {
	if err := rootCmd.Execute(); err != nil {
		return reportError(os.Stderr, err)
	}

	return ExitCodeOK
}

// reportError prints err with its hints and returns the matching exit code.
func reportError(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %v\n", err)

	if hint := errors.FlattenHints(err); hint != "" {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}

	if errors.Is(err, resolve.ErrNotFound) {
		return ExitCodeNotFound
	}

	return ExitCodeError
}

var rootCmd = &cobra.Command{
	Use:   "mcdirs",
	Short: "Resolve Minecraft launcher profile directories",
	Long: `Resolve the game directory and the version directory of Minecraft
launcher profiles, as the launcher would when starting the game.

Profiles are read from launcher_profiles.json in the installation root.
An installation root on a network share (\\host\share\.minecraft) is
supported, including profiles that still point at a local
.minecraft_snapshots directory.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		checkVersionFlag()
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to an additional configuration file (default: $XDG_CONFIG_HOME/mcdirs/config.toml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&rootDir,
		"root",
		"",
		"Installation root (default: the platform's .minecraft directory)",
	)
	rootCmd.PersistentFlags().StringVar(
		&profilesFile,
		"profiles",
		"",
		"Launcher profiles file (default: <root>/launcher_profiles.json)",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		"",
		"Log level (DEBUG, INFO, ERROR)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

// loadConfig loads configuration from all sources with precedence.
func loadConfig() (*config.Config, error) {
	loader := internalconfig.NewKoanfLoader()
	if configPath != "" {
		loader.WithConfigFile(configPath)
	}

	cfg, err := loader.Load(buildFlagsMap())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	return cfg, nil
}

// buildFlagsMap converts the flags that were given into config keys.
func buildFlagsMap() map[string]any {
	flags := make(map[string]any)

	if rootDir != "" {
		flags["minecraft.root"] = rootDir
	}

	if profilesFile != "" {
		flags["minecraft.profiles"] = profilesFile
	}

	if logLevel != "" {
		flags["log.level"] = logLevel
	}

	return flags
}
