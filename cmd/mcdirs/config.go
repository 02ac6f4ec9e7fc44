package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	internalconfig "github.com/smykla-skalski/mcdirs/internal/config"
	"github.com/smykla-skalski/mcdirs/internal/schema"
)

var forceFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mcdirs configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: `Write the default configuration to $XDG_CONFIG_HOME/mcdirs/config.toml.

Use --force to overwrite an existing configuration file.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging defaults, configuration files,
MCDIRS_* environment variables and flags.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)

	configInitCmd.Flags().BoolVarP(
		&forceFlag,
		"force",
		"f",
		false,
		"Overwrite existing configuration file",
	)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	writer := internalconfig.NewWriter()

	path, err := writer.WriteGlobal(internalconfig.DefaultConfig(), forceFlag)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	encoder := toml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndentTables(true)

	return encoder.Encode(cfg)
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := schema.GenerateJSON(true)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)

	return err
}
