package main

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/mcdirs/internal/directory"
)

var jsonOutput bool

var resolveCmd = &cobra.Command{
	Use:   "resolve [profile]",
	Short: "Print the game and version directories of a launcher profile",
	Long: `Print the game directory and the version directory of a launcher profile.

The profile is looked up by id, then by name. Without an argument the
profile selected in the launcher is used.

Output is the game directory on the first line and the version directory
on the second. Use --json for a machine-readable object.

Exits with code 2 when either directory cannot be found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
}

// resolution is the JSON form of a resolved profile.
type resolution struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GameDir    string `json:"gameDir"`
	SavesDir   string `json:"savesDir,omitempty"`
	VersionDir string `json:"versionDir"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	defer func() { _ = a.Close() }()

	snap, err := a.loadProfiles()
	if err != nil {
		return err
	}

	entry, err := pick(snap, args)
	if err != nil {
		return err
	}

	p := entry.Profile

	gameDir, err := a.profiles.Resolve(p)
	if err != nil {
		return err
	}

	versionDir, err := a.versions.Resolve(p)
	if err != nil {
		return err
	}

	a.log.Debug("profile resolved",
		"profile", entry.ID,
		"gameDir", gameDir.Path(),
		"versionDir", versionDir.Path(),
	)

	out := cmd.OutOrStdout()

	if jsonOutput {
		res := resolution{
			ID:         entry.ID,
			Name:       p.Name(),
			GameDir:    gameDir.Path(),
			VersionDir: versionDir.Path(),
		}

		if pd, ok := gameDir.(*directory.ProfileDirectory); ok {
			res.SavesDir = pd.SavesDir()
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(res), "failed to write JSON")
	}

	_, err = fmt.Fprintf(out, "%s\n%s\n", gameDir.Path(), versionDir.Path())

	return err
}
