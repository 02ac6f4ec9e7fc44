package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/smykla-skalski/mcdirs/internal/color"
	"github.com/smykla-skalski/mcdirs/internal/report"
	"github.com/smykla-skalski/mcdirs/internal/resolve"
	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

var checkFlag bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List launcher profiles",
	Long: `List the launcher profiles of the installation.

On a terminal the profiles are shown as a table. Otherwise one
tab-separated line is printed per profile with the fields: id, name,
game directory, version, last used, status, selected marker.

Use --check to resolve every profile's directories. Profiles are checked
concurrently (check.concurrency in the config). Exits with code 2 when
any profile has a missing directory.`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)

	profilesCmd.Flags().BoolVar(&checkFlag, "check", false, "Resolve the directories of every profile")
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	defer func() { _ = a.Close() }()

	snap, err := a.loadProfiles()
	if err != nil {
		return err
	}

	rows, err := a.buildRows(cmd.Context(), snap, checkFlag)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if f, ok := out.(*os.File); ok && color.IsTerminal(f) {
		theme := color.NewTheme(color.Enabled(noColorFlag))

		fmt.Fprintln(out, report.RenderTable(rows, theme, time.Now()))

		if checkFlag {
			fmt.Fprintln(out, report.RenderSummary(rows, theme))
		}
	} else if err := report.WritePlain(out, rows); err != nil {
		return errors.Wrap(err, "failed to write profiles")
	}

	if missing := report.Summarize(rows).Missing; missing > 0 {
		return errors.Mark(
			errors.Newf("%d profile(s) have missing directories", missing),
			resolve.ErrNotFound,
		)
	}

	return nil
}

// buildRows turns the snapshot into report rows, resolving directories when
// check is set.
func (a *app) buildRows(ctx context.Context, snap *profile.Snapshot, check bool) ([]report.Row, error) {
	entries := snap.Entries()
	rows := make([]report.Row, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.GetCheckConcurrency())

	for i, e := range entries {
		rows[i] = report.Row{
			ID:       e.ID,
			Name:     e.Profile.Name(),
			Selected: e.ID == snap.SelectedID(),
			LastUsed: e.Profile.LastUsed(),
			GameDir:  report.Cell{Text: a.configuredGameDir(e.Profile)},
			Version:  report.Cell{Text: configuredVersion(e.Profile)},
		}

		if !check {
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			a.checkRow(&rows[i], e.Profile)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "profile check interrupted")
	}

	return rows, nil
}

// checkRow resolves p and records the outcome in row. Each goroutine owns
// its row.
func (a *app) checkRow(row *report.Row, p *profile.LauncherProfile) {
	row.Checked = true

	if dir, err := a.profiles.Resolve(p); err != nil {
		a.log.Debug("profile directory missing", "profile", row.ID, "error", err)
		row.GameDir.Missing = true
	} else {
		row.GameDir.Text = dir.Path()
	}

	if dir, err := a.versions.Resolve(p); err != nil {
		a.log.Debug("version directory missing", "profile", row.ID, "error", err)
		row.Version.Missing = true
	} else {
		row.Version.Text = dir.Path()
	}
}
