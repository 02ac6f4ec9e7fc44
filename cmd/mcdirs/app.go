package main

import (
	"io/fs"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/mcdirs/internal/dotminecraft"
	"github.com/smykla-skalski/mcdirs/internal/resolve"
	"github.com/smykla-skalski/mcdirs/internal/xdg"
	"github.com/smykla-skalski/mcdirs/pkg/config"
	"github.com/smykla-skalski/mcdirs/pkg/logger"
	"github.com/smykla-skalski/mcdirs/pkg/profile"
)

// app wires one installation, its profiles and the resolvers together.
type app struct {
	cfg      *config.Config
	log      *logger.SlogAdapter
	inst     *dotminecraft.Installation
	store    *profile.Store
	profiles *resolve.ProfileResolver
	versions *resolve.VersionResolver
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logFile := cfg.GetLogFile()
	if logFile == "" {
		if err := xdg.EnsureDir(xdg.StateDir()); err != nil {
			return nil, err
		}

		logFile = xdg.LogFile()
	}

	log, err := logger.NewFileLogger(logFile, cfg.GetLogLevel())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	root := cfg.GetRoot()
	if root == "" {
		root, err = dotminecraft.DefaultRoot()
		if err != nil {
			_ = log.Close()

			return nil, errors.WithHint(err, "set minecraft.root in the config or pass --root")
		}
	}

	inst := dotminecraft.NewInstallation(root)
	if !inst.IsValid() {
		log.Info("installation root looks incomplete", "root", root)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		inst:     inst,
		store:    profile.NewStore(cfg.GetProfilesFile(root), log),
		profiles: resolve.NewProfileResolver(inst, inst, log),
		versions: resolve.NewVersionResolver(inst, dotminecraft.NewVersionList(inst, log), log),
	}, nil
}

func (a *app) Close() error {
	return a.log.Close()
}

// loadProfiles reloads the profiles file.
func (a *app) loadProfiles() (*profile.Snapshot, error) {
	snap, err := a.store.Reload()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.WithHint(err,
				"set minecraft.profiles in the config or pass --profiles to point at launcher_profiles.json")
		}

		return nil, err
	}

	return snap, nil
}

// pick returns the profile named by args, or the selected one.
func pick(snap *profile.Snapshot, args []string) (profile.Entry, error) {
	if len(args) > 0 {
		return snap.Find(args[0])
	}

	entry, err := snap.Selected()
	if err != nil {
		return profile.Entry{}, errors.WithHint(err, "name a profile: mcdirs resolve <profile>")
	}

	return entry, nil
}

// configuredGameDir describes where p's game directory is configured to be.
func (a *app) configuredGameDir(p *profile.LauncherProfile) string {
	if dir, ok := p.GameDir(); ok {
		return dir
	}

	return a.inst.DefaultRootPath()
}

// configuredVersion describes which version p is configured to use.
func configuredVersion(p *profile.LauncherProfile) string {
	if id, ok := p.LastVersionID(); ok {
		return id
	}

	types := p.AllowedReleaseTypes()
	names := make([]string, 0, len(types))

	for _, t := range types {
		names = append(names, t.String())
	}

	return "latest " + strings.Join(names, ", ")
}
