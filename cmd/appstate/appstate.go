// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package appstate builds the application object the subcommands share:
// filesystem, settings, registry and engine, wired in that order.
package appstate

import (
	"context"
	"errors"

	"github.com/cmdeck/cmdeck/internal/ctxlog"
	"github.com/cmdeck/cmdeck/internal/engine"
	"github.com/cmdeck/cmdeck/internal/launch"
	"github.com/cmdeck/cmdeck/internal/paths"
	"github.com/cmdeck/cmdeck/internal/registry"
	"github.com/cmdeck/cmdeck/internal/settings"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// FileFlag is the root-level flag overriding the commands document location.
const FileFlag = "file"

// ErrState is returned when the application state cannot be built.
var ErrState = errors.New("failed to build application state")

// App is the per-invocation application state.
type App struct {
	FS       afero.Fs
	Settings settings.Settings
	Registry *registry.Registry
	Engine   *engine.Engine
}

// New builds the application state over the real filesystem, honouring the
// root-level --file override.
func New(ctx context.Context, cmd *cli.Command) (*App, error) {
	return NewWithFs(ctx, cmd.String(FileFlag), afero.NewOsFs())
}

// NewWithFs builds the application state over fs. An empty documentPath means
// the platform default location.
func NewWithFs(ctx context.Context, documentPath string, fs afero.Fs) (*App, error) {
	if documentPath == "" {
		p, err := paths.CommandsFile()
		if err != nil {
			return nil, errors.Join(ErrState, err)
		}

		documentPath = p
	}

	s := settings.Default()

	if settingsPath, err := paths.SettingsFile(); err == nil {
		s, err = settings.Load(fs, settingsPath)
		if err != nil {
			ctxlog.Warn(ctx, "settings document invalid, using defaults", "path", settingsPath, "error", err)
		}
	}

	reg, err := registry.New(ctx, fs, documentPath)

	switch {
	case errors.Is(err, registry.ErrLoadRecovered):
		// The registry is usable; the operator is told about the recovery
		// rather than the load failing outright.
		ctxlog.Warn(ctx, "commands document recovered as empty", "path", documentPath, "error", err)
	case err != nil:
		return nil, errors.Join(ErrState, err)
	}

	eng := engine.New(reg, &launch.Launcher{Shell: s.Shell}, engine.Options{
		EchoCommands: s.EchoCommands,
	})

	return &App{
		FS:       fs,
		Settings: s,
		Registry: reg,
		Engine:   eng,
	}, nil
}
