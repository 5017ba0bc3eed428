// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/cmdeck/cmdeck"
	"github.com/cmdeck/cmdeck/cmd/add"
	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/cmd/edit"
	"github.com/cmdeck/cmdeck/cmd/export"
	"github.com/cmdeck/cmdeck/cmd/imp"
	"github.com/cmdeck/cmdeck/cmd/list"
	"github.com/cmdeck/cmdeck/cmd/move"
	"github.com/cmdeck/cmdeck/cmd/remove"
	"github.com/cmdeck/cmdeck/cmd/run"
	"github.com/cmdeck/cmdeck/cmd/show"
	"github.com/cmdeck/cmdeck/cmd/validate"
	"github.com/cmdeck/cmdeck/cmd/version"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		add.AddCmd,
		edit.EditCmd,
		export.ExportCmd,
		imp.ImportCmd,
		list.ListCmd,
		move.MoveCmd,
		remove.RemoveCmd,
		run.RunCmd,
		show.ShowCmd,
		validate.ValidateCmd,
		version.VersionCmd,
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:      appstate.FileFlag,
			Aliases:   []string{"f"},
			Usage:     "Path of the commands document. Defaults to the per-user config location.",
			TakesFile: true,
			OnlyOnce:  true,
		},
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "cmdeck",
	Description: `Cmdeck keeps a deck of named shell commands in a per-user JSON document
and launches them fully detached: a launched command survives the CLI exiting,
its terminal closing, and even the follow console being dismissed mid-stream.
Commands come in three kinds: a single shell line, a multi-line script body,
or a path to an executable script on disk.`,
	Usage:                 "cmdeck run 0 --follow",
	Version:               cmdeck.Version,
	Copyright:             "Copyright (c) cmdeck authors 2026. All rights reserved.",
	EnableShellCompletion: true,
}
