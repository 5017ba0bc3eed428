// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package edit

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/urfave/cli/v3"
)

const (
	indexArg = "index"

	nameFlag        = "name"
	typeFlag        = "type"
	contentFlag     = "content"
	descriptionFlag = "description"
)

// EditCmd replaces fields of the command at an index. Only the fields given
// as flags change; the rest carry over.
var EditCmd = &cli.Command{
	Name:        "edit",
	Description: "Edit the command at the given index. Unspecified fields keep their current value.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      indexArg,
			UsageText: "INDEX",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     nameFlag,
			Aliases:  []string{"n"},
			Usage:    "New command name",
			OnlyOnce: true,
		},
		&cli.StringFlag{
			Name:     typeFlag,
			Aliases:  []string{"t"},
			Usage:    "New command type: single, multi or script",
			OnlyOnce: true,
		},
		&cli.StringSliceFlag{
			Name:    contentFlag,
			Aliases: []string{"c"},
			Usage:   "New command content. For multi commands, repeat the flag once per line.",
		},
		&cli.StringFlag{
			Name:     descriptionFlag,
			Aliases:  []string{"d"},
			Usage:    "New description",
			OnlyOnce: true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	app, err := appstate.New(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	index, err := strconv.Atoi(cmd.StringArg(indexArg))
	if err != nil {
		return cli.Exit("please provide the index of the command to edit", 1)
	}

	existing, err := app.Registry.Get(index)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	name := existing.Name
	if cmd.IsSet(nameFlag) {
		name = cmd.String(nameFlag)
	}

	kind := existing.Kind

	if cmd.IsSet(typeFlag) {
		kind, err = command.ParseKind(cmd.String(typeFlag))
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	content := existing.Content
	if cmd.IsSet(contentFlag) {
		content = strings.Join(cmd.StringSlice(contentFlag), "\n")
	}

	description := existing.Description
	if cmd.IsSet(descriptionFlag) {
		description = cmd.String(descriptionFlag)
	}

	updated, err := command.New(name, kind, content, description)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := app.Registry.Update(ctx, index, updated); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "updated %q at index %d\n", updated.Name, index)

	return nil
}
