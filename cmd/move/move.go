// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package move

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/urfave/cli/v3"
)

const (
	fromArg = "from"
	toArg   = "to"
)

// MoveCmd reorders the deck. The command is removed first and re-inserted at
// the target position, so the target is interpreted against the shortened
// sequence.
var MoveCmd = &cli.Command{
	Name:        "move",
	Aliases:     []string{"mv"},
	Description: "Move the command at FROM to position TO. The command is popped first, then inserted, so TO addresses the sequence without it.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      fromArg,
			UsageText: "FROM",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringArg{
			Name:      toArg,
			UsageText: " TO",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	app, err := appstate.New(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	from, err := strconv.Atoi(cmd.StringArg(fromArg))
	if err != nil {
		return cli.Exit("please provide the source index", 1)
	}

	to, err := strconv.Atoi(cmd.StringArg(toArg))
	if err != nil {
		return cli.Exit("please provide the target index", 1)
	}

	c, err := app.Registry.Get(from)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := app.Registry.Move(ctx, from, to); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "moved %q from %d to %d\n", c.Name, from, to)

	return nil
}
