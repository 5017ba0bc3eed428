// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package remove

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/urfave/cli/v3"
)

const indexArg = "index"

// RemoveCmd deletes the command at an index. Later commands shift down, so
// indices shown by a previous listing change after removal.
var RemoveCmd = &cli.Command{
	Name:        "remove",
	Aliases:     []string{"rm"},
	Description: "Remove the command at the given index. Subsequent commands shift down by one.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      indexArg,
			UsageText: "INDEX",
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

	index, err := strconv.Atoi(cmd.StringArg(indexArg))
	if err != nil {
		return cli.Exit("please provide the index of the command to remove", 1)
	}

	c, err := app.Registry.Get(index)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := app.Registry.Delete(ctx, index); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "removed %q from index %d\n", c.Name, index)

	return nil
}
