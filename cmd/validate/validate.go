// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package validate

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/launch"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// ValidateCmd checks every command in the deck for problems that would
// otherwise only surface at launch. Useful after hand-editing the document.
var ValidateCmd = &cli.Command{
	Name:        "validate",
	Description: "Check every command for problems that would surface at launch: unknown types, blank names, empty content, missing script files.",
	Action:      actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	app, err := appstate.New(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := Check(app.FS, app.Registry.List()); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "commands document is valid (%d commands)\n", app.Registry.Len())

	return nil
}

// Check validates cmds against fs, reporting every problem rather than
// stopping at the first.
func Check(fs afero.Fs, cmds []command.Command) error {
	var merr *multierror.Error

	for i, c := range cmds {
		if strings.TrimSpace(c.Name) == "" {
			merr = multierror.Append(merr, fmt.Errorf("index %d: %w", i, command.ErrEmptyName))
		}

		switch c.Kind {
		case command.KindSingle, command.KindMulti:
			if len(strings.TrimSpace(c.Content)) == 0 {
				merr = multierror.Append(merr, fmt.Errorf("index %d (%s): %w", i, c.Name, launch.ErrEmptyCommand))
			}
		case command.KindScript:
			exists, err := afero.Exists(fs, c.Content)
			if err != nil || !exists {
				merr = multierror.Append(merr, fmt.Errorf("index %d (%s): %w: %q", i, c.Name, launch.ErrScriptNotFound, c.Content))
			}
		default:
			merr = multierror.Append(merr, fmt.Errorf("index %d (%s): %w", i, c.Name, command.ErrUnknownKind))
		}
	}

	return merr.ErrorOrNil()
}
