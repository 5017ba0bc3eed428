// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

const fileArg = "file"

const exportedMode = 0o644

// ErrWriteDocument is returned when the exported document cannot be written.
var ErrWriteDocument = errors.New("failed to write exported document")

// ExportCmd writes the commands document to a file, or to stdout when no
// file is given. The output is exactly what 'import' reads.
var ExportCmd = &cli.Command{
	Name:        "export",
	Description: "Write the commands document to OUTFILE, or to stdout when omitted.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      fileArg,
			UsageText: "[OUTFILE]",
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

	data, err := app.Registry.Document()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out := cmd.StringArg(fileArg)
	if out == "" || out == "-" {
		fmt.Fprintln(cmd.Writer, string(data))
		return nil
	}

	if err := afero.WriteFile(app.FS, out, data, exportedMode); err != nil {
		return cli.Exit(errors.Join(ErrWriteDocument, err).Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "exported %d commands to %s\n", app.Registry.Len(), out)

	return nil
}
