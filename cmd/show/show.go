// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/TylerBrock/colorjson"
	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/internal/color"
	"github.com/urfave/cli/v3"
)

const indexArg = "index"

// ErrRenderDocument is returned when the document cannot be rendered.
var ErrRenderDocument = errors.New("failed to render commands document")

// ShowCmd prints the persisted document form, either the whole deck or a
// single command. This is the exact shape 'export' writes and 'import' reads.
var ShowCmd = &cli.Command{
	Name:        "show",
	Description: "Show the commands document as JSON. With an index, show only that command.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      indexArg,
			UsageText: "[INDEX]",
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

	if ref := cmd.StringArg(indexArg); ref != "" {
		index, err := strconv.Atoi(ref)
		if err != nil {
			return cli.Exit("please provide a numeric index", 1)
		}

		c, err := app.Registry.Get(index)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}

		if data, err = json.MarshalIndent(c, "", "  "); err != nil {
			return cli.Exit(errors.Join(ErrRenderDocument, err).Error(), 1)
		}
	}

	rendered, err := render(data)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintln(cmd.Writer, rendered)

	return nil
}

// render colorizes the JSON when the terminal supports it, and falls back to
// the plain indented form otherwise.
func render(data []byte) (string, error) {
	if !color.Enabled() {
		return string(data), nil
	}

	var obj any
	if err := json.Unmarshal(data, &obj); err != nil {
		return "", errors.Join(ErrRenderDocument, err)
	}

	f := colorjson.NewFormatter()
	f.Indent = 2

	colored, err := f.Marshal(obj)
	if err != nil {
		return "", errors.Join(ErrRenderDocument, err)
	}

	return string(colored), nil
}
