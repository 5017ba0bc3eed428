// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package imp implements the import subcommand. The package is not named
// "import" because that is a Go keyword.
package imp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/ctxlog"
	"github.com/cmdeck/cmdeck/internal/registry"
	"github.com/hashicorp/go-getter/v2"
	"github.com/urfave/cli/v3"
)

const (
	sourceArg = "source"

	replaceFlag = "replace"
)

// ErrFetchDocument is returned when the source document cannot be retrieved.
var ErrFetchDocument = errors.New("failed to fetch commands document")

// ImportCmd merges a commands document fetched from a local path or URL into
// the deck.
var ImportCmd = &cli.Command{
	Name: "import",
	Description: `Import commands from another commands document and append them to the deck.

Source URLs use Hashicorp's go-getter syntax, so documents can be fetched
from local paths, HTTP(S), git repositories and object stores.
See https://github.com/hashicorp/go-getter.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      sourceArg,
			UsageText: "URL",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        replaceFlag,
			Usage:       "Replace the whole deck instead of appending",
			Value:       false,
			DefaultText: "false",
			OnlyOnce:    true,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	app, err := appstate.New(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	src := cmd.StringArg(sourceArg)
	if src == "" {
		return cli.Exit("please provide the URL of a commands document", 1)
	}

	data, err := fetch(ctx, src)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cmds, err := registry.DecodeDocument(data)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for _, c := range cmds {
		if c.Kind == command.KindInvalid {
			ctxlog.Warn(ctx, "imported command has an unknown type and will not run", "name", c.Name)
		}
	}

	if cmd.Bool(replaceFlag) {
		err = app.Registry.ReplaceAll(ctx, cmds)
	} else {
		err = app.Registry.AddAll(ctx, cmds)
	}

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "imported %d commands (deck now has %d)\n", len(cmds), app.Registry.Len())

	return nil
}

// fetch retrieves the document from the given URL using Hashicorp's go-getter.
// It removes the temporary file after reading its content.
func fetch(ctx context.Context, url string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "cmdeck-getter-*")
	if err != nil {
		return nil, errors.Join(ErrFetchDocument, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetchDocument, err)
	}

	client := getter.Client{
		DisableSymlinks: true,
	}

	dst := filepath.Join(tmpDir, "commands.json")

	req := &getter.Request{
		Src:     url,
		Dst:     dst,
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	if _, err := client.Get(ctx, req); err != nil {
		return nil, errors.Join(ErrFetchDocument, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return nil, errors.Join(ErrFetchDocument, err)
	}

	return data, nil
}
