// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package run

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/ctxlog"
	"github.com/cmdeck/cmdeck/internal/tui"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

const (
	commandArg = "command"

	followFlag = "follow"
)

// ErrCommandNotFound is returned when the argument matches no index and no
// command name.
var ErrCommandNotFound = errors.New("no command with that index or name")

// RunCmd launches a command from the deck. The launch is detached: success
// means the OS accepted the process, and the command keeps running after
// cmdeck exits.
var RunCmd = &cli.Command{
	Name: "run",
	Description: `Launch the command at the given index, or the first command with the given name.
The launched process is fully detached; closing the terminal or the follow
console does not stop it. Without --follow the child inherits this terminal's
output and cmdeck returns immediately.`,
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      commandArg,
			UsageText: "INDEX|NAME",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        followFlag,
			Aliases:     []string{"F"},
			Usage:       "Open an interactive console streaming the command's output. Quitting the console leaves the command running.",
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

	ref := cmd.StringArg(commandArg)
	if ref == "" {
		return cli.Exit("please provide a command index or name", 1)
	}

	index, err := Resolve(app.Registry.List(), ref)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	c, err := app.Registry.Get(index)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if !cmd.Bool(followFlag) {
		if err := app.Engine.ExecuteAt(ctx, index); err != nil {
			return cli.Exit(err.Error(), 1)
		}

		ctxlog.Info(ctx, "launched detached", "name", c.Name, "index", index)

		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return cli.Exit("--follow needs an interactive terminal", 1)
	}

	console := tui.NewConsole(c.Name, app.Settings.ConsoleLines)
	app.Engine.SetOutputSink(console.OutputSink())
	app.Engine.SetErrorSink(console.ErrorSink())

	// The echoed command lines flow through the console's sinks, so the
	// launch has to happen alongside the console's event loop.
	execErrCh := make(chan error, 1)

	go func() {
		execErr := app.Engine.ExecuteAt(ctx, index)
		execErrCh <- execErr

		if execErr != nil {
			console.Quit()
		}
	}()

	if err := console.Run(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := <-execErrCh; err != nil {
		return cli.Exit(err.Error(), 1)
	}

	return nil
}

// Resolve maps an index-or-name argument onto a deck position. A numeric
// argument is an index; anything else matches the first command with that
// name.
func Resolve(cmds []command.Command, ref string) (int, error) {
	if index, err := strconv.Atoi(ref); err == nil {
		if index < 0 || index >= len(cmds) {
			return 0, fmt.Errorf("%w: index %d (deck has %d)", ErrCommandNotFound, index, len(cmds))
		}

		return index, nil
	}

	for i, c := range cmds {
		if c.Name == ref {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrCommandNotFound, ref)
}
