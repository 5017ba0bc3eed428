// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v3"
)

const (
	nameArg = "name"

	typeFlag        = "type"
	contentFlag     = "content"
	descriptionFlag = "description"
	interactiveFlag = "interactive"
)

// ErrPromptFailed is returned when interactive input cannot be read.
var ErrPromptFailed = errors.New("failed to read interactive input")

// AddCmd appends a command to the deck and persists the document before
// returning.
var AddCmd = &cli.Command{
	Name:        "add",
	Description: "Add a command to the deck. Provide the definition with flags, or use --interactive to be prompted for each field.",
	Arguments: []cli.Argument{
		&cli.StringArg{
			Name:      nameArg,
			UsageText: "NAME",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
	},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:        typeFlag,
			Aliases:     []string{"t"},
			Usage:       "Command type: single, multi or script",
			Value:       "single",
			DefaultText: "single",
			OnlyOnce:    true,
		},
		&cli.StringSliceFlag{
			Name:    contentFlag,
			Aliases: []string{"c"},
			Usage:   "Command content. For multi commands, repeat the flag once per line.",
		},
		&cli.StringFlag{
			Name:     descriptionFlag,
			Aliases:  []string{"d"},
			Usage:    "Free-text description shown in listings",
			OnlyOnce: true,
		},
		&cli.BoolFlag{
			Name:     interactiveFlag,
			Aliases:  []string{"i"},
			Usage:    "Prompt for each field instead of reading flags",
			Value:    false,
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

	name := cmd.StringArg(nameArg)
	kindStr := cmd.String(typeFlag)
	description := cmd.String(descriptionFlag)
	lines := cmd.StringSlice(contentFlag)

	if cmd.Bool(interactiveFlag) {
		line := liner.NewLiner()
		line.SetCtrlCAborts(true)

		name, kindStr, description, lines, err = promptDefinition(cmd.Writer, line)

		_ = line.Close()

		if errors.Is(err, liner.ErrPromptAborted) {
			return cli.Exit("aborted", 1)
		}

		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
	}

	if name == "" {
		return cli.Exit("please provide a command name", 1)
	}

	kind, err := command.ParseKind(kindStr)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	c, err := command.New(name, kind, strings.Join(lines, "\n"), description)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := app.Registry.Add(ctx, c); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	fmt.Fprintf(cmd.Writer, "added %q at index %d\n", c.Name, app.Registry.Len()-1)

	return nil
}

// prompter is the subset of liner the interactive flow needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// promptDefinition collects a command definition field by field. Multi
// commands read content lines until an empty line. Messages that are not
// prompts go to w.
func promptDefinition(w io.Writer, line prompter) (name, kindStr, description string, lines []string, err error) {
	if name, err = line.Prompt("name> "); err != nil {
		return "", "", "", nil, joinPromptErr(err)
	}

	if kindStr, err = line.Prompt("type (single|multi|script) [single]> "); err != nil {
		return "", "", "", nil, joinPromptErr(err)
	}

	if strings.TrimSpace(kindStr) == "" {
		kindStr = "single"
	}

	if description, err = line.Prompt("description> "); err != nil {
		return "", "", "", nil, joinPromptErr(err)
	}

	if strings.TrimSpace(kindStr) != "multi" {
		var content string
		if content, err = line.Prompt("content> "); err != nil {
			return "", "", "", nil, joinPromptErr(err)
		}

		return name, kindStr, description, []string{content}, nil
	}

	fmt.Fprintln(w, "Enter the script lines; an empty line finishes.")

	for {
		var l string
		if l, err = line.Prompt(fmt.Sprintf("%d> ", len(lines)+1)); err != nil {
			return "", "", "", nil, joinPromptErr(err)
		}

		if strings.TrimSpace(l) == "" {
			break
		}

		line.AppendHistory(l)
		lines = append(lines, l)
	}

	return name, kindStr, description, lines, nil
}

func joinPromptErr(err error) error {
	if errors.Is(err, liner.ErrPromptAborted) {
		return err
	}

	return errors.Join(ErrPromptFailed, err)
}
