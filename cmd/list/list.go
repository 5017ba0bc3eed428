// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package list

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/cmdeck/cmdeck/cmd/appstate"
	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/urfave/cli/v3"
)

const wideFlag = "wide"

// ListCmd prints the deck in execution order. Indices shown here are the
// ones every other subcommand addresses commands by.
var ListCmd = &cli.Command{
	Name:        "list",
	Aliases:     []string{"ls"},
	Description: "List the commands in the deck, in order. The index column is how run, edit, remove and move address a command.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    wideFlag,
			Aliases: []string{"w"},
			Usage:   "Include the command content in the listing",
			Value:   false,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	app, err := appstate.New(ctx, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	cmds := app.Registry.List()
	if len(cmds) == 0 {
		fmt.Fprintln(cmd.Writer, "no commands defined; use 'cmdeck add' to create one")
		return nil
	}

	headers := []string{"IDX", "NAME", "TYPE", "DESCRIPTION"}
	if cmd.Bool(wideFlag) {
		headers = append(headers, "CONTENT")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("8"))).
		StyleFunc(styleFunc).
		Headers(headers...)

	for i, c := range cmds {
		row := []string{strconv.Itoa(i), c.Name, c.Kind.String(), c.Description}
		if cmd.Bool(wideFlag) {
			row = append(row, contentCell(c))
		}

		t.Row(row...)
	}

	fmt.Fprintln(cmd.Writer, t)

	return nil
}

func styleFunc(row, col int) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1)

	switch {
	case row == table.HeaderRow:
		return base.Bold(true)
	case col == 1:
		return base.Foreground(lipgloss.Color("12"))
	default:
		return base
	}
}

// contentCell renders a command's content for the wide listing. Multi
// commands show one line per executable line.
func contentCell(c command.Command) string {
	if c.Kind != command.KindMulti {
		return c.Content
	}

	return strings.Join(c.Lines(), "\n")
}
