// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package version

import (
	"context"
	"fmt"

	"github.com/cmdeck/cmdeck"
	"github.com/urfave/cli/v3"
)

// VersionCmd prints the build's version and commit.
var VersionCmd = &cli.Command{
	Name:        "version",
	Description: "Print the cmdeck version and the commit it was built from.",
	Action: func(_ context.Context, cmd *cli.Command) error {
		fmt.Fprintf(cmd.Writer, "cmdeck %s (commit %s)\n", cmdeck.Version, cmdeck.Commit)
		return nil
	},
}
