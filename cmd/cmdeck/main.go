// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the cmdeck command-line interface (CLI) entry point.
package main

import (
	"context"
	"os"

	"github.com/cmdeck/cmdeck/cmd"
	"github.com/cmdeck/cmdeck/internal/ctxlog"
	"github.com/cmdeck/cmdeck/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)
	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := cmd.RootCmd.Run(ctx, os.Args)
	if err != nil {
		ctxlog.Logger(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}

	os.Exit(0)
}
