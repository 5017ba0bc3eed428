// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package tui is the follow console: a bubbletea viewport that renders
// relayed output live while the launched process stays detached.
package tui
