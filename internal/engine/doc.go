// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package engine composes the registry, launcher and relay into the
// execution surface consumed by the CLI and the follow console. Per
// execution the lifecycle is Requested, Launched, optionally Streaming,
// then Detached; there is no observable Completed or Failed state.
package engine
