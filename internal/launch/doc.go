// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package launch starts the detached OS process implied by a command. It
// reports whether the OS accepted the launch and nothing about the child's
// eventual exit; there is no supervision and no cancellation.
package launch
