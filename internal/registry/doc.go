// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package registry owns the ordered, persisted collection of commands.
// Commands are addressed purely by position; every mutation synchronously
// rewrites the JSON document before returning.
package registry
