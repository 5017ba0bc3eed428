// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package relay concurrently drains a launched process's stdout and stderr
// and forwards plain-text chunks to registered sinks. Within one stream
// chunks arrive in order; between streams no ordering is guaranteed.
package relay
