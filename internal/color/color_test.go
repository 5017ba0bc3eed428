// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize_DisabledReturnsInput(t *testing.T) {
	old := enabled
	defer func() { enabled = old }()

	enabled = false
	assert.Equal(t, "hello", Colorize("hello", FgRed))
}

func TestColorize_EnabledWrapsWithCodes(t *testing.T) {
	old := enabled
	defer func() { enabled = old }()

	enabled = true
	assert.Equal(t, "\033[31mhello\033[0m", Colorize("hello", FgRed))
	assert.Equal(t, "\033[31;97mhello\033[0m", Colorize("hello", FgRed, FgHiWhite))
}
