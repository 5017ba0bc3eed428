// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package settings

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsPath = "/data/cmdeck/config.yaml"

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(afero.NewMemMapFs(), settingsPath)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.True(t, s.EchoCommands)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, settingsPath, []byte("shell: zsh\necho_commands: false\nconsole_lines: 100\n"), 0o644))

	s, err := Load(fs, settingsPath)
	require.NoError(t, err)
	assert.Equal(t, "zsh", s.Shell)
	assert.False(t, s.EchoCommands)
	assert.Equal(t, 100, s.ConsoleLines)
}

func TestLoad_MalformedFileFallsBackToDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, settingsPath, []byte(":\n\t- not yaml"), 0o644))

	s, err := Load(fs, settingsPath)
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Equal(t, Default(), s)
}

func TestLoad_NonPositiveConsoleLinesReset(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, settingsPath, []byte("console_lines: -5\n"), 0o644))

	s, err := Load(fs, settingsPath)
	require.NoError(t, err)
	assert.Equal(t, Default().ConsoleLines, s.ConsoleLines)
}
