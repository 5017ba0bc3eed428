// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package appstate

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithFs_FreshState(t *testing.T) {
	app, err := NewWithFs(context.Background(), "/deck/commands.json", afero.NewMemMapFs())
	require.NoError(t, err)

	assert.Equal(t, 0, app.Registry.Len())
	assert.NotNil(t, app.Engine)
	assert.True(t, app.Settings.EchoCommands)
}

func TestNewWithFs_RecoversFromMalformedDocument(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/deck/commands.json", []byte("{nope"), 0o644))

	// A broken document must not make the CLI unusable.
	app, err := NewWithFs(context.Background(), "/deck/commands.json", fs)
	require.NoError(t, err)
	assert.Equal(t, 0, app.Registry.Len())
}

func TestNewWithFs_LoadsExistingDeck(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := `{"commands": [{"name": "build", "command_type": "single", "content": "make", "description": ""}]}`
	require.NoError(t, afero.WriteFile(fs, "/deck/commands.json", []byte(doc), 0o644))

	app, err := NewWithFs(context.Background(), "/deck/commands.json", fs)
	require.NoError(t, err)
	require.Equal(t, 1, app.Registry.Len())

	c, err := app.Registry.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "build", c.Name)
}
