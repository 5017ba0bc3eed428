// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package settings loads the optional per-user configuration document that
// sits next to the commands document. A missing file yields the defaults.
package settings

import (
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

// ErrInvalidSettings is returned when the settings document cannot be parsed.
var ErrInvalidSettings = errors.New("invalid settings document")

const defaultConsoleLines = 5000

// Settings holds the tunables the operator may override.
type Settings struct {
	// Shell overrides the interpreter used for single and multi commands.
	// Empty means the platform default (sh -c / cmd /C).
	Shell string `yaml:"shell"`
	// EchoCommands controls whether the literal command lines are echoed to
	// the output sink before launch.
	EchoCommands bool `yaml:"echo_commands"`
	// ConsoleLines caps the scrollback kept by the follow console.
	ConsoleLines int `yaml:"console_lines"`
}

// Default returns the settings used when no document exists.
func Default() Settings {
	return Settings{
		EchoCommands: true,
		ConsoleLines: defaultConsoleLines,
	}
}

// Load reads the settings document at path. Absence of the file is not an
// error; a malformed file returns the defaults along with ErrInvalidSettings.
func Load(fs afero.Fs, path string) (Settings, error) {
	s := Default()

	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return s, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Default(), errors.Join(ErrInvalidSettings, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), errors.Join(ErrInvalidSettings, err)
	}

	if s.ConsoleLines <= 0 {
		s.ConsoleLines = defaultConsoleLines
	}

	return s, nil
}
