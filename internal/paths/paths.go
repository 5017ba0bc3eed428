// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package paths resolves the per-user locations where cmdeck keeps its state.
package paths

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	appDirName       = "cmdeck"
	commandsFileName = "commands.json"
	settingsFileName = "config.yaml"
)

// ErrNoConfigDir is returned when the platform user configuration directory
// cannot be determined.
var ErrNoConfigDir = errors.New("could not determine user config directory")

// userConfigDir is a variable so tests can stub it.
var userConfigDir = os.UserConfigDir

// DataDir returns the directory holding the commands document and settings.
// On Linux this is ~/.config/cmdeck, on macOS ~/Library/Application
// Support/cmdeck and on Windows %AppData%\cmdeck.
func DataDir() (string, error) {
	base, err := userConfigDir()
	if err != nil {
		return "", errors.Join(ErrNoConfigDir, err)
	}

	return filepath.Join(base, appDirName), nil
}

// CommandsFile returns the full path of the persisted commands document.
func CommandsFile() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, commandsFileName), nil
}

// SettingsFile returns the full path of the optional settings document.
func SettingsFile() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, settingsFileName), nil
}
