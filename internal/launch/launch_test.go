// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package launch

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("test drives a POSIX shell")
	}
}

func mustCommand(t *testing.T, name string, kind command.Kind, content string) command.Command {
	t.Helper()

	cmd, err := command.New(name, kind, content, "")
	require.NoError(t, err)

	return cmd
}

func drainAndReap(t *testing.T, l *Launch) (string, string) {
	t.Helper()

	out, err := io.ReadAll(l.Stdout)
	require.NoError(t, err)

	errOut, err := io.ReadAll(l.Stderr)
	require.NoError(t, err)

	l.Wait()

	return string(out), string(errOut)
}

func TestStart_SuccessMeansLaunchNotExitCode(t *testing.T) {
	skipOnWindows(t)

	launcher := &Launcher{}
	l, err := launcher.Start(context.Background(), mustCommand(t, "fails", command.KindSingle, "exit 7"), true)

	require.NoError(t, err, "launch must succeed even when the child exits non-zero")
	assert.Positive(t, l.Pid)
	drainAndReap(t, l)
}

func TestStart_CapturesStdoutAndStderr(t *testing.T) {
	skipOnWindows(t)

	launcher := &Launcher{}
	l, err := launcher.Start(context.Background(),
		mustCommand(t, "both", command.KindSingle, "echo out; echo err 1>&2"), true)
	require.NoError(t, err)

	out, errOut := drainAndReap(t, l)
	assert.Contains(t, out, "out")
	assert.Contains(t, errOut, "err")
}

func TestStart_MultiRunsAsOneInterpreterInvocation(t *testing.T) {
	skipOnWindows(t)

	// cd in the first line must still be in effect for the second.
	launcher := &Launcher{}
	l, err := launcher.Start(context.Background(),
		mustCommand(t, "stateful", command.KindMulti, "cd /\npwd"), true)
	require.NoError(t, err)

	out, _ := drainAndReap(t, l)
	assert.Equal(t, "/", strings.TrimSpace(out))
}

func TestStart_MultiBlankLinesDiscarded(t *testing.T) {
	skipOnWindows(t)

	launcher := &Launcher{}
	l, err := launcher.Start(context.Background(),
		mustCommand(t, "gaps", command.KindMulti, "echo line1\n\necho line2"), true)
	require.NoError(t, err)

	out, _ := drainAndReap(t, l)
	assert.Equal(t, []string{"line1", "line2"}, strings.Fields(out))
}

func TestStart_MultiWithNoEffectiveLines(t *testing.T) {
	launcher := &Launcher{}
	_, err := launcher.Start(context.Background(),
		mustCommand(t, "empty", command.KindMulti, "\n   \n\t\n"), false)

	assert.ErrorIs(t, err, ErrEmptyCommand)
}

func TestStart_ScriptNotFound(t *testing.T) {
	launcher := &Launcher{}
	_, err := launcher.Start(context.Background(),
		mustCommand(t, "ghost", command.KindScript, "/no/such/script.sh"), false)

	assert.ErrorIs(t, err, ErrScriptNotFound)
}

func TestStart_ScriptRunsViaShebang(t *testing.T) {
	skipOnWindows(t)

	path := filepath.Join(t.TempDir(), "hello.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\necho from-script\n"), 0o755))

	launcher := &Launcher{}
	l, err := launcher.Start(context.Background(), mustCommand(t, "script", command.KindScript, path), true)
	require.NoError(t, err)

	out, _ := drainAndReap(t, l)
	assert.Contains(t, out, "from-script")
}

func TestStart_UnknownKindRejected(t *testing.T) {
	launcher := &Launcher{}
	_, err := launcher.Start(context.Background(),
		command.Command{Name: "weird", Kind: command.KindInvalid, Content: "true"}, false)

	assert.ErrorIs(t, err, command.ErrUnknownKind)
}

func TestStart_LaunchFailureSurfaced(t *testing.T) {
	launcher := &Launcher{Shell: "/no/such/shell"}
	_, err := launcher.Start(context.Background(),
		mustCommand(t, "noshell", command.KindSingle, "true"), false)

	assert.ErrorIs(t, err, ErrLaunchFailure)
}
