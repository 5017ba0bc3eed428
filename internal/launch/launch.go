// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package launch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/ctxlog"
)

var (
	// ErrEmptyCommand is returned when a multi command has no non-blank lines.
	ErrEmptyCommand = errors.New("no commands to execute")
	// ErrScriptNotFound is returned when a script command's path does not
	// exist at launch time. No process is started.
	ErrScriptNotFound = errors.New("script file does not exist")
	// ErrLaunchFailure is returned when the operating system rejected the
	// process launch.
	ErrLaunchFailure = errors.New("could not start process")
)

// Launcher turns a command into a detached OS process. Launch success means
// the OS accepted the process; the launcher never waits for completion.
type Launcher struct {
	// Shell optionally overrides the interpreter used for shell bodies.
	// Empty selects the platform default.
	Shell string
}

// Launch is a live, already-started process. When the streams were captured
// Stdout and Stderr are the read ends of the child's pipes; otherwise both
// are nil and the child inherited the parent's streams.
type Launch struct {
	Pid    int
	Stdout io.ReadCloser
	Stderr io.ReadCloser

	cmd *exec.Cmd
}

// Start launches cmd detached from the caller's session. With capture set,
// the child's stdout and stderr are piped back for draining; otherwise they
// are inherited so interactive programs keep their terminal. Stdin is always
// the null device.
func (l *Launcher) Start(ctx context.Context, cmd command.Command, capture bool) (*Launch, error) {
	body, err := shellBody(cmd)
	if err != nil {
		return nil, err
	}

	shell, args := shellInvocation(body, l.Shell)

	c := exec.Command(shell, args...)
	c.SysProcAttr = detachedSysProcAttr()

	launch := &Launch{cmd: c}

	if capture {
		stdout, err := c.StdoutPipe()
		if err != nil {
			return nil, errors.Join(ErrLaunchFailure, err)
		}

		stderr, err := c.StderrPipe()
		if err != nil {
			return nil, errors.Join(ErrLaunchFailure, err)
		}

		launch.Stdout = stdout
		launch.Stderr = stderr
	} else {
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
	}

	if err := c.Start(); err != nil {
		return nil, errors.Join(ErrLaunchFailure, err)
	}

	launch.Pid = c.Process.Pid
	ctxlog.Info(ctx, "process started", "name", cmd.Name, "kind", cmd.Kind.String(), "pid", launch.Pid)

	if !capture {
		// Reap in the background so the child does not linger as a zombie.
		// The exit status is deliberately not observed.
		go func() { _ = c.Wait() }()
	}

	return launch, nil
}

// Wait reaps the child once its pipes have been drained. The exit status is
// discarded; the engine has no terminal state beyond Detached.
func (l *Launch) Wait() {
	_ = l.cmd.Wait()
}

// shellBody resolves the shell text implied by the command's kind.
func shellBody(cmd command.Command) (string, error) {
	switch cmd.Kind {
	case command.KindSingle:
		return cmd.Content, nil

	case command.KindMulti:
		lines := cmd.Lines()
		if len(lines) == 0 {
			return "", fmt.Errorf("%w: %q", ErrEmptyCommand, cmd.Name)
		}

		// One interpreter invocation for all lines so cd and exported
		// variables carry across them.
		return strings.Join(lines, "\n"), nil

	case command.KindScript:
		if _, err := os.Stat(cmd.Content); err != nil {
			return "", fmt.Errorf("%w: %s", ErrScriptNotFound, cmd.Content)
		}

		// Shell-interpreted so shebang lines and extension associations resolve.
		return cmd.Content, nil

	default:
		return "", fmt.Errorf("%w: %d", command.ErrUnknownKind, cmd.Kind)
	}
}
