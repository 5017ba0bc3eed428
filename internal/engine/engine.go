// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/ctxlog"
	"github.com/cmdeck/cmdeck/internal/launch"
	"github.com/cmdeck/cmdeck/internal/registry"
	"github.com/cmdeck/cmdeck/internal/relay"
)

// Options tunes engine behaviour from the settings document.
type Options struct {
	// EchoCommands emits the literal command lines to the output sink before
	// each launch.
	EchoCommands bool
}

// Engine is the public execution surface: it resolves a command by index,
// launches it detached and, when sinks are registered, wires the stream
// relay. One engine is constructed per process and injected into consumers.
type Engine struct {
	registry *registry.Registry
	launcher *launch.Launcher
	opts     Options

	mu     sync.RWMutex
	out    relay.Sink
	errOut relay.Sink
}

// New creates an engine over reg using launcher.
func New(reg *registry.Registry, launcher *launch.Launcher, opts Options) *Engine {
	return &Engine{
		registry: reg,
		launcher: launcher,
		opts:     opts,
	}
}

// SetOutputSink installs the sink receiving stdout chunks. A nil sink clears
// it; re-registering replaces the previous one. Drain tasks already in
// flight keep the sink reference they started with.
func (e *Engine) SetOutputSink(s relay.Sink) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.out = s
}

// SetErrorSink installs the sink receiving stderr chunks, with the same
// replacement semantics as SetOutputSink.
func (e *Engine) SetErrorSink(s relay.Sink) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.errOut = s
}

// ExecuteAt launches the command at index. It returns once the OS has
// accepted (or rejected) the launch; the child's eventual exit is never
// observed. With at least one sink registered the child's streams are
// captured and drained concurrently; otherwise they are inherited.
func (e *Engine) ExecuteAt(ctx context.Context, index int) error {
	cmd, err := e.registry.Get(index)
	if err != nil {
		return err
	}

	// The kind is a closed set for internally constructed values; only a
	// hand-edited document can produce anything else.
	switch cmd.Kind {
	case command.KindSingle, command.KindMulti, command.KindScript:
	default:
		return fmt.Errorf("%w: command %q at index %d", command.ErrUnknownKind, cmd.Name, index)
	}

	e.mu.RLock()
	out, errOut := e.out, e.errOut
	e.mu.RUnlock()

	capture := out != nil || errOut != nil

	r := relay.New(out, errOut)
	if e.opts.EchoCommands {
		r.Echo(cmd)
	}

	l, err := e.launcher.Start(ctx, cmd, capture)
	if err != nil {
		ctxlog.Error(ctx, "launch failed", "name", cmd.Name, "index", index, "error", err)
		return err
	}

	if capture {
		r.Follow(ctx, l)
	}

	ctxlog.Debug(ctx, "detached", "name", cmd.Name, "pid", l.Pid)

	return nil
}
