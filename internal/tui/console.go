// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cmdeck/cmdeck/internal/relay"
)

// Console runs the bubbletea program and bridges relay sinks into it. Sink
// callbacks arrive on drain goroutines; program.Send is safe to call from
// them, which is exactly the marshalling the sink contract asks consumers
// to do.
type Console struct {
	program *tea.Program
	closed  bool
	mu      sync.RWMutex
}

// NewConsole creates a console view titled after the command being followed.
func NewConsole(title string, maxLines int) *Console {
	model := NewModel(title, maxLines)

	return &Console{
		program: tea.NewProgram(model, tea.WithAltScreen()),
	}
}

// OutputSink returns the sink receiving stdout chunks.
func (c *Console) OutputSink() relay.Sink {
	return relay.SinkFunc(func(text string) {
		c.send(chunkMsg{text: text})
	})
}

// ErrorSink returns the sink receiving stderr chunks.
func (c *Console) ErrorSink() relay.Sink {
	return relay.SinkFunc(func(text string) {
		c.send(chunkMsg{text: text, isErr: true})
	})
}

// Run blocks until the operator closes the console. The followed process is
// detached and keeps running; only the view goes away.
func (c *Console) Run() error {
	_, err := c.program.Run()

	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	return err //nolint:wrapcheck
}

// Quit asks the console to exit without operator input. Used when the launch
// itself fails and there is nothing to follow.
func (c *Console) Quit() {
	c.program.Quit()
}

// send delivers a message unless the program has already finished. Chunks
// arriving after close are dropped; the drain tasks still run to EOF.
func (c *Console) send(msg tea.Msg) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return
	}

	c.program.Send(msg)
}
