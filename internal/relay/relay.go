// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package relay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"

	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/ctxlog"
	"github.com/cmdeck/cmdeck/internal/launch"
)

// ansiEscape matches ESC followed by a CSI sequence or a single-character
// escape, the same pattern the terminal view strips.
var ansiEscape = regexp.MustCompile(`\x1b(?:[@-Z\\\]^_]|\[[0-?]*[ -/]*[@-~])`)

// Sink receives one chunk of plain text from a drained stream. It is invoked
// from the drain goroutine's own concurrency context; consumers marshal
// delivery to their own context if they need to.
type Sink interface {
	Write(text string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(text string)

// Write implements Sink.
func (f SinkFunc) Write(text string) {
	f(text)
}

// StripEscapes removes terminal escape sequences from s, leaving the
// surrounding text intact.
func StripEscapes(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}

// Relay drains a launched process's captured streams and forwards each chunk
// to its sink. Either sink may be nil, in which case that stream is drained
// and discarded so the child never blocks on a full pipe.
type Relay struct {
	out    Sink
	errOut Sink
}

// New creates a relay delivering stdout chunks to out and stderr chunks to
// errOut.
func New(out, errOut Sink) *Relay {
	return &Relay{out: out, errOut: errOut}
}

// Echo emits a synthetic line to the output sink for each command line about
// to run, before the process is launched.
func (r *Relay) Echo(cmd command.Command) {
	if r.out == nil {
		return
	}

	for _, line := range cmd.Lines() {
		r.out.Write(fmt.Sprintf("$ %s\n", line))
	}
}

// Follow starts one drain goroutine per captured stream and a third that
// reaps the child once both streams hit end-of-file. The returned channel is
// closed when everything has finished; callers are free to ignore it.
func (r *Relay) Follow(ctx context.Context, l *launch.Launch) <-chan struct{} {
	done := make(chan struct{})

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()
		drain(ctx, l.Stdout, r.out)
	}()

	go func() {
		defer wg.Done()
		drain(ctx, l.Stderr, r.errOut)
	}()

	go func() {
		wg.Wait()
		l.Wait()
		close(done)
	}()

	return done
}

// drain copies one stream to its sink chunk by chunk until end-of-file.
// Chunks are delivered in the order produced. A mid-stream I/O error is
// reported to the sink as a synthetic line and ends the drain; it never
// propagates to the other stream or to the launch caller.
func drain(ctx context.Context, stream io.Reader, sink Sink) {
	reader := bufio.NewReader(stream)

	for {
		chunk, err := reader.ReadString('\n')
		if chunk != "" {
			deliver(sink, chunk)
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				ctxlog.Warn(ctx, "stream drain failed", "error", err)
				deliver(sink, fmt.Sprintf("[stream error: %v]\n", err))
			}

			return
		}
	}
}

// deliver strips escape sequences and forces valid UTF-8 before handing the
// chunk to the sink. Undecodable bytes are replaced, never fatal.
func deliver(sink Sink, chunk string) {
	if sink == nil {
		return
	}

	chunk = StripEscapes(chunk)
	chunk = strings.ToValidUTF8(chunk, "�")

	sink.Write(chunk)
}
