// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package relay

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/launch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// recordingSink collects chunks safely across goroutines.
type recordingSink struct {
	mu     sync.Mutex
	chunks []string
}

func (s *recordingSink) Write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chunks = append(s.chunks, text)
}

func (s *recordingSink) joined() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return strings.Join(s.chunks, "")
}

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

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("relay did not finish draining")
	}
}

func TestStripEscapes(t *testing.T) {
	in := "\x1b[31mred\x1b[0m plain \x1bMescape"
	assert.Equal(t, "red plain escape", StripEscapes(in))
}

func TestStripEscapes_PlainTextUntouched(t *testing.T) {
	assert.Equal(t, "no escapes here\n", StripEscapes("no escapes here\n"))
}

func TestEcho_OneLinePerMultiCommand(t *testing.T) {
	sink := &recordingSink{}
	r := New(sink, nil)

	r.Echo(mustCommand(t, "steps", command.KindMulti, "echo one\n\necho two"))

	assert.Equal(t, []string{"$ echo one\n", "$ echo two\n"}, sink.chunks)
}

func TestEcho_NilOutputSinkIsNoop(t *testing.T) {
	r := New(nil, &recordingSink{})
	r.Echo(mustCommand(t, "quiet", command.KindSingle, "true"))
}

func TestFollow_RelaysBothStreams(t *testing.T) {
	skipOnWindows(t)

	out := &recordingSink{}
	errOut := &recordingSink{}

	launcher := &launch.Launcher{}
	l, err := launcher.Start(context.Background(),
		mustCommand(t, "both", command.KindSingle, "echo to-out; echo to-err 1>&2"), true)
	require.NoError(t, err)

	done := New(out, errOut).Follow(context.Background(), l)
	waitDone(t, done)

	assert.Contains(t, out.joined(), "to-out")
	assert.Contains(t, errOut.joined(), "to-err")
	assert.NotContains(t, out.joined(), "to-err")
}

func TestFollow_StripsEscapesBeforeDelivery(t *testing.T) {
	skipOnWindows(t)

	out := &recordingSink{}

	launcher := &launch.Launcher{}
	l, err := launcher.Start(context.Background(),
		mustCommand(t, "color", command.KindSingle, `printf '\033[32mgreen\033[0m\n'`), true)
	require.NoError(t, err)

	done := New(out, nil).Follow(context.Background(), l)
	waitDone(t, done)

	assert.Contains(t, out.joined(), "green")
	assert.NotContains(t, out.joined(), "\x1b")
}

func TestFollow_PerStreamOrderPreserved(t *testing.T) {
	skipOnWindows(t)

	out := &recordingSink{}

	launcher := &launch.Launcher{}
	l, err := launcher.Start(context.Background(),
		mustCommand(t, "seq", command.KindSingle, "for i in 1 2 3 4 5; do echo $i; done"), true)
	require.NoError(t, err)

	done := New(out, nil).Follow(context.Background(), l)
	waitDone(t, done)

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, strings.Fields(out.joined()))
}

// failingReader yields its data once, then fails every subsequent read.
type failingReader struct {
	data []byte
	err  error
	sent bool
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.sent && len(r.data) > 0 {
		r.sent = true
		return copy(p, r.data), nil
	}

	return 0, r.err
}

func TestDrain_ReadErrorDeliversPartialChunkAndSyntheticLine(t *testing.T) {
	sink := &recordingSink{}
	stream := &failingReader{data: []byte("partial output"), err: errors.New("pipe torn down")}

	drain(context.Background(), stream, sink)

	// The bytes read before the failure still reach the sink, followed by a
	// synthetic line describing the failure, and nothing else.
	assert.Equal(t, []string{"partial output", "[stream error: pipe torn down]\n"}, sink.chunks)
}

func TestDrain_ReadErrorWithNilSinkIsQuiet(t *testing.T) {
	stream := &failingReader{data: []byte("ignored"), err: errors.New("pipe torn down")}

	drain(context.Background(), stream, nil)
}

func TestFollow_NilSinksStillDrainAndReap(t *testing.T) {
	skipOnWindows(t)

	launcher := &launch.Launcher{}
	l, err := launcher.Start(context.Background(),
		mustCommand(t, "noisy", command.KindSingle, "echo ignored; echo ignored 1>&2"), true)
	require.NoError(t, err)

	done := New(nil, nil).Follow(context.Background(), l)
	waitDone(t, done)
}
