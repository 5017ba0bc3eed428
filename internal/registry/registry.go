// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/cmdeck/cmdeck/internal/command"
	"github.com/cmdeck/cmdeck/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrIndexOutOfRange is returned when an index-addressed operation is
	// given a position outside [0, len).
	ErrIndexOutOfRange = errors.New("command index out of range")
	// ErrPersistenceFailure is returned when the commands document could not
	// be written. The in-memory mutation stays applied; there is no rollback.
	ErrPersistenceFailure = errors.New("failed to persist commands document")
	// ErrLoadRecovered is returned by New when the commands document was
	// structurally invalid and the registry recovered by starting empty.
	ErrLoadRecovered = errors.New("commands document invalid, recovered with empty collection")
)

const documentMode = 0o644

// document is the persisted JSON form: one object with an ordered commands array.
type document struct {
	Commands []command.Command `json:"commands"`
}

// Registry is the ordered, index-addressed collection of commands and the
// sole writer of its persisted document. Callers are expected to serialize
// mutations; there is no internal locking.
type Registry struct {
	fs       afero.Fs
	path     string
	commands []command.Command
}

// New constructs a registry over the document at path, loading it eagerly.
// A missing document is not an error. A malformed document yields a usable
// empty registry together with ErrLoadRecovered, so the operator sees the
// recovery rather than silent data loss.
func New(ctx context.Context, fs afero.Fs, path string) (*Registry, error) {
	r := &Registry{
		fs:   fs,
		path: path,
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return r, errors.Join(ErrLoadRecovered, err)
	}

	if !exists {
		ctxlog.Debug(ctx, "no commands document found, starting fresh", "path", path)
		return r, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return r, errors.Join(ErrLoadRecovered, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		ctxlog.Error(ctx, "commands document is malformed", "path", path, "error", err)
		return r, errors.Join(ErrLoadRecovered, err)
	}

	r.commands = doc.Commands
	ctxlog.Debug(ctx, "loaded commands", "path", path, "count", len(r.commands))

	return r, nil
}

// Len returns the number of commands in the deck.
func (r *Registry) Len() int {
	return len(r.commands)
}

// List returns an independent snapshot of the ordered collection.
func (r *Registry) List() []command.Command {
	return slices.Clone(r.commands)
}

// Get returns the command at index i.
func (r *Registry) Get(i int) (command.Command, error) {
	if !r.inRange(i) {
		return command.Command{}, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(r.commands))
	}

	return r.commands[i], nil
}

// Add appends cmd and persists the document before returning.
func (r *Registry) Add(ctx context.Context, cmd command.Command) error {
	r.commands = append(r.commands, cmd)
	ctxlog.Info(ctx, "added command", "name", cmd.Name, "index", len(r.commands)-1)

	return r.save(ctx)
}

// Update replaces the command at index i and persists. Out-of-range indices
// leave the registry and the document untouched.
func (r *Registry) Update(ctx context.Context, i int, cmd command.Command) error {
	if !r.inRange(i) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(r.commands))
	}

	r.commands[i] = cmd
	ctxlog.Info(ctx, "updated command", "name", cmd.Name, "index", i)

	return r.save(ctx)
}

// Delete removes the command at index i, shifting subsequent indices down,
// and persists.
func (r *Registry) Delete(ctx context.Context, i int) error {
	if !r.inRange(i) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(r.commands))
	}

	name := r.commands[i].Name
	r.commands = slices.Delete(r.commands, i, i+1)
	ctxlog.Info(ctx, "deleted command", "name", name, "index", i)

	return r.save(ctx)
}

// Move removes the command at from and re-inserts it at to, where to is
// interpreted against the sequence after removal (pop-then-insert). Both
// indices are validated against the pre-operation length.
func (r *Registry) Move(ctx context.Context, from, to int) error {
	if !r.inRange(from) || !r.inRange(to) {
		return fmt.Errorf("%w: move %d -> %d (len %d)", ErrIndexOutOfRange, from, to, len(r.commands))
	}

	cmd := r.commands[from]
	r.commands = slices.Delete(r.commands, from, from+1)
	r.commands = slices.Insert(r.commands, to, cmd)
	ctxlog.Info(ctx, "moved command", "name", cmd.Name, "from", from, "to", to)

	return r.save(ctx)
}

// AddAll appends every command in cmds, persisting the document once. It is
// used by bulk import so a fetched deck lands in a single write.
func (r *Registry) AddAll(ctx context.Context, cmds []command.Command) error {
	if len(cmds) == 0 {
		return nil
	}

	r.commands = append(r.commands, cmds...)
	ctxlog.Info(ctx, "imported commands", "count", len(cmds), "total", len(r.commands))

	return r.save(ctx)
}

// ReplaceAll swaps the entire collection for cmds and persists the document
// once. Import with replacement uses it so a fetched deck lands atomically
// from the caller's point of view.
func (r *Registry) ReplaceAll(ctx context.Context, cmds []command.Command) error {
	r.commands = slices.Clone(cmds)
	ctxlog.Info(ctx, "replaced commands", "count", len(r.commands))

	return r.save(ctx)
}

// Path returns the location of the persisted document.
func (r *Registry) Path() string {
	return r.path
}

// Document renders the current collection in its persisted JSON form.
func (r *Registry) Document() ([]byte, error) {
	doc := document{Commands: r.commands}
	if doc.Commands == nil {
		doc.Commands = []command.Command{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode commands document: %w", err)
	}

	return data, nil
}

// DecodeDocument parses a commands document held in data, returning its
// ordered commands. Used by import to read a fetched document without
// touching this registry's own storage.
func DecodeDocument(data []byte) ([]command.Command, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode commands document: %w", err)
	}

	return doc.Commands, nil
}

func (r *Registry) inRange(i int) bool {
	return i >= 0 && i < len(r.commands)
}

// save writes the whole document synchronously. Mutations never return before
// the save attempt completes, so in-memory and persisted state only diverge
// when the write itself fails.
func (r *Registry) save(ctx context.Context) error {
	data, err := r.Document()
	if err != nil {
		return errors.Join(ErrPersistenceFailure, err)
	}

	if err := r.fs.MkdirAll(filepath.Dir(r.path), os.ModePerm); err != nil {
		return errors.Join(ErrPersistenceFailure, err)
	}

	if err := afero.WriteFile(r.fs, r.path, data, documentMode); err != nil {
		ctxlog.Error(ctx, "failed to write commands document", "path", r.path, "error", err)
		return errors.Join(ErrPersistenceFailure, err)
	}

	ctxlog.Debug(ctx, "saved commands document", "path", r.path, "count", len(r.commands))

	return nil
}
