// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

// Package command defines the persisted command value type and its kind tag.
package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned when a persisted command carries a kind
	// outside the closed set. Internally constructed values cannot produce it.
	ErrUnknownKind = errors.New("unknown command kind")
	// ErrEmptyName is returned when a command is created with a blank name.
	ErrEmptyName = errors.New("command name must not be empty")
)

// Kind selects the execution strategy for a command's content.
type Kind int

const (
	// KindSingle runs the content as one shell command line.
	KindSingle Kind = iota
	// KindMulti runs the content as a newline-delimited shell script body.
	KindMulti
	// KindScript treats the content as a filesystem path to an executable.
	KindScript

	// KindInvalid marks a kind loaded from a hand-edited document that is
	// outside the closed set. It is rejected at dispatch, not at load.
	KindInvalid Kind = -1
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindMulti:
		return "multi"
	case KindScript:
		return "script"
	default:
		return "unknown"
	}
}

// ParseKind converts the persisted wire form (single|multi|script) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "single":
		return KindSingle, nil
	case "multi":
		return KindMulti, nil
	case "script":
		return KindScript, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Command is an immutable definition of one execution unit. The Kind fully
// determines how Content is interpreted.
type Command struct {
	Name        string
	Kind        Kind
	Content     string
	Description string
}

// New creates a Command, rejecting blank names. Name uniqueness is not
// enforced anywhere; the deck addresses commands by position.
func New(name string, kind Kind, content, description string) (Command, error) {
	if strings.TrimSpace(name) == "" {
		return Command{}, ErrEmptyName
	}

	return Command{
		Name:        name,
		Kind:        kind,
		Content:     content,
		Description: description,
	}, nil
}

// Lines returns the non-blank lines of a multi command's content, in order.
// For other kinds it returns the content as a single element.
func (c Command) Lines() []string {
	if c.Kind != KindMulti {
		return []string{c.Content}
	}

	var lines []string

	for _, l := range strings.Split(c.Content, "\n") {
		if strings.TrimSpace(l) == "" {
			continue
		}

		lines = append(lines, strings.TrimSpace(l))
	}

	return lines
}

// wire is the JSON document form of a command.
type wire struct {
	Name        string `json:"name"`
	CommandType string `json:"command_type"`
	Content     string `json:"content"`
	Description string `json:"description"`
}

// MarshalJSON implements json.Marshaler using the document field names.
func (c Command) MarshalJSON() ([]byte, error) {
	return json.Marshal(wire{ //nolint:wrapcheck
		Name:        c.Name,
		CommandType: c.Kind.String(),
		Content:     c.Content,
		Description: c.Description,
	})
}

// UnmarshalJSON implements json.Unmarshaler. An unknown command_type does not
// fail the load; it yields KindInvalid so the rest of the document stays
// usable and the bad entry is rejected when it is dispatched.
func (c *Command) UnmarshalJSON(data []byte) error {
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err //nolint:wrapcheck
	}

	kind, err := ParseKind(w.CommandType)
	if err != nil {
		kind = KindInvalid
	}

	c.Name = w.Name
	c.Kind = kind
	c.Content = w.Content
	c.Description = w.Description

	return nil
}
