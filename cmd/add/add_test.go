// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package add

import (
	"bytes"
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedPrompter answers prompts from a fixed queue; an exhausted queue
// reads as end of input.
type scriptedPrompter struct {
	responses []string
	history   []string
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.responses) == 0 {
		return "", io.EOF
	}

	r := p.responses[0]
	p.responses = p.responses[1:]

	return r, nil
}

func (p *scriptedPrompter) AppendHistory(item string) {
	p.history = append(p.history, item)
}

type abortingPrompter struct{}

func (abortingPrompter) Prompt(string) (string, error) { return "", liner.ErrPromptAborted }
func (abortingPrompter) AppendHistory(string)          {}

func TestPromptDefinition_SingleCommand(t *testing.T) {
	var buf bytes.Buffer

	p := &scriptedPrompter{responses: []string{"backup", "", "nightly dump", "pg_dump mydb"}}

	name, kindStr, description, lines, err := promptDefinition(&buf, p)
	require.NoError(t, err)

	assert.Equal(t, "backup", name)
	assert.Equal(t, "single", kindStr, "blank type answer defaults to single")
	assert.Equal(t, "nightly dump", description)
	assert.Equal(t, []string{"pg_dump mydb"}, lines)
	assert.Empty(t, buf.String(), "single commands need no extra instructions")
}

func TestPromptDefinition_MultiReadsUntilBlankLine(t *testing.T) {
	var buf bytes.Buffer

	p := &scriptedPrompter{responses: []string{"release", "multi", "", "make build", "make push", ""}}

	name, kindStr, _, lines, err := promptDefinition(&buf, p)
	require.NoError(t, err)

	assert.Equal(t, "release", name)
	assert.Equal(t, "multi", kindStr)
	assert.Equal(t, []string{"make build", "make push"}, lines)
	assert.Equal(t, []string{"make build", "make push"}, p.history)

	// Instructions land on the command's writer, not process stdout.
	assert.Contains(t, buf.String(), "empty line finishes")
}

func TestPromptDefinition_AbortPropagates(t *testing.T) {
	var buf bytes.Buffer

	_, _, _, _, err := promptDefinition(&buf, abortingPrompter{})
	assert.ErrorIs(t, err, liner.ErrPromptAborted)
}

func TestPromptDefinition_ReadFailureWrapped(t *testing.T) {
	var buf bytes.Buffer

	// The queue runs out mid-definition, as when the terminal goes away.
	p := &scriptedPrompter{responses: []string{"backup"}}

	_, _, _, _, err := promptDefinition(&buf, p)
	assert.ErrorIs(t, err, ErrPromptFailed)
}
