// Copyright (c) cmdeck authors 2026. All rights reserved.
// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chunkMsg carries one relayed text chunk into the bubbletea loop.
type chunkMsg struct {
	text  string
	isErr bool
}

// Styles contains the styling for the console view.
type Styles struct {
	Title  lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles creates the default styling for the console view.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")),
		Output: lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
	}
}

// Model is the console view state: a viewport over the relayed output with a
// bounded scrollback.
type Model struct {
	title    string
	viewport viewport.Model
	lines    []string
	maxLines int
	ready    bool
	styles   *Styles
}

// NewModel creates a console model for one followed execution.
func NewModel(title string, maxLines int) *Model {
	return &Model{
		title:    title,
		maxLines: maxLines,
		styles:   NewStyles(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		headerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight
		}

		m.refresh()

	case chunkMsg:
		m.append(msg)
	}

	var cmd tea.Cmd

	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "starting console..."
	}

	header := m.styles.Title.Render(fmt.Sprintf("cmdeck: %s", m.title))
	help := m.styles.Help.Render("q: close console (the process keeps running)")

	return header + "\n" + m.viewport.View() + "\n" + help
}

// append adds a chunk to the scrollback, trimming to maxLines, and keeps the
// viewport pinned to the bottom.
func (m *Model) append(msg chunkMsg) {
	style := m.styles.Output
	if msg.isErr {
		style = m.styles.Error
	}

	for _, line := range strings.Split(strings.TrimRight(msg.text, "\n"), "\n") {
		m.lines = append(m.lines, style.Render(line))
	}

	if len(m.lines) > m.maxLines {
		m.lines = m.lines[len(m.lines)-m.maxLines:]
	}

	m.refresh()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}

	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}
