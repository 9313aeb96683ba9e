package main

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) model {
	t.Helper()
	cfg := &Config{}
	applyDefaults(cfg)
	m := newModel(newSession(cfg, log.New(io.Discard)), cfg)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(model)
}

func submitLine(t *testing.T, m model, line string) (model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model), cmd
}

func TestModelEvaluatesInput(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.ready)

	m, _ = submitLine(t, m, "1 + 2 * 3")
	assert.Equal(t, "7", m.lines[len(m.lines)-1])
	assert.Equal(t, "ok", m.status)
	assert.Empty(t, m.input.Value())

	m, _ = submitLine(t, m, "1 DIV 0")
	assert.Equal(t, "error", m.status)
	assert.Contains(t, m.lines[len(m.lines)-1], "division by zero")
}

func TestModelContinuesPrograms(t *testing.T) {
	m := newTestModel(t)
	m, _ = submitLine(t, m, ":run PROGRAM p;")
	assert.Equal(t, "continuing program", m.status)
	assert.Equal(t, contPrompt, m.input.Prompt)

	m, _ = submitLine(t, m, "VAR a: INTEGER;")
	m, _ = submitLine(t, m, "BEGIN a := 4 END.")
	assert.Equal(t, "ok", m.status)
	assert.Equal(t, "a: INTEGER = 4", m.lines[len(m.lines)-1])
	assert.Nil(t, m.pending)
	assert.Equal(t, []string{":run PROGRAM p; VAR a: INTEGER; BEGIN a := 4 END."}, m.history)
}

func TestModelHistoryAndQuit(t *testing.T) {
	m := newTestModel(t)
	m, _ = submitLine(t, m, "1")
	m, _ = submitLine(t, m, "2")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	assert.Equal(t, "2", m.input.Value())
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(model)
	assert.Equal(t, "1", m.input.Value())
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(model)
	assert.Empty(t, m.input.Value())

	_, cmd := submitLine(t, m, "exit")
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)

	assert.Contains(t, m.View(), "esc to quit")
}
