package main

import (
	"bytes"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type model struct {
	sess     *session
	prompt   string
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int
	status   string
	lines    []string
	pending  []string
	history  []string
	histIdx  int
}

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
)

func newModel(sess *session, cfg *Config) model {
	ti := textinput.New()
	ti.Prompt = cfg.REPL.Prompt
	ti.CharLimit = 4096
	ti.Placeholder = "1 + 2 * 3, or :help"
	ti.Focus()
	return model{
		sess:   sess,
		prompt: cfg.REPL.Prompt,
		input:  ti,
		status: "ready",
	}
}

func runTUI(sess *session, cfg *Config) error {
	p := tea.NewProgram(newModel(sess, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vh := max(msg.Height-3, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vh
		}
		m.input.Width = max(msg.Width-len(m.prompt)-1, 10)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyUp:
			m.recall(-1)
			return m, nil
		case tea.KeyDown:
			m.recall(1)
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.SetValue("")
	m.pending = append(m.pending, line)
	buf := strings.Join(m.pending, "\n")
	m.lines = append(m.lines, echoStyle.Render(m.currentPrompt()+line))
	if needsMore(buf) {
		m.input.Prompt = contPrompt
		m.status = "continuing program"
		m.refresh()
		return m, nil
	}
	m.pending = nil
	m.input.Prompt = m.prompt
	if strings.TrimSpace(buf) != "" {
		m.history = append(m.history, strings.ReplaceAll(buf, "\n", " "))
	}
	m.histIdx = len(m.history)

	var out bytes.Buffer
	err := m.sess.handle(&out, buf)
	if errors.Is(err, errQuit) {
		return m, tea.Quit
	}
	if s := strings.TrimRight(out.String(), "\n"); s != "" {
		m.lines = append(m.lines, s)
	}
	if err != nil {
		m.lines = append(m.lines, errStyle.Render(err.Error()))
		m.status = "error"
	} else {
		m.status = "ok"
	}
	m.refresh()
	return m, nil
}

func (m *model) currentPrompt() string {
	if len(m.pending) > 1 {
		return contPrompt
	}
	return m.prompt
}

// recall steps through submitted inputs; dir is -1 for older, 1 for newer.
func (m *model) recall(dir int) {
	if len(m.history) == 0 {
		return
	}
	m.histIdx = min(max(m.histIdx+dir, 0), len(m.history))
	if m.histIdx == len(m.history) {
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histIdx])
	m.input.CursorEnd()
}

func (m *model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.lines, "\n"))
	m.viewport.GotoBottom()
}

func (m model) View() string {
	if !m.ready {
		return "initializing..."
	}
	return strings.Join([]string{
		m.viewport.View(),
		m.input.View(),
		statusStyle.Render("minipas | " + m.status + " | esc to quit"),
	}, "\n")
}
