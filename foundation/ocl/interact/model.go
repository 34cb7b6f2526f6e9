// File: model.go
// Title: Session Model
// Description: bubbletea model of the interactive session: an input line,
//              a transcript viewport and a status bar.
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package interact

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const quitCommand = ":q"

// Model is the bubbletea model of a session
type Model struct {
	ctx     context.Context
	session *Session
	history *History

	// State
	width      int
	height     int
	ready      bool
	evaluating bool
	// historyPos is History.Len() while editing a new line
	historyPos int
	draft      string
	status     string
	lastText   string

	// Components
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	transcript []string
}

// NewModel creates the model of a session
func NewModel(ctx context.Context, session *Session, history *History) Model {
	if history == nil {
		history = NewHistory(0)
	}

	ti := textinput.New()
	ti.Prompt = PromptStyle.Render("» ")
	ti.Placeholder = "member, key or index…"
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	return Model{
		ctx:        ctx,
		session:    session,
		history:    history,
		historyPos: history.Len(),
		input:      ti,
		spinner:    sp,
		status:     variablesLine(session),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 4
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 4
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.evaluating {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case evaluatedMsg:
		m.evaluating = false
		m.record(msg.line, msg.output)
		m.status = variablesLine(m.session)

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied last result"
		}
	}

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.evaluating {
			return m, nil
		}
		line := strings.TrimSpace(m.input.Value())
		if line == quitCommand {
			return m, tea.Quit
		}
		m.input.SetValue("")
		if line == "" {
			return m, nil
		}
		m.history.Add(line)
		m.historyPos = m.history.Len()
		m.draft = ""
		m.evaluating = true
		return m, tea.Batch(m.spinner.Tick, m.evaluate(line))

	case tea.KeyUp:
		if m.historyPos > 0 {
			if m.historyPos == m.history.Len() {
				m.draft = m.input.Value()
			}
			m.historyPos--
			m.input.SetValue(m.history.At(m.historyPos))
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyPos < m.history.Len() {
			m.historyPos++
			if m.historyPos == m.history.Len() {
				m.input.SetValue(m.draft)
			} else {
				m.input.SetValue(m.history.At(m.historyPos))
			}
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyTab:
		m.complete()
		return m, nil

	case tea.KeyCtrlY:
		text := m.lastText
		return m, func() tea.Msg {
			return copiedMsg{err: clipboard.WriteAll(text)}
		}

	case tea.KeyCtrlL:
		m.transcript = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs line outside the update loop
func (m Model) evaluate(line string) tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		return evaluatedMsg{line: line, output: session.Evaluate(ctx, line)}
	}
}

// complete replaces the last word with the single candidate, or lists the
// candidates in the status bar
func (m *Model) complete() {
	value := m.input.Value()
	candidates := m.session.Complete(value)
	switch len(candidates) {
	case 0:
		m.status = "no completions"
	case 1:
		head := ""
		if i := strings.LastIndex(value, " "); i >= 0 {
			head = value[:i+1]
		}
		m.input.SetValue(head + candidates[0] + " ")
		m.input.CursorEnd()
	default:
		rendered := make([]string, len(candidates))
		for i, c := range candidates {
			rendered[i] = CandidateStyle.Render(c)
		}
		m.status = strings.Join(rendered, "  ")
	}
}

// record appends an evaluated line to the transcript
func (m *Model) record(line string, out Output) {
	entry := EchoStyle.Render("» " + line)
	switch {
	case out.IsError:
		entry += "\n" + ErrorStyle.Render(out.Text)
	case out.Text != "":
		entry += "\n" + ResultStyle.Render(out.Text)
		m.lastText = out.Text
	}
	m.transcript = append(m.transcript, entry)
	m.updateViewportContent()
	m.viewport.GotoBottom()
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n\n"))
}

// View renders the session
func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("interactive session"))
	b.WriteString(" ")
	b.WriteString(SubTitleStyle.Render(fmt.Sprintf("%d lines in history", m.history.Len())))
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.evaluating {
		b.WriteString(m.spinner.View() + " evaluating…")
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteString("\n")
	b.WriteString(StatusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: run  ↑/↓: history  tab: complete  ctrl+y: copy  ctrl+l: clear  :q: quit"))
	return b.String()
}

// Transcript returns the evaluated lines with their output
func (m Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

func variablesLine(s *Session) string {
	var names []string
	for _, v := range s.Variables().Members() {
		if v.Name != LastResultName {
			names = append(names, v.Name)
		}
	}
	return "variables: " + strings.Join(names, ", ")
}
