// ABOUTME: Interactive live tag linter built on bubbletea.
// ABOUTME: Re-lints on every keystroke and copies the cleaned prompt on ctrl+y.

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fiffu/sd-promptkit/internal/lint"
	"github.com/fiffu/sd-promptkit/internal/models"
)

const (
	keyCtrlC = "ctrl+c"
	keyCopy  = "ctrl+y"
	keyEsc   = "esc"
)

var (
	noopStyle   = lipgloss.NewStyle()
	lintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true)
	removeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("69")).Padding(0, 1)
)

type copiedMsg struct{}

type errMsg struct{ err error }

// Model is the bubbletea model for the live linter.
type Model struct {
	linter  *lint.Linter
	input   textarea.Model
	results []models.ClassifiedTag
	copied  bool
	err     error
	width   int

	// writeClipboard is swapped in tests.
	writeClipboard func(string) error
}

// New returns a focused model seeded with initial text.
func New(l *lint.Linter, initial string) *Model {
	ta := textarea.New()
	ta.Placeholder = "masterpiece, (best quality:1.2), solo_focus ..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(6)
	ta.SetValue(initial)
	ta.Focus()

	m := &Model{
		linter:         l,
		input:          ta,
		writeClipboard: clipboard.WriteAll,
	}
	m.relint()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(msg.Width-4, 20))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case keyCtrlC, keyEsc:
			return m, tea.Quit
		case keyCopy:
			return m, m.copyFixed()
		}

	case copiedMsg:
		m.copied = true
		m.err = nil
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.relint()
	}
	return m, cmd
}

func (m *Model) relint() {
	m.results = m.linter.ClassifyAll(m.input.Value())
	m.copied = false
}

// Fixed returns the cleaned prompt for the current input.
func (m *Model) Fixed() string {
	return lint.Fix(m.results)
}

func (m *Model) copyFixed() tea.Cmd {
	text := m.Fixed()
	write := m.writeClipboard
	return func() tea.Msg {
		if err := write(text); err != nil {
			return errMsg{fmt.Errorf("failed to copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(paneStyle.Render(m.renderResults()))
	sb.WriteString("\n")

	s := lint.Summarize(m.results)
	sb.WriteString(helpStyle.Render(fmt.Sprintf("%d tags · %d linted · %d removed", s.Total, s.Lint, s.Remove)))
	sb.WriteString("\n")

	switch {
	case m.err != nil:
		sb.WriteString(errStyle.Render(m.err.Error()))
	case m.copied:
		sb.WriteString(okStyle.Render("Copied!"))
	default:
		sb.WriteString(helpStyle.Render("ctrl+y copy · esc quit"))
	}
	sb.WriteString("\n")

	return sb.String()
}

func (m *Model) renderResults() string {
	if len(m.results) == 0 {
		return helpStyle.Render("(no tags)")
	}

	parts := make([]string, 0, len(m.results))
	for _, r := range m.results {
		switch r.Action {
		case models.Noop:
			parts = append(parts, noopStyle.Render(r.Tag.Canonical))
		case models.Lint:
			parts = append(parts, lintStyle.Render(r.Tag.Canonical))
		case models.Remove:
			parts = append(parts, removeStyle.Render(strings.TrimSpace(r.Tag.Original)))
		}
	}
	return strings.Join(parts, ", ")
}

// Run starts the live linter on the terminal.
func Run(l *lint.Linter, initial string) error {
	p := tea.NewProgram(New(l, initial), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
