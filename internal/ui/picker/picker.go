// Package picker provides a fuzzy-filterable single-select prompt for
// narrowing several candidate paths down to one.
package picker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

// ErrAborted is returned when the user cancels the selection.
var ErrAborted = errors.New("selection aborted")

const maxVisible = 10

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the bubbletea model for the picker.
type Model struct {
	title   string
	options []string

	input   textinput.Model
	matches []fuzzy.Match
	cursor  int

	choice  string
	aborted bool
}

// New creates a picker over the given options.
func New(title string, options []string) Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to filter"
	input.Focus()

	m := Model{
		title:   title,
		options: options,
		input:   input,
	}
	m.refilter()
	return m
}

// Choice returns the selected option, empty if none was chosen.
func (m Model) Choice() string { return m.choice }

// Aborted reports whether the user cancelled.
func (m Model) Aborted() bool { return m.aborted }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.matches)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.matches) > 0 {
				m.choice = m.options[m.matches[m.cursor].Index]
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refilter()
	return m, cmd
}

// refilter recomputes the match list for the current filter text and keeps
// the cursor on a valid entry.
func (m *Model) refilter() {
	query := m.input.Value()
	if query == "" {
		m.matches = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.matches[i] = fuzzy.Match{Str: opt, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.options)
	}
	if m.cursor >= len(m.matches) {
		m.cursor = len(m.matches) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.input.View() + "\n\n")

	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("  no matches") + "\n")
		return b.String()
	}

	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.matches))

	if start > 0 {
		b.WriteString(dimStyle.Render("  ↑ more above") + "\n")
	}
	for i := start; i < end; i++ {
		line := m.matches[i].Str
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("❯ ") + selectedStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if end < len(m.matches) {
		b.WriteString(dimStyle.Render("  ↓ more below") + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("↑/↓ move · enter select · esc cancel") + "\n")
	return b.String()
}

// Pick runs the picker and returns the chosen option.
// With zero options it fails; with exactly one it returns it immediately.
func Pick(title string, options []string) (string, error) {
	switch len(options) {
	case 0:
		return "", fmt.Errorf("nothing to pick from")
	case 1:
		return options[0], nil
	}

	final, err := tea.NewProgram(New(title, options)).Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Aborted() || m.Choice() == "" {
		return "", ErrAborted
	}
	return m.Choice(), nil
}
