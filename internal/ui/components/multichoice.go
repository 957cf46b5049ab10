package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// MultiChoice is a multiple-choice selector component. Options can be
// hidden (50:50), marked as the hinted answer, and revealed once the
// question is resolved.
type MultiChoice struct {
	Options  []string
	Selected int
	Hidden   []bool
	Hint     int
	Chosen   int
	Answer   int
	Revealed bool
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options: options,
		Hidden:  make([]bool, len(options)),
		Hint:    -1,
		Chosen:  -1,
		Answer:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Hide removes option i from play and moves the cursor off it.
func (m *MultiChoice) Hide(i int) {
	if i < 0 || i >= len(m.Options) {
		return
	}
	m.Hidden[i] = true
	if m.Selected == i {
		m.move(1)
	}
}

// Reveal marks the question as resolved. chosen is -1 on timeout.
func (m *MultiChoice) Reveal(chosen, answer int) {
	m.Revealed = true
	m.Chosen = chosen
	m.Answer = answer
}

func (m *MultiChoice) move(step int) {
	n := len(m.Options)
	for i, j := 0, m.Selected; i < n; i++ {
		j = (j + step + n) % n
		if !m.Hidden[j] {
			m.Selected = j
			return
		}
	}
}

// Update handles keyboard navigation.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	}

	return m, nil
}

// View renders the options.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case m.Hidden[i]:
			line = fmt.Sprintf("  %s)  %s", label, strings.Repeat("·", 8))
			style = lipgloss.NewStyle().Foreground(theme.Border)
		case m.Revealed && i == m.Answer:
			style = theme.Correct
		case m.Revealed && i == m.Chosen:
			style = theme.Incorrect
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Hint && i != m.Selected:
			style = theme.HintMark
		case i == m.Selected:
			style = theme.Selected
		}
		if !m.Revealed && i == m.Hint {
			line += "  💡"
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
