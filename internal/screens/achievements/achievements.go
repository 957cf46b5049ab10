package achievements

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/achievements"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

type achievementsLoadedMsg struct {
	Statuses []achievements.Status
	Counters achievements.Counters
}

// AchievementsScreen displays every achievement grouped by type.
type AchievementsScreen struct {
	svc          *achievements.Service
	statuses     []achievements.Status
	counters     achievements.Counters
	selectedType int // index into AllTypes
	loaded       bool
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(svc *achievements.Service) *AchievementsScreen {
	return &AchievementsScreen{svc: svc}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	svc := s.svc
	return func() tea.Msg {
		ctx := context.Background()
		return achievementsLoadedMsg{Statuses: svc.All(ctx), Counters: svc.Counters(ctx)}
	}
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch type"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case achievementsLoadedMsg:
		s.statuses = msg.Statuses
		s.counters = msg.Counters
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		types := achievements.AllTypes()
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "right", "l":
			s.selectedType = (s.selectedType + 1) % len(types)
			return s, nil
		case "shift+tab", "left", "h":
			s.selectedType = (s.selectedType - 1 + len(types)) % len(types)
			return s, nil
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading achievements...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nUnlocked: %d of %d\n", s.unlockedCount(), len(s.statuses))))
	b.WriteString("\n")

	types := achievements.AllTypes()
	var tabs []string
	for i, t := range types {
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), s.counters.Value(t))
		if i == s.selectedType {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	for _, st := range s.filtered() {
		mark := lipgloss.NewStyle().Foreground(theme.TextDim).Render("🔒")
		titleStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if st.Unlocked {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
			titleStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
		}
		head := fmt.Sprintf("%s %s", mark, titleStyle.Render(st.Title))
		desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(st.Description)
		bar := components.NewProgressBar("", st.Progress(s.counters), true, cw-8).View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.ArcadeCard(head+"\n"+desc+"\n"+bar, cw)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *AchievementsScreen) filtered() []achievements.Status {
	t := achievements.AllTypes()[s.selectedType]
	var out []achievements.Status
	for _, st := range s.statuses {
		if st.Type == t {
			out = append(out, st)
		}
	}
	return out
}

func (s *AchievementsScreen) unlockedCount() int {
	n := 0
	for _, st := range s.statuses {
		if st.Unlocked {
			n++
		}
	}
	return n
}
