package categories

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/layout"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// CategoryScreen lists the categories with a type-to-filter input.
type CategoryScreen struct {
	svc      *game.Services
	all      []questionbank.Category
	filter   components.TextInput
	selected int
}

var _ screen.Screen = (*CategoryScreen)(nil)
var _ screen.KeyHintProvider = (*CategoryScreen)(nil)

// New creates a new CategoryScreen.
func New(svc *game.Services) *CategoryScreen {
	return &CategoryScreen{
		svc:    svc,
		all:    svc.Bank.Categories(),
		filter: components.NewTextInput("Type to filter...", 30),
	}
}

func (s *CategoryScreen) Init() tea.Cmd {
	return s.filter.Init()
}

func (s *CategoryScreen) Title() string {
	return "Choose a Category"
}

func (s *CategoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Back"},
	}
}

// dailyEntry is the row pinned above the categories.
var dailyEntry = questionbank.Category{
	ID:          questionbank.DailyCategoryID,
	Name:        questionbank.DailyCategoryName,
	Description: fmt.Sprintf("%d mixed questions, once a day", questionbank.DailyCount),
	Difficulty:  questionbank.Medium,
}

// visible returns the daily challenge and the categories whose name or
// description matches the filter text.
func (s *CategoryScreen) visible() []questionbank.Category {
	q := s.filter.Query()
	rows := append([]questionbank.Category{dailyEntry}, s.all...)
	if q == "" {
		return rows
	}
	var out []questionbank.Category
	for _, c := range rows {
		if strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Description), q) {
			out = append(out, c)
		}
	}
	return out
}

func (s *CategoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down":
			if s.selected < len(s.visible())-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			v := s.visible()
			if s.selected >= len(v) {
				return s, nil
			}
			var next screen.Screen
			if v[s.selected].ID == questionbank.DailyCategoryID {
				next = NewDaily(s.svc)
			} else {
				next = NewDifficulty(s.svc, v[s.selected])
			}
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	if n := len(s.visible()); s.selected >= n {
		s.selected = max(n-1, 0)
	}
	return s, cmd
}

func (s *CategoryScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, "🔎 "+s.filter.View()))
	b.WriteString("\n\n")

	list := s.visible()
	if len(list) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No categories match"))
		return b.String()
	}

	dailyOpen := s.svc.Daily.Available(s.svc.Context(context.Background()))

	var lines []string
	for i, c := range list {
		if c.ID == questionbank.DailyCategoryID {
			lines = append(lines, s.dailyRow(i == s.selected, dailyOpen))
			continue
		}
		count := s.svc.Bank.Count(c.ID)
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = theme.Selected
		}
		name := style.Render(fmt.Sprintf("%s%-22s", prefix, c.Name))
		meta := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%2d questions  %s", count, c.Description))
		if count == 0 {
			meta = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(
				"mixed questions from " + s.svc.Bank.CategoryName(questionbank.DefaultCategoryID))
		}
		lines = append(lines, name+"  "+meta)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
	return b.String()
}

func (s *CategoryScreen) dailyRow(selected, open bool) string {
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	if selected {
		prefix = "▸ "
		style = theme.Selected
	}
	status := lipgloss.NewStyle().Foreground(theme.Success).Render("📅 ready today")
	if !open {
		status = lipgloss.NewStyle().Foreground(theme.TextDim).Render("✓ played today")
	}
	return style.Render(fmt.Sprintf("%s%-22s", prefix, dailyEntry.Name)) + "  " + status
}
