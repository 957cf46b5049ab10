package categories

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/game"
	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	sessionscreen "github.com/abhisek/trivia/internal/screens/session"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

// DifficultyScreen picks the difficulty for a category and starts the quiz.
type DifficultyScreen struct {
	category questionbank.Category
	menu     components.Menu
}

var _ screen.Screen = (*DifficultyScreen)(nil)

// NewDifficulty creates the difficulty picker for c. The category's own
// suggested difficulty is preselected.
func NewDifficulty(svc *game.Services, c questionbank.Category) *DifficultyScreen {
	var items []components.MenuItem
	selected := 0
	for i, d := range questionbank.AllDifficulties() {
		if d == c.Difficulty {
			selected = i
		}
		items = append(items, components.MenuItem{
			Label: fmt.Sprintf("%s %-7s", d.Icon(), d.DisplayName()),
			Detail: fmt.Sprintf("%d questions · %ds each · ×%.1f",
				d.QuestionCount(), d.SecondsPerQuestion(), d.ScoreMultiplier()),
			Action: func() tea.Cmd {
				next := sessionscreen.New(svc, c.ID, d)
				return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			},
		})
	}
	menu := components.NewMenu(items)
	menu.Selected = selected
	return &DifficultyScreen{category: c, menu: menu}
}

func (s *DifficultyScreen) Init() tea.Cmd {
	return nil
}

func (s *DifficultyScreen) Title() string {
	return s.category.Name
}

func (s *DifficultyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DifficultyScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).Bold(true).
		Render(s.category.Name))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(s.category.Description))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))

	if all := questionbank.AllDifficulties(); s.menu.Selected < len(all) {
		d := all[s.menu.Selected]
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.LevelBadge(string(d), d.Icon()+" "+d.DisplayName())))
	}
	return b.String()
}
