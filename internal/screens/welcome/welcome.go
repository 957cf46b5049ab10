package welcome

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/questionbank"
	"github.com/abhisek/trivia/internal/router"
	"github.com/abhisek/trivia/internal/screen"
	"github.com/abhisek/trivia/internal/ui/components"
	"github.com/abhisek/trivia/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// One answer tile flips in every tileEvery.
	tileEvery = 250 * time.Millisecond
	bannerAt  = 1500 * time.Millisecond
	teaserAt  = 2500 * time.Millisecond
	totalDur  = 4500 * time.Millisecond

	tileWidth = 9
)

type tickMsg time.Time

// WelcomeScreen is the quiz-show intro: the answer tiles flip in, a chase
// light runs across them, then the banner and a teaser question appear.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	teaser       string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that hands over to homeFactory's screen on
// any key. teaser is a sample question shown under the banner; it may be
// empty.
func New(homeFactory func() screen.Screen, teaser string) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		teaser:      teaser,
	}
}

// Teaser picks one random question text from bank, or "" when it is empty.
func Teaser(bank *questionbank.Bank) string {
	if bank == nil {
		return ""
	}
	if qs := bank.Daily(1); len(qs) == 1 {
		return qs[0].Text
	}
	return ""
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the rest of the intro.
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// tilesShown is how many answer tiles have flipped in.
func (w *WelcomeScreen) tilesShown() int {
	return min(int(w.elapsed/tileEvery), questionbank.OptionCount)
}

// renderTiles draws the A-D tiles. Once all are shown a chase light
// steps across them with the tick count.
func (w *WelcomeScreen) renderTiles() string {
	shown := w.tilesShown()
	lit := -1
	if shown == questionbank.OptionCount {
		lit = w.tickCount % questionbank.OptionCount
	}

	tiles := make([]string, 0, questionbank.OptionCount)
	for i := 0; i < questionbank.OptionCount; i++ {
		label := questionbank.OptionLabel(i)
		switch {
		case i >= shown:
			tiles = append(tiles, components.ArcadeButton("?", components.ButtonDisabled, tileWidth))
		case i == lit:
			tiles = append(tiles, components.ArcadeButton(label, components.ButtonSelected, tileWidth))
		default:
			tiles = append(tiles, components.ArcadeButton(label, components.ButtonNormal, tileWidth))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, tiles...)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{
		components.Mascot(components.MoodCurious, lipgloss.Width(w.renderTiles())),
		w.renderTiles(),
	}

	if w.elapsed >= bannerAt {
		sections = append(sections, "", RenderBanner(width), "",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline))
	}

	if w.elapsed >= teaserAt && w.teaser != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Italic(true).
				Width(min(width-4, 60)).Align(lipgloss.Center).
				Render("“"+w.teaser+"”"))
	}

	if w.elapsed >= bannerAt {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("press any key to play"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
