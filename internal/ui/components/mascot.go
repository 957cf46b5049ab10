package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/trivia/internal/ui/theme"
)

// Mood selects the quizmaster's face.
type Mood int

const (
	MoodIdle        Mood = iota
	MoodCelebrating      // last quiz passed, or a correct answer
	MoodAlert            // every helper spent
	MoodCurious          // the daily challenge is waiting
	MoodGloomy           // a wrong answer or a failed quiz
)

var moodArt = map[Mood]string{
	MoodIdle: `┌─────┐
│ ◉ ◉ │
│  ▽  │
└──┬──┘
   ?`,
	MoodCelebrating: `┌─────┐
│ ★ ★ │
│  ◡  │
└─╥═╥─┘
  ╚═╝`,
	MoodAlert: `┌─────┐
│ ◉ ◉ │ !
│  ○  │
└──┬──┘
   !`,
	MoodCurious: `┌─────┐
│ ◔ ◔ │ ?
│  ▿  │
└──┬──┘
  📅`,
	MoodGloomy: `┌─────┐
│ ╥ ╥ │
│  ︵ │
└──┬──┘
   …`,
}

var moodColor = map[Mood]color.Color{
	MoodIdle:        theme.Primary,
	MoodCelebrating: theme.ArcadeYellow,
	MoodAlert:       theme.Accent,
	MoodCurious:     theme.ArcadeCyan,
	MoodGloomy:      theme.TextDim,
}

// Mascot renders the quizmaster for mood, centered in width.
func Mascot(mood Mood, width int) string {
	art, ok := moodArt[mood]
	if !ok {
		art = moodArt[MoodIdle]
	}
	fg, ok := moodColor[mood]
	if !ok {
		fg = theme.Primary
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(fg).Render(art))
}

// MoodFor picks the mascot for an answered question.
func MoodFor(correct bool) Mood {
	if correct {
		return MoodCelebrating
	}
	return MoodGloomy
}
