// Package palette derives the whole TUI style set from the active theme, so
// components render with whatever they are handed and never branch on it.
package palette

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daystogether/internal/models"
)

type colorSet struct {
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Reached    lipgloss.Color
	Background lipgloss.Color
	Gradient   [2]string
	Dot        string
	DotFilled  string
}

var colors = map[models.Theme]colorSet{
	models.ThemeWinter: {
		Accent:     lipgloss.Color("111"),
		Text:       lipgloss.Color("255"),
		Muted:      lipgloss.Color("103"),
		Border:     lipgloss.Color("67"),
		Reached:    lipgloss.Color("153"),
		Background: lipgloss.Color("236"),
		Gradient:   [2]string{"#5D8AA8", "#D6EAF8"},
		Dot:        "○",
		DotFilled:  "❄",
	},
	models.ThemeSummer: {
		Accent:     lipgloss.Color("209"),
		Text:       lipgloss.Color("230"),
		Muted:      lipgloss.Color("180"),
		Border:     lipgloss.Color("215"),
		Reached:    lipgloss.Color("43"),
		Background: lipgloss.Color("94"),
		Gradient:   [2]string{"#F4A261", "#2A9D8F"},
		Dot:        "○",
		DotFilled:  "☀",
	},
}

// Styles is the full set of styles for one theme.
type Styles struct {
	Theme models.Theme

	Eyebrow   lipgloss.Style
	Headline  lipgloss.Style
	Lead      lipgloss.Style
	Toggle    lipgloss.Style
	DayNumber lipgloss.Style
	DayLabel  lipgloss.Style
	Pill      lipgloss.Style
	PillLabel lipgloss.Style
	PillValue lipgloss.Style
	Countdown lipgloss.Style

	Panel      lipgloss.Style
	StoryTitle lipgloss.Style
	Poetic     lipgloss.Style
	Meta       lipgloss.Style

	TimelineLabel lipgloss.Style
	TimelineMeta  lipgloss.Style
	DotEmpty      lipgloss.Style
	DotReached    lipgloss.Style
	Dot           string
	DotFilled     string

	GridTitle  lipgloss.Style
	Card       lipgloss.Style
	CardDone   lipgloss.Style
	CardLabel  lipgloss.Style
	CardValue  lipgloss.Style
	CardStatus lipgloss.Style
	CardWidth  int

	ProgressGradient [2]string
	ProgressLabel    lipgloss.Style

	Frame lipgloss.Style
}

// For builds the style set for theme. Unknown themes get the default theme's styles.
func For(theme models.Theme) Styles {
	c, ok := colors[theme]
	if !ok {
		theme = models.DefaultTheme
		c = colors[theme]
	}

	const cardWidth = 18

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Border).
		Padding(0, 1).
		Width(cardWidth).
		Align(lipgloss.Center)

	return Styles{
		Theme: theme,

		Eyebrow:   lipgloss.NewStyle().Foreground(c.Muted),
		Headline:  lipgloss.NewStyle().Foreground(c.Text).Bold(true),
		Lead:      lipgloss.NewStyle().Foreground(c.Text).Italic(true),
		Toggle:    lipgloss.NewStyle().Foreground(c.Text).Background(c.Background).Padding(0, 1),
		DayNumber: lipgloss.NewStyle().Foreground(c.Accent).Bold(true).Padding(0, 2),
		DayLabel:  lipgloss.NewStyle().Foreground(c.Muted).Padding(0, 2),
		Pill: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(c.Border).
			Padding(0, 1).
			MarginRight(1),
		PillLabel: lipgloss.NewStyle().Foreground(c.Muted),
		PillValue: lipgloss.NewStyle().Foreground(c.Text).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(c.Accent).Italic(true).MarginTop(1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Border).
			Padding(0, 2),
		StoryTitle: lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		Poetic:     lipgloss.NewStyle().Foreground(c.Text).Italic(true),
		Meta:       lipgloss.NewStyle().Foreground(c.Muted),

		TimelineLabel: lipgloss.NewStyle().Foreground(c.Text),
		TimelineMeta:  lipgloss.NewStyle().Foreground(c.Muted),
		DotEmpty:      lipgloss.NewStyle().Foreground(c.Muted).Padding(0, 1),
		DotReached:    lipgloss.NewStyle().Foreground(c.Reached).Bold(true).Padding(0, 1),
		Dot:           c.Dot,
		DotFilled:     c.DotFilled,

		GridTitle:  lipgloss.NewStyle().Foreground(c.Accent).Bold(true).MarginTop(1),
		Card:       card,
		CardDone:   card.BorderForeground(c.Reached),
		CardLabel:  lipgloss.NewStyle().Foreground(c.Text),
		CardValue:  lipgloss.NewStyle().Foreground(c.Accent).Bold(true),
		CardStatus: lipgloss.NewStyle().Foreground(c.Muted).Italic(true),
		CardWidth:  cardWidth + 2, // plus border

		ProgressGradient: c.Gradient,
		ProgressLabel:    lipgloss.NewStyle().Foreground(c.Muted),

		Frame: lipgloss.NewStyle().Padding(1, 2),
	}
}
