package counter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/display"
	"github.com/julianstephens/daystogether/internal/models"
	"github.com/julianstephens/daystogether/internal/tui/palette"
)

// Model renders the hero card: headline, day counter, breakdown and countdown.
type Model struct {
	Snapshot   models.Snapshot
	StartLabel string
	styles     palette.Styles
	width      int
}

func New(startLabel string, styles palette.Styles) Model {
	return Model{
		StartLabel: startLabel,
		styles:     styles,
	}
}

func (m *Model) SetSize(width int) {
	m.width = width
}

func (m *Model) SetStyles(styles palette.Styles) {
	m.styles = styles
}

func (m *Model) SetSnapshot(s models.Snapshot) {
	m.Snapshot = s
}

func (m Model) View() string {
	s := m.Snapshot
	st := m.styles

	header := lipgloss.JoinVertical(lipgloss.Left,
		st.Eyebrow.Render(m.StartLabel),
		st.Headline.Render(display.Headline(s)),
		st.Lead.Render(s.ThemeCopy.Message),
	)
	toggle := st.Toggle.Render(display.ToggleLabel(s.Theme) + " [t]")

	if m.width > 0 && lipgloss.Width(header)+lipgloss.Width(toggle)+2 <= m.width {
		gap := lipgloss.NewStyle().Width(m.width - lipgloss.Width(header) - lipgloss.Width(toggle)).Render("")
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, gap, toggle)
	} else {
		header = lipgloss.JoinVertical(lipgloss.Left, header, toggle)
	}

	days := lipgloss.JoinVertical(lipgloss.Center,
		st.DayNumber.Render(fmt.Sprintf("%d", s.TotalDaysElapsed)),
		st.DayLabel.Render(constants.TotalDaysLabel),
	)

	var pills []string
	for _, d := range display.Details(s.Duration) {
		pills = append(pills, st.Pill.Render(lipgloss.JoinVertical(lipgloss.Left,
			st.PillLabel.Render(d.Label),
			st.PillValue.Render(d.Value),
		)))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Center, days, lipgloss.JoinHorizontal(lipgloss.Top, pills...))

	sections := []string{header, "", stats}
	if msg := display.Countdown(s); msg != "" {
		sections = append(sections, st.Countdown.Render(msg))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
