package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daystogether/internal/calculator"
	"github.com/julianstephens/daystogether/internal/models"
	"github.com/julianstephens/daystogether/internal/tui/components/counter"
	"github.com/julianstephens/daystogether/internal/tui/components/milestones"
	"github.com/julianstephens/daystogether/internal/tui/palette"
)

// TickMsg carries the instant published by the clock driver.
type TickMsg time.Time

type Model struct {
	calc       *calculator.Calculator
	theme      models.Theme
	snapshot   models.Snapshot
	styles     palette.Styles
	keys       KeyMap
	help       help.Model
	counter    counter.Model
	milestones milestones.Model
	quitting   bool
	width      int
	height     int
}

// NewModel builds the root model with the snapshot for now, so the first
// frame is correct before any tick arrives.
func NewModel(calc *calculator.Calculator, startLabel string, now time.Time, theme models.Theme) Model {
	styles := palette.For(theme)
	m := Model{
		calc:       calc,
		theme:      styles.Theme,
		styles:     styles,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		counter:    counter.New(startLabel, styles),
		milestones: milestones.New(styles),
	}
	m.recompute(now)
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Snapshot returns the snapshot currently on screen.
func (m Model) Snapshot() models.Snapshot {
	return m.snapshot
}

// Theme returns the active theme.
func (m Model) Theme() models.Theme {
	return m.theme
}

// Styles returns the style set derived from the active theme.
func (m Model) Styles() palette.Styles {
	return m.styles
}

func (m *Model) recompute(now time.Time) {
	m.setSnapshot(m.calc.Compute(now, m.theme))
}

// toggleTheme flips the theme and re-derives styles and copy. The time
// fields of the snapshot are left as they were until the next tick.
func (m *Model) toggleTheme() {
	m.theme = m.theme.Toggle()
	m.styles = palette.For(m.theme)
	m.counter.SetStyles(m.styles)
	m.milestones.SetStyles(m.styles)

	s := m.snapshot
	s.Theme = m.theme
	s.ThemeCopy = m.theme.Copy()
	m.setSnapshot(s)
}

func (m *Model) setSnapshot(s models.Snapshot) {
	m.snapshot = s
	m.counter.SetSnapshot(s)
	m.milestones.SetSnapshot(s)
}
