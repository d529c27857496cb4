package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/daystogether/internal/logger"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		inner := msg.Width - m.styles.Frame.GetHorizontalFrameSize()
		m.counter.SetSize(inner)
		m.milestones.SetSize(inner)

	case TickMsg:
		m.recompute(time.Time(msg))
		logger.Debug("Tick", "day", m.snapshot.TotalDaysElapsed, "started", m.snapshot.HasStarted)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.toggleTheme()
			logger.Info("Theme toggled", "theme", m.theme)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}
