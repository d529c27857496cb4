package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.counter.View(),
		"",
		m.milestones.View(),
		"",
		m.help.View(m.keys),
	)

	return m.styles.Frame.Render(ui)
}
