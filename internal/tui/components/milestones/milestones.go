package milestones

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daystogether/internal/calculator"
	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/display"
	"github.com/julianstephens/daystogether/internal/models"
	"github.com/julianstephens/daystogether/internal/tui/palette"
)

const minProgressWidth = 20

// Model renders the story panel with the condensed timeline, the full
// milestone grid and the progress toward the next milestone.
type Model struct {
	Snapshot models.Snapshot
	styles   palette.Styles
	progress progress.Model
	width    int
}

func New(styles palette.Styles) Model {
	m := Model{styles: styles}
	m.progress = newProgress(styles, minProgressWidth)
	return m
}

func newProgress(styles palette.Styles, width int) progress.Model {
	return progress.New(
		progress.WithGradient(styles.ProgressGradient[0], styles.ProgressGradient[1]),
		progress.WithWidth(width),
	)
}

func (m *Model) SetSize(width int) {
	m.width = width
	w := width - 4
	if w < minProgressWidth {
		w = minProgressWidth
	}
	m.progress.Width = w
}

func (m *Model) SetStyles(styles palette.Styles) {
	m.styles = styles
	m.progress = newProgress(styles, m.progress.Width)
}

func (m *Model) SetSnapshot(s models.Snapshot) {
	m.Snapshot = s
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewStory(),
		m.viewGrid(),
		m.viewProgress(),
	)
}

func (m Model) viewStory() string {
	st := m.styles
	tc := m.Snapshot.ThemeCopy

	story := lipgloss.JoinVertical(lipgloss.Left,
		st.StoryTitle.Render(tc.Title),
		st.Poetic.Render(tc.Poetic),
		st.Meta.Render(constants.StoryMeta),
	)

	var rows []string
	for _, ms := range calculator.Timeline(m.Snapshot.MilestoneStatuses) {
		dot := st.DotEmpty.Render(st.Dot)
		if ms.Reached {
			dot = st.DotReached.Render(st.DotFilled)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			dot,
			lipgloss.JoinVertical(lipgloss.Left,
				st.TimelineLabel.Render(ms.Label),
				st.TimelineMeta.Render(display.TimelineTarget(ms)),
			),
		))
	}
	timeline := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return st.Panel.Render(lipgloss.JoinVertical(lipgloss.Left, story, "", timeline))
}

func (m Model) viewGrid() string {
	st := m.styles

	cards := make([]string, 0, len(m.Snapshot.MilestoneStatuses))
	for _, ms := range m.Snapshot.MilestoneStatuses {
		style := st.Card
		if ms.Reached {
			style = st.CardDone
		}
		cards = append(cards, style.Render(lipgloss.JoinVertical(lipgloss.Center,
			st.CardLabel.Render(ms.Label),
			st.CardValue.Render(display.MilestoneTarget(ms)),
			st.CardStatus.Render(display.MilestoneTone(ms)),
		)))
	}

	perRow := len(cards)
	if m.width > 0 && st.CardWidth > 0 {
		perRow = m.width / st.CardWidth
	}
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := i + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		st.GridTitle.Render(constants.GridTitle),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m Model) viewProgress() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		m.progress.ViewAs(calculator.Progress(m.Snapshot)),
		m.styles.ProgressLabel.Render(display.NextMilestone(m.Snapshot)),
	)
}
