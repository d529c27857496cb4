// Package display turns snapshots into the page's text: headlines, detail
// pills, milestone tones. The TUI and the line-mode commands share it.
package display

import (
	"fmt"

	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/models"
	"github.com/julianstephens/daystogether/internal/utils"
)

// Detail is one labelled value in the duration breakdown.
type Detail struct {
	Label string
	Value string
}

// Headline is "今日は N 日目" once started, the countdown title otherwise.
func Headline(s models.Snapshot) string {
	if !s.HasStarted {
		return constants.HeadlineCountdown
	}
	return fmt.Sprintf(constants.HeadlineStarted, s.TotalDaysElapsed)
}

// Countdown returns the pre-start message, or "" once the start has passed.
func Countdown(s models.Snapshot) string {
	if s.HasStarted {
		return ""
	}
	d := s.Duration
	return fmt.Sprintf(constants.CountdownMessage, d.Days, utils.Pad(d.Hours), utils.Pad(d.Minutes), utils.Pad(d.Seconds))
}

// Clock renders a duration as "Nd HH:MM:SS".
func Clock(d models.Duration) string {
	return fmt.Sprintf("%dd %s:%s:%s", d.Days, utils.Pad(d.Hours), utils.Pad(d.Minutes), utils.Pad(d.Seconds))
}

// Details lists the breakdown pills in display order.
func Details(d models.Duration) []Detail {
	return []Detail{
		{Label: constants.DetailDaysLabel, Value: fmt.Sprintf(constants.DetailDaysValue, d.Days)},
		{Label: constants.DetailHoursLabel, Value: fmt.Sprintf(constants.DetailHoursValue, utils.Pad(d.Hours))},
		{Label: constants.DetailMinutesLabel, Value: fmt.Sprintf(constants.DetailMinutesValue, utils.Pad(d.Minutes))},
		{Label: constants.DetailSecondsLabel, Value: fmt.Sprintf(constants.DetailSecondsValue, utils.Pad(d.Seconds))},
	}
}

func MilestoneTarget(ms models.MilestoneStatus) string {
	return fmt.Sprintf(constants.MilestoneTarget, ms.Target)
}

// MilestoneTone is "達成済み" for reached milestones and "あとN日" otherwise.
func MilestoneTone(ms models.MilestoneStatus) string {
	if ms.Reached {
		return constants.MilestoneReached
	}
	return fmt.Sprintf(constants.MilestoneRemaining, ms.Remaining)
}

func TimelineTarget(ms models.MilestoneStatus) string {
	return fmt.Sprintf(constants.TimelineTarget, ms.Target)
}

// NextMilestone describes the distance to the first unreached milestone.
func NextMilestone(s models.Snapshot) string {
	next, _, ok := s.NextMilestone()
	if !ok {
		return constants.AllReachedLabel
	}
	return fmt.Sprintf(constants.NextMilestoneLabel, next.Label, next.Remaining)
}

// ToggleLabel names the action the theme toggle will perform.
func ToggleLabel(theme models.Theme) string {
	if theme == models.ThemeSummer {
		return constants.ToggleToWinter
	}
	return constants.ToggleToSummer
}
