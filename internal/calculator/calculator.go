package calculator

import (
	"time"

	"github.com/julianstephens/daystogether/internal/config"
	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/models"
)

// Elapsed classifies now against the start instant.
type Elapsed struct {
	DiffMs     int64 // now - start, signed
	HasStarted bool
	// TotalDays is the headline day counter. It is always 0 before the start
	// and must not be read as an elapsed count in that case.
	TotalDays int64
	// Duration is the elapsed time once started, or the countdown to the start.
	Duration models.Duration
}

// Calculator maps the current instant to a snapshot. It holds only the
// immutable configuration and is safe to share.
type Calculator struct {
	start      time.Time
	milestones []models.Milestone
}

func New(cfg *config.Config) *Calculator {
	return &Calculator{
		start:      cfg.Start,
		milestones: cfg.Milestones,
	}
}

// Start returns the configured start instant.
func (c *Calculator) Start() time.Time {
	return c.start
}

// Compute builds the snapshot for now under the given theme.
func (c *Calculator) Compute(now time.Time, theme models.Theme) models.Snapshot {
	elapsed := Classify(c.start, now)
	return models.Snapshot{
		Now:               now,
		HasStarted:        elapsed.HasStarted,
		TotalDaysElapsed:  elapsed.TotalDays,
		Duration:          elapsed.Duration,
		MilestoneStatuses: Statuses(c.milestones, elapsed.TotalDays),
		Theme:             theme,
		ThemeCopy:         theme.Copy(),
	}
}

// Decompose breaks a millisecond delta into days, hours, minutes and seconds.
// Negative deltas are treated as zero; callers pass the magnitude.
func Decompose(deltaMs int64) models.Duration {
	if deltaMs < 0 {
		deltaMs = 0
	}
	totalSeconds := deltaMs / constants.SecondInMs
	return models.Duration{
		Days:    totalSeconds / constants.SecondsPerDay,
		Hours:   int((totalSeconds % constants.SecondsPerDay) / constants.SecondsPerHour),
		Minutes: int((totalSeconds % constants.SecondsPerHour) / constants.SecondsPerMinute),
		Seconds: int(totalSeconds % constants.SecondsPerMinute),
	}
}

// Classify decides whether the start has passed and derives the day counter
// and duration breakdown from the same signed difference.
func Classify(start, now time.Time) Elapsed {
	diff := now.UnixMilli() - start.UnixMilli()
	if diff >= 0 {
		return Elapsed{
			DiffMs:     diff,
			HasStarted: true,
			TotalDays:  diff / constants.DayInMs,
			Duration:   Decompose(diff),
		}
	}
	return Elapsed{
		DiffMs:     diff,
		HasStarted: false,
		TotalDays:  0,
		Duration:   Decompose(-diff),
	}
}

// Statuses evaluates every milestone against totalDays, preserving table order.
// A milestone whose day has arrived (remaining == 0) counts as reached.
func Statuses(milestones []models.Milestone, totalDays int64) []models.MilestoneStatus {
	statuses := make([]models.MilestoneStatus, len(milestones))
	for i, ms := range milestones {
		remaining := ms.Target - totalDays
		statuses[i] = models.MilestoneStatus{
			Label:     ms.Label,
			Target:    ms.Target,
			Remaining: remaining,
			Reached:   remaining <= 0,
		}
	}
	return statuses
}

// Timeline returns the prefix of statuses shown in the condensed timeline.
func Timeline(statuses []models.MilestoneStatus) []models.MilestoneStatus {
	n := constants.TimelineLength
	if n > len(statuses) {
		n = len(statuses)
	}
	return statuses[:n]
}

// Progress returns the fraction of the way from the previous milestone (or the
// start) to the next unreached one. It is 1 once every milestone is reached.
func Progress(s models.Snapshot) float64 {
	next, idx, ok := s.NextMilestone()
	if !ok {
		return 1
	}
	var from int64
	if idx > 0 {
		from = s.MilestoneStatuses[idx-1].Target
	}
	span := next.Target - from
	if span <= 0 {
		return 0
	}
	done := s.TotalDaysElapsed - from
	if done < 0 {
		done = 0
	}
	return float64(done) / float64(span)
}
