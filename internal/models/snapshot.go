package models

import "time"

// Snapshot is the read-only view published to the presentation layer on every tick.
type Snapshot struct {
	Now               time.Time         `json:"now"`
	HasStarted        bool              `json:"has_started"`
	TotalDaysElapsed  int64             `json:"total_days_elapsed"`
	Duration          Duration          `json:"duration"`
	MilestoneStatuses []MilestoneStatus `json:"milestone_statuses"`
	Theme             Theme             `json:"theme"`
	ThemeCopy         ThemeCopy         `json:"theme_copy"`
}

// NextMilestone returns the first unreached milestone in table order and its
// index, or false once everything has been reached.
func (s Snapshot) NextMilestone() (MilestoneStatus, int, bool) {
	for i, ms := range s.MilestoneStatuses {
		if !ms.Reached {
			return ms, i, true
		}
	}
	return MilestoneStatus{}, -1, false
}

// ReachedCount returns how many milestones have been reached.
func (s Snapshot) ReachedCount() int {
	n := 0
	for _, ms := range s.MilestoneStatuses {
		if ms.Reached {
			n++
		}
	}
	return n
}
