package models

// Milestone is a fixed day-count target with a display label.
type Milestone struct {
	Label  string `json:"label"`
	Target int64  `json:"target"` // days since start, > 0
}

// MilestoneStatus is a milestone evaluated against an elapsed day count.
// It is recomputed on every tick and never stored.
type MilestoneStatus struct {
	Label     string `json:"label"`
	Target    int64  `json:"target"`
	Remaining int64  `json:"remaining"`
	Reached   bool   `json:"reached"`
}
