package validation

import (
	"fmt"

	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictEmptyLabel       ConflictType = "empty_label"
	ConflictNonPositiveDays  ConflictType = "non_positive_days"
	ConflictDuplicateLabel   ConflictType = "duplicate_label"
	ConflictInvalidStartDate ConflictType = "invalid_start_date"
	ConflictEmptyTable       ConflictType = "empty_table"
)

// Conflict represents a malformed configuration entry
type Conflict struct {
	Type        ConflictType
	Description string
	Index       int // position in the milestone table, -1 if not applicable
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range vr.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks startup configuration before anything is computed from it
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateMilestones checks the milestone table for empty labels, non-positive
// targets and duplicate labels.
func (v *Validator) ValidateMilestones(defs []constants.MilestoneDef) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	if len(defs) == 0 {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictEmptyTable,
			Description: "Milestone table is empty",
			Index:       -1,
		})
		return result
	}

	seen := make(map[string]int)
	for i, def := range defs {
		if def.Label == "" {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictEmptyLabel,
				Description: fmt.Sprintf("Milestone #%d has an empty label", i+1),
				Index:       i,
			})
		} else if first, ok := seen[def.Label]; ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateLabel,
				Description: fmt.Sprintf("Duplicate milestone label: \"%s\" (entries #%d and #%d)", def.Label, first+1, i+1),
				Index:       i,
			})
		} else {
			seen[def.Label] = i
		}

		if def.Days <= 0 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictNonPositiveDays,
				Description: fmt.Sprintf("Milestone \"%s\" has a non-positive target: %d", def.Label, def.Days),
				Index:       i,
			})
		}
	}

	return result
}

// ValidateStart checks that the start instant parses as RFC 3339.
func (v *Validator) ValidateStart(value string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	if _, _, err := utils.ParseStart(value); err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidStartDate,
			Description: fmt.Sprintf("Start date %q is not a valid RFC 3339 instant", value),
			Index:       -1,
		})
	}
	return result
}
