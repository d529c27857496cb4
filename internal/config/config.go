package config

import (
	"strings"
	"time"

	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/errors"
	"github.com/julianstephens/daystogether/internal/models"
	"github.com/julianstephens/daystogether/internal/utils"
	"github.com/julianstephens/daystogether/internal/validation"
)

// Config is the immutable startup configuration shared by every command.
type Config struct {
	Start      time.Time
	Location   *time.Location
	Milestones []models.Milestone
}

// Load builds the configuration from the compiled-in start date and milestone plan.
func Load() (*Config, error) {
	return LoadFrom(constants.StartDate, constants.MilestonePlan)
}

// LoadFrom validates the given start instant and milestone table and builds a Config.
// Malformed entries are rejected here so per-tick code never has to handle them.
func LoadFrom(start string, defs []constants.MilestoneDef) (*Config, error) {
	validator := validation.New()

	result := validator.ValidateStart(start)
	milestoneResult := validator.ValidateMilestones(defs)
	result.Conflicts = append(result.Conflicts, milestoneResult.Conflicts...)
	if result.HasConflicts() {
		return nil, errors.InvalidConfig(strings.TrimSpace(result.FormatReport()))
	}

	startTime, loc, err := utils.ParseStart(start)
	if err != nil {
		return nil, err
	}

	milestones := make([]models.Milestone, len(defs))
	for i, def := range defs {
		milestones[i] = models.Milestone{Label: def.Label, Target: def.Days}
	}

	return &Config{
		Start:      startTime,
		Location:   loc,
		Milestones: milestones,
	}, nil
}

// StartLabel renders the start date as shown in the hero eyebrow.
func (c *Config) StartLabel() string {
	return utils.FormatDisplayDate(c.Start, c.Location) + constants.EyebrowSuffix
}
