package config

import (
	"strings"
	"testing"

	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/errors"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Milestones) != len(constants.MilestonePlan) {
		t.Fatalf("got %d milestones, want %d", len(cfg.Milestones), len(constants.MilestonePlan))
	}
	for i, def := range constants.MilestonePlan {
		if cfg.Milestones[i].Label != def.Label || cfg.Milestones[i].Target != def.Days {
			t.Errorf("milestone %d = %+v, want %+v", i, cfg.Milestones[i], def)
		}
	}

	_, offset := cfg.Start.Zone()
	if offset != 9*3600 {
		t.Errorf("start offset = %d, want %d", offset, 9*3600)
	}
	if cfg.Start.UnixMilli() != 1750604400000 {
		t.Errorf("start = %d ms, want 1750604400000", cfg.Start.UnixMilli())
	}
}

func TestLoadFrom_RejectsMalformedTable(t *testing.T) {
	_, err := LoadFrom(constants.StartDate, []constants.MilestoneDef{
		{Label: "ok", Days: 10},
		{Label: "", Days: 20},
	})
	if err == nil {
		t.Fatal("expected error for empty label")
	}
	if !strings.Contains(err.Error(), "empty label") {
		t.Errorf("unexpected error: %v", err)
	}
	if errors.ExitCode(err) != errors.ExitConfig {
		t.Errorf("config error should map to exit code %d", errors.ExitConfig)
	}
}

func TestLoadFrom_RejectsBadStart(t *testing.T) {
	_, err := LoadFrom("not-a-date", constants.MilestonePlan)
	if err == nil {
		t.Fatal("expected error for invalid start")
	}
}

func TestLoadFrom_CopiesTable(t *testing.T) {
	defs := []constants.MilestoneDef{{Label: "a", Days: 1}}
	cfg, err := LoadFrom(constants.StartDate, defs)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	defs[0].Label = "mutated"
	if cfg.Milestones[0].Label != "a" {
		t.Errorf("config shares storage with the input table")
	}
}

func TestStartLabel(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := cfg.StartLabel(), "2025.06.23 からの歩み"; got != want {
		t.Errorf("StartLabel() = %q, want %q", got, want)
	}
}
