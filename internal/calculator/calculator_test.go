package calculator

import (
	"testing"
	"time"

	"github.com/julianstephens/daystogether/internal/config"
	"github.com/julianstephens/daystogether/internal/constants"
	"github.com/julianstephens/daystogether/internal/models"
)

func setupCalculator(t *testing.T) *Calculator {
	t.Helper()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	return New(cfg)
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		name  string
		delta int64
		want  models.Duration
	}{
		{
			name:  "zero",
			delta: 0,
			want:  models.Duration{},
		},
		{
			name:  "one of each unit",
			delta: 90061000,
			want:  models.Duration{Days: 1, Hours: 1, Minutes: 1, Seconds: 1},
		},
		{
			name:  "sub-second truncates",
			delta: 999,
			want:  models.Duration{},
		},
		{
			name:  "last second of a day",
			delta: 86399999,
			want:  models.Duration{Days: 0, Hours: 23, Minutes: 59, Seconds: 59},
		},
		{
			name:  "negative clamps to zero",
			delta: -5000,
			want:  models.Duration{},
		},
		{
			name:  "hundred thousand days",
			delta: 100000 * constants.DayInMs,
			want:  models.Duration{Days: 100000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decompose(tt.delta); got != tt.want {
				t.Errorf("Decompose(%d) = %+v, want %+v", tt.delta, got, tt.want)
			}
		})
	}
}

func TestDecompose_Invariants(t *testing.T) {
	deltas := []int64{0, 1, 999, 1000, 59999, 60000, 3599999, 3600000, 86399999, 86400000,
		90061000, 123456789, 987654321012, 31536000000, 100000*constants.DayInMs + 12345}

	for _, d := range deltas {
		got := Decompose(d)
		if got.TotalSeconds() != d/1000 {
			t.Errorf("Decompose(%d) reconstructs %d seconds, want %d", d, got.TotalSeconds(), d/1000)
		}
		if got.Days < 0 || got.Hours < 0 || got.Minutes < 0 || got.Seconds < 0 {
			t.Errorf("Decompose(%d) has a negative field: %+v", d, got)
		}
		if got.Hours >= 24 || got.Minutes >= 60 || got.Seconds >= 60 {
			t.Errorf("Decompose(%d) has a field over its modulus: %+v", d, got)
		}
	}
}

func TestClassify_AtStart(t *testing.T) {
	c := setupCalculator(t)
	start, err := time.Parse(time.RFC3339, "2025-06-23T00:00:00+09:00")
	if err != nil {
		t.Fatal(err)
	}

	e := Classify(c.Start(), start)
	if !e.HasStarted {
		t.Error("expected HasStarted at the start instant")
	}
	if e.TotalDays != 0 {
		t.Errorf("TotalDays = %d, want 0", e.TotalDays)
	}
	if !e.Duration.IsZero() {
		t.Errorf("Duration = %+v, want zero", e.Duration)
	}
}

func TestClassify_HundredDays(t *testing.T) {
	c := setupCalculator(t)
	now := c.Start().Add(100 * 24 * time.Hour)

	snap := c.Compute(now, models.ThemeWinter)
	if !snap.HasStarted {
		t.Fatal("expected HasStarted")
	}
	if snap.TotalDaysElapsed != 100 {
		t.Errorf("TotalDaysElapsed = %d, want 100", snap.TotalDaysElapsed)
	}
	if snap.Duration.Days != snap.TotalDaysElapsed {
		t.Errorf("duration days %d disagree with headline %d", snap.Duration.Days, snap.TotalDaysElapsed)
	}

	first := snap.MilestoneStatuses[0]
	if first.Label != "100日記念" || first.Target != 100 {
		t.Fatalf("first milestone = %+v", first)
	}
	if first.Remaining != 0 || !first.Reached {
		t.Errorf("100-day milestone = %+v, want remaining 0 and reached", first)
	}
	if snap.MilestoneStatuses[1].Reached {
		t.Errorf("200-day milestone should not be reached: %+v", snap.MilestoneStatuses[1])
	}
}

func TestClassify_JustBeforeStart(t *testing.T) {
	c := setupCalculator(t)
	now := c.Start().Add(-time.Millisecond)

	e := Classify(c.Start(), now)
	if e.HasStarted {
		t.Fatal("expected not started one millisecond before start")
	}
	if e.TotalDays != 0 {
		t.Errorf("TotalDays = %d, want 0 before start", e.TotalDays)
	}
	if -e.DiffMs != c.Start().UnixMilli()-now.UnixMilli() {
		t.Errorf("countdown magnitude = %d ms, want %d", -e.DiffMs, c.Start().UnixMilli()-now.UnixMilli())
	}
	if !e.Duration.IsZero() {
		t.Errorf("countdown of 1ms should decompose to zero, got %+v", e.Duration)
	}
}

func TestClassify_Countdown(t *testing.T) {
	c := setupCalculator(t)
	now := c.Start().Add(-(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 600*time.Millisecond))

	e := Classify(c.Start(), now)
	if e.HasStarted {
		t.Fatal("expected countdown")
	}
	want := models.Duration{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}
	if e.Duration != want {
		t.Errorf("countdown = %+v, want %+v", e.Duration, want)
	}
	if e.TotalDays != 0 {
		t.Errorf("TotalDays = %d, want 0 before start", e.TotalDays)
	}
}

func TestClassify_WholeDayTruncation(t *testing.T) {
	c := setupCalculator(t)
	now := c.Start().Add(24*time.Hour - time.Millisecond)

	e := Classify(c.Start(), now)
	if e.TotalDays != 0 {
		t.Errorf("TotalDays = %d, want 0 just before the first full day", e.TotalDays)
	}
	if e.Duration.Hours != 23 || e.Duration.Minutes != 59 || e.Duration.Seconds != 59 {
		t.Errorf("Duration = %+v, want 23:59:59", e.Duration)
	}
}

func TestStatuses_PreservesOrder(t *testing.T) {
	table := []models.Milestone{
		{Label: "c", Target: 300},
		{Label: "a", Target: 100},
		{Label: "b", Target: 200},
	}

	for _, days := range []int64{0, 150, 250, 1000} {
		statuses := Statuses(table, days)
		if len(statuses) != len(table) {
			t.Fatalf("got %d statuses, want %d", len(statuses), len(table))
		}
		for i := range table {
			if statuses[i].Label != table[i].Label {
				t.Errorf("days=%d: status %d label = %q, want %q", days, i, statuses[i].Label, table[i].Label)
			}
		}
	}
}

func TestStatuses_Boundary(t *testing.T) {
	table := []models.Milestone{{Label: "x", Target: 10}}

	tests := []struct {
		days          int64
		wantRemaining int64
		wantReached   bool
	}{
		{9, 1, false},
		{10, 0, true},
		{11, -1, true},
	}

	for _, tt := range tests {
		got := Statuses(table, tt.days)[0]
		if got.Remaining != tt.wantRemaining || got.Reached != tt.wantReached {
			t.Errorf("days=%d: got %+v, want remaining %d reached %v", tt.days, got, tt.wantRemaining, tt.wantReached)
		}
	}
}

func TestTimeline(t *testing.T) {
	c := setupCalculator(t)
	snap := c.Compute(c.Start(), models.ThemeWinter)

	timeline := Timeline(snap.MilestoneStatuses)
	if len(timeline) != constants.TimelineLength {
		t.Fatalf("timeline length = %d, want %d", len(timeline), constants.TimelineLength)
	}
	for i := range timeline {
		if timeline[i] != snap.MilestoneStatuses[i] {
			t.Errorf("timeline[%d] = %+v, want %+v", i, timeline[i], snap.MilestoneStatuses[i])
		}
	}

	short := Timeline(snap.MilestoneStatuses[:1])
	if len(short) != 1 {
		t.Errorf("timeline of a short table = %d entries, want 1", len(short))
	}
}

func TestCompute_CarriesTheme(t *testing.T) {
	c := setupCalculator(t)
	snap := c.Compute(c.Start(), models.ThemeSummer)
	if snap.Theme != models.ThemeSummer {
		t.Errorf("Theme = %s, want summer", snap.Theme)
	}
	if snap.ThemeCopy != models.ThemeSummer.Copy() {
		t.Errorf("ThemeCopy = %+v, want summer copy", snap.ThemeCopy)
	}
}

func TestCompute_BeforeStartReachesNothing(t *testing.T) {
	c := setupCalculator(t)
	snap := c.Compute(c.Start().Add(-48*time.Hour), models.ThemeWinter)
	if snap.ReachedCount() != 0 {
		t.Errorf("ReachedCount() = %d before start, want 0", snap.ReachedCount())
	}
	for i, ms := range snap.MilestoneStatuses {
		if ms.Remaining != ms.Target {
			t.Errorf("status %d remaining = %d, want %d", i, ms.Remaining, ms.Target)
		}
	}
}

func TestProgress(t *testing.T) {
	c := setupCalculator(t)

	tests := []struct {
		name string
		days int
		want float64
	}{
		{"at start", 0, 0},
		{"halfway to first", 50, 0.5},
		{"on first milestone", 100, 0},
		{"halfway to second", 150, 0.5},
		{"all reached", 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := c.Start().Add(time.Duration(tt.days) * 24 * time.Hour)
			got := Progress(c.Compute(now, models.ThemeWinter))
			if got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}
