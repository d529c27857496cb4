package constants

import "time"

const (
	AppName           = "daystogether"
	Version           = "v0.1.0"
	DefaultLogDirPath = "~/.config/daystogether"

	// StartDate is the instant the counter measures from. The offset is fixed;
	// no other timezone is ever applied.
	StartDate = "2025-06-23T00:00:00+09:00"

	// StartZoneName labels the fixed offset of StartDate when formatting.
	StartZoneName = "JST"

	// DisplayDateFormat renders the start date in the hero eyebrow (2025.06.23).
	DisplayDateFormat = "2006.01.02"

	// TickInterval is the refresh cadence of the clock driver.
	TickInterval = time.Second

	DayInMs    int64 = 1000 * 60 * 60 * 24
	SecondInMs int64 = 1000

	SecondsPerDay    int64 = 60 * 60 * 24
	SecondsPerHour   int64 = 60 * 60
	SecondsPerMinute int64 = 60

	// TimelineLength is how many milestones the condensed timeline shows.
	TimelineLength = 3
)

// MilestoneDef is a raw milestone table entry, validated at load time.
type MilestoneDef struct {
	Label string
	Days  int64
}

// MilestonePlan is the fixed, ordered milestone table. Order is display-significant.
var MilestonePlan = []MilestoneDef{
	{Label: "100日記念", Days: 100},
	{Label: "200日目の節目", Days: 200},
	{Label: "365日 (1周年)", Days: 365},
	{Label: "500日の思い出", Days: 500},
	{Label: "1000日の約束", Days: 1000},
}
