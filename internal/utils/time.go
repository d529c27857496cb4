package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/daystogether/internal/constants"
)

// ParseStart parses an RFC 3339 instant and pins it to a fixed zone carrying
// the instant's own offset, so formatting never depends on the host timezone.
func ParseStart(value string) (time.Time, *time.Location, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, nil, fmt.Errorf("invalid start instant %q: %w", value, err)
	}
	_, offset := t.Zone()
	loc := time.FixedZone(constants.StartZoneName, offset)
	return t.In(loc), loc, nil
}

// FormatDisplayDate renders t in loc as YYYY.MM.DD.
func FormatDisplayDate(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(constants.DisplayDateFormat)
}

// Pad left-pads a clock component to two digits.
func Pad(v int) string {
	return fmt.Sprintf("%02d", v)
}
