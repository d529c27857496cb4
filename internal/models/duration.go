package models

// Duration is a non-negative span broken into calendar-free units.
// Hours, Minutes and Seconds are always below their modulus.
type Duration struct {
	Days    int64 `json:"days"`
	Hours   int   `json:"hours"`
	Minutes int   `json:"minutes"`
	Seconds int   `json:"seconds"`
}

// TotalSeconds reconstructs the whole-second count the duration was built from.
func (d Duration) TotalSeconds() int64 {
	return d.Days*86400 + int64(d.Hours)*3600 + int64(d.Minutes)*60 + int64(d.Seconds)
}

// IsZero reports whether every field is zero.
func (d Duration) IsZero() bool {
	return d == Duration{}
}
