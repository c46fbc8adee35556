package generator

import (
	"math/rand"
	"time"
)

// secondsPerDay covers the full 00:00:00 to 23:59:59 window.
const secondsPerDay = 24 * 60 * 60

// randomTimestampWithin returns a uniformly distributed instant on the same
// calendar day as t, at whole-second resolution.
func randomTimestampWithin(rng *rand.Rand, t time.Time) time.Time {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return midnight.Add(time.Duration(rng.Int63n(secondsPerDay)) * time.Second)
}

// dateKey identifies a calendar date independent of time of day.
type dateKey struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) dateKey {
	year, month, day := t.Date()
	return dateKey{year: year, month: month, day: day}
}
