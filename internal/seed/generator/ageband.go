package generator

import "time"

// Upper age bounds for bands 1..10; older ages fall into band 11.
var ageBandUpperBounds = [...]int{15, 25, 35, 45, 55, 65, 75, 85, 95, 105}

// ageBandFromDOB maps a date of birth to one of 11 ordinal age bands.
// The age is computed in whole years relative to today, counting a year
// only once its month and day have passed.
func ageBandFromDOB(dob, today time.Time) int {
	age := today.Year() - dob.Year()
	if today.Month() < dob.Month() ||
		(today.Month() == dob.Month() && today.Day() < dob.Day()) {
		age--
	}

	for i, bound := range ageBandUpperBounds {
		if age <= bound {
			return i + 1
		}
	}
	return len(ageBandUpperBounds) + 1
}
