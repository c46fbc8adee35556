package generator

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAgeBandFromDOBBounds(t *testing.T) {
	today := date(2026, time.August, 26)

	if got := ageBandFromDOB(today, today); got != 1 {
		t.Fatalf("expected age 0 in band 1, got %d", got)
	}
	if got := ageBandFromDOB(date(1826, time.August, 26), today); got != 11 {
		t.Fatalf("expected age 200 in band 11, got %d", got)
	}
}

func TestAgeBandFromDOBTable(t *testing.T) {
	today := date(2026, time.August, 26)

	cases := []struct {
		age  int
		want int
	}{
		{0, 1},
		{15, 1},
		{16, 2},
		{25, 2},
		{26, 3},
		{35, 3},
		{45, 4},
		{55, 5},
		{65, 6},
		{75, 7},
		{85, 8},
		{95, 9},
		{105, 10},
		{106, 11},
	}
	for _, tc := range cases {
		dob := today.AddDate(-tc.age, 0, 0)
		if got := ageBandFromDOB(dob, today); got != tc.want {
			t.Fatalf("age %d: expected band %d, got %d", tc.age, tc.want, got)
		}
	}
}

func TestAgeBandFromDOBBirthdayNotYetReached(t *testing.T) {
	today := date(2026, time.August, 26)

	// Born 16 years ago but the birthday is tomorrow: still 15, band 1.
	dob := date(2010, time.August, 27)
	if got := ageBandFromDOB(dob, today); got != 1 {
		t.Fatalf("expected band 1 before birthday, got %d", got)
	}

	// Birthday today counts as completed.
	dob = date(2010, time.August, 26)
	if got := ageBandFromDOB(dob, today); got != 2 {
		t.Fatalf("expected band 2 on birthday, got %d", got)
	}
}

func TestAgeBandFromDOBMonotonic(t *testing.T) {
	today := date(2026, time.August, 26)

	prev := 0
	for age := 0; age <= 120; age++ {
		band := ageBandFromDOB(today.AddDate(-age, 0, 0), today)
		if band < prev {
			t.Fatalf("band decreased from %d to %d at age %d", prev, band, age)
		}
		prev = band
	}
}
