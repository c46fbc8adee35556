package generator

import (
	"math/rand"
	"testing"
	"time"

	"github.com/strideloop/strideloop/internal/storage"
)

func TestTimelineOneActivityPerMemberPerDay(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	now := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	timeline := newActivityTimeline(rng, DefaultDistributions(), now)

	memberships := []storage.Membership{
		{RoomID: 1, RoomCreated: now.AddDate(0, 0, -3), UserID: 10, Gender: storage.GenderMale, DOB: date(1985, time.May, 5)},
		{RoomID: 1, RoomCreated: now.AddDate(0, 0, -3), UserID: 11, Gender: storage.GenderFemale, DOB: date(1995, time.June, 6)},
	}

	activities := timeline.generate(memberships)
	if len(activities) != 6 {
		t.Fatalf("expected 3 activities per member, got %d total", len(activities))
	}

	perUser := map[int64]int{}
	for _, a := range activities {
		perUser[a.UserID]++
		if a.RoomID != 1 {
			t.Fatalf("unexpected room id %d", a.RoomID)
		}
	}
	if perUser[10] != 3 || perUser[11] != 3 {
		t.Fatalf("expected 3 records each, got %v", perUser)
	}
}

func TestTimelineMirrorsPerformanceAcrossRooms(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	now := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	timeline := newActivityTimeline(rng, DefaultDistributions(), now)

	// Same user in two rooms with overlapping windows.
	memberships := []storage.Membership{
		{RoomID: 1, RoomCreated: now.AddDate(0, 0, -10), UserID: 10, Gender: storage.GenderMale, DOB: date(1985, time.May, 5)},
		{RoomID: 2, RoomCreated: now.AddDate(0, 0, -5), UserID: 10, Gender: storage.GenderMale, DOB: date(1985, time.May, 5)},
	}

	activities := timeline.generate(memberships)
	if len(activities) != 15 {
		t.Fatalf("expected 10+5 activities, got %d", len(activities))
	}

	byRoomDate := map[int64]map[dateKey]storage.Activity{
		1: {},
		2: {},
	}
	for _, a := range activities {
		byRoomDate[a.RoomID][dateOf(a.Timestamp)] = a
	}
	if len(byRoomDate[2]) != 5 {
		t.Fatalf("expected 5 distinct days in room 2, got %d", len(byRoomDate[2]))
	}
	for day, mirrored := range byRoomDate[2] {
		original, ok := byRoomDate[1][day]
		if !ok {
			t.Fatalf("room 1 missing day %v present in room 2", day)
		}
		if mirrored.Performance != original.Performance || mirrored.Effort != original.Effort {
			t.Fatalf("day %v diverged across rooms: %+v vs %+v", day, original, mirrored)
		}
	}
}

func TestTimelineEmptyMemberships(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	timeline := newActivityTimeline(rng, DefaultDistributions(), time.Now())

	if got := timeline.generate(nil); len(got) != 0 {
		t.Fatalf("expected no activities, got %d", len(got))
	}
}

func TestTimelineRoomYoungerThanADay(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	now := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	timeline := newActivityTimeline(rng, DefaultDistributions(), now)

	memberships := []storage.Membership{
		{RoomID: 1, RoomCreated: now.Add(-2 * time.Hour), UserID: 10, Gender: storage.GenderMale, DOB: date(1985, time.May, 5)},
	}
	if got := timeline.generate(memberships); len(got) != 0 {
		t.Fatalf("expected no activities for a room under a day old, got %d", len(got))
	}
}
