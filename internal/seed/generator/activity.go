package generator

import (
	"math/rand"
	"time"

	"github.com/strideloop/strideloop/internal/storage"
)

// activityTimeline drives per-user performance simulation across every
// (room, member, day) combination. It owns the per-user state, so all
// sampling for a given user flows through one userPerformance record no
// matter how many rooms the user belongs to.
type activityTimeline struct {
	rng   *rand.Rand
	dist  Distributions
	now   time.Time
	users map[int64]*userPerformance
}

func newActivityTimeline(rng *rand.Rand, dist Distributions, now time.Time) *activityTimeline {
	return &activityTimeline{
		rng:   rng,
		dist:  dist,
		now:   now,
		users: make(map[int64]*userPerformance),
	}
}

// generate produces one activity per membership per elapsed day since the
// room was created, counting days back from now.
//
// There are no gaps: every member is assumed to have recorded a measurement
// every day since the room's creation, even if they joined later.
func (t *activityTimeline) generate(memberships []storage.Membership) []storage.Activity {
	var activities []storage.Activity

	for _, m := range memberships {
		state, ok := t.users[m.UserID]
		if !ok {
			state = newUserPerformance(t.rng, t.dist, m.UserID, m.Gender, m.DOB, t.now)
			t.users[m.UserID] = state
		}

		days := int(t.now.Sub(m.RoomCreated).Hours() / 24)
		for day := 0; day < days; day++ {
			ts := randomTimestampWithin(t.rng, t.now.AddDate(0, 0, -day))
			activities = append(activities, state.sample(t.rng, t.dist, m.RoomID, ts))
		}
	}

	return activities
}
