package generator

import (
	"math"
	"math/rand"
	"time"

	"github.com/strideloop/strideloop/internal/storage"
)

// weekUnset marks a performance state that has not yet crossed any ISO week.
// Real ISO week numbers are 1..53.
const weekUnset = -1

// userPerformance tracks one user's simulated daily performance. The
// baseline mean is skewed by gender and age band at creation and then
// drifts multiplicatively whenever the timeline enters a new ISO week.
//
// byDate caches the activity generated for each calendar date so that a
// user who belongs to several rooms reports the same measurement in all of
// them; only the room id differs between the mirrored records.
type userPerformance struct {
	userID     int64
	ageBand    int
	mu         float64
	sigma      float64
	weekNumber int
	byDate     map[dateKey]storage.Activity
}

// newUserPerformance creates the simulation state for a user on first
// encounter.
func newUserPerformance(rng *rand.Rand, dist Distributions, userID int64, gender storage.Gender, dob, today time.Time) *userPerformance {
	band := ageBandFromDOB(dob, today)
	return &userPerformance{
		userID:     userID,
		ageBand:    band,
		mu:         pick(rng, dist.PerformanceMeans) * dist.GenderSkew[gender] * dist.AgeBandSkew[band],
		sigma:      pick(rng, dist.PerformanceStdDevs),
		weekNumber: weekUnset,
		byDate:     make(map[dateKey]storage.Activity),
	}
}

// sample returns the user's activity in roomID at ts. If a measurement
// already exists for the calendar date of ts it is returned with the room
// id substituted, leaving the cached record untouched; performance is never
// resampled for a date.
func (p *userPerformance) sample(rng *rand.Rand, dist Distributions, roomID int64, ts time.Time) storage.Activity {
	date := dateOf(ts)

	if cached, ok := p.byDate[date]; ok {
		cached.RoomID = roomID
		return cached
	}

	// Trend up or down when the timeline enters a new week.
	_, week := ts.ISOWeek()
	if p.weekNumber != week {
		p.weekNumber = week
		p.mu *= pick(rng, dist.WeeklyTrends)
	}

	activity := storage.Activity{
		RoomID:      roomID,
		UserID:      p.userID,
		Timestamp:   ts,
		Performance: int64(math.Round(rng.NormFloat64()*p.sigma + p.mu)),
		Effort:      1 + rng.Intn(10),
	}
	p.byDate[date] = activity
	return activity
}
