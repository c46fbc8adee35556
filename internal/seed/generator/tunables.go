package generator

import "github.com/strideloop/strideloop/internal/storage"

// Distributions holds the tunable parameters behind the synthetic
// performance and invitation models. Callers normally start from
// DefaultDistributions and override individual fields.
type Distributions struct {
	// Candidate baseline daily means; one is picked per user.
	PerformanceMeans []float64

	// Candidate standard deviations; one is picked per user.
	PerformanceStdDevs []float64

	// Candidate week-over-week trend multipliers. Applied cumulatively
	// whenever a user's timeline crosses into a new ISO week.
	WeeklyTrends []float64

	// Multipliers skewing the baseline mean by gender and age band.
	GenderSkew  map[storage.Gender]float64
	AgeBandSkew map[int]float64

	// Inclusive bounds on how many invitees a room member recruits.
	InviteBatchMin int
	InviteBatchMax int
}

// DefaultDistributions returns the reference tuning for step-count rooms.
func DefaultDistributions() Distributions {
	return Distributions{
		PerformanceMeans:   []float64{5000, 7500, 10000, 15000},
		PerformanceStdDevs: []float64{1000, 1250, 1500},
		WeeklyTrends:       []float64{0.8, 1, 1.2},
		GenderSkew: map[storage.Gender]float64{
			storage.GenderMale:    0.9,
			storage.GenderFemale:  1.2,
			storage.GenderNeutral: 1,
		},
		AgeBandSkew: map[int]float64{
			1:  1.3,
			2:  1.1,
			3:  0.8,
			4:  1.1,
			5:  1.2,
			6:  1.0,
			7:  0.9,
			8:  0.8,
			9:  0.7,
			10: 0.6,
			11: 0.6,
		},
		InviteBatchMin: 2,
		InviteBatchMax: 4,
	}
}
