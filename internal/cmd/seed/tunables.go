package seed

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/strideloop/strideloop/internal/seed/generator"
)

// tunablesEnv overrides the generation distributions from the environment.
// Slice variables are comma separated, e.g.
// STRIDELOOP_PERFORMANCE_MEANS=4000,8000,12000.
type tunablesEnv struct {
	PerformanceMeans   []float64 `env:"STRIDELOOP_PERFORMANCE_MEANS"`
	PerformanceStdDevs []float64 `env:"STRIDELOOP_PERFORMANCE_STDDEVS"`
	WeeklyTrends       []float64 `env:"STRIDELOOP_WEEKLY_TRENDS"`
	InviteBatchMin     int       `env:"STRIDELOOP_INVITE_BATCH_MIN"`
	InviteBatchMax     int       `env:"STRIDELOOP_INVITE_BATCH_MAX"`
}

// distributionsFromEnv starts from the defaults and applies any environment
// overrides.
func distributionsFromEnv() (generator.Distributions, error) {
	var overrides tunablesEnv
	if err := env.Parse(&overrides); err != nil {
		return generator.Distributions{}, fmt.Errorf("load tunables: %w", err)
	}

	dist := generator.DefaultDistributions()
	if len(overrides.PerformanceMeans) > 0 {
		dist.PerformanceMeans = overrides.PerformanceMeans
	}
	if len(overrides.PerformanceStdDevs) > 0 {
		dist.PerformanceStdDevs = overrides.PerformanceStdDevs
	}
	if len(overrides.WeeklyTrends) > 0 {
		dist.WeeklyTrends = overrides.WeeklyTrends
	}
	if overrides.InviteBatchMin > 0 {
		dist.InviteBatchMin = overrides.InviteBatchMin
	}
	if overrides.InviteBatchMax > 0 {
		dist.InviteBatchMax = overrides.InviteBatchMax
	}
	if dist.InviteBatchMax < dist.InviteBatchMin {
		return generator.Distributions{}, fmt.Errorf("invite batch max %d below min %d", dist.InviteBatchMax, dist.InviteBatchMin)
	}
	return dist, nil
}
