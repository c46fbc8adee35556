package generator

import (
	"fmt"
	"io"
	"math/rand"
	"time"
)

// NewSeededRNG creates a seeded random number generator. If seed is 0, the
// current time is used and the chosen seed is printed so a run can be
// reproduced.
func NewSeededRNG(seed int64, verbose bool, errOut io.Writer) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
		if verbose && errOut != nil {
			fmt.Fprintf(errOut, "Using seed: %d\n", seed)
		}
	}
	return rand.New(rand.NewSource(seed))
}

// randomRange returns a random number in [min, max].
func randomRange(rng *rand.Rand, min, max int) int {
	if min >= max {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// pick returns a uniformly chosen element of values.
func pick(rng *rand.Rand, values []float64) float64 {
	return values[rng.Intn(len(values))]
}
