package catalog

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/litescript/skysim/internal/astro"
)

// HalfWidth is the half-size of the square sampling window, in degrees.
const HalfWidth = 1.0

// NewRand returns a PCG-backed source for reproducible runs.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sample scatters count points uniformly over the open square
// (center-1, center+1) on both axes. rng must not be shared across goroutines.
func Sample(center astro.Center, count int, rng *rand.Rand) ([]Point, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: sample count %d is negative", ErrInvalidArgument, count)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}
	if !finite(center.RAdeg) || !finite(center.DecDeg) {
		return nil, fmt.Errorf("%w: center %s is not finite", ErrInvalidArgument, center)
	}

	points := make([]Point, count)
	for i := range points {
		points[i] = Point{
			RA:  scatter(center.RAdeg, rng),
			Dec: scatter(center.DecDeg, rng),
		}
	}
	return points, nil
}

// scatter draws c+u with u uniform in (-HalfWidth, HalfWidth). Draws that land
// on the boundary, either from Float64 returning 0 or from rounding in the
// addition, are redrawn.
func scatter(c float64, rng *rand.Rand) float64 {
	for {
		v := c + HalfWidth*(2*rng.Float64()-1)
		if math.Abs(v-c) < HalfWidth {
			return v
		}
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
