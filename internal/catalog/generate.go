package catalog

import (
	"math/rand/v2"

	"github.com/litescript/skysim/internal/astro"
)

// DefaultCount is the number of stars sampled per run.
const DefaultCount = 1000

// Options controls one generation run.
type Options struct {
	Count int
	Clip  bool
	ClipOptions
}

// DefaultOptions returns DefaultCount points, unclipped.
func DefaultOptions() Options {
	return Options{
		Count:       DefaultCount,
		ClipOptions: DefaultClipOptions(),
	}
}

// Generate samples around center and optionally clips the result.
func Generate(center astro.Center, opts Options, rng *rand.Rand) (*Result, error) {
	points, err := Sample(center, opts.Count, rng)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Center:  center,
		Sampled: len(points),
		Clipped: opts.Clip,
		Clip:    opts.ClipOptions,
		Points:  points,
	}
	if opts.Clip {
		res.Points = Clip(center, points, opts.ClipOptions)
	}
	return res, nil
}
