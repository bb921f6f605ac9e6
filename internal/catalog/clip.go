package catalog

import (
	"fmt"
	"strings"

	"github.com/litescript/skysim/internal/astro"
)

// DefaultRadius is the clip radius in degrees.
const DefaultRadius = 1.0

// ClipMode selects the distance the clip predicate is measured from.
type ClipMode int

const (
	// ClipCenter keeps points with (ra-cra)² + (dec-cdec)² < r².
	ClipCenter ClipMode = iota

	// ClipOrigin keeps points with ra² + dec² < r² on the raw coordinates.
	// Historical catalogs were produced this way; away from (0, 0) it
	// rejects every point.
	ClipOrigin
)

func (m ClipMode) String() string {
	switch m {
	case ClipCenter:
		return "center"
	case ClipOrigin:
		return "origin"
	default:
		return "unknown"
	}
}

// ParseClipMode parses "center" or "origin".
func ParseClipMode(s string) (ClipMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "centre", "":
		return ClipCenter, nil
	case "origin", "legacy":
		return ClipOrigin, nil
	default:
		return 0, fmt.Errorf("%w: unknown clip mode %q (want center or origin)", ErrInvalidArgument, s)
	}
}

// ClipOptions configures the radial clipper.
type ClipOptions struct {
	Mode   ClipMode
	Radius float64 // degrees; <= 0 means DefaultRadius
}

// DefaultClipOptions returns center-relative clipping at DefaultRadius.
func DefaultClipOptions() ClipOptions {
	return ClipOptions{Mode: ClipCenter, Radius: DefaultRadius}
}

// Clip keeps the points inside the disk described by opts, preserving order.
// The distance is a Euclidean approximation on raw degree offsets, not a true
// angular separation.
func Clip(center astro.Center, points []Point, opts ClipOptions) []Point {
	r := opts.EffectiveRadius()
	r2 := r * r

	var cra, cdec float64
	if opts.Mode == ClipCenter {
		cra, cdec = center.RAdeg, center.DecDeg
	}

	kept := make([]Point, 0, len(points))
	for _, p := range points {
		dra := p.RA - cra
		ddec := p.Dec - cdec
		if dra*dra+ddec*ddec < r2 {
			kept = append(kept, p)
		}
	}
	return kept
}

// EffectiveRadius returns Radius, or DefaultRadius when Radius is not positive.
func (o ClipOptions) EffectiveRadius() float64 {
	if o.Radius <= 0 {
		return DefaultRadius
	}
	return o.Radius
}
