// Package catalog samples, clips and serializes synthetic star catalogs.
package catalog

import (
	"errors"
	"math"

	"github.com/litescript/skysim/internal/astro"
)

var (
	// ErrInvalidArgument reports a bad count, center or option.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO reports a failure creating or writing the catalog destination.
	ErrIO = errors.New("catalog I/O failed")
)

// Point is a sampled sky position in decimal degrees.
type Point struct {
	RA  float64
	Dec float64
}

// StarRecord is one catalog row. IDs follow output order starting at 0.
type StarRecord struct {
	ID  int
	RA  float64
	Dec float64
}

// Records assigns ids to points by position.
func Records(points []Point) []StarRecord {
	records := make([]StarRecord, len(points))
	for i, p := range points {
		records[i] = StarRecord{ID: i, RA: p.RA, Dec: p.Dec}
	}
	return records
}

// Bounds is the RA/Dec extent of a point set.
type Bounds struct {
	MinRA, MaxRA   float64
	MinDec, MaxDec float64
}

// Empty reports whether the bounds cover no points.
func (b Bounds) Empty() bool {
	return b.MinRA > b.MaxRA
}

// Result is the outcome of one generation run.
type Result struct {
	Center  astro.Center
	Sampled int
	Clipped bool
	Clip    ClipOptions
	Points  []Point
}

// Retained is the number of points that survived clipping.
func (r *Result) Retained() int {
	return len(r.Points)
}

// Records returns the catalog rows for the retained points.
func (r *Result) Records() []StarRecord {
	return Records(r.Points)
}

// Bounds returns the extent of the retained points.
func (r *Result) Bounds() Bounds {
	b := Bounds{
		MinRA: math.Inf(1), MaxRA: math.Inf(-1),
		MinDec: math.Inf(1), MaxDec: math.Inf(-1),
	}
	for _, p := range r.Points {
		b.MinRA = math.Min(b.MinRA, p.RA)
		b.MaxRA = math.Max(b.MaxRA, p.RA)
		b.MinDec = math.Min(b.MinDec, p.Dec)
		b.MaxDec = math.Max(b.MaxDec, p.Dec)
	}
	return b
}
