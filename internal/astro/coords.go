// Package astro provides sexagesimal parsing and the sky-coordinate math used
// to place a synthetic catalog on the sky.
package astro

import (
	"errors"
	"fmt"
	"math"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// Andromeda (M31), J2000.
const (
	DefaultRA  = "00:42:44.3"
	DefaultDec = "41:16:09"
)

var (
	// ErrParse reports a malformed sexagesimal coordinate string.
	ErrParse = errors.New("malformed sexagesimal coordinate")

	// ErrRange reports a coordinate that cannot be placed on the RA scale.
	ErrRange = errors.New("coordinate out of range")
)

// Center is the decimal-degree position a catalog is generated around.
//
// RAdeg is on the projected RA scale: the hour-angle value times 15, divided
// by cos(Dec). This keeps a square window in RA/Dec roughly equal in angular
// extent on both axes.
type Center struct {
	RAdeg  float64
	DecDeg float64
}

// Convert turns a sexagesimal RA (hours) and Dec (degrees) pair into a Center.
func Convert(ra, dec string) (Center, error) {
	raSexa, err := ParseSexagesimal(ra)
	if err != nil {
		return Center{}, fmt.Errorf("ra: %w", err)
	}
	decSexa, err := ParseSexagesimal(dec)
	if err != nil {
		return Center{}, fmt.Errorf("dec: %w", err)
	}

	return Project(15*raSexa.Value(), decSexa.Value())
}

// Project places a true RA and Dec, both in degrees, on the projected RA
// scale used by Center.
func Project(raDeg, decDeg float64) (Center, error) {
	if math.IsNaN(raDeg) || math.IsInf(raDeg, 0) || math.IsNaN(decDeg) {
		return Center{}, fmt.Errorf("(%v, %v): %w: not a finite position", raDeg, decDeg, ErrRange)
	}
	if math.Abs(decDeg) >= 90 {
		return Center{}, fmt.Errorf("dec %v: %w: RA scale undefined at the pole", decDeg, ErrRange)
	}
	return Center{RAdeg: raDeg / math.Cos(degToRad(decDeg)), DecDeg: decDeg}, nil
}

// DefaultCenter returns the Andromeda center. It never fails.
func DefaultCenter() Center {
	c, err := Convert(DefaultRA, DefaultDec)
	if err != nil {
		panic(err)
	}
	return c
}

// TrueRAdeg undoes the cos(Dec) projection and returns the catalog RA of the
// center in degrees.
func (c Center) TrueRAdeg() float64 {
	return c.RAdeg * math.Cos(degToRad(c.DecDeg))
}

// Sexagesimal converts the center back to the RA (hours) and Dec (degrees)
// triples that Convert accepts.
func (c Center) Sexagesimal() (ra, dec Sexagesimal) {
	return splitSexagesimal(c.TrueRAdeg() / 15), splitSexagesimal(c.DecDeg)
}

// Label renders the center for humans, e.g. "0ʰ42ᵐ44.3ˢ  41°16′9.0″".
func (c Center) Label() string {
	return fmt.Sprintf("%.1s %.1s",
		sexa.FmtRA(unit.RAFromDeg(c.TrueRAdeg())),
		sexa.FmtAngle(unit.AngleFromDeg(c.DecDeg)))
}

func (c Center) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", c.RAdeg, c.DecDeg)
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
