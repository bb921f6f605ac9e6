package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"
)

// Sexagesimal is a base-60 triple: degrees or hours, minutes, seconds.
// The sign belongs to the whole triple, so "-00:30:00" is minus half a unit.
type Sexagesimal struct {
	Neg   bool
	Whole int
	Min   int
	Sec   float64
}

// ParseSexagesimal parses "A:B:C" with an optional leading sign.
// A and B are integers, C is real; B and C must lie in [0, 60).
func ParseSexagesimal(s string) (Sexagesimal, error) {
	var out Sexagesimal

	body := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(body, "-"):
		out.Neg = true
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	fields := strings.Split(body, ":")
	if len(fields) != 3 {
		return Sexagesimal{}, fmt.Errorf("%w: %q: want 3 colon-separated fields, got %d", ErrParse, s, len(fields))
	}
	for _, f := range fields {
		if f == "" || strings.ContainsAny(f[:1], "+-") {
			return Sexagesimal{}, fmt.Errorf("%w: %q: bad field %q", ErrParse, s, f)
		}
	}

	whole, err := strconv.Atoi(fields[0])
	if err != nil {
		return Sexagesimal{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	mins, err := strconv.Atoi(fields[1])
	if err != nil {
		return Sexagesimal{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	sec, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Sexagesimal{}, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	if mins >= 60 {
		return Sexagesimal{}, fmt.Errorf("%w: %q: minutes %d not in [0, 60)", ErrParse, s, mins)
	}
	if math.IsNaN(sec) || sec < 0 || sec >= 60 {
		return Sexagesimal{}, fmt.Errorf("%w: %q: seconds %v not in [0, 60)", ErrParse, s, sec)
	}

	out.Whole = whole
	out.Min = mins
	out.Sec = sec
	return out, nil
}

// Value returns the signed decimal value of the triple.
func (x Sexagesimal) Value() float64 {
	sign := byte(' ')
	if x.Neg {
		sign = '-'
	}
	return unit.FromSexa(sign, x.Whole, x.Min, x.Sec)
}

// String formats the triple in the form ParseSexagesimal accepts.
func (x Sexagesimal) String() string {
	sign := ""
	if x.Neg {
		sign = "-"
	}
	sec := strconv.FormatFloat(x.Sec, 'f', -1, 64)
	if x.Sec < 10 {
		sec = "0" + sec
	}
	return fmt.Sprintf("%s%02d:%02d:%s", sign, x.Whole, x.Min, sec)
}

// splitSexagesimal breaks a decimal value into a sexagesimal triple.
func splitSexagesimal(v float64) Sexagesimal {
	var out Sexagesimal
	if v < 0 {
		out.Neg = true
		v = -v
	}

	whole := math.Floor(v)
	rem := (v - whole) * 60
	mins := math.Floor(rem)
	sec := (rem - mins) * 60

	// Carry float residue that lands on a boundary
	if sec >= 60 {
		sec -= 60
		mins++
	}
	if mins >= 60 {
		mins -= 60
		whole++
	}

	out.Whole = int(whole)
	out.Min = int(mins)
	out.Sec = sec
	return out
}
