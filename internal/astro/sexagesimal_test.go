package astro

import (
	"errors"
	"math"
	"testing"
)

func TestParseSexagesimal(t *testing.T) {
	tests := []struct {
		input string
		want  Sexagesimal
		value float64
	}{
		{"00:42:44.3", Sexagesimal{Whole: 0, Min: 42, Sec: 44.3}, 42.0/60 + 44.3/3600},
		{"41:16:09", Sexagesimal{Whole: 41, Min: 16, Sec: 9}, 41 + 16.0/60 + 9.0/3600},
		{"-00:30:00", Sexagesimal{Neg: true, Min: 30}, -0.5},
		{"+12:00:00", Sexagesimal{Whole: 12}, 12},
		{" 23:59:59.999 ", Sexagesimal{Whole: 23, Min: 59, Sec: 59.999}, 23 + 59.0/60 + 59.999/3600},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSexagesimal(tt.input)
			if err != nil {
				t.Fatalf("ParseSexagesimal(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseSexagesimal(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
			if math.Abs(got.Value()-tt.value) > 1e-12 {
				t.Errorf("Value() = %v, want %v", got.Value(), tt.value)
			}
		})
	}
}

func TestParseSexagesimal_Errors(t *testing.T) {
	inputs := []string{
		"",
		"00:42",
		"00:42:44:1",
		"aa:42:44",
		"00:bb:44",
		"00:42:cc",
		"00:-4:44",
		"00:+4:44",
		"--1:00:00",
		"00:60:00",
		"00:00:60",
		"00:00:NaN",
		"1.5:00:00",
	}

	for _, in := range inputs {
		_, err := ParseSexagesimal(in)
		if !errors.Is(err, ErrParse) {
			t.Errorf("ParseSexagesimal(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestSexagesimal_String(t *testing.T) {
	tests := []struct {
		in   Sexagesimal
		want string
	}{
		{Sexagesimal{Whole: 0, Min: 42, Sec: 44.3}, "00:42:44.3"},
		{Sexagesimal{Whole: 41, Min: 16, Sec: 9}, "41:16:09"},
		{Sexagesimal{Neg: true, Min: 30}, "-00:30:00"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSplitSexagesimal(t *testing.T) {
	for _, v := range []float64{0, 0.5, -0.5, 41.26916666666667, 359.999999, -89.75} {
		got := splitSexagesimal(v)
		if math.Abs(got.Value()-v) > 1e-9 {
			t.Errorf("splitSexagesimal(%v).Value() = %v", v, got.Value())
		}
		if got.Min < 0 || got.Min >= 60 || got.Sec < 0 || got.Sec >= 60 {
			t.Errorf("splitSexagesimal(%v) = %+v, fields out of range", v, got)
		}
	}
}
