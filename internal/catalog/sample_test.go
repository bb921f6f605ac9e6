package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/skysim/internal/astro"
)

func TestSample_CountAndWindow(t *testing.T) {
	centers := []astro.Center{
		astro.DefaultCenter(),
		{RAdeg: 0, DecDeg: 0},
		{RAdeg: 359.5, DecDeg: -89.5},
	}

	for _, c := range centers {
		for _, n := range []int{0, 1, 17, 1000} {
			points, err := Sample(c, n, NewRand(42))
			require.NoError(t, err)
			require.Len(t, points, n)

			for _, p := range points {
				assert.Less(t, math.Abs(p.RA-c.RAdeg), HalfWidth, "ra %v outside window around %v", p.RA, c)
				assert.Less(t, math.Abs(p.Dec-c.DecDeg), HalfWidth, "dec %v outside window around %v", p.Dec, c)
			}
		}
	}
}

func TestSample_ZeroCount(t *testing.T) {
	points, err := Sample(astro.DefaultCenter(), 0, NewRand(1))
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)
}

func TestSample_NegativeCount(t *testing.T) {
	_, err := Sample(astro.DefaultCenter(), -1, NewRand(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSample_NilSource(t *testing.T) {
	_, err := Sample(astro.DefaultCenter(), 10, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSample_NonFiniteCenter(t *testing.T) {
	tests := []struct {
		name   string
		center astro.Center
	}{
		{"nan ra", astro.Center{RAdeg: math.NaN(), DecDeg: 10}},
		{"inf ra", astro.Center{RAdeg: math.Inf(1), DecDeg: 10}},
		{"nan dec", astro.Center{RAdeg: 10, DecDeg: math.NaN()}},
		{"negative inf dec", astro.Center{RAdeg: 10, DecDeg: math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := Sample(tt.center, 5, NewRand(1))
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, points)
		})
	}
}

func TestSample_Deterministic(t *testing.T) {
	c := astro.Center{RAdeg: 14.215420962967535, DecDeg: 41.26916666666667}

	a, err := Sample(c, 1000, NewRand(2024))
	require.NoError(t, err)
	b, err := Sample(c, 1000, NewRand(2024))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := Sample(c, 1000, NewRand(2025))
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}

func TestSample_CoversWindow(t *testing.T) {
	// A uniform scatter should reach every quadrant of the square
	c := astro.Center{RAdeg: 100, DecDeg: 20}
	points, err := Sample(c, 4000, NewRand(7))
	require.NoError(t, err)

	var quadrants [4]int
	for _, p := range points {
		q := 0
		if p.RA > c.RAdeg {
			q |= 1
		}
		if p.Dec > c.DecDeg {
			q |= 2
		}
		quadrants[q]++
	}
	for q, n := range quadrants {
		assert.Greater(t, n, 800, "quadrant %d under-populated", q)
	}
}
