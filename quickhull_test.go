package quickhull

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestHull(t *testing.T) {
	points := []*Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
		{X: 0, Y: 0},
	}

	hull, err := Hull(points...)
	assert.NoError(t, err)
	require.Len(t, hull, 4)
	assert.Same(t, points[2], hull[0])
	assert.NotContains(t, hull, points[4])
}

func TestHullWithOptions(t *testing.T) {
	points := []*Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 5, Y: 5}}
	clockwise, err := HullWithOptions(Options{Parallel: true, ParallelThreshold: 1}, points...)
	require.NoError(t, err)
	counterClockwise, err := HullWithOptions(Options{Orientation: CounterClockwise}, points...)
	require.NoError(t, err)

	assert.Equal(t, []*Point{points[0], points[3], points[2], points[1]}, clockwise)
	assert.Equal(t, []*Point{points[0], points[1], points[2], points[3]}, counterClockwise)
}

func TestHullEdgeCases(t *testing.T) {
	hull, err := Hull()
	assert.NoError(t, err)
	assert.Empty(t, hull)

	hull, err = Hull(&Point{X: 1, Y: 1})
	assert.NoError(t, err)
	assert.Empty(t, hull)
}

func TestHullInvalidInput(t *testing.T) {
	hull, err := Hull(&Point{X: 0, Y: 0}, nil, &Point{X: 1, Y: 1})
	assert.EqualError(t, err, "point 1 is nil")
	assert.Nil(t, hull)

	_, err = Hull(&Point{X: 0, Y: math.Inf(1)}, &Point{X: 1, Y: 1})
	assert.EqualError(t, err, "point 0 has non-finite coordinates: (0, +Inf)")

	hull, err = Hull(&Point{X: -1e200, Y: 0}, &Point{X: 1e200, Y: 0}, &Point{X: 0, Y: 1e200})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "point 0 is out of range")
	assert.Nil(t, hull)
}

// Ties on the max X keep a mid-edge seed as a vertex; hulling the hull again
// drops it but keeps the same polygon.
func TestHullTiedSeed(t *testing.T) {
	points := []*Point{{X: 0, Y: 0}, {X: 5, Y: 2}, {X: 5, Y: 5}, {X: 5, Y: 0}}
	hull, err := Hull(points...)
	require.NoError(t, err)
	assert.Equal(t, []*Point{points[0], points[2], points[1], points[3]}, hull)

	again, err := Hull(hull...)
	require.NoError(t, err)
	assert.Equal(t, []*Point{points[0], points[2], points[3]}, again)
}
