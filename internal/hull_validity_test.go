package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const containmentTolerance = 1e-9

// Helper to check that a hull is valid for its input. The rules are:
// 1. Every hull vertex is a handle from the input.
// 2. No vertex appears twice, either by handle or by value.
// 3. The hull has no more vertices than the input.
// 4. The hull is convex and winds the way the orientation says.
// 5. Every input point lies inside or on the hull.
func AssertValidHull(t *testing.T, points []*Point, hull HullSequence, orientation Orientation) {
	t.Helper()

	input := make(PointSet)
	for _, p := range points {
		input.Add(p)
	}

	seen := make(PointSet)
	values := make(map[Point]struct{})
	for _, vertex := range hull {
		require.True(t, input.Contains(vertex), "hull vertex %v is not an input handle", vertex)
		require.False(t, seen.Contains(vertex), "hull vertex %v appears twice", vertex)
		_, dup := values[*vertex]
		require.False(t, dup, "hull has two vertices at %v", vertex)
		seen.Add(vertex)
		values[*vertex] = struct{}{}
	}
	require.LessOrEqual(t, len(hull), len(points))

	polygon := hull.Polygon()
	require.True(t, polygon.IsConvex(), "hull is not convex: %v", hull)
	if len(hull) >= 3 {
		assert.Equal(t, orientation == Clockwise, polygon.IsClockwise(), "hull winds the wrong way: %v", hull)
		assert.NotZero(t, polygon.Area())
	}

	for _, p := range points {
		assert.True(t, polygon.ContainsPoint(p, containmentTolerance*scaleOf(points)), "point %v is outside the hull", p)
	}
}

// Handles are compared, not values.
func assertSameSequence(t *testing.T, expected, actual HullSequence) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Same(t, expected[i], actual[i], "vertex %d differs: expected %v, got %v", i, expected[i], actual[i])
	}
}

// Drop the zero-turn vertices a hull can keep when ties pick a point in the
// middle of an edge.
func strictVertices(hull HullSequence) HullSequence {
	n := len(hull)
	if n < 3 {
		return hull
	}
	var strict HullSequence
	for i, p := range hull {
		prev, next := hull[CircularIndex(i-1, n)], hull[CircularIndex(i+1, n)]
		if !Equal(Cross(prev, p, next), 0) {
			strict = append(strict, p)
		}
	}
	return strict
}

func hullValues(hull HullSequence) []Point {
	values := make([]Point, len(hull))
	for i, p := range hull {
		values[i] = *p
	}
	return values
}

func scaleOf(points []*Point) float64 {
	scale := 1.0
	for _, p := range points {
		for _, v := range []float64{p.X, -p.X, p.Y, -p.Y} {
			if v > scale {
				scale = v
			}
		}
	}
	return scale
}
