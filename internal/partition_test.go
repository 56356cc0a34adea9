package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{10, 0}
	above := &Point{5, 5}
	below := &Point{5, -5}
	on := &Point{5, 0}
	beyond := &Point{20, 0}
	points := []*Point{a, above, below, on, b, beyond}

	t.Run("clockwise", func(t *testing.T) {
		right, left := Partition(&Segment{a, b}, points, Clockwise)
		assert.Equal(t, []*Point{above, on, beyond}, right)
		assert.Equal(t, []*Point{below}, left)
	})

	t.Run("counterclockwise", func(t *testing.T) {
		right, left := Partition(&Segment{a, b}, points, CounterClockwise)
		assert.Equal(t, []*Point{below, on, beyond}, right)
		assert.Equal(t, []*Point{above}, left)
	})

	t.Run("reversed segment swaps strict sides", func(t *testing.T) {
		right, left := Partition(&Segment{b, a}, points, Clockwise)
		assert.Equal(t, []*Point{below, on, beyond}, right)
		assert.Equal(t, []*Point{above}, left)
	})

	t.Run("endpoints are excluded by handle only", func(t *testing.T) {
		copyOfA := &Point{0, 0}
		right, left := Partition(&Segment{a, b}, []*Point{a, copyOfA, b}, Clockwise)
		assert.Equal(t, []*Point{copyOfA}, right)
		assert.Empty(t, left)
	})

	t.Run("matches the cross product", func(t *testing.T) {
		points := RandomBox(3, 200, 100)
		segment := &Segment{points[0], points[1]}
		right, left := Partition(segment, points, Clockwise)
		assert.Len(t, append(right, left...), len(points)-2)
		for _, p := range right {
			assert.GreaterOrEqual(t, Cross(segment.Start, segment.End, p), 0.0)
		}
		for _, p := range left {
			assert.Less(t, Cross(segment.Start, segment.End, p), 0.0)
		}
	})
}

func TestRightOf(t *testing.T) {
	points := RandomBox(4, 100, 50)
	segment := &Segment{points[10], points[20]}
	for _, orientation := range []Orientation{Clockwise, CounterClockwise} {
		right, _ := Partition(segment, points, orientation)
		assert.Equal(t, right, RightOf(segment, points, orientation))
	}
}
