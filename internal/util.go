package internal

import "math"

const Tolerance = 1e-9

// Tolerance based equality, for the polygon predicates only. The hull
// construction itself uses exact comparisons.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p *Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Value equality. Only the boundary deduplicator should need this; the
// algorithm itself compares handles.
func (p *Point) Equals(other *Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Cross product of (b - a) and (c - a). Positive when c is counterclockwise of
// the directed line a->b in a y-up frame.
func Cross(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func (s *Segment) IsDegenerate() bool {
	return s.Start == s.End || s.Start.Equals(s.End)
}

func (s *Segment) Reverse() *Segment {
	return &Segment{s.End, s.Start}
}

func (set PointSet) Add(p *Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p *Point) bool {
	_, ok := set[p]
	return ok
}

func (set PointSet) Equals(other PointSet) bool {
	if len(set) != len(other) {
		return false
	}
	for p := range set {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
