package internal

import "math"

// A closed polygon. The last point connects back to the first.
type Polygon struct {
	Points []*Point
}

// Shoelace area. Positive for counterclockwise polygons in a y-up frame,
// negative for clockwise ones.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsClockwise() bool {
	return poly.SignedArea() < 0
}

// Every turn goes the same way. Straight runs (zero turns) are allowed.
// Polygons with fewer than three points are trivially convex.
func (poly Polygon) IsConvex() bool {
	n := len(poly.Points)
	if n < 3 {
		return true
	}
	sign := 0
	for i := range poly.Points {
		turn := Cross(poly.Points[i], poly.Points[CircularIndex(i+1, n)], poly.Points[CircularIndex(i+2, n)])
		if Equal(turn, 0) {
			continue
		}
		s := 1
		if turn < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}
	return true
}

// Whether p lies inside or on the boundary of a convex polygon, with points
// up to tolerance outside an edge counted as on it. Degenerate polygons are
// handled: a single point contains only itself, and two points contain the
// segment between them.
func (poly Polygon) ContainsPoint(p *Point, tolerance float64) bool {
	n := len(poly.Points)
	switch n {
	case 0:
		return false
	case 1:
		return math.Hypot(p.X-poly.Points[0].X, p.Y-poly.Points[0].Y) <= tolerance
	case 2:
		return distanceToSegment(poly.Points[0], poly.Points[1], p) <= tolerance
	}

	// Flip the test for clockwise polygons so "inside" is always positive.
	sign := 1.0
	if poly.IsClockwise() {
		sign = -1
	}
	for i, a := range poly.Points {
		b := poly.Points[CircularIndex(i+1, n)]
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		if length == 0 {
			continue
		}
		if sign*Cross(a, b, p)/length < -tolerance {
			return false
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func distanceToSegment(a, b, p *Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*dx), p.Y-(a.Y+t*dy))
}
