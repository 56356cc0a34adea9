package internal

// Squared perpendicular distance from c to the infinite line through the
// segment. Squaring drops the sign of the numerator, so no absolute value is
// needed.
//
// A zero-length segment has no line. Rather than dividing by zero, we report a
// distance of zero, which means "never farthest".
func DistanceSq(segment *Segment, c *Point) float64 {
	a, b := segment.Start, segment.End
	denominator := (b.Y-a.Y)*(b.Y-a.Y) + (b.X-a.X)*(b.X-a.X)
	if denominator == 0 {
		return 0
	}
	numerator := (b.Y-a.Y)*c.X - (b.X-a.X)*c.Y + b.X*a.Y - b.Y*a.X
	return numerator * numerator / denominator
}

// Find the candidate farthest from the line through segment. Ties go to the
// first candidate found. Candidates on the line (distance zero) are never
// returned: if nothing lies off the line, the segment is already a hull edge
// and the result is nil.
func FarthestPoint(segment *Segment, candidates []*Point) *Point {
	if segment.IsDegenerate() {
		return nil
	}
	var (
		farthest *Point
		maxDist  float64
	)
	for _, c := range candidates {
		dist := DistanceSq(segment, c)
		if dist > maxDist {
			maxDist = dist
			farthest = c
		}
	}
	return farthest
}
