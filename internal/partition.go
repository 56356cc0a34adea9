package internal

// Split points by which side of the directed line through segment they fall
// on. The segment's own endpoints (by handle) are skipped.
//
// Classification projects each point onto the perpendicular of the segment and
// compares against the projection of the segment's start. This is the same as
// the sign of Cross(start, end, p), negated for CounterClockwise. Points lying
// exactly on the line go to right, never to left. That keeps collinear points
// out of one branch of the recursion entirely, so they can't be processed
// twice.
func Partition(segment *Segment, points []*Point, orientation Orientation) (right, left []*Point) {
	a, b := segment.Start, segment.End
	perpX, perpY := perpendicular(segment, orientation)
	limit := perpX*a.X + perpY*a.Y

	for _, p := range points {
		if p == a || p == b {
			continue
		}
		if perpX*p.X+perpY*p.Y >= limit {
			right = append(right, p)
		} else {
			left = append(left, p)
		}
	}
	return right, left
}

// Like Partition, but only collects the right side. The expander discards the
// left side (it's inside the triangle it just created), so there is no reason
// to allocate for it.
func RightOf(segment *Segment, points []*Point, orientation Orientation) []*Point {
	a, b := segment.Start, segment.End
	perpX, perpY := perpendicular(segment, orientation)
	limit := perpX*a.X + perpY*a.Y

	var right []*Point
	for _, p := range points {
		if p == a || p == b {
			continue
		}
		if perpX*p.X+perpY*p.Y >= limit {
			right = append(right, p)
		}
	}
	return right
}

func perpendicular(segment *Segment, orientation Orientation) (x, y float64) {
	dx := segment.End.X - segment.Start.X
	dy := segment.End.Y - segment.Start.Y
	if orientation == CounterClockwise {
		return dy, -dx
	}
	return -dy, dx
}
