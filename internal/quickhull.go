package internal

// Build the convex hull of points with Quickhull.
//
// The result holds handles into points, starting at the min-x point and
// winding according to opts.Orientation. A point lying on a hull edge only
// becomes a vertex when it wins a tie: a seed picked by first occurrence among
// points sharing the min or max X, or the first of several candidates at the
// same maximum distance. Such vertices have zero turn, so feeding the result
// back in can drop them. Fewer than two points give an empty hull, even for
// exactly one point; a set whose points all coincide gives a single vertex.
//
// The points slice is only read.
func QuickHull(points []*Point, opts Options) HullSequence {
	ValidatePoints(points)
	if len(points) < 2 {
		return HullSequence{}
	}

	a, b := ExtremalPair(points)
	if a == b {
		// Every point has the same X. The hull is a vertical segment (or a single
		// point), so seed with the Y extremes instead.
		a, b = ExtremalPairY(points)
		if a == b {
			return HullSequence{a}
		}
	}

	e := newExpander(opts)
	right, left := Partition(&Segment{a, b}, points, opts.Orientation)
	e.trace.seed(a, b, len(right), len(left))

	if opts.Parallel {
		// [a, ...right side..., b, ...left side...]
		above, below := e.both(len(points),
			func() []*Point { return e.expandMerged(right, a, b) },
			func() []*Point { return e.expandMerged(left, b, a) },
		)
		hull := make(HullSequence, 0, len(above)+len(below)+2)
		hull = append(hull, a)
		hull = append(hull, above...)
		hull = append(hull, b)
		return append(hull, below...)
	}

	hull := HullSequence{a, b}
	e.expandInPlace(&hull, right, a, b)
	e.expandInPlace(&hull, left, b, a)
	hull.RotateTo(a)
	return hull
}
