package internal

// Find the points with minimum and maximum X. When several points share an
// extreme value, the first one in iteration order wins, so results are
// reproducible for a given input order.
//
// The points slice must be non-empty.
func ExtremalPair(points []*Point) (min, max *Point) {
	return extremalPair(points, func(p *Point) float64 { return p.X })
}

// Same as ExtremalPair, but along Y. This is only used when every point shares
// the same X value, in which case ExtremalPair would return the same handle
// twice.
func ExtremalPairY(points []*Point) (min, max *Point) {
	return extremalPair(points, func(p *Point) float64 { return p.Y })
}

func extremalPair(points []*Point, key func(*Point) float64) (min, max *Point) {
	if len(points) == 0 {
		fatalf("cannot find extremal pair of empty point set")
	}
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if key(p) < key(min) {
			min = p
		}
		if key(p) > key(max) {
			max = p
		}
	}
	return min, max
}
