package internal

type Point struct {
	X float64
	Y float64
}

// Note that all points involved with the hull are pointers. Hull vertices are
// handles into the caller's point slice, never copies, and "already placed"
// checks compare handles rather than coordinates. We should never modify a
// point value from the input.
type Segment struct {
	Start *Point
	End   *Point
}

// A hull sequence is stored linearly but is conceptually cyclic: the last
// vertex connects back to the first.
type HullSequence []*Point

type PointSet map[*Point]struct{}

// Orientation fixes which way the partitioner rotates a segment's direction
// vector to get its perpendicular. The names describe the winding of the
// resulting hull in a y-up coordinate frame. On a y-down screen the visual
// winding is the opposite.
type Orientation int

const (
	// Perpendicular (-dy, dx). This is the default.
	Clockwise Orientation = iota
	// Perpendicular (dy, -dx).
	CounterClockwise
)

type Options struct {
	Orientation Orientation
	// Run the two branches of each expansion concurrently.
	Parallel bool
	// Candidate sets smaller than this are expanded inline even when Parallel
	// is set. Zero means DefaultParallelThreshold.
	ParallelThreshold int
	// If non-nil, one line is written per expansion step.
	Trace *Tracer
}

const DefaultParallelThreshold = 2048
