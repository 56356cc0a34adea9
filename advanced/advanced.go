// Package advanced exposes the individual steps of Quickhull, for callers who
// want to run or instrument them separately. Most callers want the top level
// quickhull package instead.
//
// Functions here panic on invalid input, like the algorithm internals do.
// Wrap calls with HandleQuickhullPanicRecover to get errors back.
package advanced

import (
	"io"

	"github.com/osuushi/quickhull/internal"
)

type Point = internal.Point
type Segment = internal.Segment
type HullSequence = internal.HullSequence
type Polygon = internal.Polygon
type Orientation = internal.Orientation
type Options = internal.Options
type Tracer = internal.Tracer
type QuickhullError = internal.QuickhullError

const (
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise
)

const DefaultParallelThreshold = internal.DefaultParallelThreshold

const MaxCoordinate = internal.MaxCoordinate

// The points with minimum and maximum X, first occurrence winning ties.
func ExtremalPair(points []*Point) (min, max *Point) {
	return internal.ExtremalPair(points)
}

// Split points into those right of or on the directed line through segment,
// and those left of it. The segment's endpoints are skipped.
func Partition(segment *Segment, points []*Point, orientation Orientation) (right, left []*Point) {
	return internal.Partition(segment, points, orientation)
}

// Squared distance from c to the line through segment, zero for a degenerate
// segment.
func DistanceSq(segment *Segment, c *Point) float64 {
	return internal.DistanceSq(segment, c)
}

// The candidate farthest off the line through segment, or nil if none is off
// it.
func FarthestPoint(segment *Segment, candidates []*Point) *Point {
	return internal.FarthestPoint(segment, candidates)
}

// Build the hull. See quickhull.Hull for the contract.
func QuickHull(points []*Point, opts Options) HullSequence {
	return internal.QuickHull(points, opts)
}

func NewTracer(w io.Writer, color bool) *Tracer {
	return internal.NewTracer(w, color)
}

func HandleQuickhullPanicRecover(r interface{}) error {
	return internal.HandleQuickhullPanicRecover(r)
}
