// A convex hull package for Go, using Quickhull.
//
// This package takes a set of 2-D points and returns the vertices of their
// convex hull, in order around the boundary. The returned points are the same
// pointers that were passed in, never copies.
package quickhull

import "github.com/osuushi/quickhull/advanced"

type Point = advanced.Point
type Orientation = advanced.Orientation
type Options = advanced.Options

const (
	Clockwise        = advanced.Clockwise
	CounterClockwise = advanced.CounterClockwise
)

// Distances are computed from squared products of coordinates, which
// overflow past this magnitude.
const MaxCoordinate = advanced.MaxCoordinate

// Compute the convex hull of a set of points.
//
// The hull starts at the point with the smallest X (the first such point, if
// several share it) and winds clockwise in a y-up frame. Fewer than two points
// give an empty hull.
//
// Points lying on a hull edge are usually not vertices. The exception is ties:
// when several points share the min or max X, or several candidates are
// equally far from an edge, the first one wins and is kept even if it sits in
// the middle of an edge. Running Hull again on such a result drops those
// vertices, so the hull of a hull is only guaranteed to be the same polygon,
// not the same vertex list.
//
// Duplicated coordinates are tolerated, but callers should dedupe first if
// they care which of the duplicates is returned. The only error is invalid
// input: a nil point, or a coordinate that is non-finite or larger in
// magnitude than MaxCoordinate.
func Hull(points ...*Point) (result []*Point, err error) {
	return HullWithOptions(Options{}, points...)
}

// Like Hull, but with control over winding and parallelism.
func HullWithOptions(opts Options, points ...*Point) (result []*Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleQuickhullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return []*Point(advanced.QuickHull(points, opts)), nil
}
