package internal

import (
	"math"

	"github.com/pkg/errors"
)

// Threading errors up and down the recursive expansion would add a lot of
// noise for conditions that can only come from bad input or a broken
// invariant. Instead, we use panics, and the public API recovers to convert to
// an error.

type QuickhullError error

// Panic with a QuickhullError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleQuickhullPanicRecover(r interface{}) error {
	if r != nil {
		if quickhullError, ok := r.(QuickhullError); ok {
			return quickhullError
		}
		panic(r)
	}
	return nil
}

// Largest coordinate magnitude accepted. DistanceSq squares a product of two
// coordinate differences, so anything much bigger overflows to +Inf and the
// comparison turns into NaN.
const MaxCoordinate = 1e75

// Reject input the algorithm can't make sense of. Tighter range checks belong
// to the caller.
func ValidatePoints(points []*Point) {
	for i, p := range points {
		if p == nil {
			fatalf("point %d is nil", i)
		}
		if !p.IsFinite() {
			fatalf("point %d has non-finite coordinates: %v", i, p)
		}
		if math.Abs(p.X) > MaxCoordinate || math.Abs(p.Y) > MaxCoordinate {
			fatalf("point %d is out of range: %v exceeds %g", i, p, MaxCoordinate)
		}
	}
}
