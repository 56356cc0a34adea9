package internal

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// The expander grows the hull between two known hull vertices P and Q, given
// the candidates known to lie right of P->Q. There are two strategies, and
// they produce the same sequence:
//
// expandInPlace inserts each new vertex into one shared HullSequence, locating
// P and Q by handle. This is simple, but the insert makes the sequence the
// only shared mutable state, so it has to run on one goroutine.
//
// expandMerged instead returns the vertices strictly between P and Q, in
// order, and the caller splices them in. The two branches of each step then
// share nothing, so they can run concurrently.
type expander struct {
	orientation Orientation
	trace       *Tracer
	parallel    bool
	threshold   int
}

func newExpander(opts Options) *expander {
	threshold := opts.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}
	return &expander{
		orientation: opts.Orientation,
		trace:       opts.Trace,
		parallel:    opts.Parallel,
		threshold:   threshold,
	}
}

// Split candidates around the new vertex c. Points inside triangle p-c-q are
// dropped; they can't be on the hull.
func (e *expander) split(candidates []*Point, p, c, q *Point) (s1, s2 []*Point) {
	s1 = RightOf(&Segment{p, c}, candidates, e.orientation)
	s2 = RightOf(&Segment{c, q}, candidates, e.orientation)
	return s1, s2
}

func (e *expander) farthest(candidates []*Point, p, q *Point) *Point {
	segment := &Segment{p, q}
	c := FarthestPoint(segment, candidates)
	e.trace.expansion(segment, len(candidates), c)
	return c
}

func (e *expander) expandInPlace(hull *HullSequence, candidates []*Point, p, q *Point) {
	if len(candidates) == 0 {
		return
	}
	c := e.farthest(candidates, p, q)
	if c == nil {
		return
	}
	hull.InsertBetween(p, q, c)

	s1, s2 := e.split(candidates, p, c, q)
	e.expandInPlace(hull, s1, p, c)
	e.expandInPlace(hull, s2, c, q)
}

func (e *expander) expandMerged(candidates []*Point, p, q *Point) []*Point {
	if len(candidates) == 0 {
		return nil
	}
	c := e.farthest(candidates, p, q)
	if c == nil {
		return nil
	}

	s1, s2 := e.split(candidates, p, c, q)
	before, after := e.both(len(candidates),
		func() []*Point { return e.expandMerged(s1, p, c) },
		func() []*Point { return e.expandMerged(s2, c, q) },
	)

	result := make([]*Point, 0, len(before)+1+len(after))
	result = append(result, before...)
	result = append(result, c)
	return append(result, after...)
}

// Run two independent expansions over n candidates. When running in parallel
// and n is large enough, the first runs on a new goroutine. Any panic on that
// goroutine is carried back and re-raised here with its original value, so it
// behaves as if both had run inline: the public API's recover sees a
// QuickhullError, and anything else still reaches the caller.
func (e *expander) both(n int, first, second func() []*Point) (a, b []*Point) {
	if !e.parallel || n < e.threshold {
		return first(), second()
	}

	var g errgroup.Group
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = workerPanic{r}
			}
		}()
		a = first()
		return nil
	})
	b = second()
	if err := g.Wait(); err != nil {
		panic(err.(workerPanic).value)
	}
	return a, b
}

// A panic value recovered on a worker goroutine, travelling back through the
// errgroup.
type workerPanic struct {
	value interface{}
}

func (p workerPanic) Error() string {
	return fmt.Sprintf("expansion worker panicked: %v", p.value)
}
