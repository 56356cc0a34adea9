package internal

import (
	"strconv"
	"strings"
)

// Position of p in the sequence by handle, or -1.
func (h HullSequence) IndexOf(p *Point) int {
	for i, vertex := range h {
		if vertex == p {
			return i
		}
	}
	return -1
}

// Insert c so that it sits between p and q in cyclic order. If p precedes q,
// c goes right after p. Otherwise the edge p->q wraps around the end of the
// slice, and c goes right before q.
//
// Both p and q must already be in the sequence.
func (h *HullSequence) InsertBetween(p, q, c *Point) {
	pIndex := h.IndexOf(p)
	qIndex := h.IndexOf(q)
	if pIndex < 0 || qIndex < 0 {
		fatalf("cannot insert %v between %v and %v: endpoint missing from hull", c, p, q)
	}

	at := qIndex
	if pIndex < qIndex {
		at = pIndex + 1
	}
	*h = append(*h, nil)
	copy((*h)[at+1:], (*h)[at:])
	(*h)[at] = c
}

// Rotate the sequence in place so that it starts at p. This doesn't change the
// polygon, only where we start reading it. Does nothing if p is absent.
func (h HullSequence) RotateTo(p *Point) {
	start := h.IndexOf(p)
	if start <= 0 {
		return
	}
	rotated := make(HullSequence, 0, len(h))
	rotated = append(rotated, h[start:]...)
	rotated = append(rotated, h[:start]...)
	copy(h, rotated)
}

func (h HullSequence) Polygon() Polygon {
	return Polygon{Points: []*Point(h)}
}

func (p *Point) String() string {
	return "(" + strconv.FormatFloat(p.X, 'f', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'f', -1, 64) + ")"
}

func (h HullSequence) String() string {
	parts := make([]string, len(h))
	for i, p := range h {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
