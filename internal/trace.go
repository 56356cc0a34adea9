package internal

import (
	"fmt"
	"io"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/quickhull/internal/dbg"
)

// Tracer writes a line per expansion step. Lines are written whole under a
// lock, so the parallel builder can share one.
type Tracer struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

func NewTracer(w io.Writer, color bool) *Tracer {
	return &Tracer{w: w, color: color}
}

func (t *Tracer) Printf(format string, args ...interface{}) {
	if t == nil {
		return
	}
	line := fmt.Sprintf(format, args...)
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.w, line)
}

func (t *Tracer) seed(a, b *Point, right, left int) {
	if t == nil {
		return
	}
	t.Printf("seed %s -> %s: %d right, %d left", t.name(a, aurora.Cyan), t.name(b, aurora.Cyan), right, left)
}

func (t *Tracer) expansion(segment *Segment, candidates int, farthest *Point) {
	if t == nil {
		return
	}
	start, end := t.name(segment.Start, aurora.Cyan), t.name(segment.End, aurora.Cyan)
	if farthest == nil {
		t.Printf("expand %s -> %s: %d candidates, %s", start, end, candidates, t.paint("edge", aurora.Red))
		return
	}
	t.Printf("expand %s -> %s: %d candidates, farthest %s %v", start, end, candidates, t.name(farthest, aurora.Green), farthest)
}

func (t *Tracer) name(p *Point, color func(interface{}) aurora.Value) string {
	return t.paint(p.DbgName(), color)
}

func (t *Tracer) paint(s string, color func(interface{}) aurora.Value) string {
	if !t.color {
		return s
	}
	return color(s).String()
}

func (p *Point) DbgName() string {
	return dbg.Name(p)
}
