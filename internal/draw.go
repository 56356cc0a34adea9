package internal

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/jbeda/geom"
)

type RenderOptions struct {
	Width, Height int
	// Space left around the points, in pixels.
	Padding     float64
	PointRadius float64
	LineWidth   float64
	// Put the origin at the bottom left instead of the top left.
	FlipY bool

	Background string
	PointColor string
	HullColor  string
}

var DefaultRenderOptions = RenderOptions{
	Width:       1000,
	Height:      800,
	Padding:     40,
	PointRadius: 2,
	LineWidth:   2,
	Background:  "#333333",
	PointColor:  "#ffffff",
	HullColor:   "#00fa00",
}

// Draw the points and the closed hull polygon through them. The point set is
// scaled uniformly to fit the canvas.
func Render(points []*Point, hull HullSequence, opts RenderOptions) *gg.Context {
	c := gg.NewContext(opts.Width, opts.Height)
	c.SetHexColor(opts.Background)
	c.Clear()
	if len(points) == 0 {
		return c
	}

	transform := fitTransform(points, opts)

	c.SetHexColor(opts.PointColor)
	for _, p := range points {
		x, y := transform(p)
		c.DrawCircle(x, y, opts.PointRadius)
		c.Fill()
	}

	if len(hull) < 2 {
		return c
	}
	c.SetHexColor(opts.HullColor)
	c.SetLineWidth(opts.LineWidth)
	x, y := transform(hull[0])
	c.MoveTo(x, y)
	for _, p := range hull[1:] {
		x, y := transform(p)
		c.LineTo(x, y)
	}
	c.ClosePath()
	c.Stroke()
	return c
}

func Bounds(points []*Point) geom.Rect {
	first := geom.Coord{X: points[0].X, Y: points[0].Y}
	r := geom.Rect{Min: first, Max: first}
	for _, p := range points[1:] {
		r.ExpandToContainCoord(geom.Coord{X: p.X, Y: p.Y})
	}
	return r
}

// Map point coordinates to canvas pixels, centering the bounding box.
func fitTransform(points []*Point, opts RenderOptions) func(*Point) (float64, float64) {
	bounds := Bounds(points)
	width := bounds.Max.X - bounds.Min.X
	height := bounds.Max.Y - bounds.Min.Y
	availableWidth := float64(opts.Width) - 2*opts.Padding
	availableHeight := float64(opts.Height) - 2*opts.Padding

	scale := 1.0
	switch {
	case width > 0 && height > 0:
		scale = math.Min(availableWidth/width, availableHeight/height)
	case width > 0:
		scale = availableWidth / width
	case height > 0:
		scale = availableHeight / height
	}

	offsetX := (float64(opts.Width) - width*scale) / 2
	offsetY := (float64(opts.Height) - height*scale) / 2
	return func(p *Point) (float64, float64) {
		x := offsetX + (p.X-bounds.Min.X)*scale
		y := offsetY + (p.Y-bounds.Min.Y)*scale
		if opts.FlipY {
			y = float64(opts.Height) - y
		}
		return x, y
	}
}

func SavePNG(path string, points []*Point, hull HullSequence, opts RenderOptions) error {
	return Render(points, hull, opts).SavePNG(path)
}

func EncodePNG(w io.Writer, points []*Point, hull HullSequence, opts RenderOptions) error {
	return Render(points, hull, opts).EncodePNG(w)
}
