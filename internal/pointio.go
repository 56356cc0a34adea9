package internal

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Readers for the point formats the command line tool accepts. These sit at
// the boundary, so unlike the algorithm they return errors instead of
// panicking.

// Read newline separated points in the form "x y" (a comma works as a
// separator too). Blank lines and lines starting with '#' are skipped.
func ReadPoints(in io.Reader) ([]*Point, error) {
	var points []*Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(s string) (*Point, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(parts) != 2 {
		return nil, errors.Errorf("invalid point %q: want two coordinates", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return &Point{X: x, Y: y}, nil
}

// Read points out of an SVG document. This is not a full (or even correct) svg
// reader. Every <circle> contributes its center, and every <polygon> and
// <polyline> contributes its vertices, in document order. Transforms are
// ignored.
func ReadPointsSVG(in io.Reader) ([]*Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []*Point
	var walk func(el *svgparser.Element) error
	walk = func(el *svgparser.Element) error {
		switch el.Name {
		case "circle":
			point, err := parseCoordinates(el.Attributes["cx"], el.Attributes["cy"])
			if err != nil {
				return errors.Wrap(err, "circle")
			}
			points = append(points, point)
		case "polygon", "polyline":
			for _, pair := range strings.Fields(el.Attributes["points"]) {
				coordinates := strings.Split(pair, ",")
				if len(coordinates) != 2 {
					return errors.Errorf("%s: invalid point string %q", el.Name, pair)
				}
				point, err := parseCoordinates(coordinates[0], coordinates[1])
				if err != nil {
					return errors.Wrap(err, el.Name)
				}
				points = append(points, point)
			}
		}
		for _, child := range el.Children {
			if err := walk(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(root); err != nil {
		return nil, err
	}
	return points, nil
}

func parseCoordinates(xString, yString string) (*Point, error) {
	// SVG allows omitting cx/cy, which means zero.
	var x, y float64
	var err error
	if xString != "" {
		if x, err = strconv.ParseFloat(xString, 64); err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", xString)
		}
	}
	if yString != "" {
		if y, err = strconv.ParseFloat(yString, 64); err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", yString)
		}
	}
	return &Point{X: x, Y: y}, nil
}

// Drop points whose coordinates exactly match an earlier point. The first
// occurrence is kept, so tie breaking downstream stays deterministic.
func Dedupe(points []*Point) []*Point {
	seen := make(map[Point]struct{}, len(points))
	result := make([]*Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[*p]; ok {
			continue
		}
		seen[*p] = struct{}{}
		result = append(result, p)
	}
	return result
}
