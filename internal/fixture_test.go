package internal

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// Fixtures are svg files in the fixtures/ directory, loaded by name sans
// extension. Each <circle> is an input point, and circles with class="hull"
// are the expected hull vertices. If anything goes wrong, it bails.

//go:embed fixtures
var fixtures embed.FS

type fixture struct {
	Points []*Point
	Hull   PointSet
}

func LoadFixture(name string) *fixture {
	file, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer file.Close()

	rootEl, err := svgparser.Parse(file, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	result := &fixture{Hull: make(PointSet)}
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", circle.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", circle.Attributes["cy"], err)
		}
		point := &Point{x, y}
		result.Points = append(result.Points, point)
		if circle.Attributes["class"] == "hull" {
			result.Hull.Add(point)
		}
	}
	return result
}

// Some ad hoc fixtures

func SquareWithCenter() []*Point {
	return []*Point{
		{0, 0},
		{10, 0},
		{10, 10},
		{0, 10},
		{5, 5},
	}
}

// Points spread uniformly over a box. The generator is seeded so failures are
// reproducible.
func RandomBox(seed int64, n int, size float64) []*Point {
	r := rand.New(rand.NewSource(seed))
	points := make([]*Point, n)
	for i := range points {
		points[i] = &Point{X: r.Float64() * size, Y: r.Float64() * size}
	}
	return points
}

// Every integer point in [0, w) x [0, h), row by row.
func Lattice(w, h int) []*Point {
	points := make([]*Point, 0, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			points = append(points, &Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// n points evenly spaced on a circle, followed by the same number of points
// strictly inside it.
func RingWithInterior(seed int64, n int, radius float64) (ring []*Point, all []*Point) {
	r := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		ring = append(ring, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	all = append(all, ring...)
	for i := 0; i < n; i++ {
		angle := r.Float64() * 2 * math.Pi
		distance := r.Float64() * radius * 0.9
		all = append(all, &Point{X: distance * math.Cos(angle), Y: distance * math.Sin(angle)})
	}
	r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return ring, all
}
