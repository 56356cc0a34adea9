package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/quickhull/internal"
	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Compute the convex hull of a point set. Input is either newline separated
// points in the form "x y", or an SVG file whose circles and polygons supply
// the points. The hull is written to stdout in the same "x y" form, one vertex
// per line, in boundary order.
//
// Points are deduplicated by exact coordinates before the hull is built,
// keeping the first occurrence.

type flags struct {
	input             string
	format            string
	config            string
	orientation       string
	parallel          bool
	parallelThreshold int
	keepDuplicates    bool
	png               string
	imgcat            bool
	width, height     int
	flipY             bool
	trace             bool
	verbose           bool
	stats             bool
	color             bool
	cpuProfile        string
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	app := kingpin.New("quickhull", "Compute the convex hull of a set of 2-D points.")
	app.Arg("input", "Point file to read. Defaults to stdin.").StringVar(&f.input)
	app.Flag("format", "Input format: text or svg. Defaults to svg for .svg files, text otherwise.").Short('f').StringVar(&f.format)
	app.Flag("config", "YAML file with defaults for the other settings.").Short('c').StringVar(&f.config)
	app.Flag("orientation", "Hull winding in a y-up frame: cw or ccw.").Short('o').StringVar(&f.orientation)
	app.Flag("parallel", "Expand independent hull branches concurrently.").BoolVar(&f.parallel)
	app.Flag("parallel-threshold", "Smallest candidate set worth a goroutine.").IntVar(&f.parallelThreshold)
	app.Flag("keep-duplicates", "Don't drop points with repeated coordinates.").BoolVar(&f.keepDuplicates)
	app.Flag("png", "Render the points and hull to this PNG file.").StringVar(&f.png)
	app.Flag("imgcat", "Show the rendering in the terminal (iTerm only).").BoolVar(&f.imgcat)
	app.Flag("width", "Rendering width in pixels.").IntVar(&f.width)
	app.Flag("height", "Rendering height in pixels.").IntVar(&f.height)
	app.Flag("flip-y", "Render with the origin at the bottom left.").BoolVar(&f.flipY)
	app.Flag("trace", "Write each expansion step to stderr.").BoolVar(&f.trace)
	app.Flag("verbose", "List hull vertices with readable names on stderr.").Short('v').BoolVar(&f.verbose)
	app.Flag("stats", "Print point and vertex counts and hull area to stderr.").BoolVar(&f.stats)
	app.Flag("color", "Colorize trace and verbose output.").Default("true").BoolVar(&f.color)
	app.Flag("cpuprofile", "Write a CPU profile to this directory.").StringVar(&f.cpuProfile)

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// Fold the flags over the config. Only flags that were actually given
// override; zero values mean "not given".
func (f *flags) apply(config Config) (Config, error) {
	if f.orientation != "" {
		config.Orientation = f.orientation
	}
	if f.parallel {
		config.Parallel = true
	}
	if f.parallelThreshold > 0 {
		config.ParallelThreshold = f.parallelThreshold
	}
	if f.keepDuplicates {
		config.Dedupe = false
	}
	if f.width > 0 {
		config.Render.Width = f.width
	}
	if f.height > 0 {
		config.Render.Height = f.height
	}
	if f.flipY {
		config.Render.FlipY = true
	}
	return config, config.Validate()
}

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if f.cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(f.cpuProfile), profile.NoShutdownHook).Stop()
	}
	if err := run(f, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(f *flags, stdin io.Reader, stdout, stderr io.Writer) error {
	config := DefaultConfig()
	if f.config != "" {
		var err error
		if config, err = LoadConfig(f.config); err != nil {
			return err
		}
	}
	config, err := f.apply(config)
	if err != nil {
		return err
	}

	points, err := readInput(f, stdin)
	if err != nil {
		return err
	}
	if config.Dedupe {
		points = internal.Dedupe(points)
	}

	var tracer *internal.Tracer
	if f.trace {
		tracer = internal.NewTracer(stderr, f.color)
	}
	hull, err := buildHull(points, config.Options(tracer))
	if err != nil {
		return err
	}

	for _, p := range hull {
		fmt.Fprintln(stdout, formatFloat(p.X), formatFloat(p.Y))
	}
	if f.verbose {
		writeVerbose(stderr, hull, f.color)
	}
	if f.stats {
		fmt.Fprintf(stderr, "points: %d\nvertices: %d\narea: %s\n", len(points), len(hull), formatFloat(hull.Polygon().Area()))
	}

	if f.png != "" || f.imgcat {
		return render(f, points, hull, config.RenderOptions())
	}
	return nil
}

func readInput(f *flags, stdin io.Reader) ([]*internal.Point, error) {
	in := stdin
	if f.input != "" && f.input != "-" {
		file, err := os.Open(f.input)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer file.Close()
		in = file
	}

	format := f.format
	if format == "" {
		format = "text"
		if strings.EqualFold(filepath.Ext(f.input), ".svg") {
			format = "svg"
		}
	}
	switch format {
	case "text":
		return internal.ReadPoints(in)
	case "svg":
		return internal.ReadPointsSVG(in)
	}
	return nil, errors.Errorf("unknown format %q, want text or svg", format)
}

func buildHull(points []*internal.Point, opts internal.Options) (hull internal.HullSequence, err error) {
	defer func() {
		recoveredErr := internal.HandleQuickhullPanicRecover(recover())
		if recoveredErr != nil {
			hull = nil
			err = recoveredErr
		}
	}()
	return internal.QuickHull(points, opts), nil
}

func writeVerbose(w io.Writer, hull internal.HullSequence, color bool) {
	for i, p := range hull {
		name := p.DbgName()
		if color {
			name = aurora.Green(name).String()
		}
		fmt.Fprintf(w, "%3d %s %v\n", i, name, p)
	}
}

func render(f *flags, points []*internal.Point, hull internal.HullSequence, opts internal.RenderOptions) error {
	path := f.png
	if path == "" {
		file, err := os.CreateTemp("", "quickhull-*.png")
		if err != nil {
			return errors.Wrap(err, "creating preview file")
		}
		file.Close()
		path = file.Name()
		defer os.Remove(path)
	}
	if err := internal.SavePNG(path, points, hull, opts); err != nil {
		return errors.Wrap(err, "saving png")
	}
	if f.imgcat {
		imgcat.CatFile(path, os.Stderr)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
