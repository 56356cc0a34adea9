package main

import (
	"os"

	"github.com/osuushi/quickhull/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the defaults a run starts from. A YAML file can replace any of
// them, and flags given on the command line win over both.
type Config struct {
	// "cw" or "ccw"
	Orientation       string       `yaml:"orientation"`
	Parallel          bool         `yaml:"parallel"`
	ParallelThreshold int          `yaml:"parallel_threshold"`
	Dedupe            bool         `yaml:"dedupe"`
	Render            RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	Padding     float64 `yaml:"padding"`
	PointRadius float64 `yaml:"point_radius"`
	LineWidth   float64 `yaml:"line_width"`
	FlipY       bool    `yaml:"flip_y"`
	Background  string  `yaml:"background"`
	PointColor  string  `yaml:"point_color"`
	HullColor   string  `yaml:"hull_color"`
}

func DefaultConfig() Config {
	render := internal.DefaultRenderOptions
	return Config{
		Orientation:       "cw",
		ParallelThreshold: internal.DefaultParallelThreshold,
		Dedupe:            true,
		Render: RenderConfig{
			Width:       render.Width,
			Height:      render.Height,
			Padding:     render.Padding,
			PointRadius: render.PointRadius,
			LineWidth:   render.LineWidth,
			FlipY:       render.FlipY,
			Background:  render.Background,
			PointColor:  render.PointColor,
			HullColor:   render.HullColor,
		},
	}
}

// Load a config file over the defaults. Keys missing from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

func (c Config) Validate() error {
	if _, err := parseOrientation(c.Orientation); err != nil {
		return err
	}
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return errors.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	return nil
}

func (c Config) Options(trace *internal.Tracer) internal.Options {
	orientation, _ := parseOrientation(c.Orientation)
	return internal.Options{
		Orientation:       orientation,
		Parallel:          c.Parallel,
		ParallelThreshold: c.ParallelThreshold,
		Trace:             trace,
	}
}

func (c Config) RenderOptions() internal.RenderOptions {
	return internal.RenderOptions{
		Width:       c.Render.Width,
		Height:      c.Render.Height,
		Padding:     c.Render.Padding,
		PointRadius: c.Render.PointRadius,
		LineWidth:   c.Render.LineWidth,
		FlipY:       c.Render.FlipY,
		Background:  c.Render.Background,
		PointColor:  c.Render.PointColor,
		HullColor:   c.Render.HullColor,
	}
}

func parseOrientation(s string) (internal.Orientation, error) {
	switch s {
	case "cw", "clockwise":
		return internal.Clockwise, nil
	case "ccw", "counterclockwise":
		return internal.CounterClockwise, nil
	}
	return internal.Clockwise, errors.Errorf("unknown orientation %q, want cw or ccw", s)
}
