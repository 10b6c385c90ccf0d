package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"honnef.co/go/easing"
	"honnef.co/go/easing/presetfile"
)

// common holds the flags every command accepts.
type common struct {
	presets string
	verbose bool
}

func newFlagSet(name string, c *common) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&c.presets, "presets", "", "Load additional presets from `file`")
	fs.BoolVar(&c.verbose, "v", false, "Log debug output to stderr")
	return fs
}

func (c *common) logger() *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (c *common) library(logger *slog.Logger) (*easing.Library, error) {
	if c.presets == "" {
		return easing.DefaultLibrary, nil
	}
	lib, err := presetfile.Load(c.presets, easing.DefaultLibrary)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded presets", "file", c.presets, "count", lib.Len()-easing.DefaultLibrary.Len())
	return lib, nil
}

func oneValue(fs *flag.FlagSet) (string, error) {
	if fs.NArg() < 1 {
		return "", errors.New("missing timing function")
	}
	return fs.Arg(0), nil
}

type parseResult struct {
	easing.Snapshot
	Preset string `json:"preset,omitempty"`
}

// Parse implements the 'easing parse' command.
func Parse(args []string, stdout io.Writer) error {
	var c common
	fs := newFlagSet("parse", &c)
	asJSON := fs.Bool("json", false, "Print JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := c.logger()
	lib, err := c.library(logger)
	if err != nil {
		return err
	}
	value, err := oneValue(fs)
	if err != nil {
		return err
	}

	coords, err := lib.Parse(value)
	if err != nil {
		return err
	}
	curve, err := easing.CurveOf(coords)
	if err != nil {
		return err
	}
	if curve.Coordinates() != coords {
		logger.Warn("time coordinates clamped", "input", value, "css", curve.String())
	}
	res := parseResult{
		Snapshot: easing.Snapshot{
			P1:  curve.P1().Pair(),
			P2:  curve.P2().Pair(),
			CSS: curve.String(),
		},
	}
	res.Preset, _ = lib.Match(curve.Coordinates())

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Fprintln(stdout, res.CSS)
	fmt.Fprintf(stdout, "P1: %s\nP2: %s\n", curve.P1(), curve.P2())
	if res.Preset != "" {
		fmt.Fprintf(stdout, "preset: %s\n", res.Preset)
	}
	return nil
}

// Eval implements the 'easing eval' command.
func Eval(args []string, stdout io.Writer) error {
	var c common
	fs := newFlagSet("eval", &c)
	n := fs.Int("n", 10, "Number of evenly spaced intervals, if no times are given")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lib, err := c.library(c.logger())
	if err != nil {
		return err
	}
	value, err := oneValue(fs)
	if err != nil {
		return err
	}
	coords, err := lib.Parse(value)
	if err != nil {
		return err
	}
	curve, err := easing.CurveOf(coords)
	if err != nil {
		return err
	}

	if fs.NArg() > 1 {
		for _, arg := range fs.Args()[1:] {
			x, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid time %q: %w", arg, err)
			}
			fmt.Fprintf(stdout, "%g\t%g\n", x, curve.Progress(x))
		}
		return nil
	}
	if *n < 1 {
		return fmt.Errorf("invalid number of intervals %d", *n)
	}
	for pt := range curve.Samples(*n) {
		fmt.Fprintf(stdout, "%g\t%g\n", pt.X, pt.Y)
	}
	return nil
}

// Presets implements the 'easing presets' command.
func Presets(args []string, stdout io.Writer) error {
	var c common
	fs := newFlagSet("presets", &c)
	category := fs.String("category", "", "Only list presets of this category")
	asJSON := fs.Bool("json", false, "Print JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	lib, err := c.library(c.logger())
	if err != nil {
		return err
	}

	presets := lib.All()
	if *category != "" {
		cat, err := easing.ParseCategory(*category)
		if err != nil {
			return err
		}
		presets = lib.InCategory(cat)
	}

	type jsonPreset struct {
		Name        string     `json:"name"`
		Category    string     `json:"category"`
		Coordinates [4]float64 `json:"coordinates"`
	}
	var out []jsonPreset
	for p := range presets {
		if *asJSON {
			out = append(out, jsonPreset{p.Name, p.Category.String(), p.Coordinates})
			continue
		}
		fmt.Fprintf(stdout, "%-20s %-12s %s\n", p.Name, p.Category, p.Coordinates)
	}
	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return nil
}

// plot is the surface the svg command renders onto: a square with a margin
// that leaves room for overshooting curves.
type plot struct {
	size, margin float64
}

func (p plot) PlotArea() easing.Rect {
	return easing.NewRectFromOrigin(easing.Pt(p.margin, p.margin), easing.Sz(p.size, p.size))
}

// SVG implements the 'easing svg' command.
func SVG(args []string, stdout io.Writer) error {
	var c common
	fs := newFlagSet("svg", &c)
	size := fs.Float64("size", 200, "Size of the plot area in pixels")
	precision := fs.Int("precision", 3, "Maximum number of decimal places")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := c.logger()
	lib, err := c.library(logger)
	if err != nil {
		return err
	}
	value, err := oneValue(fs)
	if err != nil {
		return err
	}

	p := plot{size: *size, margin: *size / 2}
	w, err := easing.New(p, value, &easing.Options{Library: lib, Logger: logger})
	if err != nil {
		return err
	}
	defer w.Destroy()

	curve, err := w.Curve()
	if err != nil {
		return err
	}
	area := p.PlotArea()
	aff := easing.MapUnitCurve(area)
	opts := easing.SVGOptions{MaxPrecision: *precision}
	handles := easing.SVG(easing.Transform(curve.HandleElements(), aff), opts)
	p1, err := w.ToPixel(curve.P1())
	if err != nil {
		return err
	}
	p2, err := w.ToPixel(curve.P2())
	if err != nil {
		return err
	}

	total := *size + 2*p.margin
	fmt.Fprintf(stdout, `<svg viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">`+"\n", total, total)
	fmt.Fprintf(stdout, `<rect x="%g" y="%g" width="%g" height="%g" fill="none" stroke="#ccc" />`+"\n",
		area.X0, area.Y0, area.Width(), area.Height())
	fmt.Fprintf(stdout, `<path d="%s" fill="none" stroke="#999" stroke-width="1" />`+"\n", handles)
	fmt.Fprintf(stdout, `<path d="%s" fill="none" stroke="black" stroke-width="2" />`+"\n", curve.SVGPath(area, opts))
	for _, pt := range []easing.Point{p1, p2} {
		fmt.Fprintf(stdout, `<circle cx="%g" cy="%g" r="%d" fill="#36c" />`+"\n", pt.X, pt.Y, easing.DefaultHandleRadius)
	}
	fmt.Fprintln(stdout, "</svg>")
	return nil
}
