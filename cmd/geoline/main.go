// Command geoline runs the geometry operations of package geoline on JSON
// scenes.
//
// Usage:
//
//	geoline offset -d 5 [-side 0|1] [-format json|svg] [scene.json]
//	geoline bold -d 2 [-format json|svg] [scene.json]
//	geoline break -at "x,y x,y" [-format json|svg] [scene.json]
//	geoline stroke -points "x,y x,y ..." -w 4 [-cap butt|round|square] [-join miter|round|bevel] [-format json|png]
//	geoline hatch -at "x,y" [-format json|svg|png] [scene.json]
//
// Scenes are read from the named file or standard input and results are
// written to standard output, or to the file given with -o.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf/graphics"

	"honnef.co/go/geoline"
	"honnef.co/go/geoline/internal/config"
	"honnef.co/go/geoline/internal/scene"
	"honnef.co/go/geoline/raster"
)

var errUsage = errors.New("usage: geoline offset|bold|break|stroke|hatch [flags] [scene.json]")

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	geoline.SetLogger(logger)

	if err := run(cfg, os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("geoline", "error", err)
		os.Exit(1)
	}
}

type command struct {
	cfg    *config.Config
	flags  *flag.FlagSet
	format *string
	output *string
	stdin  io.Reader
	stdout io.Writer
}

func run(cfg *config.Config, args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	name := args[0]
	c := &command{
		cfg:    cfg,
		flags:  flag.NewFlagSet(name, flag.ContinueOnError),
		stdin:  stdin,
		stdout: stdout,
	}
	c.format = c.flags.String("format", "json", "output format")
	c.output = c.flags.String("o", "", "output file (default standard output)")

	switch name {
	case "offset":
		return c.offset(args[1:])
	case "bold":
		return c.bold(args[1:])
	case "break":
		return c.breakLines(args[1:])
	case "stroke":
		return c.stroke(args[1:])
	case "hatch":
		return c.hatch(args[1:])
	default:
		return fmt.Errorf("unknown command %q: %w", name, errUsage)
	}
}

func (c *command) readScene() (*scene.Scene, error) {
	r := c.stdin
	if path := c.flags.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return scene.Decode(r)
}

func (c *command) writer() (io.Writer, func() error, error) {
	if *c.output == "" {
		return c.stdout, func() error { return nil }, nil
	}
	f, err := os.Create(*c.output)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// writeLoops writes chains as a scene or as SVG path data, one path per
// line of output.
func (c *command) writeLoops(loops [][]geoline.GeometryLine) error {
	w, done, err := c.writer()
	if err != nil {
		return err
	}
	switch *c.format {
	case "json":
		err = scene.Encode(w, scene.FromLoops(loops))
	case "svg":
		for _, l := range loops {
			if err = geoline.ChainPath(l, c.cfg.ArcTolerance).WriteSVG(w, geoline.SVGOptions{MaxPrecision: 6}); err != nil {
				break
			}
			if _, err = io.WriteString(w, "\n"); err != nil {
				break
			}
		}
	default:
		err = fmt.Errorf("unsupported format %q", *c.format)
	}
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

func (c *command) offset(args []string) error {
	distance := c.flags.Float64("d", 1, "offset distance")
	side := c.flags.Int("side", 0, "side to offset to, 0 or 1")
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	if *side != 0 && *side != 1 {
		return fmt.Errorf("side must be 0 or 1, got %d", *side)
	}
	s, err := c.readScene()
	if err != nil {
		return err
	}
	var out [][]geoline.GeometryLine
	for _, lines := range s.Lines() {
		if r := geoline.ParallelGeometryLines(lines, *distance, geoline.Side(*side)); len(r) > 0 {
			out = append(out, r)
		}
	}
	return c.writeLoops(out)
}

func (c *command) bold(args []string) error {
	distance := c.flags.Float64("d", 1, "bold distance")
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	s, err := c.readScene()
	if err != nil {
		return err
	}
	return c.writeLoops(geoline.BoldGeometryLines(s.Lines(), *distance))
}

func (c *command) breakLines(args []string) error {
	at := c.flags.String("at", "", "break points, as \"x,y x,y\"")
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	pts, err := parsePoints(*at)
	if err != nil {
		return err
	}
	s, err := c.readScene()
	if err != nil {
		return err
	}
	var out [][]geoline.GeometryLine
	for _, lines := range s.Lines() {
		out = append(out, geoline.BreakGeometryLines(lines, pts)...)
	}
	return c.writeLoops(out)
}

func (c *command) stroke(args []string) error {
	points := c.flags.String("points", "", "polyline, as \"x,y x,y ...\"")
	width := c.flags.Float64("w", 1, "stroke width")
	capName := c.flags.String("cap", "butt", "line cap: butt, round or square")
	joinName := c.flags.String("join", "miter", "line join: miter, round or bevel")
	closed := c.flags.Bool("closed", false, "close the polyline")
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	pts, err := parsePoints(*points)
	if err != nil {
		return err
	}
	style := c.cfg.StrokeStyle().WithWidth(*width).WithClosed(*closed).WithRoundStep(c.cfg.ArcStep)
	switch *capName {
	case "butt":
		style = style.WithCap(graphics.LineCapButt)
	case "round":
		style = style.WithCap(graphics.LineCapRound)
	case "square":
		style = style.WithCap(graphics.LineCapSquare)
	default:
		return fmt.Errorf("unknown cap %q", *capName)
	}
	switch *joinName {
	case "miter":
		style = style.WithJoin(graphics.LineJoinMiter)
	case "round":
		style = style.WithJoin(graphics.LineJoinRound)
	case "bevel":
		style = style.WithJoin(graphics.LineJoinBevel)
	default:
		return fmt.Errorf("unknown join %q", *joinName)
	}
	tris := geoline.PolylineTriangles(pts, style)

	w, done, err := c.writer()
	if err != nil {
		return err
	}
	switch *c.format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(tris)
	case "png":
		bounds := geoline.NewRectFromPoints(pts[0], pts[0])
		for _, p := range pts {
			bounds = bounds.UnionPoint(p)
		}
		bounds = bounds.Inflate(*width, *width)
		canvas := raster.Canvas{Bounds: bounds, Scale: c.cfg.RasterScale}
		err = png.Encode(w, canvas.FillTriangles(tris))
	default:
		err = fmt.Errorf("unsupported format %q", *c.format)
	}
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

func (c *command) hatch(args []string) error {
	at := c.flags.String("at", "", "position inside the region, as \"x,y\"")
	if err := c.flags.Parse(args); err != nil {
		return err
	}
	pts, err := parsePoints(*at)
	if err != nil {
		return err
	}
	if len(pts) != 1 {
		return fmt.Errorf("hatch needs one position, got %d", len(pts))
	}
	s, err := c.readScene()
	if err != nil {
		return err
	}
	bounds := s.Bounds().UnionPoint(pts[0]).Inflate(1, 1)
	h, ok := geoline.FindHatch(pts[0], bounds, s.Index(), c.cfg.HatchOptions())
	if !ok {
		return fmt.Errorf("no closed region around %v", pts[0])
	}
	if *c.format != "png" {
		return c.writeLoops(h.Loops())
	}
	w, done, err := c.writer()
	if err != nil {
		return err
	}
	canvas := raster.Canvas{Bounds: bounds, Scale: c.cfg.RasterScale}
	err = png.Encode(w, canvas.Fill(geoline.LoopsPath(h.Loops(), c.cfg.ArcTolerance)))
	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

// parsePoints parses points written as "x,y" separated by spaces or
// semicolons.
func parsePoints(s string) ([]geoline.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ';' })
	if len(fields) == 0 {
		return nil, errors.New("no points given")
	}
	pts := make([]geoline.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("point %q: missing comma", f)
		}
		x, err := strconv.ParseFloat(xs, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(ys, 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		pts = append(pts, geoline.Pt(x, y))
	}
	return pts, nil
}
