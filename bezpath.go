package geoline

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic bezier using the current location and the two points.
	QuadToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one element of a Bézier path.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case QuadToKind:
		kind = "QuadTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

// EndPoint returns the end point of the path element, or false if none exists. It exists
// for all kinds except for [ClosePathKind].
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a path built from lines, quadratic and cubic Béziers. Arcs are
// approximated by cubics.
type BezPath []PathElement

func (p *BezPath) Push(el PathElement) { *p = append(*p, el) }

func (p *BezPath) MoveTo(pt Point)          { p.Push(MoveTo(pt)) }
func (p *BezPath) LineTo(pt Point)          { p.Push(LineTo(pt)) }
func (p *BezPath) QuadTo(p1, p2 Point)      { p.Push(QuadTo(p1, p2)) }
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }
func (p *BezPath) ClosePath()               { p.Push(ClosePath()) }

func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

func (p BezPath) Transform(aff Affine) BezPath {
	out := make(BezPath, len(p))
	for i, el := range p {
		out[i] = el.Transform(aff)
	}
	return out
}

// ControlBox returns the bounding box of all points of the path, control
// points included.
func (p BezPath) ControlBox() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r, first = Rect{pt.X, pt.Y, pt.X, pt.Y}, false
			return
		}
		r = r.UnionPoint(pt)
	}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind, LineToKind:
			add(el.P0)
		case QuadToKind:
			add(el.P0)
			add(el.P1)
		case CubicToKind:
			add(el.P0)
			add(el.P1)
			add(el.P2)
		}
	}
	return r
}

func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// DefaultArcTolerance is the default maximum distance between an arc and
// the cubics approximating it.
const DefaultArcTolerance = 0.01

// AppendLine appends g to the path. It starts a new subpath unless the path
// already ends at g's start point. Arcs are approximated by cubics within
// tolerance.
func (p *BezPath) AppendLine(g GeometryLine, tolerance float64) {
	if tolerance <= 0 {
		tolerance = DefaultArcTolerance
	}
	if n := len(*p); n == 0 || (*p)[n-1].Kind == ClosePathKind {
		p.MoveTo(g.Start())
	} else if end, _ := (*p)[n-1].EndPoint(); !end.Equal(g.Start()) {
		p.MoveTo(g.Start())
	}
	switch g := g.(type) {
	case Line:
		p.LineTo(g.P1)
	case Arc:
		p.ellipseTo(g.Center, Vec(g.Radius, g.Radius), 0, radians(g.StartAngle), radians(g.signedSweep()), tolerance)
	case EllipseArc:
		p.ellipseTo(g.Center, Vec(g.RX, g.RY), radians(g.Angle), radians(g.StartAngle), radians(g.signedSweep()), tolerance)
	case QuadBez:
		p.QuadTo(g.P1, g.P2)
	case CubicBez:
		p.CubicTo(g.P1, g.P2, g.P3)
	default:
		panic(unknownKind(g))
	}
}

// ellipseTo appends cubics approximating an elliptical arc starting at the
// current point.
func (p *BezPath) ellipseTo(center Point, radii Vec2, xRotation, start, sweep, tolerance float64) {
	scaledError := max(radii.X, radii.Y) / tolerance
	// Number of subdivisions per ellipse based on error tolerance.
	// Note: this may slightly underestimate the error for quadrants.
	nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
	n := max(math.Ceil(nError*math.Abs(sweep)*(1.0/(2.0*math.Pi))), 1)
	angleStep := sweep / n
	armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep)
	angle0 := start
	p0 := sampleEllipse(radii, xRotation, angle0)

	for range int(n) {
		angle1 := angle0 + angleStep
		p1 := p0.Add(sampleEllipse(radii, xRotation, angle0+math.Pi/2).Mul(armLen))
		p3 := sampleEllipse(radii, xRotation, angle1)
		p2 := p3.Sub(sampleEllipse(radii, xRotation, angle1+math.Pi/2).Mul(armLen))
		angle0 = angle1
		p0 = p3
		p.CubicTo(center.Translate(p1), center.Translate(p2), center.Translate(p3))
	}
}

// sampleEllipse returns the offset from the center of the point at the
// parametric angle of an ellipse with the given radii, rotated by xRotation.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return rotateVec(Vec2{radii.X * cos, radii.Y * sin}, xRotation)
}

// ChainPath converts lines into a path. Consecutive lines that connect share
// a subpath, and subpaths that end where they start are closed.
func ChainPath(lines []GeometryLine, tolerance float64) BezPath {
	var p BezPath
	for _, run := range ConnectedRuns(lines) {
		if len(run) == 0 {
			continue
		}
		p.MoveTo(run[0].Start())
		for _, l := range run {
			p.AppendLine(l, tolerance)
		}
		if run[len(run)-1].End().Equal(run[0].Start()) {
			p.ClosePath()
		}
	}
	return p
}

// LoopsPath converts closed loops into one path with a subpath per loop.
func LoopsPath(loops [][]GeometryLine, tolerance float64) BezPath {
	var p BezPath
	for _, loop := range loops {
		if len(loop) == 0 {
			continue
		}
		p.MoveTo(loop[0].Start())
		for _, l := range loop {
			p.AppendLine(l, tolerance)
		}
		p.ClosePath()
	}
	return p
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		if s == "-0" {
			s = "0"
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case QuadToKind:
			writef("Q%s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y))
		case CubicToKind:
			writef("C%s,%s %s,%s %s,%s",
				format(el.P0.X), format(el.P0.Y),
				format(el.P1.X), format(el.P1.Y),
				format(el.P2.X), format(el.P2.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}
