// Package scene reads and writes shapes as JSON, for the command line tool.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"honnef.co/go/geoline"
)

// Line kinds as they appear in JSON.
const (
	KindLine      = "line"
	KindArc       = "arc"
	KindEllipse   = "ellipse arc"
	KindQuadratic = "quadratic curve"
	KindBezier    = "bezier curve"
)

var ErrUnknownKind = errors.New("unknown line kind")

type Scene struct {
	Shapes []Shape `json:"shapes"`
}

// Shape is an outline. Points, if present, is a polyline that is appended
// to Lines when decoding.
type Shape struct {
	ID     uuid.UUID       `json:"id"`
	Lines  Lines           `json:"lines,omitempty"`
	Points []geoline.Point `json:"points,omitempty"`
	Closed bool            `json:"closed,omitempty"`
}

// Lines is a chain of geometry lines with a JSON encoding.
type Lines []geoline.GeometryLine

type lineJSON struct {
	Type             string          `json:"type"`
	Points           []geoline.Point `json:"points,omitempty"`
	Center           *geoline.Point  `json:"center,omitempty"`
	Radius           float64         `json:"radius,omitempty"`
	RX               float64         `json:"rx,omitempty"`
	RY               float64         `json:"ry,omitempty"`
	Angle            float64         `json:"angle,omitempty"`
	StartAngle       float64         `json:"startAngle"`
	EndAngle         float64         `json:"endAngle"`
	Counterclockwise bool            `json:"counterclockwise,omitempty"`
}

func (ls Lines) MarshalJSON() ([]byte, error) {
	out := make([]lineJSON, len(ls))
	for i, l := range ls {
		switch l := l.(type) {
		case geoline.Line:
			out[i] = lineJSON{Type: KindLine, Points: []geoline.Point{l.P0, l.P1}}
		case geoline.Arc:
			c := l.Center
			out[i] = lineJSON{
				Type: KindArc, Center: &c, Radius: l.Radius,
				StartAngle: l.StartAngle, EndAngle: l.EndAngle, Counterclockwise: l.Counterclockwise,
			}
		case geoline.EllipseArc:
			c := l.Center
			out[i] = lineJSON{
				Type: KindEllipse, Center: &c, RX: l.RX, RY: l.RY, Angle: l.Ellipse.Angle,
				StartAngle: l.StartAngle, EndAngle: l.EndAngle, Counterclockwise: l.Counterclockwise,
			}
		case geoline.QuadBez:
			out[i] = lineJSON{Type: KindQuadratic, Points: []geoline.Point{l.P0, l.P1, l.P2}}
		case geoline.CubicBez:
			out[i] = lineJSON{Type: KindBezier, Points: []geoline.Point{l.P0, l.P1, l.P2, l.P3}}
		default:
			return nil, fmt.Errorf("line %d: %w: %T", i, ErrUnknownKind, l)
		}
	}
	return json.Marshal(out)
}

func (ls *Lines) UnmarshalJSON(data []byte) error {
	var raw []lineJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Lines, 0, len(raw))
	for i, r := range raw {
		l, err := r.line()
		if err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		out = append(out, l)
	}
	*ls = out
	return nil
}

func (r lineJSON) points(n int) error {
	if len(r.Points) != n {
		return fmt.Errorf("%s needs %d points, got %d", r.Type, n, len(r.Points))
	}
	return nil
}

func (r lineJSON) line() (geoline.GeometryLine, error) {
	rng := geoline.AngleRange{StartAngle: r.StartAngle, EndAngle: r.EndAngle, Counterclockwise: r.Counterclockwise}
	switch r.Type {
	case KindLine:
		if err := r.points(2); err != nil {
			return nil, err
		}
		return geoline.Line{P0: r.Points[0], P1: r.Points[1]}, nil
	case KindArc:
		if r.Center == nil {
			return nil, errors.New("arc without center")
		}
		return geoline.Arc{Circle: geoline.Circle{Center: *r.Center, Radius: r.Radius}, AngleRange: rng}, nil
	case KindEllipse:
		if r.Center == nil {
			return nil, errors.New("ellipse arc without center")
		}
		e := geoline.Ellipse{Center: *r.Center, RX: r.RX, RY: r.RY, Angle: r.Angle}
		return geoline.EllipseArc{Ellipse: e, AngleRange: rng}, nil
	case KindQuadratic:
		if err := r.points(3); err != nil {
			return nil, err
		}
		return geoline.QuadBez{P0: r.Points[0], P1: r.Points[1], P2: r.Points[2]}, nil
	case KindBezier:
		if err := r.points(4); err != nil {
			return nil, err
		}
		return geoline.CubicBez{P0: r.Points[0], P1: r.Points[1], P2: r.Points[2], P3: r.Points[3]}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, r.Type)
	}
}

// Decode reads a scene. Polylines are converted to lines and shapes without
// an ID get a random one.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}
	for i := range s.Shapes {
		sh := &s.Shapes[i]
		if sh.ID == uuid.Nil {
			sh.ID = uuid.New()
		}
		if len(sh.Points) > 0 {
			pts := sh.Points
			if sh.Closed && len(pts) > 2 && !pts[0].Equal(pts[len(pts)-1]) {
				pts = append(pts[:len(pts):len(pts)], pts[0])
			}
			sh.Lines = append(sh.Lines, geoline.PolylineToGeometryLines(pts)...)
			sh.Points, sh.Closed = nil, false
		}
	}
	return &s, nil
}

func Encode(w io.Writer, s *Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// FromLoops builds a scene with one shape per loop.
func FromLoops(loops [][]geoline.GeometryLine) *Scene {
	s := &Scene{Shapes: make([]Shape, 0, len(loops))}
	for _, l := range loops {
		s.Shapes = append(s.Shapes, Shape{ID: uuid.New(), Lines: l})
	}
	return s
}

// Lines returns the lines of all shapes, one chain per shape.
func (s *Scene) Lines() [][]geoline.GeometryLine {
	out := make([][]geoline.GeometryLine, len(s.Shapes))
	for i, sh := range s.Shapes {
		out[i] = sh.Lines
	}
	return out
}

// Index returns a spatial index over the shapes.
func (s *Scene) Index() *geoline.GridIndex {
	hs := make([]geoline.HatchGeometries, len(s.Shapes))
	for i, sh := range s.Shapes {
		hs[i] = geoline.HatchGeometries{ID: sh.ID.String(), Lines: sh.Lines}
	}
	return geoline.NewGridIndex(hs, 0)
}

// Bounds returns the bounding box of all shapes.
func (s *Scene) Bounds() geoline.Rect {
	var all []geoline.GeometryLine
	for _, sh := range s.Shapes {
		all = append(all, sh.Lines...)
	}
	return geoline.BoundingBoxOf(all)
}
