package geoline

import (
	"math"
	"testing"
)

func TestEllipsePoints(t *testing.T) {
	e := Ellipse{Center: Pt(1, 2), RX: 4, RY: 2, Angle: 90}
	assertNear(t, e.PointAtAngle(0), Pt(1, 6), 1e-12)
	assertNear(t, e.PointAtAngle(90), Pt(-1, 2), 1e-12)
	for _, deg := range []float64{0, 30, 120, -100} {
		got := e.AngleOfPoint(e.PointAtAngle(deg))
		if !Equals(NormalizeAngle(got), NormalizeAngle(deg)) {
			t.Errorf("round trip of %v gave %v", deg, got)
		}
	}
}

func TestEllipseArc(t *testing.T) {
	e := EllipseArc{
		Ellipse:    Ellipse{RX: 2, RY: 1},
		AngleRange: AngleRange{StartAngle: 0, EndAngle: 180},
	}
	assertNear(t, e.Start(), Pt(2, 0), 1e-12)
	assertNear(t, e.End(), Pt(-2, 0), 1e-12)
	assertNear(t, e.Eval(0.5), Pt(0, 1), 1e-12)
	if !e.ContainsPoint(Pt(0, 1)) || e.ContainsPoint(Pt(0, -1)) {
		t.Error("wrong containment of the minor vertices")
	}
	if got := e.ParamAtPoint(Pt(0, 1)); !Equals(got, 0.5) {
		t.Errorf("got parameter %v, want 0.5", got)
	}
	diff(t, Rect{-2, 0, 2, 1}, e.BoundingBox(), approx)

	// numerical derivative matches the tangent
	const delta = 1e-7
	for _, ts := range []float64{0.1, 0.5, 0.9} {
		d := e.Eval(ts + delta).Sub(e.Eval(ts)).Mul(1 / delta)
		if l := d.Sub(e.Tangent(ts)).Hypot(); l > 1e-5 {
			t.Errorf("tangent at %v off by %g", ts, l)
		}
	}

	sub := e.Subsegment(1, 0)
	assertNear(t, sub.Start(), e.End(), 1e-12)
	assertNear(t, sub.Eval(0.5), Pt(0, 1), 1e-12)
}

func TestEllipseArcCircular(t *testing.T) {
	e := EllipseArc{
		Ellipse:    Ellipse{Center: Pt(3, 3), RX: 2, RY: 2, Angle: 30},
		AngleRange: AngleRange{StartAngle: 10, EndAngle: 100},
	}
	a := e.arc()
	for _, ts := range []float64{0, 0.3, 1} {
		assertNear(t, a.Eval(ts), e.Eval(ts), 1e-9)
	}
}

func TestIntersectLineEllipse(t *testing.T) {
	e := Ellipse{RX: 2, RY: 1}
	assertSamePoints(t, IntersectLineEllipse(Pt(-5, 0), Pt(5, 0), e), []Point{Pt(-2, 0), Pt(2, 0)}, 1e-9)
	assertSamePoints(t, IntersectLineEllipse(Pt(-5, 1), Pt(5, 1), e), []Point{Pt(0, 1)}, 1e-6)
	assertSamePoints(t, IntersectLineEllipse(Pt(-5, 2), Pt(5, 2), e), nil, 0)

	e.Angle = 90
	assertSamePoints(t, IntersectLineEllipse(Pt(-5, 0), Pt(5, 0), e), []Point{Pt(-1, 0), Pt(1, 0)}, 1e-9)
}

func TestIntersectEllipses(t *testing.T) {
	e1 := Ellipse{RX: 2, RY: 1}
	v := 2 / math.Sqrt(5)
	want := []Point{Pt(v, v), Pt(-v, v), Pt(v, -v), Pt(-v, -v)}

	assertSamePoints(t, IntersectEllipses(e1, Ellipse{RX: 1, RY: 2}), want, 1e-7)
	assertSamePoints(t, IntersectEllipses(e1, Ellipse{RX: 2, RY: 1, Angle: 90}), want, 1e-7)

	// ellipse and circle
	c := Ellipse{RX: 1.5, RY: 1.5}
	y := math.Sqrt((1 - 1.5*1.5/4) / (1 - 0.25))
	x := math.Sqrt(1.5*1.5 - y*y)
	assertSamePoints(t, IntersectEllipses(e1, c), []Point{Pt(x, y), Pt(-x, y), Pt(x, -y), Pt(-x, -y)}, 1e-7)

	tilted := Ellipse{Center: Pt(1, 2), RX: 5, RY: 2, Angle: 20}
	for _, same := range []Ellipse{
		e1,
		{RX: 2, RY: 1, Angle: 180},
		{RX: 1, RY: 2, Angle: 90},
		{RX: 1, RY: 2, Angle: -270},
	} {
		if got := IntersectEllipses(e1, same); got != nil {
			t.Errorf("%v and %v intersect at %v", e1, same, got)
		}
	}
	for _, same := range []Ellipse{
		{Center: Pt(1, 2), RX: 5, RY: 2, Angle: 200},
		{Center: Pt(1, 2), RX: 2, RY: 5, Angle: 110},
	} {
		if got := IntersectEllipses(tilted, same); got != nil {
			t.Errorf("%v and %v intersect at %v", tilted, same, got)
		}
		full := func(e Ellipse) EllipseArc { return EllipseArc{Ellipse: e} }
		if got := Intersect(full(tilted), full(same), false); len(got) != 0 {
			t.Errorf("full arcs of %v and %v intersect at %v", tilted, same, got)
		}
	}
	if got := IntersectEllipses(e1, Ellipse{Center: Pt(10, 0), RX: 2, RY: 1}); len(got) != 0 {
		t.Errorf("distant ellipses intersect at %v", got)
	}
}
