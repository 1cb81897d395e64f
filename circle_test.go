package geoline

import (
	"math"
	"testing"
)

func TestArcEval(t *testing.T) {
	a := Arc{
		Circle:     Circle{Center: Pt(1, 1), Radius: 2},
		AngleRange: AngleRange{StartAngle: 0, EndAngle: 90},
	}
	assertNear(t, a.Start(), Pt(3, 1), 1e-12)
	assertNear(t, a.End(), Pt(1, 3), 1e-12)
	assertNear(t, a.Eval(0.5), Pt(1+math.Sqrt2, 1+math.Sqrt2), 1e-12)

	rev := a.Reverse()
	assertNear(t, rev.Start(), a.End(), 1e-12)
	assertNear(t, rev.End(), a.Start(), 1e-12)
	assertNear(t, rev.Eval(0.25), a.Eval(0.75), 1e-12)

	// the derivative points along the travel direction
	tan := a.Tangent(0)
	if !IsZero(tan.X) || tan.Y <= 0 {
		t.Errorf("got tangent %v at the start", tan)
	}
	if !Equals(tan.Hypot(), 2*math.Pi/2) {
		t.Errorf("got tangent length %v, want π", tan.Hypot())
	}
}

func TestArcSubsegment(t *testing.T) {
	a := Arc{
		Circle:     Circle{Radius: 1},
		AngleRange: AngleRange{StartAngle: 0, EndAngle: 180},
	}
	sub := a.Subsegment(0.25, 0.75)
	assertNear(t, sub.Start(), a.Eval(0.25), 1e-12)
	assertNear(t, sub.End(), a.Eval(0.75), 1e-12)
	assertNear(t, sub.Eval(0.5), Pt(0, 1), 1e-12)

	back := a.Subsegment(0.75, 0.25)
	assertNear(t, back.Start(), a.Eval(0.75), 1e-12)
	assertNear(t, back.Eval(0.5), Pt(0, 1), 1e-12)

	ext := a.Subsegment(0, 1.5)
	assertNear(t, ext.End(), Pt(0, -1), 1e-12)
}

func TestArcNearest(t *testing.T) {
	a := Arc{
		Circle:     Circle{Radius: 1},
		AngleRange: AngleRange{StartAngle: 0, EndAngle: 90},
	}
	d, tt := a.Nearest(Pt(2, 2))
	if !Equals(tt, 0.5) || !Equals(d, math.Pow(2*math.Sqrt2-1, 2)) {
		t.Errorf("got (%v, %v)", d, tt)
	}
	d, tt = a.Nearest(Pt(3, -1))
	if tt != 0 || !Equals(d, 5) {
		t.Errorf("got (%v, %v), want (5, 0)", d, tt)
	}
}

func TestArcBoundingBox(t *testing.T) {
	a := Arc{
		Circle:     Circle{Radius: 1},
		AngleRange: AngleRange{StartAngle: 45, EndAngle: 135},
	}
	h := math.Sqrt2 / 2
	diff(t, Rect{-h, h, h, 1}, a.BoundingBox(), approx)
}

func TestIntersectLineCircle(t *testing.T) {
	c := Circle{Center: Pt(0, 0), Radius: 5}
	tests := []struct {
		p0, p1 Point
		want   []Point
	}{
		{Pt(-10, 3), Pt(10, 3), []Point{Pt(-4, 3), Pt(4, 3)}},
		{Pt(10, 3), Pt(-10, 3), []Point{Pt(4, 3), Pt(-4, 3)}},
		{Pt(-10, 5), Pt(10, 5), []Point{Pt(0, 5)}},
		{Pt(-10, 6), Pt(10, 6), nil},
		{Pt(1, 1), Pt(1, 1), nil},
	}
	for _, tt := range tests {
		got := IntersectLineCircle(tt.p0, tt.p1, c)
		diff(t, tt.want, got, approx)
	}
}

func TestIntersectCircles(t *testing.T) {
	c1 := Circle{Center: Pt(0, 0), Radius: 5}
	tests := []struct {
		c    Circle
		want []Point
	}{
		{Circle{Center: Pt(8, 0), Radius: 5}, []Point{Pt(4, 3), Pt(4, -3)}},
		{Circle{Center: Pt(10, 0), Radius: 5}, []Point{Pt(5, 0)}},
		{Circle{Center: Pt(2, 0), Radius: 3}, []Point{Pt(5, 0)}},
		{Circle{Center: Pt(20, 0), Radius: 5}, nil},
		{Circle{Center: Pt(1, 0), Radius: 1}, nil},
		{Circle{Center: Pt(0, 0), Radius: 5}, nil},
	}
	for _, tt := range tests {
		got := IntersectCircles(c1, tt.c)
		assertSamePoints(t, got, tt.want, 1e-9)
	}
}
