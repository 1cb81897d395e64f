package scene

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"honnef.co/go/geoline"
)

const input = `{
  "shapes": [
    {"id": "6f1c5a9e-3d2b-4c1a-9a8e-2f4b6c8d0e1f", "points": [{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10},{"x":0,"y":10}], "closed": true},
    {"lines": [
      {"type": "arc", "center": {"x":5,"y":5}, "radius": 2, "startAngle": 0, "endAngle": 360},
      {"type": "bezier curve", "points": [{"x":0,"y":0},{"x":1,"y":2},{"x":3,"y":2},{"x":4,"y":0}]}
    ]}
  ]
}`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Shapes) != 2 {
		t.Fatalf("got %d shapes, want 2", len(s.Shapes))
	}
	if got, want := s.Shapes[0].ID.String(), "6f1c5a9e-3d2b-4c1a-9a8e-2f4b6c8d0e1f"; got != want {
		t.Errorf("got ID %s, want %s", got, want)
	}
	if s.Shapes[1].ID == uuid.Nil {
		t.Error("shape without ID did not get one")
	}
	square := s.Shapes[0].Lines
	if len(square) != 4 || !geoline.IsClosed(square) {
		t.Errorf("closed polyline decoded into %v", square)
	}
	want := Lines{
		geoline.Arc{
			Circle:     geoline.Circle{Center: geoline.Pt(5, 5), Radius: 2},
			AngleRange: geoline.AngleRange{StartAngle: 0, EndAngle: 360},
		},
		geoline.CubicBez{P0: geoline.Pt(0, 0), P1: geoline.Pt(1, 2), P2: geoline.Pt(3, 2), P3: geoline.Pt(4, 0)},
	}
	if diff := cmp.Diff(want, s.Shapes[1].Lines); diff != "" {
		t.Errorf("unexpected lines (-want +got):\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	s, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		t.Fatal(err)
	}
	s2, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(s, s2); diff != "" {
		t.Errorf("round trip changed scene (-want +got):\n%s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"kind", `{"shapes":[{"lines":[{"type":"spline"}]}]}`},
		{"points", `{"shapes":[{"lines":[{"type":"line","points":[{"x":0,"y":0}]}]}]}`},
		{"center", `{"shapes":[{"lines":[{"type":"arc","radius":1}]}]}`},
		{"syntax", `{"shapes":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}
	_, err := Decode(strings.NewReader(tests[0].input))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("got %v, want ErrUnknownKind", err)
	}
}

func TestIndex(t *testing.T) {
	s, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	got := s.Index().Query(geoline.Rect{X0: 9, Y0: 9, X1: 11, Y1: 11})
	if len(got) != 1 || got[0].ID != s.Shapes[0].ID.String() {
		t.Errorf("query near the square's corner returned %v", got)
	}
}
