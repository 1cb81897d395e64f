package main

import (
	"bytes"
	"encoding/json"
	"image/png"
	"strings"
	"testing"

	"honnef.co/go/geoline"
	"honnef.co/go/geoline/internal/config"
	"honnef.co/go/geoline/internal/scene"
)

const square = `{"shapes":[{"points":[{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10},{"x":0,"y":10}],"closed":true}]}`

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func runCommand(t *testing.T, input string, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	if err := run(testConfig(t), args, strings.NewReader(input), &out); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.Bytes()
}

func TestOffset(t *testing.T) {
	out := runCommand(t, square, "offset", "-d", "1", "-side", "1")
	s, err := scene.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(s.Shapes))
	}
	lines := s.Shapes[0].Lines
	if len(lines) != 4 || !geoline.IsClosed(lines) {
		t.Fatalf("offset square is not a closed chain of 4 lines: %v", lines)
	}
	// the square winds counterclockwise, so the negative side is outside
	if got := lines[0].Start(); !got.Equal(geoline.Pt(-1, -1)) {
		t.Errorf("got corner %v, want (-1, -1)", got)
	}
}

func TestHatchSVG(t *testing.T) {
	out := runCommand(t, square, "hatch", "-at", "5,5", "-format", "svg")
	got := strings.TrimSpace(string(out))
	if !strings.HasPrefix(got, "M10,5") || !strings.HasSuffix(got, "Z") {
		t.Errorf("unexpected path %q", got)
	}
}

func TestHatchPNG(t *testing.T) {
	out := runCommand(t, square, "hatch", "-at", "5,5", "-format", "png")
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Errorf("got image bounds %v, want 12x12", b)
	}
}

func TestStroke(t *testing.T) {
	out := runCommand(t, "", "stroke", "-points", "0,0 10,0", "-w", "2")
	var tris geoline.Triangles
	if err := json.Unmarshal(out, &tris); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 0, -1, 10, 1, 10, -1}
	if len(tris.Points) != len(want) {
		t.Fatalf("got %v, want %v", tris.Points, want)
	}
	for i := range want {
		if !geoline.Equals(tris.Points[i], want[i]) {
			t.Fatalf("got %v, want %v", tris.Points, want)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := [][]string{
		nil,
		{"rotate"},
		{"offset", "-side", "2"},
		{"hatch", "-at", "50,50"},
		{"stroke", "-points", "0,0 1", "-w", "1"},
		{"stroke", "-points", "0,0 1,1", "-cap", "pointy"},
		{"offset", "-format", "pdf"},
	}
	for _, args := range tests {
		var out bytes.Buffer
		if err := run(testConfig(t), args, strings.NewReader(square), &out); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestParsePoints(t *testing.T) {
	pts, err := parsePoints("1,2; 3.5,-4")
	if err != nil {
		t.Fatal(err)
	}
	if len(pts) != 2 || pts[0] != geoline.Pt(1, 2) || pts[1] != geoline.Pt(3.5, -4) {
		t.Errorf("got %v", pts)
	}
}
