package geoline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside points and geometry lines,
// within a small absolute margin.
var approx = cmpopts.EquateApprox(0, 1e-6)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

// assertSamePoints checks that got and want hold the same points in any
// order.
func assertSamePoints(t *testing.T, got, want []Point, epsilon float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d points %v, want %d points %v", len(got), got, len(want), want)
	}
	used := make([]bool, len(got))
outer:
	for _, w := range want {
		for i, g := range got {
			if !used[i] && g.Distance(w) <= epsilon {
				used[i] = true
				continue outer
			}
		}
		t.Fatalf("got %v, missing %v", got, w)
	}
}
