package geoline

import (
	"math"
	"slices"
)

// HatchGeometries is a shape taking part in hatch tracing, given by its
// outline.
type HatchGeometries struct {
	ID    string
	Lines []GeometryLine
}

// SpatialIndex finds the shapes that may overlap a region. Query may return
// more shapes than overlap the region, but never fewer.
type SpatialIndex interface {
	Query(region Rect) []HatchGeometries
}

// LinearIndex is a SpatialIndex that tests every shape.
type LinearIndex []HatchGeometries

func (idx LinearIndex) Query(region Rect) []HatchGeometries {
	var out []HatchGeometries
	for _, g := range idx {
		if len(g.Lines) > 0 && BoundingBoxOf(g.Lines).Overlaps(region) {
			out = append(out, g)
		}
	}
	return out
}

// GridIndex is a SpatialIndex that buckets shapes into square cells.
type GridIndex struct {
	cell   float64
	shapes []HatchGeometries
	boxes  []Rect
	cells  map[[2]int][]int
}

// NewGridIndex returns an index over shapes with the given cell size. A
// non-positive size picks one from the extent of the shapes.
func NewGridIndex(shapes []HatchGeometries, cell float64) *GridIndex {
	idx := &GridIndex{cells: make(map[[2]int][]int)}
	var all Rect
	for _, s := range shapes {
		if len(s.Lines) == 0 {
			continue
		}
		b := BoundingBoxOf(s.Lines)
		if len(idx.shapes) == 0 {
			all = b
		} else {
			all = all.Union(b)
		}
		idx.shapes = append(idx.shapes, s)
		idx.boxes = append(idx.boxes, b)
	}
	if cell <= 0 {
		cell = max(all.Width(), all.Height()) / 16
	}
	if cell <= 0 || !isFinite(cell) {
		cell = 1
	}
	idx.cell = cell
	for i, b := range idx.boxes {
		idx.visit(b, func(k [2]int) {
			idx.cells[k] = append(idx.cells[k], i)
		})
	}
	return idx
}

func (idx *GridIndex) visit(r Rect, fn func([2]int)) {
	x0 := int(math.Floor(r.X0 / idx.cell))
	x1 := int(math.Floor(r.X1 / idx.cell))
	y0 := int(math.Floor(r.Y0 / idx.cell))
	y1 := int(math.Floor(r.Y1 / idx.cell))
	for x := x0; x <= x1; x++ {
		for y := y0; y <= y1; y++ {
			fn([2]int{x, y})
		}
	}
}

func (idx *GridIndex) Query(region Rect) []HatchGeometries {
	// a huge region would visit more cells than there are shapes
	if (region.Width()/idx.cell+1)*(region.Height()/idx.cell+1) > float64(len(idx.cells)) {
		var out []HatchGeometries
		for i, b := range idx.boxes {
			if b.Overlaps(region) {
				out = append(out, idx.shapes[i])
			}
		}
		return out
	}
	seen := make(map[int]bool)
	var hits []int
	idx.visit(region, func(k [2]int) {
		for _, i := range idx.cells[k] {
			if !seen[i] && idx.boxes[i].Overlaps(region) {
				seen[i] = true
				hits = append(hits, i)
			}
		}
	})
	// keep insertion order so results do not depend on map iteration
	slices.Sort(hits)
	out := make([]HatchGeometries, len(hits))
	for j, i := range hits {
		out[j] = idx.shapes[i]
	}
	return out
}
