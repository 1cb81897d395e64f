// Package geoline provides the geometry behind vector editing tools: the
// intersection of outline pieces, parallel (offset) curves, splitting at
// points, stroke triangulation and bucket fill style region detection.
//
// # Geometry lines
//
// The central type is [GeometryLine], one piece of a shape outline. It is
// implemented by exactly five kinds:
//   - [Line], a straight segment
//   - [Arc], a circular arc
//   - [EllipseArc], an arc of a rotated ellipse
//   - [QuadBez], a quadratic Bézier
//   - [CubicBez], a cubic Bézier
//
// All kinds are evaluated at t ∈ [0, 1]. For arcs, t is the fraction of the
// sweep. Angles of arcs are in degrees; an [AngleRange] whose Counterclockwise
// flag is set runs from its start to its end angle with decreasing angles.
// Outlines are chains of geometry lines, each starting where the previous one
// ends.
//
// All values are immutable. Functions return new values and never modify
// their arguments.
//
// # Tolerance
//
// Comparisons of coordinates go through [Epsilon] and the helpers built on it
// ([IsZero], [Equals], [Point.Equal]). Degenerate input, such as
// zero length lines or radii collapsing to zero, yields empty or nil results
// rather than errors.
//
// # Operations
//
//   - [Intersect], [IterateIntersections] and [NearestIntersection] intersect
//     any two kinds, optionally extending them along their supporting curves.
//   - [ParallelGeometryLineByDistance], [ParallelGeometryLines] and
//     [BoldGeometryLines] compute offsets of single lines, chains and glyph
//     like outlines.
//   - [BreakPolylineToPolylines] and [BreakGeometryLines] split at points.
//   - [PolylineTriangles] turns a stroked polyline into a triangle strip.
//   - [HatchByPosition], [HatchHoles] and [FindHatch] find the region
//     enclosing a point, given a [SpatialIndex] over the shapes involved.
//
// # Polynomials
//
// [SolveQuadratic], [SolveCubic] and [SolveQuartic] find real roots of
// polynomials and back the intersection routines of conics.
//
// # Output
//
// Chains convert to [BezPath], which writes SVG path data and converts to the
// path type of seehuhn.de/go/geom for rendering.
//
// # Literature
//
// This package makes use of the following ideas:
//   - [A Primer on Bézier Curves]
//   - [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality] by Oliveira and Takahashi
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [How to solve a cubic equation, revisited] by Christoph Peters
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [An Enhancement of the Bisection Method Average Performance Preserving Minmax Optimality]: https://dl.acm.org/doi/10.1145/3423597
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [How to solve a cubic equation, revisited]: https://momentsingraphics.de/CubicRoots.html
package geoline
