package geoline

import "math"

// Epsilon is the absolute tolerance used by every comparison in this
// package. Two numbers are equal if they differ by less than Epsilon.
const Epsilon = 1e-8

// IsZero reports whether |v| < Epsilon.
func IsZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Equals reports whether a and b are equal within Epsilon.
func Equals(a, b float64) bool {
	return IsZero(a - b)
}

// LessOrEqual reports whether a <= b, treating values within Epsilon as equal.
func LessOrEqual(a, b float64) bool {
	return a < b || Equals(a, b)
}

// GreaterOrEqual reports whether a >= b, treating values within Epsilon as equal.
func GreaterOrEqual(a, b float64) bool {
	return a > b || Equals(a, b)
}

// IsBetween reports whether v lies in the closed interval spanned by a and b,
// in either order.
func IsBetween(v, a, b float64) bool {
	return GreaterOrEqual(v, min(a, b)) && LessOrEqual(v, max(a, b))
}

// isFinite reports whether v is neither NaN nor infinite.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
