package geoline

import "math"

// AngleRange is a sweep between two angles in degrees.
//
// When Counterclockwise is false the sweep starts at StartAngle and
// proceeds with increasing angle until it reaches EndAngle. When it is true
// the angle decreases instead. A start equal to the end (mod 360) is a full
// turn.
type AngleRange struct {
	StartAngle       float64
	EndAngle         float64
	Counterclockwise bool
}

// NormalizeAngle maps an angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if Equals(deg, 360) {
		deg = 0
	}
	return deg
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Sweep returns the magnitude of the sweep in degrees, in (0, 360].
func (r AngleRange) Sweep() float64 {
	var s float64
	if r.Counterclockwise {
		s = NormalizeAngle(r.StartAngle - r.EndAngle)
	} else {
		s = NormalizeAngle(r.EndAngle - r.StartAngle)
	}
	if IsZero(s) {
		s = 360
	}
	return s
}

// signedSweep returns the sweep with the sign of the direction of travel.
func (r AngleRange) signedSweep() float64 {
	if r.Counterclockwise {
		return -r.Sweep()
	}
	return r.Sweep()
}

// AngleAt returns the angle in degrees at parameter t of the sweep.
func (r AngleRange) AngleAt(t float64) float64 {
	return r.StartAngle + t*r.signedSweep()
}

// ParamAt returns the parameter of angle within the sweep. Angles outside the
// sweep produce parameters outside [0, 1], choosing whichever side of the
// sweep is closer.
func (r AngleRange) ParamAt(angle float64) float64 {
	sweep := r.Sweep()
	var off float64
	if r.Counterclockwise {
		off = NormalizeAngle(r.StartAngle - angle)
	} else {
		off = NormalizeAngle(angle - r.StartAngle)
	}
	if off > sweep && !Equals(off, sweep) {
		// past the end; decide whether it is closer to the start
		if 360-off < off-sweep {
			off -= 360
		}
	}
	return off / sweep
}

// Contains reports whether angle lies within the sweep.
func (r AngleRange) Contains(angle float64) bool {
	sweep := r.Sweep()
	var off float64
	if r.Counterclockwise {
		off = NormalizeAngle(r.StartAngle - angle)
	} else {
		off = NormalizeAngle(angle - r.StartAngle)
	}
	return LessOrEqual(off, sweep) || Equals(off, 360)
}

// Reverse returns the same sweep traversed in the opposite direction.
func (r AngleRange) Reverse() AngleRange {
	return AngleRange{
		StartAngle:       r.EndAngle,
		EndAngle:         r.StartAngle,
		Counterclockwise: !r.Counterclockwise,
	}
}

// Angles returns the angles visited when sweeping in steps of step degrees.
// The first element is StartAngle and the last is the end of the sweep, even
// if the sweep is not a multiple of step. The angles increase or decrease
// continuously, so the last one equals EndAngle up to a multiple of 360.
func (r AngleRange) Angles(step float64) []float64 {
	step = math.Abs(step)
	sweep := r.Sweep()
	if step == 0 || step > sweep {
		step = sweep
	}
	dir := 1.0
	if r.Counterclockwise {
		dir = -1
	}
	n := int(math.Ceil(sweep/step - Epsilon))
	out := make([]float64, 0, n+1)
	for i := range n {
		out = append(out, r.StartAngle+dir*float64(i)*step)
	}
	return append(out, r.StartAngle+dir*sweep)
}
