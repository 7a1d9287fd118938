package vec

import (
	"fmt"
	"math"
)

// parseUnits validates an angle unit string. Only the first three
// characters carry meaning once validated.
func parseUnits(units string) (degrees bool, err error) {
	switch units {
	case "rad", "radians":
		return false, nil
	case "deg", "degrees":
		return true, nil
	}
	return false, fmt.Errorf(`%w: units must be "rad" or "deg" for radians or degrees, got %q`,
		ErrInvalidArgument, units)
}

func toDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// planarTheta maps a planar displacement to its angle from the positive
// x-axis in [0, 2π). The eight sign branches build the angle from the
// single-argument arctangent; the second- and fourth-quadrant forms are
// kept exactly as the class has always computed them. A zero projection
// (a vector along the z-axis, seen from above) gets angle 0.
func planarTheta(dx, dy float64) float64 {
	switch {
	case dx == 0 && dy == 0:
		return 0
	// positive x-axis
	case dx > 0 && dy == 0:
		return 0
	// first quadrant
	case dx > 0 && dy > 0:
		return math.Atan(dy / dx)
	// positive y-axis
	case dx == 0 && dy > 0:
		return math.Pi / 2
	// second quadrant
	case dx < 0 && dy > 0:
		return math.Atan(dy/math.Abs(dx)) + math.Pi/2
	// negative x-axis
	case dx < 0 && dy == 0:
		return math.Pi
	// third quadrant
	case dx < 0 && dy < 0:
		return math.Atan(math.Abs(dy)/math.Abs(dx)) + math.Pi
	// negative y-axis
	case dx == 0 && dy < 0:
		return 3 * math.Pi / 2
	// fourth quadrant
	default:
		return math.Atan(math.Abs(dy)/dx) + 3*math.Pi/2
	}
}

// floatComponents returns the displacement as float64 values. Complex
// dtype has no real coordinate geometry.
func (v Vector) floatComponents() ([]float64, error) {
	out := make([]float64, v.dim)
	for i, c := range v.comp {
		f, err := c.Float()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// realNorms extracts both norms as floats, rejecting complex norms and
// zero magnitudes up front.
func realNorms(a, b Vector) (na, nb float64, err error) {
	if na, err = a.norm.Float(); err != nil {
		return 0, 0, err
	}
	if nb, err = b.norm.Float(); err != nil {
		return 0, 0, err
	}
	if na == 0 || nb == 0 {
		return 0, 0, fmt.Errorf("angle with zero vector: %w", ErrDivisionByZero)
	}
	return na, nb, nil
}
