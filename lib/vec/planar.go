package vec

import (
	"fmt"
	"math"
	"strconv"

	"github.com/colinrgodsey/cartesius/f64"
)

// Planar is a Vector restricted to exactly two components. It reuses all
// of Vector's algebra and adds the coordinate geometry that only makes
// sense in the plane.
type Planar struct {
	Vector
}

/* Constructors */

// NewPlanar builds a free 2D vector.
func NewPlanar(head ...interface{}) (Planar, error) {
	v, err := New(head...)
	if err != nil {
		return Planar{}, err
	}
	return AsPlanar(v)
}

// NewPlanarAnchored builds an anchored 2D vector.
func NewPlanarAnchored(head, tail []interface{}) (Planar, error) {
	v, err := NewAnchored(head, tail)
	if err != nil {
		return Planar{}, err
	}
	return AsPlanar(v)
}

// AsPlanar narrows a Vector to the plane.
func AsPlanar(v Vector) (Planar, error) {
	if v.Dim() != 2 {
		return Planar{}, fmt.Errorf("%w: planar vector needs 2 components, got %d",
			ErrDimensionMismatch, v.Dim())
	}
	return Planar{v}, nil
}

/* Getters */

// X is the head x-coordinate.
func (p Planar) X() Scalar { return p.head[0] }

// Y is the head y-coordinate.
func (p Planar) Y() Scalar { return p.head[1] }

/* Geometry */

// Cosine returns the cosine of the angle between the two vectors:
//
//	cos θ = p . o / (|p| |o|)
func (p Planar) Cosine(o Planar) (float64, error) {
	d, err := p.Dot(o.Vector)
	if err != nil {
		return 0, err
	}
	df, err := d.Float()
	if err != nil {
		return 0, err
	}
	np, no, err := realNorms(p.Vector, o.Vector)
	if err != nil {
		return 0, err
	}
	return df / (np * no), nil
}

// Angle returns the angle between the two vectors in the requested units.
func (p Planar) Angle(o Planar, units string) (float64, error) {
	degrees, err := parseUnits(units)
	if err != nil {
		return 0, err
	}
	cos, err := p.Cosine(o)
	if err != nil {
		return 0, err
	}
	result := math.Acos(cos)
	if degrees {
		result = toDegrees(result)
	}
	return result, nil
}

// ToPolar returns the displacement in [r, theta] form, theta measured
// from the positive x-axis and normalized to [0, 2π) (or [0°, 360°)).
// The zero vector maps to [0, 0].
func (p Planar) ToPolar(units string) (r, theta float64, err error) {
	degrees, err := parseUnits(units)
	if err != nil {
		return 0, 0, err
	}
	c, err := p.floatComponents()
	if err != nil {
		return 0, 0, err
	}
	dx, dy := c[0], c[1]
	if dx == 0 && dy == 0 {
		return 0, 0, nil
	}
	r = math.Sqrt(dx*dx + dy*dy)
	theta = planarTheta(dx, dy)
	if degrees {
		theta = toDegrees(theta)
	}
	return r, theta, nil
}

// Vec2 bridges the displacement into a cartesius vector for callers that
// want an established numeric library's operations.
func (p Planar) Vec2() (f64.Vec2, error) {
	c, err := p.floatComponents()
	if err != nil {
		return f64.Vec2{}, err
	}
	return f64.Vec2{c[0], c[1]}, nil
}

/* Line rendering */

// AsLine renders the vector-parametric line through tail and head:
//
//	⟨x, y⟩ = (t₀, t₁) + t⟨h₀, h₁⟩
func (p Planar) AsLine() string {
	origin := "0, 0"
	if len(p.tail) > 0 {
		origin = joinScalars(p.tail)
	}
	return "⟨x, y⟩ = (" + origin + ") + t⟨" + joinScalars(p.head) + "⟩"
}

// AsCartesianLine renders the slope-intercept form y = mx + b of the line
// through tail and head. A vertical line has no slope.
func (p Planar) AsCartesianLine() (string, error) {
	hx, err := p.head[0].Float()
	if err != nil {
		return "", err
	}
	hy, err := p.head[1].Float()
	if err != nil {
		return "", err
	}
	if hx == 0 {
		return "", fmt.Errorf("vertical line has no slope: %w", ErrDivisionByZero)
	}
	m := hy / hx
	var bx, by float64
	if len(p.tail) > 0 {
		// Tail kinds are never complex here: the head floats above
		// already rejected complex dtype, and dtype is shared.
		bx, _ = p.tail[0].Float()
		by, _ = p.tail[1].Float()
	}
	b := by - m*bx

	sign := "+"
	if b < 0 {
		sign = "-"
	}
	switch {
	case m == 0:
		return "y = " + trimFloat(b), nil
	case m == 1:
		return "y = x " + sign + " " + trimFloat(math.Abs(b)), nil
	default:
		return "y = " + trimFloat(m) + "x " + sign + " " + trimFloat(math.Abs(b)), nil
	}
}

// AsParametricLine renders the coordinate-parametric form
// ⟨t₀ + h₀t, t₁ + h₁t⟩ with explicit signs.
func (p Planar) AsParametricLine() string {
	ox, oy := I(0), I(0)
	if len(p.tail) > 0 {
		ox, oy = p.tail[0], p.tail[1]
	}
	return "⟨" + parametricTerm(ox, p.head[0]) + ", " + parametricTerm(oy, p.head[1]) + "⟩"
}

func parametricTerm(base, coeff Scalar) string {
	sign := "+"
	if neg, err := coeff.Less(I(0)); err == nil && neg {
		sign = "-"
		coeff = coeff.Neg()
	}
	return base.String() + " " + sign + " " + coeff.String() + "t"
}

// trimFloat drops the decimal point from whole values, so slopes and
// intercepts read as integers when they are.
func trimFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
