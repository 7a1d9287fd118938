package vec

import (
	"fmt"
	"math"

	"github.com/colinrgodsey/cartesius/f64"
)

// Spatial is a Vector restricted to exactly three components, adding the
// cross product and the cylindrical/spherical conversions.
type Spatial struct {
	Vector
}

/* Constructors */

// NewSpatial builds a free 3D vector.
func NewSpatial(head ...interface{}) (Spatial, error) {
	v, err := New(head...)
	if err != nil {
		return Spatial{}, err
	}
	return AsSpatial(v)
}

// NewSpatialAnchored builds an anchored 3D vector.
func NewSpatialAnchored(head, tail []interface{}) (Spatial, error) {
	v, err := NewAnchored(head, tail)
	if err != nil {
		return Spatial{}, err
	}
	return AsSpatial(v)
}

// AsSpatial narrows a Vector to three dimensions.
func AsSpatial(v Vector) (Spatial, error) {
	if v.Dim() != 3 {
		return Spatial{}, fmt.Errorf("%w: spatial vector needs 3 components, got %d",
			ErrDimensionMismatch, v.Dim())
	}
	return Spatial{v}, nil
}

/* Getters */

// X is the head x-coordinate.
func (s Spatial) X() Scalar { return s.head[0] }

// Y is the head y-coordinate.
func (s Spatial) Y() Scalar { return s.head[1] }

// Z is the head z-coordinate.
func (s Spatial) Z() Scalar { return s.head[2] }

/* Geometry */

// Cross returns the right-hand-rule cross product of the two
// displacements, anchored at the shared tail. Both vectors must be drawn
// from the same base point.
func (s Spatial) Cross(o Spatial) (Spatial, error) {
	if !sameTail(s.tail, o.tail) {
		return Spatial{}, fmt.Errorf("%w: cross product needs a shared base point", ErrTailMismatch)
	}
	a, b := s.comp, o.comp
	head := []Scalar{
		a[1].Mul(b[2]).Sub(a[2].Mul(b[1])),
		a[2].Mul(b[0]).Sub(a[0].Mul(b[2])),
		a[0].Mul(b[1]).Sub(a[1].Mul(b[0])),
	}
	v, err := fromScalars(head, nil)
	if err != nil {
		return Spatial{}, err
	}
	if len(s.tail) > 0 {
		anchor := make([]interface{}, len(s.tail))
		for i, t := range s.tail {
			anchor[i] = t
		}
		if v, err = v.Shift(anchor...); err != nil {
			return Spatial{}, err
		}
	}
	return Spatial{v}, nil
}

func sameTail(a, b []Scalar) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Sine returns the sine of the angle between the two vectors:
//
//	sin θ = |s × o| / (|s| |o|)
func (s Spatial) Sine(o Spatial) (float64, error) {
	cross, err := s.Cross(o)
	if err != nil {
		return 0, err
	}
	cn, err := cross.norm.Float()
	if err != nil {
		return 0, err
	}
	ns, no, err := realNorms(s.Vector, o.Vector)
	if err != nil {
		return 0, err
	}
	return cn / (ns * no), nil
}

// Angle returns the angle between the two vectors in the requested units,
// through the sine relation rather than the planar cosine one.
func (s Spatial) Angle(o Spatial, units string) (float64, error) {
	degrees, err := parseUnits(units)
	if err != nil {
		return 0, err
	}
	sin, err := s.Sine(o)
	if err != nil {
		return 0, err
	}
	result := math.Asin(sin)
	if degrees {
		result = toDegrees(result)
	}
	return result, nil
}

// ToCylindrical returns the displacement in [r, theta, z] form: r and
// theta from the xy-projection's polar form, z passed through unchanged.
// The zero vector maps to [0, 0, 0].
func (s Spatial) ToCylindrical(units string) (r, theta, z float64, err error) {
	degrees, err := parseUnits(units)
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := s.floatComponents()
	if err != nil {
		return 0, 0, 0, err
	}
	dx, dy, dz := c[0], c[1], c[2]
	if dx == 0 && dy == 0 && dz == 0 {
		return 0, 0, 0, nil
	}
	r = math.Sqrt(dx*dx + dy*dy)
	theta = planarTheta(dx, dy)
	if degrees {
		theta = toDegrees(theta)
	}
	return r, theta, dz, nil
}

// ToSpherical returns the displacement in [r, theta, phi] form: r the
// full 3D length, theta as in the cylindrical form, phi the inclination
// from the positive z-axis. The zero vector maps to [0, 0, 0].
func (s Spatial) ToSpherical(units string) (r, theta, phi float64, err error) {
	degrees, err := parseUnits(units)
	if err != nil {
		return 0, 0, 0, err
	}
	c, err := s.floatComponents()
	if err != nil {
		return 0, 0, 0, err
	}
	dx, dy, dz := c[0], c[1], c[2]
	if dx == 0 && dy == 0 && dz == 0 {
		return 0, 0, 0, nil
	}
	r = math.Sqrt(dx*dx + dy*dy + dz*dz)
	theta = planarTheta(dx, dy)
	// z/r stays within [-1, 1], so acos needs no clamping.
	phi = math.Acos(dz / r)
	if degrees {
		theta = toDegrees(theta)
		phi = toDegrees(phi)
	}
	return r, theta, phi, nil
}

// Vec3 bridges the displacement into a cartesius vector.
func (s Spatial) Vec3() (f64.Vec3, error) {
	c, err := s.floatComponents()
	if err != nil {
		return f64.Vec3{}, err
	}
	return f64.Vec3{c[0], c[1], c[2]}, nil
}
