package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gscalar "gonum.org/v1/gonum/floats/scalar"
)

func mustSpatial(t *testing.T, head ...interface{}) Spatial {
	t.Helper()
	s, err := NewSpatial(head...)
	require.NoError(t, err)
	return s
}

func TestSpatialConstruction(t *testing.T) {
	s := mustSpatial(t, 1, 2, 3)
	assert.True(t, s.X().Equal(I(1)))
	assert.True(t, s.Y().Equal(I(2)))
	assert.True(t, s.Z().Equal(I(3)))

	_, err := NewSpatial(1, 2)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = AsSpatial(mustNew(t, 1, 2))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestCross(t *testing.T) {
	a := mustSpatial(t, 1, 2, 3)
	b := mustSpatial(t, 4, 5, 6)

	ab, err := a.Cross(b)
	require.NoError(t, err)
	assert.True(t, ab.Equal(mustNew(t, -3, 6, -3)))

	// Anti-commutation: a × b == -(b × a).
	ba, err := b.Cross(a)
	require.NoError(t, err)
	assert.True(t, ab.Equal(ba.Neg()))

	// Orthogonality to both operands.
	d, err := a.Dot(ab.Vector)
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	d, err = b.Dot(ab.Vector)
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	// Unit axes follow the right-hand rule.
	xy, err := mustSpatial(t, 1, 0, 0).Cross(mustSpatial(t, 0, 1, 0))
	require.NoError(t, err)
	assert.True(t, xy.Equal(mustNew(t, 0, 0, 1)))
}

func TestCrossAnchored(t *testing.T) {
	tail := []interface{}{1, 1, 1}
	a, err := NewSpatialAnchored([]interface{}{2, 3, 4}, tail)
	require.NoError(t, err)
	b, err := NewSpatialAnchored([]interface{}{5, 6, 7}, tail)
	require.NoError(t, err)

	// comp(a) = (1, 2, 3), comp(b) = (4, 5, 6); the product re-anchors to
	// the shared tail.
	ab, err := a.Cross(b)
	require.NoError(t, err)
	assert.True(t, scalarsEqual(ab.Tail(), []Scalar{I(1), I(1), I(1)}))
	assert.True(t, scalarsEqual(ab.Component(), []Scalar{I(-3), I(6), I(-3)}))
	assert.True(t, scalarsEqual(ab.Head(), []Scalar{I(-2), I(7), I(-2)}))
}

func TestCrossTailMismatch(t *testing.T) {
	free := mustSpatial(t, 1, 2, 3)
	anchored, err := NewSpatialAnchored([]interface{}{1, 2, 3}, []interface{}{0, 0, 0})
	require.NoError(t, err)

	// A free vector and one anchored at explicit zeros have different
	// tails.
	_, err = free.Cross(anchored)
	assert.ErrorIs(t, err, ErrTailMismatch)

	other, err := NewSpatialAnchored([]interface{}{1, 2, 3}, []interface{}{1, 0, 0})
	require.NoError(t, err)
	_, err = anchored.Cross(other)
	assert.ErrorIs(t, err, ErrTailMismatch)
}

func TestSpatialAngle(t *testing.T) {
	x := mustSpatial(t, 1, 0, 0)
	y := mustSpatial(t, 0, 1, 0)

	sin, err := x.Sine(y)
	require.NoError(t, err)
	assert.True(t, gscalar.EqualWithinAbs(sin, 1, tol))

	rad, err := x.Angle(y, "radians")
	require.NoError(t, err)
	assert.True(t, gscalar.EqualWithinAbs(rad, math.Pi/2, tol))

	deg, err := x.Angle(y, "deg")
	require.NoError(t, err)
	assert.True(t, gscalar.EqualWithinAbs(deg, 90, tol))

	_, err = x.Angle(y, "gradians")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = x.Angle(mustSpatial(t, 0, 0, 0), "rad")
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestToCylindrical(t *testing.T) {
	r, theta, z, err := mustSpatial(t, 1, 1, 5).ToCylindrical("rad")
	require.NoError(t, err)
	assert.True(t, gscalar.EqualWithinAbs(r, math.Sqrt2, tol))
	assert.True(t, gscalar.EqualWithinAbs(theta, math.Pi/4, tol))
	assert.Equal(t, 5.0, z)

	// z passes through even when negative; theta follows the planar
	// quadrant table.
	r, theta, z, err = mustSpatial(t, -1, 0, -2).ToCylindrical("deg")
	require.NoError(t, err)
	assert.True(t, gscalar.EqualWithinAbs(r, 1, tol))
	assert.True(t, gscalar.EqualWithinAbs(theta, 180, tol))
	assert.Equal(t, -2.0, z)

	r, theta, z, err = mustSpatial(t, 0, 0, 0).ToCylindrical("rad")
	require.NoError(t, err)
	assert.Zero(t, r)
	assert.Zero(t, theta)
	assert.Zero(t, z)

	_, _, _, err = mustSpatial(t, 1, 1, 1).ToCylindrical("tau")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestToSpherical(t *testing.T) {
	r, theta, phi, err := mustSpatial(t, 1, 1, 5).ToSpherical("rad")
	require.NoError(t, err)
	want := math.Sqrt(27)
	assert.True(t, gscalar.EqualWithinAbs(r, want, tol))
	assert.True(t, gscalar.EqualWithinAbs(theta, math.Pi/4, tol))
	assert.True(t, gscalar.EqualWithinAbs(phi, math.Acos(5/want), tol))

	// Straight up the z-axis: no planar displacement, phi zero.
	r, theta, phi, err = mustSpatial(t, 0, 0, 3).ToSpherical("rad")
	require.NoError(t, err)
	assert.True(t, gscalar.EqualWithinAbs(r, 3, tol))
	assert.Zero(t, theta)
	assert.Zero(t, phi)

	// Straight down: phi is the full inclination.
	_, _, phi, err = mustSpatial(t, 0, 0, -3).ToSpherical("deg")
	require.NoError(t, err)
	assert.True(t, gscalar.EqualWithinAbs(phi, 180, tol))

	r, theta, phi, err = mustSpatial(t, 0, 0, 0).ToSpherical("rad")
	require.NoError(t, err)
	assert.Zero(t, r)
	assert.Zero(t, theta)
	assert.Zero(t, phi)
}

func TestSphericalMatchesAnchored(t *testing.T) {
	// Conversions act on the displacement, so translating the vector does
	// not change them.
	free := mustSpatial(t, 1, 2, 2)
	moved, err := NewSpatialAnchored([]interface{}{2, 3, 3}, []interface{}{1, 1, 1})
	require.NoError(t, err)

	r1, t1, p1, err := free.ToSpherical("rad")
	require.NoError(t, err)
	r2, t2, p2, err := moved.ToSpherical("rad")
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, t1, t2)
	assert.Equal(t, p1, p2)
}

func TestSpatialVec3Bridge(t *testing.T) {
	s, err := NewSpatialAnchored([]interface{}{2, 3, 4}, []interface{}{1, 1, 1})
	require.NoError(t, err)
	w, err := s.Vec3()
	require.NoError(t, err)
	assert.Equal(t, 1.0, w[0])
	assert.Equal(t, 2.0, w[1])
	assert.Equal(t, 3.0, w[2])

	_, err = mustSpatial(t, 1i, 0, 0).Vec3()
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
