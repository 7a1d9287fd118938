package vec

import (
	"fmt"
	"strings"
)

// Vector is an immutable directed quantity drawn from an optional base
// point (tail) to a coordinate (head). When no tail is set the vector is
// free and its displacement is the head itself. All algebra acts on the
// displacement; results re-anchor to the receiver's tail.
type Vector struct {
	head  []Scalar
	tail  []Scalar
	comp  []Scalar
	dim   int
	dtype Kind
	norm  Scalar
}

// Power is the result of integer vector exponentiation: even powers
// collapse to a scalar, odd powers keep a direction.
type Power struct {
	Scalar   Scalar
	Vec      Vector
	IsScalar bool
}

/* Constructors */

// New builds a free vector from the given components. Accepted component
// types are int, int32, int64, float32, float64, complex64, complex128 and
// Scalar; anything else fails with ErrInvalidArgument.
func New(head ...interface{}) (Vector, error) {
	return NewAnchored(head, nil)
}

// NewAnchored builds a vector with an explicit tail. An empty tail means
// the coordinate origin; a non-empty tail must match the head's length.
func NewAnchored(head, tail []interface{}) (Vector, error) {
	hs, err := coerceAll(head, "head")
	if err != nil {
		return Vector{}, err
	}
	if len(hs) == 0 {
		return Vector{}, fmt.Errorf("%w: vector needs at least one component", ErrInvalidArgument)
	}
	ts, err := coerceAll(tail, "tail")
	if err != nil {
		return Vector{}, err
	}
	return fromScalars(hs, ts)
}

// Clone returns a copy of v. Derived fields are copied verbatim, nothing
// is re-derived.
func (v Vector) Clone() Vector {
	return Vector{
		head:  copyScalars(v.head),
		tail:  copyScalars(v.tail),
		comp:  copyScalars(v.comp),
		dim:   v.dim,
		dtype: v.dtype,
		norm:  v.norm,
	}
}

// fromScalars finishes construction: kind widening across head and tail,
// displacement, and the eager norm.
func fromScalars(head, tail []Scalar) (Vector, error) {
	if len(tail) > 0 && len(tail) != len(head) {
		return Vector{}, fmt.Errorf("%w: tail has %d components, head has %d",
			ErrDimensionMismatch, len(tail), len(head))
	}

	dtype := Int
	for _, s := range head {
		if s.Kind() > dtype {
			dtype = s.Kind()
		}
	}
	for _, s := range tail {
		if s.Kind() > dtype {
			dtype = s.Kind()
		}
	}

	v := Vector{
		head:  make([]Scalar, len(head)),
		dim:   len(head),
		dtype: dtype,
	}
	for i, s := range head {
		v.head[i] = s.as(dtype)
	}
	if len(tail) > 0 {
		v.tail = make([]Scalar, len(tail))
		for i, s := range tail {
			v.tail[i] = s.as(dtype)
		}
	}

	v.comp = make([]Scalar, v.dim)
	for i := range v.head {
		if len(v.tail) > 0 {
			v.comp[i] = v.head[i].Sub(v.tail[i])
		} else {
			v.comp[i] = v.head[i]
		}
	}

	// The squares use the dtype's own multiplication. For complex dtype
	// this is the literal complex square, not the squared modulus, so the
	// "Euclidean norm" of a complex vector may itself be complex.
	sum := I(0)
	for _, c := range v.comp {
		sum = sum.Add(c.Mul(c))
	}
	v.norm = sum.Sqrt()

	return v, nil
}

func coerceAll(vals []interface{}, what string) ([]Scalar, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make([]Scalar, len(vals))
	for i, raw := range vals {
		s, err := coerce(raw)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", what, i, err)
		}
		out[i] = s
	}
	return out, nil
}

func copyScalars(s []Scalar) []Scalar {
	if s == nil {
		return nil
	}
	out := make([]Scalar, len(s))
	copy(out, s)
	return out
}

func (v Vector) checkDim(o Vector) error {
	if v.dim != o.dim {
		return fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, v.dim, o.dim)
	}
	return nil
}

/* Getters */

// Len returns the number of components.
func (v Vector) Len() int { return v.dim }

// Dim returns the number of components.
func (v Vector) Dim() int { return v.dim }

// DType returns the widened numeric kind shared by head and tail.
func (v Vector) DType() Kind { return v.dtype }

// At returns head component i.
func (v Vector) At(i int) Scalar { return v.head[i] }

// Head returns a copy of the head coordinates. Ranging over it is the
// iteration order of the vector.
func (v Vector) Head() []Scalar { return copyScalars(v.head) }

// Tail returns a copy of the tail coordinates, nil for a free vector.
func (v Vector) Tail() []Scalar { return copyScalars(v.tail) }

// Component returns a copy of the displacement head - tail.
func (v Vector) Component() []Scalar { return copyScalars(v.comp) }

// Norm returns the cached Euclidean length of the displacement.
func (v Vector) Norm() Scalar { return v.norm }

/* Algebra */

// Add returns v + o: displacements combine, the result keeps v's tail.
func (v Vector) Add(o Vector) (Vector, error) {
	return v.combine(o, func(a, b Scalar) (Scalar, error) { return a.Add(b), nil })
}

// Sub returns v - o on displacements, anchored at v's tail.
func (v Vector) Sub(o Vector) (Vector, error) {
	return v.combine(o, func(a, b Scalar) (Scalar, error) { return a.Sub(b), nil })
}

// MulV multiplies displacements componentwise, anchored at v's tail.
func (v Vector) MulV(o Vector) (Vector, error) {
	return v.combine(o, func(a, b Scalar) (Scalar, error) { return a.Mul(b), nil })
}

// DivV divides displacements componentwise, anchored at v's tail.
func (v Vector) DivV(o Vector) (Vector, error) {
	return v.combine(o, Scalar.Div)
}

// FloorDivV floor-divides displacements componentwise.
func (v Vector) FloorDivV(o Vector) (Vector, error) {
	return v.combine(o, Scalar.FloorDiv)
}

// ModV reduces displacements componentwise modulo o's.
func (v Vector) ModV(o Vector) (Vector, error) {
	return v.combine(o, Scalar.Mod)
}

// combine applies op to the two displacements and re-anchors the result
// to v's tail.
func (v Vector) combine(o Vector, op func(a, b Scalar) (Scalar, error)) (Vector, error) {
	if err := v.checkDim(o); err != nil {
		return Vector{}, err
	}
	head := make([]Scalar, v.dim)
	for i := range head {
		c, err := op(v.comp[i], o.comp[i])
		if err != nil {
			return Vector{}, err
		}
		if len(v.tail) > 0 {
			c = c.Add(v.tail[i])
		}
		head[i] = c
	}
	return fromScalars(head, v.tail)
}

// Mul scales the head by s, preserving the tail.
func (v Vector) Mul(s interface{}) (Vector, error) {
	return v.mapHead(s, func(a, b Scalar) (Scalar, error) { return a.Mul(b), nil })
}

// Div divides the head by s, preserving the tail. Dividing a scalar by a
// vector is unsupported.
func (v Vector) Div(s interface{}) (Vector, error) {
	return v.mapHead(s, Scalar.Div)
}

// FloorDiv floor-divides the head by s.
func (v Vector) FloorDiv(s interface{}) (Vector, error) {
	return v.mapHead(s, Scalar.FloorDiv)
}

// Mod reduces the head modulo s.
func (v Vector) Mod(s interface{}) (Vector, error) {
	return v.mapHead(s, Scalar.Mod)
}

func (v Vector) mapHead(raw interface{}, op func(a, b Scalar) (Scalar, error)) (Vector, error) {
	s, err := coerce(raw)
	if err != nil {
		return Vector{}, err
	}
	head := make([]Scalar, v.dim)
	for i := range head {
		h, err := op(v.head[i], s)
		if err != nil {
			return Vector{}, err
		}
		head[i] = h
	}
	return fromScalars(head, v.tail)
}

// Neg returns the vector with every head component negated, tail
// preserved.
func (v Vector) Neg() Vector {
	head := make([]Scalar, v.dim)
	for i := range head {
		head[i] = v.head[i].Neg()
	}
	out, _ := fromScalars(head, v.tail)
	return out
}

// Inverse is the additive inverse of v.
func (v Vector) Inverse() Vector { return v.Neg() }

// Zero returns the additive identity of the same dimension, with no tail.
func (v Vector) Zero() Vector {
	head := make([]Scalar, v.dim)
	for i := range head {
		head[i] = I(0)
	}
	out, _ := fromScalars(head, nil)
	return out
}

// Pow raises v to an integer power through repeated dot products:
//
//	v ** 2 = v . v       : scalar
//	v ** 3 = (v . v) * v : vector
//
// generalized by halving the exponent. Even powers yield a scalar, odd
// powers a vector; n == 1 returns v unchanged.
func (v Vector) Pow(n int) (Power, error) {
	d, err := v.Dot(v)
	if err != nil {
		return Power{}, err
	}
	half := n / 2
	if n < 0 && n%2 != 0 {
		half--
	}
	s, err := d.PowInt(half)
	if err != nil {
		return Power{}, err
	}
	if n%2 == 0 {
		return Power{Scalar: s, IsScalar: true}, nil
	}
	if n == 1 {
		return Power{Vec: v.Clone()}, nil
	}
	out, err := v.Mul(s)
	if err != nil {
		return Power{}, err
	}
	return Power{Vec: out}, nil
}

// Dot returns the dot product of the two displacements. Translating both
// vectors together does not change it.
func (v Vector) Dot(o Vector) (Scalar, error) {
	if err := v.checkDim(o); err != nil {
		return Scalar{}, err
	}
	sum := I(0)
	for i := range v.comp {
		sum = sum.Add(v.comp[i].Mul(o.comp[i]))
	}
	return sum, nil
}

// Proj returns the projection of v onto o, anchored at v's tail:
//
//	v.Proj(o) = (v . o / |o|) * o
func (v Vector) Proj(o Vector) (Vector, error) {
	d, err := v.Dot(o)
	if err != nil {
		return Vector{}, err
	}
	s, err := d.Div(o.norm)
	if err != nil {
		return Vector{}, fmt.Errorf("projection onto zero vector: %w", ErrDivisionByZero)
	}
	head := make([]Scalar, v.dim)
	for i := range head {
		head[i] = s.Mul(o.head[i])
	}
	return fromScalars(head, v.tail)
}

// Scale returns a vector in v's direction with the given length.
func (v Vector) Scale(magnitude interface{}) (Vector, error) {
	u, err := v.Unit()
	if err != nil {
		return Vector{}, err
	}
	return u.Mul(magnitude)
}

// Unit returns the displacement normalized to length 1, re-anchored to
// v's tail. The zero vector has no direction.
func (v Vector) Unit() (Vector, error) {
	if v.norm.IsZero() {
		return Vector{}, fmt.Errorf("unit of zero vector: %w", ErrDivisionByZero)
	}
	head := make([]Scalar, v.dim)
	for i := range head {
		c, err := v.comp[i].Div(v.norm)
		if err != nil {
			return Vector{}, err
		}
		if len(v.tail) > 0 {
			c = c.Add(v.tail[i])
		}
		head[i] = c
	}
	return fromScalars(head, v.tail)
}

// Shift re-anchors the vector. With no arguments a free vector is cloned
// and an anchored one collapses to its pure displacement; with an explicit
// new tail the displacement is preserved and drawn from the new base.
func (v Vector) Shift(newTail ...interface{}) (Vector, error) {
	if len(newTail) == 0 {
		if len(v.tail) == 0 {
			return v.Clone(), nil
		}
		return fromScalars(copyScalars(v.comp), nil)
	}
	ts, err := coerceAll(newTail, "tail")
	if err != nil {
		return Vector{}, err
	}
	if len(ts) != v.dim {
		return Vector{}, fmt.Errorf("%w: shift target has %d components, vector has %d",
			ErrDimensionMismatch, len(ts), v.dim)
	}
	head := make([]Scalar, v.dim)
	for i := range head {
		head[i] = v.comp[i].Add(ts[i])
	}
	return fromScalars(head, ts)
}

/* Comparisons */

// Equal compares displacements elementwise. Vectors of different
// dimension are never equal.
func (v Vector) Equal(o Vector) bool {
	if v.dim != o.dim {
		return false
	}
	for i := range v.comp {
		if !v.comp[i].Equal(o.comp[i]) {
			return false
		}
	}
	return true
}

// Less orders vectors by norm.
func (v Vector) Less(o Vector) (bool, error) {
	if err := v.checkDim(o); err != nil {
		return false, err
	}
	return v.norm.Less(o.norm)
}

// LessEq orders vectors by norm.
func (v Vector) LessEq(o Vector) (bool, error) {
	gt, err := v.Greater(o)
	return !gt && err == nil, err
}

// Greater orders vectors by norm.
func (v Vector) Greater(o Vector) (bool, error) {
	if err := v.checkDim(o); err != nil {
		return false, err
	}
	return o.norm.Less(v.norm)
}

// GreaterEq orders vectors by norm.
func (v Vector) GreaterEq(o Vector) (bool, error) {
	lt, err := v.Less(o)
	return !lt && err == nil, err
}

/* Rendering */

// String renders a free vector as ⟨a, b⟩ and an anchored one as
// (tail) ⟶ ⟨head⟩.
func (v Vector) String() string {
	if len(v.tail) == 0 {
		return "⟨" + joinScalars(v.head) + "⟩"
	}
	return "(" + joinScalars(v.tail) + ") ⟶ ⟨" + joinScalars(v.head) + "⟩"
}

func joinScalars(s []Scalar) string {
	parts := make([]string, len(s))
	for i := range s {
		parts[i] = s[i].String()
	}
	return strings.Join(parts, ", ")
}
