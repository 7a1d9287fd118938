package vec

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"
)

// Kind is the numeric domain of a scalar or vector. Kinds widen upward:
// mixing an Int with a Real yields Real, mixing anything with a Complex
// yields Complex.
type Kind int

const (
	Int Kind = iota
	Real
	Complex
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Real:
		return "real"
	case Complex:
		return "complex"
	}
	return "unknown"
}

// Scalar is an immutable tagged union over the three supported numeric
// kinds. The zero value is the Int 0.
type Scalar struct {
	kind Kind
	i    int64
	f    float64
	c    complex128
}

/* Constructors */

// I wraps an integer.
func I(v int64) Scalar { return Scalar{kind: Int, i: v} }

// R wraps a real.
func R(v float64) Scalar { return Scalar{kind: Real, f: v} }

// C wraps a complex.
func C(v complex128) Scalar { return Scalar{kind: Complex, c: v} }

// coerce is the single boundary where raw Go values become Scalars. The
// accepted set is a closed union; anything else is ErrInvalidArgument.
func coerce(v interface{}) (Scalar, error) {
	switch n := v.(type) {
	case Scalar:
		return n, nil
	case int:
		return I(int64(n)), nil
	case int32:
		return I(int64(n)), nil
	case int64:
		return I(n), nil
	case float32:
		return R(float64(n)), nil
	case float64:
		return R(n), nil
	case complex64:
		return C(complex128(n)), nil
	case complex128:
		return C(n), nil
	}
	return Scalar{}, fmt.Errorf("%w: %T is not a supported numeric type", ErrInvalidArgument, v)
}

/* Kind handling */

// Kind reports the numeric domain of s.
func (s Scalar) Kind() Kind { return s.kind }

// as widens s to kind k. Narrowing is never requested internally.
func (s Scalar) as(k Kind) Scalar {
	if s.kind == k {
		return s
	}
	switch k {
	case Real:
		return R(float64(s.i))
	case Complex:
		if s.kind == Int {
			return C(complex(float64(s.i), 0))
		}
		return C(complex(s.f, 0))
	}
	return s
}

// widen promotes both operands to their common kind.
func widen(a, b Scalar) (Scalar, Scalar, Kind) {
	k := a.kind
	if b.kind > k {
		k = b.kind
	}
	return a.as(k), b.as(k), k
}

/* Value access */

// Float returns the value as a float64. Complex scalars have no real
// ordering or float form.
func (s Scalar) Float() (float64, error) {
	switch s.kind {
	case Int:
		return float64(s.i), nil
	case Real:
		return s.f, nil
	}
	return 0, fmt.Errorf("%w: complex scalar has no float64 form", ErrTypeMismatch)
}

// Complex128 returns the value widened to complex128.
func (s Scalar) Complex128() complex128 {
	return s.as(Complex).c
}

/* Arithmetic */

// Add returns s + o in the widened kind.
func (s Scalar) Add(o Scalar) Scalar {
	a, b, k := widen(s, o)
	switch k {
	case Int:
		return I(a.i + b.i)
	case Real:
		return R(a.f + b.f)
	}
	return C(a.c + b.c)
}

// Sub returns s - o in the widened kind.
func (s Scalar) Sub(o Scalar) Scalar {
	return s.Add(o.Neg())
}

// Mul returns s * o in the widened kind.
func (s Scalar) Mul(o Scalar) Scalar {
	a, b, k := widen(s, o)
	switch k {
	case Int:
		return I(a.i * b.i)
	case Real:
		return R(a.f * b.f)
	}
	return C(a.c * b.c)
}

// Div returns s / o. Integer operands divide into a Real, matching true
// division on the vector components.
func (s Scalar) Div(o Scalar) (Scalar, error) {
	if o.IsZero() {
		return Scalar{}, fmt.Errorf("%w: scalar divisor is zero", ErrDivisionByZero)
	}
	a, b, k := widen(s, o)
	if k == Complex {
		return C(a.c / b.c), nil
	}
	a, b = a.as(Real), b.as(Real)
	return R(a.f / b.f), nil
}

// FloorDiv returns s // o with floored semantics: the quotient rounds
// toward negative infinity, as in the reference componentwise operators.
// Complex operands have no floor.
func (s Scalar) FloorDiv(o Scalar) (Scalar, error) {
	if s.kind == Complex || o.kind == Complex {
		return Scalar{}, fmt.Errorf("%w: floor division is undefined on complex scalars", ErrTypeMismatch)
	}
	if o.IsZero() {
		return Scalar{}, fmt.Errorf("%w: scalar divisor is zero", ErrDivisionByZero)
	}
	a, b, k := widen(s, o)
	if k == Int {
		q := a.i / b.i
		if (a.i%b.i != 0) && ((a.i < 0) != (b.i < 0)) {
			q--
		}
		return I(q), nil
	}
	return R(math.Floor(a.f / b.f)), nil
}

// Mod returns s mod o with the sign of the divisor (floored modulo).
// Complex operands have no modulo.
func (s Scalar) Mod(o Scalar) (Scalar, error) {
	if s.kind == Complex || o.kind == Complex {
		return Scalar{}, fmt.Errorf("%w: modulo is undefined on complex scalars", ErrTypeMismatch)
	}
	if o.IsZero() {
		return Scalar{}, fmt.Errorf("%w: scalar divisor is zero", ErrDivisionByZero)
	}
	a, b, k := widen(s, o)
	if k == Int {
		r := a.i % b.i
		if r != 0 && ((r < 0) != (b.i < 0)) {
			r += b.i
		}
		return I(r), nil
	}
	r := math.Mod(a.f, b.f)
	if r != 0 && ((r < 0) != (b.f < 0)) {
		r += b.f
	}
	return R(r), nil
}

// Neg returns -s.
func (s Scalar) Neg() Scalar {
	switch s.kind {
	case Int:
		return I(-s.i)
	case Real:
		return R(-s.f)
	}
	return C(-s.c)
}

// PowInt raises s to an integer power. Negative exponents go through the
// reciprocal, so an Int base widens to Real.
func (s Scalar) PowInt(n int) (Scalar, error) {
	if n < 0 {
		p, err := s.PowInt(-n)
		if err != nil {
			return Scalar{}, err
		}
		return I(1).Div(p)
	}
	out := I(1)
	base := s
	for n > 0 {
		if n&1 == 1 {
			out = out.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return out, nil
}

// Sqrt returns the square root of s. Complex scalars (and negative reals,
// which arise from literally squared complex components) use the complex
// branch.
func (s Scalar) Sqrt() Scalar {
	switch s.kind {
	case Int:
		return R(math.Sqrt(float64(s.i)))
	case Real:
		if s.f < 0 {
			return C(cmplx.Sqrt(complex(s.f, 0)))
		}
		return R(math.Sqrt(s.f))
	}
	return C(cmplx.Sqrt(s.c))
}

/* Predicates */

// IsZero reports whether s is the zero of its kind.
func (s Scalar) IsZero() bool {
	switch s.kind {
	case Int:
		return s.i == 0
	case Real:
		return s.f == 0
	}
	return s.c == 0
}

// Equal reports whether s and o hold the same value after widening.
func (s Scalar) Equal(o Scalar) bool {
	a, b, k := widen(s, o)
	switch k {
	case Int:
		return a.i == b.i
	case Real:
		return a.f == b.f
	}
	return a.c == b.c
}

// Less reports whether s < o. Complex scalars are unordered.
func (s Scalar) Less(o Scalar) (bool, error) {
	if s.kind == Complex || o.kind == Complex {
		return false, fmt.Errorf("%w: complex scalars are unordered", ErrTypeMismatch)
	}
	a, b, k := widen(s, o)
	if k == Int {
		return a.i < b.i, nil
	}
	return a.f < b.f, nil
}

// isIntegral reports whether s holds a whole value. Used by the line
// renderers to trim trailing ".0" noise.
func (s Scalar) isIntegral() bool {
	switch s.kind {
	case Int:
		return true
	case Real:
		return s.f == math.Trunc(s.f) && !math.IsInf(s.f, 0)
	}
	return false
}

func (s Scalar) String() string {
	switch s.kind {
	case Int:
		return strconv.FormatInt(s.i, 10)
	case Real:
		return strconv.FormatFloat(s.f, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", s.c)
}
