package vec

import "errors"

// Every failure in this package is a programmer or input error, raised
// eagerly before any value is built. Match with errors.Is.
var (
	// ErrInvalidArgument marks a non-numeric element, a value outside the
	// supported scalar kinds, or an unrecognized unit string.
	ErrInvalidArgument = errors.New("vec: invalid argument")

	// ErrTypeMismatch marks an operation applied to a scalar kind that
	// cannot support it, such as ordering complex norms or floor-dividing
	// complex components.
	ErrTypeMismatch = errors.New("vec: type mismatch")

	// ErrDimensionMismatch marks operands of unequal dimension, a tail of
	// the wrong length, or 2D/3D construction from the wrong component
	// count.
	ErrDimensionMismatch = errors.New("vec: dimension mismatch")

	// ErrTailMismatch marks a cross product between vectors anchored at
	// different base points.
	ErrTailMismatch = errors.New("vec: tail mismatch")

	// ErrDivisionByZero marks division by a zero scalar, a zero component,
	// or normalization of the zero vector.
	ErrDivisionByZero = errors.New("vec: division by zero")
)
