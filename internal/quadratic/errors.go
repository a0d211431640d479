package quadratic

import "errors"

var (
	// ErrInvalidArguments is returned when fewer than three coefficients are given
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrDomain marks a negative discriminant (no real root)
	ErrDomain = errors.New("negative discriminant")

	// ErrDivisionDegenerate marks a = 0, where the formula divides by zero
	ErrDivisionDegenerate = errors.New("degenerate equation: a = 0")
)
