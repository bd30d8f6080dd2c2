package core

import "errors"

// Error categories shared by the signal and engine packages. Package errors
// wrap one of these so callers can classify failures with errors.Is.
var (
	// ErrInvalidArgument reports a parameter outside its valid range, such as
	// a non-positive step or a polynomial degree below one.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientData reports too few points for the requested operation.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNumericDegeneracy reports a singular or ill-conditioned system, or
	// duplicate knots where distinct ones are required.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)
