// Package errs centralizes the sentinel errors returned across qmtile's
// packages, so callers can use errors.Is against a small, stable set of
// values instead of matching on error strings.
package errs

import "errors"

var (
	// ErrInvalidInput marks a malformed mesh: positions/indices whose length
	// isn't a multiple of 3, an index out of [0, N), an empty mesh, or
	// degenerate planar bounds (max <= min on a non-height axis).
	ErrInvalidInput = errors.New("qmtile: invalid input")

	// ErrInvalidExtension marks a malformed extension: a duplicate extension
	// id, or a payload whose length doesn't match what its id requires.
	ErrInvalidExtension = errors.New("qmtile: invalid extension")

	// ErrNumericFailure marks a numeric precondition violation: a
	// non-positive ellipsoid semi-axis, a NaN produced during projection, or
	// (in strict mode) a zero-radius bounding sphere.
	ErrNumericFailure = errors.New("qmtile: numeric failure")

	// ErrIO wraps a failure returned by the caller-supplied output sink.
	ErrIO = errors.New("qmtile: io failure")
)
