// Package cmatrix: sentinel error set.
package cmatrix

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates an index (row or column) outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrSingular is returned when a zero pivot is encountered during LU/Kron,
	// in this no-pivoting scheme (§7 Numerical: "Kron reduction on singular Y_nn").
	ErrSingular = errors.New("cmatrix: singular matrix")

	// ErrUnknownBus indicates a referenced bus name is absent from an
	// AdmittanceMatrix's index.
	ErrUnknownBus = errors.New("cmatrix: unknown bus")
)
