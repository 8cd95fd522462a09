// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels wrapped with context, and
// tests check them via errors.Is. No method panics on user-triggered errors.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs.

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrLengthMismatch indicates that a replacement row or column does not have
	// exactly Cols() or Rows() elements respectively.
	ErrLengthMismatch = errors.New("matrix: length mismatch")

	// ErrBadShape is returned when a requested window does not fit the matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
