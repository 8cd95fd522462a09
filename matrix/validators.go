// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for shape checks shared by comparisons and callers.
//  - Return sentinel errors tagged with the validator name.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil[T any](m *Dense[T]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
func ValidateSameShape[T any](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrLengthMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrLengthMismatch)
	}

	return nil
}

// Equal reports whether a and b have the same shape and cell values.
// A nil grid equals only another nil grid.
func Equal[T comparable](a, b *Dense[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied cell comparison.
func EqualFunc[T any](a, b *Dense[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	for i := range a.data {
		if !eq(a.data[i], b.data[i]) {
			return false
		}
	}

	return true
}
