// SPDX-License-Identifier: MIT
// Package stack: sentinel error set.

package stack

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange signals an underflow: a pop or drop asked for more items
	// than the stack holds.
	ErrOutOfRange = errors.New("stack: out of range")

	// ErrNegativeCount is returned by PopN/DropN for n < 0.
	ErrNegativeCount = errors.New("stack: negative item count")
)

const (
	ctxPop   = "Pop"
	ctxPopN  = "PopN"
	ctxDrop  = "Drop"
	ctxDropN = "DropN"
)

// stackErrorf wraps err as "Stack.<method>(n=<n>, len=<size>): <sentinel>".
func stackErrorf(method string, n, size int, err error) error {
	return fmt.Errorf("Stack.%s(n=%d, len=%d): %w", method, n, size, err)
}
