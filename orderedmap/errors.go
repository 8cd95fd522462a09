// SPDX-License-Identifier: MIT
// Package orderedmap: sentinel error set.
// All index-based operations return these sentinels (wrapped with call-site
// context); tests and callers match them via errors.Is.

package orderedmap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that an index or index range falls outside the
	// interval an operation accepts.
	ErrOutOfRange = errors.New("orderedmap: index out of range")

	// ErrEmpty is returned by RemoveLast on an empty map. It is always wrapped
	// together with ErrOutOfRange, so errors.Is matches both.
	ErrEmpty = errors.New("orderedmap: map is empty")
)

// ---------- error context tags ----------

const (
	ctxAt          = "At"
	ctxSetAt       = "SetAt"
	ctxInsertAt    = "InsertAt"
	ctxRemoveAt    = "RemoveAt"
	ctxRemoveLast  = "RemoveLast"
	ctxKeysRange   = "KeysRange"
	ctxValuesRange = "ValuesRange"
)

// mapErrorf wraps err with the method tag and the offending index.
// Output shape: "OrderedMap.<method>(<index>): <sentinel>".
func mapErrorf(method string, index int, err error) error {
	return fmt.Errorf("OrderedMap.%s(%d): %w", method, index, err)
}

// rangeErrorf is mapErrorf for [lo, hi) ranges.
func rangeErrorf(method string, lo, hi int) error {
	return fmt.Errorf("OrderedMap.%s(%d,%d): %w", method, lo, hi, ErrOutOfRange)
}

// emptyErrorf reports an operation that needs at least one entry.
// Both ErrEmpty and ErrOutOfRange match the result.
func emptyErrorf(method string) error {
	return fmt.Errorf("OrderedMap.%s: %w: %w", method, ErrEmpty, ErrOutOfRange)
}
