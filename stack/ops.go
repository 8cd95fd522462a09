// SPDX-License-Identifier: MIT

// Package stack - non-mutating concatenation and equality.

package stack

import "slices"

// With returns a new stack holding s's items followed by items.
// s is unchanged.
func (s *Stack[T]) With(items ...T) *Stack[T] {
	out := &Stack[T]{items: make([]T, 0, len(s.items)+len(items))}
	out.items = append(out.items, s.items...)
	out.items = append(out.items, items...)

	return out
}

// Concat returns a new stack with other pushed on top of s, preserving the
// relative push order of both. Neither operand is modified.
func (s *Stack[T]) Concat(other *Stack[T]) *Stack[T] {
	if other == nil {
		return s.Clone()
	}

	return s.With(other.items...)
}

// Equal reports whether a and b hold the same items in the same order.
// A nil stack equals only another nil stack.
func Equal[T comparable](a, b *Stack[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return slices.Equal(a.items, b.items)
}

// EqualFunc is Equal for items that are not comparable with ==.
func EqualFunc[T any](a, b *Stack[T], eq func(x, y T) bool) bool {
	if a == nil || b == nil {
		return a == b
	}

	return slices.EqualFunc(a.items, b.items, eq)
}
