// SPDX-License-Identifier: MIT

// Package stack - storage, push/pop/drop.
//
// Storage is a slice ordered bottom→top: items[0] is the bottom and
// items[len-1] is the top, so Push/Pop are amortized O(1) and Drop shifts.

package stack

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Stack is a LIFO sequence. The zero value is an empty, ready-to-use stack.
type Stack[T any] struct {
	items []T // bottom → top
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Stack[int])(nil)

// New returns an empty stack.
func New[T any](opts ...Option) *Stack[T] {
	o := gatherOptions(opts...)

	return &Stack[T]{items: make([]T, 0, o.capacity)}
}

// FromSlice returns a stack pre-loaded with items, pushed in slice order
// (items[0] ends up at the bottom). items is copied.
func FromSlice[T any](items []T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

// Len returns the number of items.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Push places items on top in argument order; the last argument becomes the top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

// PushStack pushes every item of other, bottom first, onto s.
// other is not modified; pushing a stack onto itself doubles it.
func (s *Stack[T]) PushStack(other *Stack[T]) {
	if other == nil {
		return
	}
	s.items = append(s.items, other.items...)
}

// Peek returns the top item without removing it.
// The boolean is false on an empty stack.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Pop removes and returns the top item.
//
// Errors:
//   - ErrOutOfRange on an empty stack.
func (s *Stack[T]) Pop() (T, error) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, stackErrorf(ctxPop, 1, n, ErrOutOfRange)
	}
	top := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release reference for GC
	s.items = s.items[:n-1]

	return top, nil
}

// PopN removes exactly n items from the top. n == 0 is a no-op.
//
// Errors:
//   - ErrNegativeCount for n < 0.
//   - ErrOutOfRange when n > Len(); nothing is removed.
func (s *Stack[T]) PopN(n int) error {
	if err := s.checkCount(ctxPopN, n); err != nil {
		return err
	}
	keep := len(s.items) - n
	clear(s.items[keep:])
	s.items = s.items[:keep]

	return nil
}

// Drop removes and returns the bottom (first pushed) item.
//
// Errors:
//   - ErrOutOfRange on an empty stack.
func (s *Stack[T]) Drop() (T, error) {
	n := len(s.items)
	if n == 0 {
		var zero T
		return zero, stackErrorf(ctxDrop, 1, n, ErrOutOfRange)
	}
	bottom := s.items[0]
	s.items = slices.Delete(s.items, 0, 1)

	return bottom, nil
}

// DropN removes exactly n items from the bottom. n == 0 is a no-op.
//
// Errors:
//   - ErrNegativeCount for n < 0.
//   - ErrOutOfRange when n > Len(); nothing is removed.
func (s *Stack[T]) DropN(n int) error {
	if err := s.checkCount(ctxDropN, n); err != nil {
		return err
	}
	s.items = slices.Delete(s.items, 0, n)

	return nil
}

// checkCount validates a bulk count before any mutation.
func (s *Stack[T]) checkCount(method string, n int) error {
	if n < 0 {
		return stackErrorf(method, n, len(s.items), ErrNegativeCount)
	}
	if n > len(s.items) {
		return stackErrorf(method, n, len(s.items), ErrOutOfRange)
	}

	return nil
}

// Clear removes every item.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Clone returns an independent copy.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{items: slices.Clone(s.items)}
}

// ToSlice returns a copy of the items bottom→top (push order).
func (s *Stack[T]) ToSlice() []T {
	return slices.Clone(s.items)
}

// All yields the items from top to bottom. Each call returns a fresh sequence.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// String renders the items top→bottom, e.g. "Stack[C B A]".
func (s *Stack[T]) String() string {
	var b strings.Builder
	b.WriteString("Stack[")
	for i := len(s.items) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "%v", s.items[i])
		if i > 0 {
			b.WriteByte(' ')
		}
	}
	b.WriteByte(']')

	return b.String()
}
