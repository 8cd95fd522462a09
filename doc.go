// Package lvlcontainers is a small family of generic in-memory containers.
//
// 🚀 What's inside?
//
//	orderedmap/  OrderedMap[K, V], a map that remembers key order, with
//	             dictionary, array and sequence behaviour at once
//	stack/       Stack[T], LIFO with bulk push/pop/drop and concatenation
//	matrix/      Dense[T], fixed-size 2D grid with cell/row/column access
//
// ✨ Shared guarantees
//
//   - Generic, pure Go, no hidden global state.
//   - Index-based calls never panic on bad input: they return sentinel
//     errors (ErrOutOfRange, ErrLengthMismatch) wrapped with call-site
//     context; match with errors.Is.
//   - Deterministic iteration via range-over-func iterators.
//   - Not safe for concurrent mutation; each instance belongs to one owner.
//
// Quick ASCII example (OrderedMap.SetAt on an existing key):
//
//	[D A B C] --SetAt(2, A)--> remove A → [D B C] → insert at 1 → [D A B C]
//
//	go get github.com/katalvlaran/lvlcontainers
package lvlcontainers
