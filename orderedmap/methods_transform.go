// SPDX-License-Identifier: MIT

// Package orderedmap - functional transforms.
//
// Every transform here walks the order list, so results are deterministic
// and follow the receiver's current order. Go methods cannot introduce new
// type parameters, which is why Map, MapToSlice and Reduce are package-level
// functions.

package orderedmap

// Filter returns a new map with the entries for which keep returns true,
// in their original relative order.
// Complexity: O(n).
func (m *OrderedMap[K, V]) Filter(keep func(key K, value V) bool) *OrderedMap[K, V] {
	out := New[K, V]()
	var v V
	for _, k := range m.keys {
		v = m.values[k]
		if keep(k, v) {
			out.keys = append(out.keys, k)
			out.values[k] = v
		}
	}

	return out
}

// Map builds a new map by applying fn to every entry and appending each
// result with Set. When fn yields the same output key more than once, the
// last value wins and the key keeps the position of its first occurrence.
// Complexity: O(n).
func Map[K comparable, V any, K2 comparable, V2 any](
	m *OrderedMap[K, V],
	fn func(key K, value V) (K2, V2),
) *OrderedMap[K2, V2] {
	out := New[K2, V2](WithCapacity(len(m.keys)))
	for _, k := range m.keys {
		out.Set(fn(k, m.values[k]))
	}

	return out
}

// MapToSlice returns fn applied to every entry, in key order.
// Complexity: O(n).
func MapToSlice[K comparable, V any, T any](m *OrderedMap[K, V], fn func(key K, value V) T) []T {
	out := make([]T, len(m.keys))
	for i, k := range m.keys {
		out[i] = fn(k, m.values[k])
	}

	return out
}

// Reduce folds the entries in key order, starting from initial.
// Complexity: O(n).
func Reduce[K comparable, V any, A any](m *OrderedMap[K, V], initial A, fn func(acc A, key K, value V) A) A {
	acc := initial
	for _, k := range m.keys {
		acc = fn(acc, k, m.values[k])
	}

	return acc
}
