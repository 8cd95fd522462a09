// SPDX-License-Identifier: MIT

// Package orderedmap - comparisons.
//
//   - Equal:   same keys, same order, same values (order-sensitive).
//   - Similar: same keys and values regardless of order (order-insensitive).
//   - NotEqual is the negation of Equal.
//
// A nil map equals only another nil map.

package orderedmap

import (
	"maps"
	"slices"
)

// Equal reports whether a and b hold the same entries in the same order.
// Complexity: O(n).
func Equal[K comparable, V comparable](a, b *OrderedMap[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// NotEqual is !Equal(a, b).
func NotEqual[K comparable, V comparable](a, b *OrderedMap[K, V]) bool {
	return !Equal(a, b)
}

// Similar reports whether a and b hold the same entries, ignoring order.
// Complexity: O(n).
func Similar[K comparable, V comparable](a, b *OrderedMap[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return maps.Equal(a.values, b.values)
}

// EqualFunc is Equal for values that are not comparable with ==.
// eq is called only for keys present in both maps.
func EqualFunc[K comparable, V any](a, b *OrderedMap[K, V], eq func(x, y V) bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !slices.Equal(a.keys, b.keys) {
		return false
	}
	for _, k := range a.keys {
		if !eq(a.values[k], b.values[k]) {
			return false
		}
	}

	return true
}
