// SPDX-License-Identifier: MIT

// Package orderedmap - reordering.
//
// All sorts rewrite only the order list; the association is never touched,
// so Similar(before, after) always holds. Sorts are stable: entries that
// compare equal keep their current relative order.
//
// Comparators follow the cmp.Compare convention: negative when a sorts
// before b, zero when equivalent, positive otherwise.

package orderedmap

import "slices"

// Sort reorders the map in place by comparing whole entries.
// Complexity: O(n log n).
func (m *OrderedMap[K, V]) Sort(cmp func(a, b Entry[K, V]) int) {
	entries := m.Entries()
	slices.SortStableFunc(entries, cmp)
	for i, e := range entries {
		m.keys[i] = e.Key
	}
}

// SortByKeys reorders the map in place by comparing keys.
// Complexity: O(n log n).
func (m *OrderedMap[K, V]) SortByKeys(cmp func(a, b K) int) {
	slices.SortStableFunc(m.keys, cmp)
}

// SortByValues reorders the map in place by comparing values; keys travel
// with their values.
// Complexity: O(n log n).
func (m *OrderedMap[K, V]) SortByValues(cmp func(a, b V) int) {
	slices.SortStableFunc(m.keys, func(a, b K) int {
		return cmp(m.values[a], m.values[b])
	})
}

// Sorted returns a sorted copy; the receiver is unchanged.
func (m *OrderedMap[K, V]) Sorted(cmp func(a, b Entry[K, V]) int) *OrderedMap[K, V] {
	cp := m.Clone()
	cp.Sort(cmp)

	return cp
}

// SortedByKeys returns a copy sorted by key; the receiver is unchanged.
func (m *OrderedMap[K, V]) SortedByKeys(cmp func(a, b K) int) *OrderedMap[K, V] {
	cp := m.Clone()
	cp.SortByKeys(cmp)

	return cp
}

// SortedByValues returns a copy sorted by value; the receiver is unchanged.
func (m *OrderedMap[K, V]) SortedByValues(cmp func(a, b V) int) *OrderedMap[K, V] {
	cp := m.Clone()
	cp.SortByValues(cmp)

	return cp
}

// Reversed returns a copy whose key order is reversed.
func (m *OrderedMap[K, V]) Reversed() *OrderedMap[K, V] {
	cp := m.Clone()
	slices.Reverse(cp.keys)

	return cp
}
