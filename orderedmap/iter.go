// SPDX-License-Identifier: MIT

// Package orderedmap - range-over-func iterators.
//
// Each call returns a fresh, restartable sequence over the current order.
// Mutating the map while ranging is not supported; range over Entries()
// (a snapshot) when the loop body needs to mutate.

package orderedmap

import "iter"

// All yields every key/value pair from first to last.
func (m *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Backward yields every key/value pair from last to first.
func (m *OrderedMap[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := len(m.keys) - 1; i >= 0; i-- {
			k := m.keys[i]
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Indexed yields (index, entry) pairs in order.
func (m *OrderedMap[K, V]) Indexed() iter.Seq2[int, Entry[K, V]] {
	return func(yield func(int, Entry[K, V]) bool) {
		for i, k := range m.keys {
			if !yield(i, Entry[K, V]{Key: k, Value: m.values[k]}) {
				return
			}
		}
	}
}
