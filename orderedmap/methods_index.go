// SPDX-License-Identifier: MIT

// Package orderedmap - index-based accessors.
//
// Purpose:
//   - Array-like view over the order list: read, place, insert and remove by position.
//   - Validate every index at the API boundary and return ErrOutOfRange (wrapped)
//     instead of letting the slice runtime panic.
//
// Valid intervals:
//   - At, RemoveAt:                 0 <= index < Len()
//   - SetAt/InsertAt (new key):     0 <= index <= Len()
//   - SetAt/InsertAt (existing key): 0 <= index < Len()
//   - KeysRange/ValuesRange:        0 <= lo <= hi <= Len()

package orderedmap

import "slices"

// checkIndex reports whether 0 <= i < n.
func checkIndex(i, n int) bool { return i >= 0 && i < n }

// At returns the entry at index.
//
// Errors:
//   - ErrOutOfRange when index is outside [0, Len()).
//
// Complexity: O(1).
func (m *OrderedMap[K, V]) At(index int) (Entry[K, V], error) {
	if !checkIndex(index, len(m.keys)) {
		return Entry[K, V]{}, mapErrorf(ctxAt, index, ErrOutOfRange)
	}
	k := m.keys[index]

	return Entry[K, V]{Key: k, Value: m.values[k]}, nil
}

// SetAt places (key, value) at index.
// MAIN DESCRIPTION:
//   - New key: inserted at index, later entries shift right.
//   - Existing key: its old entry is removed first, then the pair is inserted
//     at index-1 when the old position was before index (compensating for the
//     left shift caused by the removal), or at index otherwise. The entry thus
//     ends up between the same neighbours index pointed at before the call.
//
// Implementation:
//   - Stage 1: locate key in the order list.
//   - Stage 2: validate index against the interval for the new/existing case.
//   - Stage 3: shift the order list and write the association.
//
// Errors:
//   - ErrOutOfRange when index is outside [0, Len()] for a new key, or outside
//     [0, Len()) for an existing key. The map is unchanged on error.
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) SetAt(index int, key K, value V) error {
	return m.placeAt(ctxSetAt, index, key, value)
}

// InsertAt is SetAt under the array-style name.
func (m *OrderedMap[K, V]) InsertAt(index int, key K, value V) error {
	return m.placeAt(ctxInsertAt, index, key, value)
}

// placeAt is the shared kernel of SetAt/InsertAt; method only tags errors.
func (m *OrderedMap[K, V]) placeAt(method string, index int, key K, value V) error {
	n := len(m.keys)
	pos := m.IndexOf(key)
	if pos < 0 {
		if index < 0 || index > n {
			return mapErrorf(method, index, ErrOutOfRange)
		}
		m.keys = slices.Insert(m.keys, index, key)
		m.values[key] = value

		return nil
	}

	if !checkIndex(index, n) {
		return mapErrorf(method, index, ErrOutOfRange)
	}
	target := index
	if pos < index {
		target = index - 1 // removal shifted everything after pos one step left
	}
	m.keys = slices.Delete(m.keys, pos, pos+1)
	m.keys = slices.Insert(m.keys, target, key)
	m.values[key] = value

	return nil
}

// RemoveAt removes and returns the entry at index.
//
// Errors:
//   - ErrOutOfRange when index is outside [0, Len()).
//
// Complexity: O(n).
func (m *OrderedMap[K, V]) RemoveAt(index int) (Entry[K, V], error) {
	if !checkIndex(index, len(m.keys)) {
		return Entry[K, V]{}, mapErrorf(ctxRemoveAt, index, ErrOutOfRange)
	}

	return m.removeIndex(index), nil
}

// RemoveLast removes and returns the last entry.
//
// Errors:
//   - ErrOutOfRange (together with ErrEmpty) when the map is empty.
//
// Complexity: O(1).
func (m *OrderedMap[K, V]) RemoveLast() (Entry[K, V], error) {
	n := len(m.keys)
	if n == 0 {
		return Entry[K, V]{}, emptyErrorf(ctxRemoveLast)
	}

	return m.removeIndex(n - 1), nil
}

// removeIndex drops position i from both views. i must be valid.
func (m *OrderedMap[K, V]) removeIndex(i int) Entry[K, V] {
	k := m.keys[i]
	e := Entry[K, V]{Key: k, Value: m.values[k]}
	m.keys = slices.Delete(m.keys, i, i+1)
	delete(m.values, k)

	return e
}

// KeysRange returns a copy of the keys at positions [lo, hi).
//
// Errors:
//   - ErrOutOfRange unless 0 <= lo <= hi <= Len().
func (m *OrderedMap[K, V]) KeysRange(lo, hi int) ([]K, error) {
	if lo < 0 || hi < lo || hi > len(m.keys) {
		return nil, rangeErrorf(ctxKeysRange, lo, hi)
	}

	return slices.Clone(m.keys[lo:hi]), nil
}

// ValuesRange returns the values at positions [lo, hi) in key order.
//
// Errors:
//   - ErrOutOfRange unless 0 <= lo <= hi <= Len().
func (m *OrderedMap[K, V]) ValuesRange(lo, hi int) ([]V, error) {
	if lo < 0 || hi < lo || hi > len(m.keys) {
		return nil, rangeErrorf(ctxValuesRange, lo, hi)
	}
	out := make([]V, 0, hi-lo)
	for _, k := range m.keys[lo:hi] {
		out = append(out, m.values[k])
	}

	return out, nil
}
