// SPDX-License-Identifier: MIT

// Package orderedmap - storage & keyed accessors.
//
// Purpose:
//   - Hold the order list (keys) and the association (values) in one owning struct.
//   - Keep Invariant A (same key set in both views) and Invariant B (no duplicate
//     keys in the order list) across every mutation in this file.
//
// Complexity quicksheet:
//   - Get/Has/Set/UpdateValue: O(1) amortized; RemoveKey/IndexOf: O(n); Clone: O(n).

package orderedmap

import (
	"slices"
)

// Entry is a single key/value pair as observed in the map's current order.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// OrderedMap is a map that keeps its keys in insertion or explicit order.
//   - keys is the order list; each key appears at most once.
//   - values is the association; its key set always equals the set of keys.
//
// The zero value is not usable; construct with New, FromMap or FromEntries.
type OrderedMap[K comparable, V any] struct {
	keys   []K
	values map[K]V
}

// New returns an empty OrderedMap.
// Complexity: O(1) plus the reserved capacity.
func New[K comparable, V any](opts ...Option) *OrderedMap[K, V] {
	o := gatherOptions(opts...)

	return &OrderedMap[K, V]{
		keys:   make([]K, 0, o.capacity),
		values: make(map[K]V, o.capacity),
	}
}

// FromMap builds an OrderedMap holding the entries of src.
// The resulting order is Go's map iteration order and is therefore unspecified;
// sort afterwards (e.g. SortByKeys) if a stable order is needed.
// src is copied; later changes to src are not observed.
func FromMap[K comparable, V any](src map[K]V) *OrderedMap[K, V] {
	m := New[K, V](WithCapacity(len(src)))
	for k, v := range src {
		m.keys = append(m.keys, k)
		m.values[k] = v
	}

	return m
}

// FromEntries builds an OrderedMap by calling Set for every entry in order.
// Duplicate keys follow the Set contract: the first occurrence fixes the
// position and the last occurrence fixes the value.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *OrderedMap[K, V] {
	m := New[K, V](WithCapacity(len(entries)))
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}

	return m
}

// Clone returns an independent copy with identical order and association.
// Values are copied with Go assignment semantics (pointers are shared).
// Complexity: O(n).
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	cp := &OrderedMap[K, V]{
		keys:   make([]K, len(m.keys), cap(m.keys)),
		values: make(map[K]V, len(m.values)),
	}
	copy(cp.keys, m.keys)
	for k, v := range m.values {
		cp.values[k] = v
	}

	return cp
}

// Len returns the number of entries.
func (m *OrderedMap[K, V]) Len() int { return len(m.keys) }

// IsEmpty reports whether the map has no entries.
func (m *OrderedMap[K, V]) IsEmpty() bool { return len(m.keys) == 0 }

// Get returns the value for key and whether it was present.
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.values[key]

	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.values[key]

	return ok
}

// IndexOf returns the position of key in the order list, or -1 if absent.
// Complexity: O(n).
func (m *OrderedMap[K, V]) IndexOf(key K) int {
	if _, ok := m.values[key]; !ok {
		return -1 // skip the scan for absent keys
	}

	return slices.Index(m.keys, key)
}

// Set associates value with key.
// An existing key keeps its position and only its value changes;
// a new key is appended to the end of the order.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Append places the pair at the logical end. It is Set under another name:
// an existing key is updated in place rather than moved.
func (m *OrderedMap[K, V]) Append(key K, value V) { m.Set(key, value) }

// UpdateValue behaves like Set and additionally returns the displaced value.
// The boolean is false (and the returned value is the zero V) when key was
// not present before the call, in which case key is appended.
func (m *OrderedMap[K, V]) UpdateValue(key K, value V) (V, bool) {
	old, ok := m.values[key]
	if !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value

	return old, ok
}

// RemoveKey deletes key from both views and returns the removed value.
// The boolean is false when key was not present; the map is then unchanged.
// Complexity: O(n) for the order-list shift.
func (m *OrderedMap[K, V]) RemoveKey(key K) (V, bool) {
	v, ok := m.values[key]
	if !ok {
		return v, false
	}
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	delete(m.values, key)

	return v, true
}

// RemoveAll clears both views and releases their storage.
func (m *OrderedMap[K, V]) RemoveAll() {
	m.keys = make([]K, 0)
	m.values = make(map[K]V)
}

// Keys returns a snapshot of the keys in current order.
func (m *OrderedMap[K, V]) Keys() []K {
	return slices.Clone(m.keys)
}

// Values returns a snapshot of the values in current key order.
func (m *OrderedMap[K, V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.values[k]
	}

	return out
}

// Entries returns a snapshot of the key/value pairs in current order.
func (m *OrderedMap[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry[K, V]{Key: k, Value: m.values[k]}
	}

	return out
}
