// SPDX-License-Identifier: MIT

package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcontainers/orderedmap"
)

// TestNew_Empty verifies a fresh map is empty and usable.
func TestNew_Empty(t *testing.T) {
	m := orderedmap.New[string, int](orderedmap.WithCapacity(8))
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Len())
	require.Empty(t, m.Keys())

	_, ok := m.Get(KeyA)
	require.False(t, ok, "missing key must report absence")
}

// TestWithCapacity_PanicsOnNegative ensures nonsensical options panic.
func TestWithCapacity_PanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { orderedmap.WithCapacity(-1) })
}

// TestSet_AppendsNewKeysInOrder checks that keys inserted via Set come back in insertion order.
func TestSet_AppendsNewKeysInOrder(t *testing.T) {
	m := orderedmap.New[string, int]()
	keys := []string{KeyE, KeyC, KeyA, KeyD, KeyB}
	for i, k := range keys {
		m.Set(k, i)
	}
	MustKeys(t, m, keys...)
	MustConsistent(t, m)
}

// TestSet_UpdateKeepsOrder checks that overwriting an existing key changes only its value.
func TestSet_UpdateKeepsOrder(t *testing.T) {
	m := newABC()
	m.Set(KeyA, Val9)

	v, ok := m.Get(KeyA)
	require.True(t, ok)
	require.Equal(t, Val9, v)
	MustKeys(t, m, KeyA, KeyB, KeyC)
}

// TestAppend_IsSet verifies Append on an existing key does not move it.
func TestAppend_IsSet(t *testing.T) {
	m := newABC()
	m.Append(KeyD, Val4)
	m.Append(KeyA, Val9)
	MustEntries(t, m, entry(KeyA, Val9), entry(KeyB, Val2), entry(KeyC, Val3), entry(KeyD, Val4))
}

// TestUpdateValue returns the displaced value and appends only new keys.
func TestUpdateValue(t *testing.T) {
	m := newABC()

	old, ok := m.UpdateValue(KeyB, Val9)
	require.True(t, ok)
	require.Equal(t, Val2, old)
	MustKeys(t, m, KeyA, KeyB, KeyC)

	old, ok = m.UpdateValue(KeyD, Val4)
	require.False(t, ok)
	require.Zero(t, old)
	MustKeys(t, m, KeyA, KeyB, KeyC, KeyD)
}

// TestRemoveKey covers present and absent keys and the resulting count delta.
func TestRemoveKey(t *testing.T) {
	m := newABC()

	v, ok := m.RemoveKey(KeyB)
	require.True(t, ok)
	require.Equal(t, Val2, v)
	require.Equal(t, 2, m.Len())
	_, ok = m.Get(KeyB)
	require.False(t, ok)
	MustKeys(t, m, KeyA, KeyC)

	_, ok = m.RemoveKey(KeyB)
	require.False(t, ok, "second removal is a no-op")
	require.Equal(t, 2, m.Len())
	MustConsistent(t, m)
}

// TestRemoveAll clears both views.
func TestRemoveAll(t *testing.T) {
	m := newABC()
	m.RemoveAll()
	require.True(t, m.IsEmpty())
	require.False(t, m.Has(KeyA))

	m.Set(KeyD, Val4) // still usable after clearing
	MustKeys(t, m, KeyD)
}

// TestSnapshotsAreIndependent ensures Keys/Values/Entries do not alias internal storage.
func TestSnapshotsAreIndependent(t *testing.T) {
	m := newABC()
	keys := m.Keys()
	keys[0] = KeyE
	vals := m.Values()
	vals[0] = Val9

	MustEntries(t, m, entry(KeyA, Val1), entry(KeyB, Val2), entry(KeyC, Val3))
	assert.Equal(t, []int{Val1, Val2, Val3}, m.Values())
}

// TestFromEntries_Duplicates keeps the first position and last value.
func TestFromEntries_Duplicates(t *testing.T) {
	m := orderedmap.FromEntries(entry(KeyA, Val1), entry(KeyB, Val2), entry(KeyA, Val9))
	MustEntries(t, m, entry(KeyA, Val9), entry(KeyB, Val2))
}

// TestFromMap copies all entries; order is unspecified so compare after sorting.
func TestFromMap(t *testing.T) {
	src := map[string]int{KeyA: Val1, KeyB: Val2, KeyC: Val3}
	m := orderedmap.FromMap(src)
	require.Equal(t, len(src), m.Len())
	MustConsistent(t, m)

	src[KeyD] = Val4 // later writes to src are not observed
	require.False(t, m.Has(KeyD))

	m.SortByKeys(cmpString)
	MustEntries(t, m, entry(KeyA, Val1), entry(KeyB, Val2), entry(KeyC, Val3))
}

// TestClone_Independence verifies that a clone shares no order/association storage.
func TestClone_Independence(t *testing.T) {
	m := newABC()
	cp := m.Clone()
	require.True(t, orderedmap.Equal(m, cp))

	cp.Set(KeyA, Val9)
	cp.Set(KeyD, Val4)
	_, _ = cp.RemoveKey(KeyB)

	MustEntries(t, m, entry(KeyA, Val1), entry(KeyB, Val2), entry(KeyC, Val3))
	MustEntries(t, cp, entry(KeyA, Val9), entry(KeyC, Val3), entry(KeyD, Val4))
}

// TestIndexOf reports positions and -1 for absent keys.
func TestIndexOf(t *testing.T) {
	m := newABC()
	require.Equal(t, 0, m.IndexOf(KeyA))
	require.Equal(t, 2, m.IndexOf(KeyC))
	require.Equal(t, -1, m.IndexOf(KeyD))
}

// TestString renders one indexed line per entry.
func TestString(t *testing.T) {
	m := orderedmap.New[string, int]()
	m.Set(KeyA, Val1)
	m.Set(KeyB, Val2)

	expected := "OrderedMap {\n    [0] {A: 1}\n    [1] {B: 2}\n}"
	require.Equal(t, expected, m.String())
	require.Equal(t, "OrderedMap {\n}", orderedmap.New[string, int]().String())
}
