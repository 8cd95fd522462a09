// SPDX-License-Identifier: MIT
// Package orderedmap_test contains test helpers for orderedmap.
//
// Purpose:
//   - Provide small deterministic fixtures (ABC maps) and diff-based assertions.
//   - Keep test bodies free of magic keys and values.

package orderedmap_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvlcontainers/orderedmap"
)

// Common keys used across orderedmap tests.
const (
	KeyA = "A"
	KeyB = "B"
	KeyC = "C"
	KeyD = "D"
	KeyE = "E"
)

// Common values used across orderedmap tests.
const (
	Val1 = 1
	Val2 = 2
	Val3 = 3
	Val4 = 4
	Val9 = 9
)

// cmpString orders strings ascending.
func cmpString(a, b string) int { return strings.Compare(a, b) }

// cmpInt orders ints ascending.
func cmpInt(a, b int) int { return a - b }

// newABC returns the fixture [(A,1),(B,2),(C,3)].
func newABC() *orderedmap.OrderedMap[string, int] {
	m := orderedmap.New[string, int]()
	m.Set(KeyA, Val1)
	m.Set(KeyB, Val2)
	m.Set(KeyC, Val3)

	return m
}

// entry is shorthand for orderedmap.Entry[string, int].
func entry(k string, v int) orderedmap.Entry[string, int] {
	return orderedmap.Entry[string, int]{Key: k, Value: v}
}

// MustKeys fails the test with a readable diff if m's key order differs from want.
func MustKeys(t *testing.T, m *orderedmap.OrderedMap[string, int], want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, m.Keys(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

// MustEntries fails the test with a readable diff if m's entries differ from want.
func MustEntries(t *testing.T, m *orderedmap.OrderedMap[string, int], want ...orderedmap.Entry[string, int]) {
	t.Helper()
	if diff := cmp.Diff(want, m.Entries(), cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

// MustConsistent checks that every key in the order list resolves through Get
// and that Len agrees with both views.
func MustConsistent(t *testing.T, m *orderedmap.OrderedMap[string, int]) {
	t.Helper()
	keys := m.Keys()
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, dup := seen[k]; dup {
			t.Fatalf("duplicate key %q in order list %v", k, keys)
		}
		seen[k] = struct{}{}
		if !m.Has(k) {
			t.Fatalf("key %q in order list but not in association", k)
		}
	}
	if len(keys) != m.Len() || len(m.Values()) != m.Len() {
		t.Fatalf("Len()=%d disagrees with keys=%d values=%d", m.Len(), len(keys), len(m.Values()))
	}
}
