// Package orderedmap provides OrderedMap, a generic key/value map that
// remembers the order of its keys.
//
// 🚀 What is an OrderedMap?
//
//	A dictionary and an array at the same time. Every key lives in two views
//	kept in lock-step by every mutating call:
//	  • the order list, a slice of keys defining iteration and index order
//	  • the association, a Go map from key to its current value
//
// ✨ Key features:
//   - dictionary semantics: Get / Set / UpdateValue / RemoveKey
//   - array semantics: At / SetAt / InsertAt / RemoveAt / RemoveLast, index ranges
//   - deterministic iteration: All, Backward, Keys, Values, Entries
//   - in-place and copying sorts by entry, key or value
//   - functional helpers: Filter, Map, MapToSlice, Reduce
//   - order-sensitive Equal and order-insensitive Similar comparisons
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlcontainers/orderedmap"
//
//	m := orderedmap.New[string, int]()
//	m.Set("b", 2)
//	m.Set("a", 1)
//	m.Set("b", 20) // overwrite in place, "b" stays first
//
//	for k, v := range m.All() {
//		fmt.Println(k, v) // b 20, a 1
//	}
//
// Contract highlights:
//   - Set on an existing key never moves it; Set on a new key appends it.
//   - SetAt/InsertAt on an existing key removes the old entry first and then
//     inserts at index-1 when the old position was before index, so the entry
//     lands between the same neighbours it was aimed at.
//   - Every index-based call validates its index and returns ErrOutOfRange
//     instead of panicking.
//
// An OrderedMap is not safe for concurrent mutation; guard it externally.
package orderedmap
