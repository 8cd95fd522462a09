// SPDX-License-Identifier: MIT

package orderedmap

import (
	"fmt"
	"strings"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*OrderedMap[string, int])(nil)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "OrderedMap {\n"
	_fmtEntry = "    [%d] {%v: %v}\n"
	_fmtClose = "}"
)

// String renders one indexed line per entry, e.g.
//
//	OrderedMap {
//	    [0] {a: 1}
//	    [1] {b: 2}
//	}
//
// Intended for diagnostics.
func (m *OrderedMap[K, V]) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, k := range m.keys {
		fmt.Fprintf(&b, _fmtEntry, i, k, m.values[k])
	}
	b.WriteString(_fmtClose)

	return b.String()
}
