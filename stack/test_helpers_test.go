// SPDX-License-Identifier: MIT

package stack_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvlcontainers/stack"
)

const (
	ItemA = "A"
	ItemB = "B"
	ItemC = "C"
	ItemD = "D"
	ItemE = "E"
)

// newABC returns a stack with A at the bottom and C on top.
func newABC() *stack.Stack[string] {
	return stack.FromSlice([]string{ItemA, ItemB, ItemC})
}

// MustTopDown fails with a diff if iterating s does not yield want (top first).
func MustTopDown(t *testing.T, s *stack.Stack[string], want ...string) {
	t.Helper()
	got := slices.Collect(s.All())
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("top-down order mismatch (-want +got):\n%s", diff)
	}
}
