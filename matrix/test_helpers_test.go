// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/lvlcontainers/matrix"
)

// MustDense allocates an r×c grid filled with fill or fails the test.
func MustDense[T any](t *testing.T, r, c int, fill T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense(r, c, fill)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows fails with a diff unless m's rows equal want.
func MustRows(t *testing.T, m *matrix.Dense[int], want [][]int) {
	t.Helper()
	got := make([][]int, m.Rows())
	for i := range got {
		row, err := m.Row(i)
		if err != nil {
			t.Fatalf("Row(%d): %v", i, err)
		}
		got[i] = row
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

// seq3x3 returns [[0 1 2] [3 4 5] [6 7 8]].
func seq3x3(t *testing.T) *matrix.Dense[int] {
	t.Helper()
	m := MustDense(t, 3, 3, 0)
	m.Apply(func(i, j, _ int) int { return i*3 + j })

	return m
}
