// SPDX-License-Identifier: MIT

// Package matrix - whole-grid operations: copy, render, visit, reshape.
//
// Purpose:
//   - Clone/Transpose/Induced materialize independent grids.
//   - View provides a no-copy window sharing the base buffer.
//   - Do/Apply visit cells in fixed row-major order (deterministic).
//
// AI-Hints:
//   - Use View(r0,c0,h,w) to avoid copies for windows; writes reflect in the base.
//   - Use Induced(rows, cols) when the submatrix needs an independent lifetime.

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Clone returns a deep copy of the grid storage.
// Cell values are copied with Go assignment semantics.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// String renders one bracketed line per row, values formatted with %v.
// Intended for diagnostics; not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Fill overwrites every cell with v.
func (m *Dense[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Do visits each cell (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}

// Apply replaces each cell with f(i,j,v) in row-major order.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// Transpose returns a new cols×rows grid with out[j][i] = m[i][j].
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*out.c+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
//
// Errors:
//   - ErrBadShape when the window is negative or does not fit.
//
// Complexity: O(1).
func (m *Dense[T]) View(r0, c0, rows, cols int) (*View[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrBadShape)
	}

	return &View[T]{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Induced materializes a copy using explicit row and column index lists.
// Duplicates are allowed (repeated rows/cols in the result).
//
// Errors:
//   - ErrInvalidDimensions when either list is empty.
//   - ErrOutOfRange when an index is outside the base bounds.
//
// Complexity: O(len(rowsIdx)*len(colsIdx)).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	rp, cp := len(rowsIdx), len(colsIdx)
	if rp == 0 || cp == 0 {
		return nil, fmt.Errorf("Dense.%s: %w", ctxInduce, ErrInvalidDimensions)
	}
	res := &Dense[T]{r: rp, c: cp, data: make([]T, rp*cp)}

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// View is a non-owning window into a Dense (shared storage).
type View[T any] struct {
	base *Dense[T] // underlying storage owner
	r0   int       // top-left row offset in base
	c0   int       // top-left col offset in base
	r    int       // view height
	c    int       // view width
}

// Rows returns the number of rows in the view.
func (v *View[T]) Rows() int { return v.r }

// Cols returns the number of columns in the view.
func (v *View[T]) Cols() int { return v.c }

// At reads cell (i,j) of the view or returns ErrOutOfRange.
func (v *View[T]) At(i, j int) (T, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		var zero T
		return zero, fmt.Errorf("View.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return v.base.data[(v.r0+i)*v.base.c+(v.c0+j)], nil
}

// Set writes cell (i,j) of the view through to the base grid.
func (v *View[T]) Set(i, j int, val T) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("View.Set(%d,%d): %w", i, j, ErrOutOfRange)
	}
	v.base.data[(v.r0+i)*v.base.c+(v.c0+j)] = val

	return nil
}
