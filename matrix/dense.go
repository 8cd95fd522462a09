// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: every accessor returns an error
//     instead of panicking.
//   - Keep all rows initialized: the constructor fills exactly rows*cols cells.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Row/SetRow: O(c); Col/SetCol: O(r).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt     = "At"      // method tag used in error wrappers
	ctxSet    = "Set"     // method tag used in error wrappers
	ctxRow    = "Row"     // method tag used in error wrappers
	ctxSetRow = "SetRow"  // method tag used in error wrappers
	ctxCol    = "Col"     // method tag used in error wrappers
	ctxSetCol = "SetCol"  // method tag used in error wrappers
	ctxView   = "View"    // ctor tag for Dense.View
	ctxInduce = "Induced" // ctor tag for Dense.Induced
)

// denseErrorf wraps an error with a uniform Dense context and call-site indices.
// Output shape: "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// lineErrorf wraps a whole-row or whole-column error with the line index.
// Output shape: "Dense.<method>(index): <sentinel>".
func lineErrorf(method string, index int, err error) error {
	return fmt.Errorf("Dense.%s(%d): %w", method, index, err)
}

// Dense is a fixed-size row-major grid of T.
//   - r,c hold dimensions (rows, cols), immutable after construction.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[T any] struct {
	r, c int // row and column counts (> 0 for public constructors)
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates a rows×cols grid with every cell set to fill.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate one buffer and write fill into all rows*cols cells.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int, fill T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	for i := range buf { // every row, including the last
		buf[i] = fill
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// NewDenseFromRows builds a grid from a rectangular slice of rows (copied).
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or rows[0] is empty.
//   - ErrLengthMismatch when any row length differs from len(rows[0]).
func NewDenseFromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFromRows: %w", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	buf := make([]T, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, lineErrorf("NewDenseFromRows", i, ErrLengthMismatch)
		}
		buf = append(buf, row...)
	}

	return &Dense[T]{r: r, c: c, data: buf}, nil
}

// Rows returns the row count.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with their own tag.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrOutOfRange when either index is outside its bounds.
//
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange when either index is outside its bounds.
//
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row r (length Cols()).
//
// Errors:
//   - ErrOutOfRange when r is outside [0, Rows()).
func (m *Dense[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.r {
		return nil, lineErrorf(ctxRow, r, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[r*m.c:(r+1)*m.c])

	return out, nil
}

// SetRow replaces row r with values (copied).
//
// Errors:
//   - ErrOutOfRange when r is outside [0, Rows()).
//   - ErrLengthMismatch when len(values) != Cols().
func (m *Dense[T]) SetRow(r int, values []T) error {
	if r < 0 || r >= m.r {
		return lineErrorf(ctxSetRow, r, ErrOutOfRange)
	}
	if len(values) != m.c {
		return lineErrorf(ctxSetRow, r, ErrLengthMismatch)
	}
	copy(m.data[r*m.c:(r+1)*m.c], values)

	return nil
}

// Col returns a copy of column c (length Rows()), top to bottom.
//
// Errors:
//   - ErrOutOfRange when c is outside [0, Cols()).
func (m *Dense[T]) Col(c int) ([]T, error) {
	if c < 0 || c >= m.c {
		return nil, lineErrorf(ctxCol, c, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ { // all rows, no short final row
		out[i] = m.data[i*m.c+c]
	}

	return out, nil
}

// SetCol replaces column c with values, values[i] going to row i.
//
// Errors:
//   - ErrOutOfRange when c is outside [0, Cols()).
//   - ErrLengthMismatch when len(values) != Rows().
func (m *Dense[T]) SetCol(c int, values []T) error {
	if c < 0 || c >= m.c {
		return lineErrorf(ctxSetCol, c, ErrOutOfRange)
	}
	if len(values) != m.r {
		return lineErrorf(ctxSetCol, c, ErrLengthMismatch)
	}
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+c] = values[i]
	}

	return nil
}
