// Package matrix provides Dense, a generic fixed-size two-dimensional grid.
//
// What & Why:
//
//	Dense[T] stores rows×cols values of any type in a single row-major
//	buffer (offset = i*cols + j). Dimensions are fixed at construction;
//	cells, whole rows and whole columns are read and replaced in place.
//	No arithmetic is defined on T: Dense is a container, not a numeric type.
//
// Safety:
//
//	Every public accessor bounds-checks its arguments and returns a sentinel
//	error (ErrOutOfRange, ErrLengthMismatch) wrapped with call-site context
//	instead of panicking. Match with errors.Is.
//
// Complexity:
//
//	NewDense O(r*c); At/Set O(1); Row/SetRow O(c); Col/SetCol O(r);
//	Clone/Transpose O(r*c); View O(1).
package matrix
