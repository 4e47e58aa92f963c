// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface shared by Dense and consumers
// that only need element access.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}

// Operator is the matrix-free view iterative solvers need: y = A·x.
type Operator interface {
	// Rows returns the order of the (square) operator.
	Rows() int

	// MatVec writes A·x into y. Both slices must have length Rows().
	MatVec(x, y []float64) error
}
