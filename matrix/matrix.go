// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the public API for dense float32 matrices.
//
// Every operation returns a new Matrix; operands are never mutated.
//
// Example:
//
//	a, _ := matrix.New([][]float32{{1, 2}, {3, 4}, {5, 6}}) // 3x2
//	b, _ := matrix.New([][]float32{{1, 2, 3}, {4, 5, 6}})   // 2x3
//	c, err := a.MatMul(b)                                   // 3x3
//	if errors.Is(err, matrix.ErrDimensionMismatch) {
//	    // shapes are incompatible
//	}
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ffnet/internal/matrix"
)

// Matrix is a dense, row-major float32 matrix.
type Matrix = matrix.Matrix

// Errors returned by matrix operations.
var (
	ErrIndexOutOfRange          = matrix.ErrIndexOutOfRange
	ErrDimensionMismatch        = matrix.ErrDimensionMismatch
	ErrIncorrectArrayDimensions = matrix.ErrIncorrectArrayDimensions
)

// New creates a Matrix from a rectangular grid. The grid is copied.
func New(grid [][]float32) (*Matrix, error) {
	return matrix.New(grid)
}

// FromVector creates a 1 x len(v) Matrix.
func FromVector(v []float32) (*Matrix, error) {
	return matrix.FromVector(v)
}

// FromDense converts a gonum matrix, narrowing values to float32.
func FromDense(d mat.Matrix) (*Matrix, error) {
	return matrix.FromDense(d)
}
