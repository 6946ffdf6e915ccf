// Package matrix implements a dense two-dimensional float32 matrix with
// shape-checked elementary linear algebra.
//
// Every operation allocates and returns a new Matrix. Operands are never
// mutated, so a Matrix can be treated as an immutable value.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense, row-major rows x cols grid of float32 values.
//
// The zero value is not usable; create matrices with New or FromVector.
type Matrix struct {
	rows int
	cols int
	data []float32 // len(data) == rows*cols
}

// New creates a Matrix from a rectangular grid.
//
// The grid is copied, so later changes to grid do not affect the Matrix.
//
// Returns ErrDimensionMismatch if the grid has no rows, a row is empty, or
// rows have different lengths.
//
// Example:
//
//	m, err := matrix.New([][]float32{{1, 2}, {3, 4}, {5, 6}}) // 3x2
func New(grid [][]float32) (*Matrix, error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("new matrix: no rows: %w", ErrDimensionMismatch)
	}
	cols := len(grid[0])
	if cols == 0 {
		return nil, fmt.Errorf("new matrix: row 0 is empty: %w", ErrDimensionMismatch)
	}

	m := zeros(len(grid), cols)
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("new matrix: row %d has %d columns, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// FromVector creates a single-row (1 x len(v)) Matrix from a flat vector.
//
// Returns ErrDimensionMismatch for an empty vector.
func FromVector(v []float32) (*Matrix, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("matrix from vector: empty vector: %w", ErrDimensionMismatch)
	}
	m := zeros(1, len(v))
	copy(m.data, v)
	return m, nil
}

// zeros allocates a zero-filled rows x cols matrix. Callers guarantee rows, cols >= 1.
func zeros(rows, cols int) *Matrix {
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

// At returns the element at (row, col).
//
// Returns ErrIndexOutOfRange if row is outside [0, Rows()) or col is outside
// [0, Cols()). Indices are never clamped.
func (m *Matrix) At(row, col int) (float32, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("at (%d, %d) of %dx%d matrix: %w", row, col, m.rows, m.cols, ErrIndexOutOfRange)
	}
	return m.data[row*m.cols+col], nil
}

// Rows returns the number of rows (dimension 0).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns (dimension 1).
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// Add returns the element-wise sum m + other.
//
// Returns ErrDimensionMismatch if the shapes differ in either dimension.
// No result is allocated on failure.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("add %dx%d and %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	result := zeros(m.rows, m.cols)
	for i := range m.data {
		result.data[i] = m.data[i] + other.data[i]
	}
	return result, nil
}

// Scale returns a new Matrix with every element multiplied by s.
func (m *Matrix) Scale(s float32) *Matrix {
	result := zeros(m.rows, m.cols)
	for i, v := range m.data {
		result.data[i] = v * s
	}
	return result
}

// MatMul returns the matrix product m @ other.
//
// Requires m.Cols() == other.Rows(). The result has shape
// m.Rows() x other.Cols() and result[i][k] = sum over j of m[i][j] * other[j][k].
//
// Returns ErrDimensionMismatch if the inner dimensions disagree.
// No result is allocated on failure.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("matmul %dx%d by %dx%d: inner dimensions differ: %w",
			m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}

	n := other.cols
	result := zeros(m.rows, n)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < n; k++ {
			var sum float32
			for j := 0; j < m.cols; j++ {
				sum += m.data[i*m.cols+j] * other.data[j*n+k]
			}
			result.data[i*n+k] = sum
		}
	}
	return result, nil
}

// Transpose returns a new cols x rows Matrix with result[k][i] = m[i][k].
func (m *Matrix) Transpose() *Matrix {
	result := zeros(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			result.data[k*m.rows+i] = m.data[i*m.cols+k]
		}
	}
	return result
}

// Flatten collapses a single-row or single-column matrix into a vector.
//
// Returns ErrIncorrectArrayDimensions for any other shape.
func (m *Matrix) Flatten() ([]float32, error) {
	if m.rows != 1 && m.cols != 1 {
		return nil, fmt.Errorf("flatten %dx%d matrix: %w", m.rows, m.cols, ErrIncorrectArrayDimensions)
	}
	// Row-major storage: 1xN and Nx1 both read out in order.
	out := make([]float32, len(m.data))
	copy(out, m.data)
	return out, nil
}

// ToSlice returns a deep copy of the matrix as a grid.
func (m *Matrix) ToSlice() [][]float32 {
	grid := make([][]float32, m.rows)
	for i := range grid {
		grid[i] = make([]float32, m.cols)
		copy(grid[i], m.data[i*m.cols:(i+1)*m.cols])
	}
	return grid
}

// Equal reports whether m and other have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// String formats the matrix one row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprint(&sb, m.data[i*m.cols:(i+1)*m.cols])
	}
	return sb.String()
}
