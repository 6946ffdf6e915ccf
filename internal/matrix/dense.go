package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense converts m to a gonum dense matrix.
//
// Values are widened to float64. The result does not share memory with m.
func (m *Matrix) Dense() *mat.Dense {
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, data)
}

// FromDense creates a Matrix from any gonum matrix.
//
// Values are narrowed to float32. Returns ErrDimensionMismatch for a
// matrix with a zero dimension.
func FromDense(d mat.Matrix) (*Matrix, error) {
	r, c := d.Dims()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("from dense %dx%d: %w", r, c, ErrDimensionMismatch)
	}

	m := zeros(r, c)
	for i := 0; i < r; i++ {
		for k := 0; k < c; k++ {
			m.data[i*c+k] = float32(d.At(i, k))
		}
	}
	return m, nil
}
