package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, grid [][]float32) *Matrix {
	t.Helper()
	m, err := New(grid)
	require.NoError(t, err)
	return m
}

func randomMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	m := zeros(rows, cols)
	for i := range m.data {
		m.data[i] = rng.Float32()*20 - 10
	}
	return m
}

func TestNew(t *testing.T) {
	m := mustNew(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 2, m.Cols())

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
}

func TestNew_CopiesGrid(t *testing.T) {
	grid := [][]float32{{1, 2}, {3, 4}}
	m := mustNew(t, grid)
	grid[0][0] = 100

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		grid [][]float32
	}{
		{"nil", nil},
		{"no rows", [][]float32{}},
		{"empty row", [][]float32{{}}},
		{"ragged", [][]float32{{1, 2}, {3}}},
		{"ragged longer", [][]float32{{1}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.grid)
			assert.ErrorIs(t, err, ErrDimensionMismatch)
			assert.Nil(t, m)
		})
	}
}

func TestFromVector(t *testing.T) {
	m, err := FromVector([]float32{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Rows())
	assert.Equal(t, 3, m.Cols())
	for i, want := range []float32{1, 2, 3} {
		got, err := m.At(0, i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = FromVector(nil)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAt(t *testing.T) {
	m := mustNew(t, [][]float32{{1, 2}, {3, 4}, {3, 6}})

	tests := []struct {
		row, col int
		want     float32
	}{
		{0, 0, 1},
		{0, 1, 2},
		{1, 0, 3},
		{2, 1, 6},
	}
	for _, tt := range tests {
		got, err := m.At(tt.row, tt.col)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "At(%d, %d)", tt.row, tt.col)
	}
}

func TestAt_OutOfRange(t *testing.T) {
	m := mustNew(t, [][]float32{{1, 2}, {3, 4}, {3, 6}})

	for _, idx := range [][2]int{{5, 3}, {3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
		_, err := m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "At(%d, %d)", idx[0], idx[1])
	}
}

func TestAdd(t *testing.T) {
	a := mustNew(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	b := mustNew(t, [][]float32{{2, 3}, {4, 5}, {6, 7}})

	result, err := a.Add(b)
	require.NoError(t, err)

	assert.Equal(t, [][]float32{{3, 5}, {7, 9}, {11, 13}}, result.ToSlice())
	// Operands are untouched.
	assert.Equal(t, [][]float32{{1, 2}, {3, 4}, {5, 6}}, a.ToSlice())
	assert.Equal(t, [][]float32{{2, 3}, {4, 5}, {6, 7}}, b.ToSlice())
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a := mustNew(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	b := mustNew(t, [][]float32{{2, 3, 4}, {5, 6, 7}})
	c := mustNew(t, [][]float32{{2, 3, 4}, {5, 6, 7}, {8, 9, 10}})

	result, err := a.Add(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Nil(t, result)

	result, err = a.Add(c)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Nil(t, result)
}

func TestAdd_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		rows, cols := rng.Intn(6)+1, rng.Intn(6)+1
		a := randomMatrix(rng, rows, cols)
		b := randomMatrix(rng, rows, cols)

		sum, err := a.Add(b)
		require.NoError(t, err)
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				av, _ := a.At(i, j)
				bv, _ := b.At(i, j)
				got, err := sum.At(i, j)
				require.NoError(t, err)
				assert.Equal(t, av+bv, got)
			}
		}
	}
}

func TestScale(t *testing.T) {
	m := mustNew(t, [][]float32{{1, 1}, {1, 1}, {1, 1}})

	result := m.Scale(2.5)

	assert.Equal(t, [][]float32{{2.5, 2.5}, {2.5, 2.5}, {2.5, 2.5}}, result.ToSlice())
	assert.Equal(t, [][]float32{{1, 1}, {1, 1}, {1, 1}}, m.ToSlice())
}

func TestMatMul(t *testing.T) {
	a := mustNew(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	b := mustNew(t, [][]float32{{1, 2, 3}, {4, 5, 6}})

	result, err := a.MatMul(b)
	require.NoError(t, err)
	assert.Equal(t, 3, result.Rows())
	assert.Equal(t, 3, result.Cols())
	assert.Equal(t, [][]float32{{9, 12, 15}, {19, 26, 33}, {29, 40, 51}}, result.ToSlice())

	c := mustNew(t, [][]float32{{3, 2, 1}, {0, 1, 2}})
	d := mustNew(t, [][]float32{{1}, {2}, {3}})

	result, err = c.MatMul(d)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows())
	assert.Equal(t, 1, result.Cols())
	assert.Equal(t, [][]float32{{10}, {8}}, result.ToSlice())
}

func TestMatMul_DimensionMismatch(t *testing.T) {
	a := mustNew(t, [][]float32{{1, 2}, {3, 4}, {5, 6}})
	b := mustNew(t, [][]float32{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	result, err := a.MatMul(b)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.Nil(t, result)
}

func TestMatMul_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for n := 0; n < 50; n++ {
		rows, inner, cols := rng.Intn(5)+1, rng.Intn(5)+1, rng.Intn(5)+1
		a := randomMatrix(rng, rows, inner)
		b := randomMatrix(rng, inner, cols)

		result, err := a.MatMul(b)
		require.NoError(t, err)
		require.Equal(t, rows, result.Rows())
		require.Equal(t, cols, result.Cols())

		for i := 0; i < rows; i++ {
			for k := 0; k < cols; k++ {
				var want float32
				for j := 0; j < inner; j++ {
					av, _ := a.At(i, j)
					bv, _ := b.At(j, k)
					want += av * bv
				}
				got, _ := result.At(i, k)
				assert.InDelta(t, want, got, 1e-3)
			}
		}
	}
}

func TestTranspose(t *testing.T) {
	tests := []struct {
		name string
		grid [][]float32
		want [][]float32
	}{
		{"2x3", [][]float32{{1, 2, 3}, {4, 5, 6}}, [][]float32{{1, 4}, {2, 5}, {3, 6}}},
		{"2x2", [][]float32{{1, 2}, {3, 4}}, [][]float32{{1, 3}, {2, 4}}},
		{"row", [][]float32{{1, 2, 3}}, [][]float32{{1}, {2}, {3}}},
		{"column", [][]float32{{1}, {2}, {3}}, [][]float32{{1, 2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustNew(t, tt.grid)
			got := m.Transpose()
			assert.Equal(t, m.Cols(), got.Rows())
			assert.Equal(t, m.Rows(), got.Cols())
			assert.Equal(t, tt.want, got.ToSlice())
		})
	}
}

func TestTranspose_Involution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for n := 0; n < 50; n++ {
		m := randomMatrix(rng, rng.Intn(8)+1, rng.Intn(8)+1)
		assert.True(t, m.Transpose().Transpose().Equal(m))
	}
}

func TestFlatten(t *testing.T) {
	row := mustNew(t, [][]float32{{1, 2, 3}})
	v, err := row.Flatten()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, v)

	col := row.Transpose()
	v, err = col.Flatten()
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, v)

	square := mustNew(t, [][]float32{{1, 2}, {3, 4}})
	_, err = square.Flatten()
	assert.ErrorIs(t, err, ErrIncorrectArrayDimensions)
}

func TestEqual(t *testing.T) {
	a := mustNew(t, [][]float32{{1, 2}, {3, 4}})
	assert.True(t, a.Equal(mustNew(t, [][]float32{{1, 2}, {3, 4}})))
	assert.False(t, a.Equal(mustNew(t, [][]float32{{1, 2}, {3, 5}})))
	assert.False(t, a.Equal(mustNew(t, [][]float32{{1, 2, 3, 4}})))
}

func TestString(t *testing.T) {
	m := mustNew(t, [][]float32{{1, 2}, {3, 4}})
	assert.Equal(t, "[1 2]\n[3 4]", m.String())
}
