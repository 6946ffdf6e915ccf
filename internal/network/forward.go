package network

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/matrix"
)

// Process runs the forward pass from the input layer to the output layer.
//
// For each transition i the current activations are taken as a 1 x k row,
// transposed into a k x 1 column and left-multiplied by the weight matrix,
// giving an m x 1 column of weighted sums. For i > 0 the bias vector,
// transposed to m x 1, is added. The column is flattened and the activation
// function applied element-wise to produce the activations of layer i+1.
//
// Hidden activations and outputs are replaced only if the whole pass
// succeeds. An error wrapping ErrIncorrectArrayDimensions or
// ErrDimensionMismatch means the weight bookkeeping is broken.
//
// A single-layer network copies its input to its output.
func (f *Feedforward) Process() error {
	next := make([][]float32, len(f.layerSizes))
	current := f.input.Values()
	next[0] = current

	for i := range f.weights {
		values, err := f.transition(i, current)
		if err != nil {
			return fmt.Errorf("transition %d: %w", i, err)
		}
		next[i+1] = values
		current = values
	}

	if err := f.output.Set(current); err != nil {
		return fmt.Errorf("%w: %w", ErrIncorrectArrayDimensions, err)
	}
	for i := 1; i < len(next); i++ {
		f.activations[i] = next[i]
	}
	return nil
}

// transition computes the activations of layer i+1 from those of layer i.
func (f *Feedforward) transition(i int, in []float32) ([]float32, error) {
	row, err := matrix.FromVector(in)
	if err != nil {
		return nil, err
	}
	w, err := matrix.New(f.weights[i])
	if err != nil {
		return nil, err
	}

	sums, err := w.MatMul(row.Transpose())
	if err != nil {
		return nil, err
	}

	if i > 0 && i-1 < len(f.biases) {
		b, err := matrix.FromVector(f.biases[i-1])
		if err != nil {
			return nil, err
		}
		if sums, err = sums.Add(b.Transpose()); err != nil {
			return nil, err
		}
	}

	values, err := sums.Flatten()
	if err != nil {
		return nil, err
	}
	for j, v := range values {
		values[j] = f.fn.Execute(v)
	}
	return values, nil
}
