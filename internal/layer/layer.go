// Package layer provides fixed-size vector containers for a network's input
// and output layers.
package layer

import (
	"errors"
	"fmt"
)

// Errors returned by layer containers.
var (
	ErrInvalidSize  = errors.New("layer size must be positive")
	ErrSizeMismatch = errors.New("vector length does not match layer size")
)

// vector is the shared fixed-size storage behind Input and Output.
type vector struct {
	items []float32
}

func newVector(size int) (vector, error) {
	if size < 1 {
		return vector{}, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return vector{items: make([]float32, size)}, nil
}

func (v *vector) set(values []float32) error {
	if len(values) != len(v.items) {
		return fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(values), len(v.items))
	}
	copy(v.items, values)
	return nil
}

func (v *vector) get() []float32 {
	out := make([]float32, len(v.items))
	copy(out, v.items)
	return out
}

// Input holds the activation vector fed into the first layer.
type Input struct {
	vector
}

// NewInput creates a zero-filled input layer with size neurons.
func NewInput(size int) (*Input, error) {
	v, err := newVector(size)
	if err != nil {
		return nil, fmt.Errorf("input layer: %w", err)
	}
	return &Input{vector: v}, nil
}

// Set replaces the input values.
//
// Returns ErrSizeMismatch when len(values) != Size(); the layer is unchanged
// on failure. values is copied.
func (l *Input) Set(values []float32) error {
	if err := l.set(values); err != nil {
		return fmt.Errorf("input layer: %w", err)
	}
	return nil
}

// Values returns a copy of the input values.
func (l *Input) Values() []float32 { return l.get() }

// Size returns the number of neurons.
func (l *Input) Size() int { return len(l.items) }

// Output holds the activation vector produced by the last layer.
type Output struct {
	vector
}

// NewOutput creates a zero-filled output layer with size neurons.
func NewOutput(size int) (*Output, error) {
	v, err := newVector(size)
	if err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}
	return &Output{vector: v}, nil
}

// Set replaces the output values.
//
// Returns ErrSizeMismatch when len(values) != Size(); the layer is unchanged
// on failure.
func (l *Output) Set(values []float32) error {
	if err := l.set(values); err != nil {
		return fmt.Errorf("output layer: %w", err)
	}
	return nil
}

// Values returns a copy of the output values.
func (l *Output) Values() []float32 { return l.get() }

// Size returns the number of neurons.
func (l *Output) Size() int { return len(l.items) }
