// Package network implements a multi-layer feedforward neural network with
// forward-pass inference.
//
// A network is described by its layer sizes, from the input layer to the
// output layer inclusive. Transition i maps layer i to layer i+1 through a
// weight matrix of shape layerSizes[i+1] x layerSizes[i]. Transitions after
// the first also add a bias vector of length layerSizes[i+1] before the
// activation function is applied. The first hidden layer has no bias.
//
// Typical use:
//
//	net, err := network.New([]int{4, 3, 2}, activation.NewReLU())
//	if err != nil {
//	    return err
//	}
//	net.InitializeWeightsRandom(42)
//	if err := net.SetInputs([]float32{1, 2, 3, 4}); err != nil {
//	    return err
//	}
//	if err := net.Process(); err != nil {
//	    return err
//	}
//	out := net.Outputs()
//
// A Feedforward is not safe for concurrent use. Callers that share an
// instance between goroutines must serialize access.
package network

import (
	"fmt"

	"github.com/born-ml/ffnet/internal/activation"
	"github.com/born-ml/ffnet/internal/layer"
)

// Feedforward is a fully connected feedforward network.
type Feedforward struct {
	layerSizes []int
	fn         activation.Function

	weights [][][]float32 // weights[i]: layerSizes[i+1] rows x layerSizes[i] cols
	biases  [][]float32   // biases[i]: layerSizes[i+2] values, applied at transition i+1

	input       *layer.Input
	activations [][]float32 // activations[i] for i >= 1; layer 0 lives in input
	output      *layer.Output
}

// New creates a network with the given layer sizes and activation function.
//
// All weights and biases start at zero; call InitializeWeightsRandom or
// InitializeWeightsConstant before a meaningful forward pass.
//
// Returns a *LayerSizeError (matching ErrInvalidLayerSize) for the first
// non-positive size, ErrInvalidLayerSize for an empty sequence, and
// ErrNilActivation when fn is nil.
func New(layerSizes []int, fn activation.Function) (*Feedforward, error) {
	if len(layerSizes) == 0 {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidLayerSize)
	}
	for i, size := range layerSizes {
		if size <= 0 {
			return nil, &LayerSizeError{Index: i, Size: size}
		}
	}
	if fn == nil {
		return nil, ErrNilActivation
	}

	sizes := make([]int, len(layerSizes))
	copy(sizes, layerSizes)
	last := len(sizes) - 1

	input, err := layer.NewInput(sizes[0])
	if err != nil {
		return nil, err
	}
	output, err := layer.NewOutput(sizes[last])
	if err != nil {
		return nil, err
	}

	f := &Feedforward{
		layerSizes:  sizes,
		fn:          fn,
		weights:     make([][][]float32, last),
		biases:      make([][]float32, max(last-1, 0)),
		input:       input,
		activations: make([][]float32, len(sizes)),
		output:      output,
	}

	for i := range f.weights {
		f.weights[i] = zeroGrid(sizes[i+1], sizes[i])
	}
	for i := range f.biases {
		f.biases[i] = make([]float32, sizes[i+2])
	}
	for i := 1; i < len(sizes); i++ {
		f.activations[i] = make([]float32, sizes[i])
	}

	return f, nil
}

func zeroGrid(rows, cols int) [][]float32 {
	grid := make([][]float32, rows)
	for r := range grid {
		grid[r] = make([]float32, cols)
	}
	return grid
}

func cloneGrid(grid [][]float32) [][]float32 {
	out := make([][]float32, len(grid))
	for r, row := range grid {
		out[r] = cloneVector(row)
	}
	return out
}

func cloneVector(v []float32) []float32 {
	out := make([]float32, len(v))
	copy(out, v)
	return out
}

// LayerSizes returns a copy of the layer size sequence.
func (f *Feedforward) LayerSizes() []int {
	sizes := make([]int, len(f.layerSizes))
	copy(sizes, f.layerSizes)
	return sizes
}

// NumTransitions returns the number of weight matrices, len(LayerSizes())-1.
func (f *Feedforward) NumTransitions() int {
	return len(f.weights)
}

// Activation returns the activation function fixed at construction.
func (f *Feedforward) Activation() activation.Function {
	return f.fn
}

// SetInputs assigns the input layer's activation vector.
//
// Returns ErrInvalidInputLength when len(inputs) != LayerSizes()[0]. The
// network is unchanged on failure. inputs is copied.
func (f *Feedforward) SetInputs(inputs []float32) error {
	if len(inputs) != f.input.Size() {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidInputLength, len(inputs), f.input.Size())
	}
	return f.input.Set(inputs)
}

// Inputs returns a copy of the current input vector.
func (f *Feedforward) Inputs() []float32 {
	return f.input.Values()
}

// Outputs returns a copy of the output vector computed by the latest Process
// call, or zeros if Process has not run yet.
func (f *Feedforward) Outputs() []float32 {
	return f.output.Values()
}

// Activations returns a copy of the activation vector held at layer i.
// Layer 0 is the input.
func (f *Feedforward) Activations(i int) ([]float32, error) {
	if i < 0 || i >= len(f.layerSizes) {
		return nil, fmt.Errorf("layer %d of %d: %w", i, len(f.layerSizes), ErrTransitionOutOfRange)
	}
	if i == 0 {
		return f.input.Values(), nil
	}
	return cloneVector(f.activations[i]), nil
}

// Weights returns a copy of the weight matrix of transition i as a
// layerSizes[i+1] x layerSizes[i] grid.
func (f *Feedforward) Weights(i int) ([][]float32, error) {
	if err := f.checkTransition(i); err != nil {
		return nil, err
	}
	return cloneGrid(f.weights[i]), nil
}

// SetWeights replaces the weight matrix of transition i.
//
// grid must have layerSizes[i+1] rows of layerSizes[i] values each;
// otherwise ErrDimensionMismatch is returned and nothing changes.
func (f *Feedforward) SetWeights(i int, grid [][]float32) error {
	if err := f.checkTransition(i); err != nil {
		return err
	}
	if err := checkGrid(grid, f.layerSizes[i+1], f.layerSizes[i]); err != nil {
		return fmt.Errorf("weights %d: %w", i, err)
	}
	f.weights[i] = cloneGrid(grid)
	return nil
}

// NumBiases returns the number of bias vectors, max(len(LayerSizes())-2, 0).
func (f *Feedforward) NumBiases() int {
	return len(f.biases)
}

// Bias returns a copy of bias vector i, which is added at transition i+1.
func (f *Feedforward) Bias(i int) ([]float32, error) {
	if err := f.checkBias(i); err != nil {
		return nil, err
	}
	return cloneVector(f.biases[i]), nil
}

// SetBias replaces bias vector i, which is added at transition i+1.
//
// v must have layerSizes[i+2] values; otherwise ErrDimensionMismatch is
// returned and nothing changes.
func (f *Feedforward) SetBias(i int, v []float32) error {
	if err := f.checkBias(i); err != nil {
		return err
	}
	if want := f.layerSizes[i+2]; len(v) != want {
		return fmt.Errorf("bias %d: got %d values, want %d: %w", i, len(v), want, ErrDimensionMismatch)
	}
	f.biases[i] = cloneVector(v)
	return nil
}

func (f *Feedforward) checkTransition(i int) error {
	if i < 0 || i >= len(f.weights) {
		return fmt.Errorf("transition %d of %d: %w", i, len(f.weights), ErrTransitionOutOfRange)
	}
	return nil
}

func (f *Feedforward) checkBias(i int) error {
	if i < 0 || i >= len(f.biases) {
		return fmt.Errorf("bias %d of %d: %w", i, len(f.biases), ErrTransitionOutOfRange)
	}
	return nil
}

func checkGrid(grid [][]float32, rows, cols int) error {
	if len(grid) != rows {
		return fmt.Errorf("got %d rows, want %d: %w", len(grid), rows, ErrDimensionMismatch)
	}
	for r, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("row %d has %d values, want %d: %w", r, len(row), cols, ErrDimensionMismatch)
		}
	}
	return nil
}
