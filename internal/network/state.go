package network

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/born-ml/ffnet/internal/activation"
	"github.com/born-ml/ffnet/internal/serialization"
)

// StateTensor is one named entry of a state dictionary.
type StateTensor = serialization.Tensor

// Metadata keys written by Save.
const (
	MetaLayerSizes = "layer_sizes"
	MetaActivation = "activation"
)

func weightsKey(i int) string { return fmt.Sprintf("weights.%d", i) }
func biasKey(i int) string    { return fmt.Sprintf("biases.%d", i) }

// StateDict returns copies of all weights and biases keyed by
// "weights.<i>" (shape [layerSizes[i+1], layerSizes[i]]) and
// "biases.<i>" (shape [layerSizes[i+2]]).
func (f *Feedforward) StateDict() map[string]StateTensor {
	state := make(map[string]StateTensor, len(f.weights)+len(f.biases))
	for i, grid := range f.weights {
		rows, cols := f.layerSizes[i+1], f.layerSizes[i]
		data := make([]float32, 0, rows*cols)
		for _, row := range grid {
			data = append(data, row...)
		}
		state[weightsKey(i)] = StateTensor{Shape: []int{rows, cols}, Data: data}
	}
	for i, bias := range f.biases {
		state[biasKey(i)] = StateTensor{Shape: []int{len(bias)}, Data: cloneVector(bias)}
	}
	return state
}

// LoadStateDict replaces all weights and biases from a state dictionary.
//
// Every expected entry must be present with the expected shape and no
// unknown entries are allowed. All entries are validated before anything
// is written, so the network is unchanged on failure.
func (f *Feedforward) LoadStateDict(state map[string]StateTensor) error {
	want := len(f.weights) + len(f.biases)
	if len(state) != want {
		return fmt.Errorf("%w: got %d tensors, want %d", ErrCheckpointMismatch, len(state), want)
	}

	weights := make([][][]float32, len(f.weights))
	for i := range f.weights {
		key := weightsKey(i)
		t, ok := state[key]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrCheckpointMismatch, key)
		}
		rows, cols := f.layerSizes[i+1], f.layerSizes[i]
		if !shapeIs(t, rows, cols) {
			return fmt.Errorf("%s: shape %v, want [%d %d]: %w", key, t.Shape, rows, cols, ErrDimensionMismatch)
		}
		grid := make([][]float32, rows)
		for r := range grid {
			grid[r] = cloneVector(t.Data[r*cols : (r+1)*cols])
		}
		weights[i] = grid
	}

	biases := make([][]float32, len(f.biases))
	for i := range f.biases {
		key := biasKey(i)
		t, ok := state[key]
		if !ok {
			return fmt.Errorf("%w: missing %s", ErrCheckpointMismatch, key)
		}
		n := f.layerSizes[i+2]
		if !shapeIs(t, n) {
			return fmt.Errorf("%s: shape %v, want [%d]: %w", key, t.Shape, n, ErrDimensionMismatch)
		}
		biases[i] = cloneVector(t.Data)
	}

	f.weights = weights
	f.biases = biases
	return nil
}

func shapeIs(t StateTensor, dims ...int) bool {
	if len(t.Shape) != len(dims) || len(t.Data) != t.NumElements() {
		return false
	}
	for i, d := range dims {
		if t.Shape[i] != d {
			return false
		}
	}
	return true
}

// Save writes the network's weights and biases to a SafeTensors file.
// The layer sizes and, when the activation implements activation.Named,
// its name are recorded in the file metadata.
func (f *Feedforward) Save(path string) error {
	metadata := map[string]string{MetaLayerSizes: FormatLayerSizes(f.layerSizes)}
	if named, ok := f.fn.(activation.Named); ok {
		metadata[MetaActivation] = named.Name()
	}

	if err := serialization.SaveFile(path, f.StateDict(), metadata); err != nil {
		return fmt.Errorf("save network: %w", err)
	}
	log.Debug().Str("path", path).Ints("layers", f.layerSizes).Msg("saved network")
	return nil
}

// Load replaces the network's weights and biases with those stored in a
// SafeTensors file written by Save.
//
// Returns ErrCheckpointMismatch if the file records different layer sizes.
func (f *Feedforward) Load(path string) error {
	state, metadata, err := serialization.LoadFile(path)
	if err != nil {
		return fmt.Errorf("load network: %w", err)
	}

	if recorded, ok := metadata[MetaLayerSizes]; ok {
		sizes, err := ParseLayerSizes(recorded)
		if err != nil {
			return fmt.Errorf("load network: %w", err)
		}
		if !equalSizes(sizes, f.layerSizes) {
			return fmt.Errorf("load network: %w: file has layers %v, network has %v",
				ErrCheckpointMismatch, sizes, f.layerSizes)
		}
	}

	if err := f.LoadStateDict(state); err != nil {
		return fmt.Errorf("load network: %w", err)
	}
	log.Debug().Str("path", path).Ints("layers", f.layerSizes).Msg("loaded network")
	return nil
}

// FormatLayerSizes renders layer sizes as a comma-separated list, e.g. "4,3,2".
func FormatLayerSizes(sizes []int) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// ParseLayerSizes parses a comma-separated list of positive layer sizes.
func ParseLayerSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: no layers", ErrInvalidLayerSize)
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: layer %d: %v", ErrInvalidLayerSize, i, err)
		}
		if n <= 0 {
			return nil, &LayerSizeError{Index: i, Size: n}
		}
		sizes[i] = n
	}
	return sizes, nil
}

func equalSizes(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
