package network

import (
	"errors"
	"fmt"

	"github.com/born-ml/ffnet/internal/matrix"
)

// Errors returned by Feedforward. Check with errors.Is.
var (
	ErrInvalidLayerSize     = errors.New("invalid layer size")
	ErrInvalidInputLength   = errors.New("input length does not match input layer size")
	ErrNilActivation        = errors.New("activation function is nil")
	ErrTransitionOutOfRange = errors.New("transition index out of range")
	ErrCheckpointMismatch   = errors.New("checkpoint does not match network")

	// Shape errors come from the matrix package so callers can match either.
	ErrDimensionMismatch        = matrix.ErrDimensionMismatch
	ErrIncorrectArrayDimensions = matrix.ErrIncorrectArrayDimensions
)

// LayerSizeError reports the first non-positive entry in a layer size sequence.
type LayerSizeError struct {
	Index int // Position in the layer size sequence
	Size  int // Offending value
}

// Error implements the error interface.
func (e *LayerSizeError) Error() string {
	return fmt.Sprintf("%v: layer %d has size %d (must be > 0)", ErrInvalidLayerSize, e.Index, e.Size)
}

// Unwrap returns ErrInvalidLayerSize.
func (e *LayerSizeError) Unwrap() error { return ErrInvalidLayerSize }
