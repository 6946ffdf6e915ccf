package serialization

import "errors"

// Common errors.
var (
	ErrHeaderTooLarge    = errors.New("header exceeds maximum size")
	ErrUnsupportedDType  = errors.New("unsupported dtype")
	ErrOutOfBounds       = errors.New("tensor extends beyond data section")
	ErrNegativeOffset    = errors.New("negative or inverted data offsets")
	ErrShapeMismatch     = errors.New("tensor data does not match shape")
	ErrInvalidTensorName = errors.New("invalid tensor name")
)
