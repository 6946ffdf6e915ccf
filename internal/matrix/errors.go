package matrix

import "errors"

// Errors returned by matrix operations. Check with errors.Is.
var (
	ErrIndexOutOfRange          = errors.New("index out of range")
	ErrDimensionMismatch        = errors.New("dimension mismatch")
	ErrIncorrectArrayDimensions = errors.New("matrix is neither a single row nor a single column")
)
