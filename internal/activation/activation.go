// Package activation provides scalar activation functions for feedforward
// networks.
//
// A network consumes activations through the Function interface only, so
// callers can plug in their own implementations.
package activation

import "math"

// Function maps a neuron's weighted sum to its activation value.
//
// Implementations must be pure: the same input always gives the same output
// and no state is shared between calls.
type Function interface {
	Execute(weightedSum float32) float32
}

// Differentiable is implemented by functions that expose a derivative.
// The forward pass never calls it.
type Differentiable interface {
	Function
	Derivative(input float32) float32
}

// Named is implemented by functions that have a registry name.
// Checkpoints record the name so a network can be rebuilt from config.
type Named interface {
	Name() string
}

// Identity returns the weighted sum unchanged: f(x) = x.
type Identity struct{}

// NewIdentity creates an Identity activation.
func NewIdentity() Identity { return Identity{} }

// Execute returns x.
func (Identity) Execute(x float32) float32 { return x }

// Derivative returns 1.
func (Identity) Derivative(float32) float32 { return 1 }

// Name returns "identity".
func (Identity) Name() string { return NameIdentity }

// BinaryStep outputs 1 when the weighted sum reaches Threshold and 0 otherwise.
//
//	f(x) = 1 if x >= Threshold
//	f(x) = 0 otherwise
type BinaryStep struct {
	Threshold float32
}

// NewBinaryStep creates a BinaryStep activation with the given threshold.
func NewBinaryStep(threshold float32) BinaryStep {
	return BinaryStep{Threshold: threshold}
}

// Execute applies the step.
func (b BinaryStep) Execute(x float32) float32 {
	if x >= b.Threshold {
		return 1
	}
	return 0
}

// Derivative returns 0; the step is flat everywhere it is defined.
func (BinaryStep) Derivative(float32) float32 { return 0 }

// Name returns "binary_step".
func (BinaryStep) Name() string { return NameBinaryStep }

// ReLU is the rectified linear unit: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU activation.
func NewReLU() ReLU { return ReLU{} }

// Execute returns max(0, x).
func (ReLU) Execute(x float32) float32 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 for x > 0 and 0 otherwise.
func (ReLU) Derivative(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return 1
}

// Name returns "relu".
func (ReLU) Name() string { return NameReLU }

// Sigmoid squashes the weighted sum into (0, 1): σ(x) = 1 / (1 + exp(-x)).
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() Sigmoid { return Sigmoid{} }

// Execute returns σ(x).
func (Sigmoid) Execute(x float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(x))))
}

// Derivative returns σ(x) * (1 - σ(x)).
func (s Sigmoid) Derivative(x float32) float32 {
	v := s.Execute(x)
	return v * (1 - v)
}

// Name returns "sigmoid".
func (Sigmoid) Name() string { return NameSigmoid }

// Tanh squashes the weighted sum into (-1, 1).
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() Tanh { return Tanh{} }

// Execute returns tanh(x).
func (Tanh) Execute(x float32) float32 {
	return float32(math.Tanh(float64(x)))
}

// Derivative returns 1 - tanh(x)^2.
func (t Tanh) Derivative(x float32) float32 {
	v := t.Execute(x)
	return 1 - v*v
}

// Name returns "tanh".
func (Tanh) Name() string { return NameTanh }
