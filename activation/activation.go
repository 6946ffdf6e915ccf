// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation provides the activation functions a network applies
// to each neuron's weighted sum.
//
// Any type with an Execute(float32) float32 method can be passed to a
// network; the types here cover the common cases.
package activation

import (
	"github.com/born-ml/ffnet/internal/activation"
)

// Function maps a weighted sum to an activation value.
type Function = activation.Function

// Differentiable is a Function that also exposes its derivative.
type Differentiable = activation.Differentiable

// Named is a Function with a registry name.
type Named = activation.Named

// Options parameterize functions created by Lookup.
type Options = activation.Options

// Built-in activation functions.
type (
	Identity   = activation.Identity
	BinaryStep = activation.BinaryStep
	ReLU       = activation.ReLU
	Sigmoid    = activation.Sigmoid
	Tanh       = activation.Tanh
)

// ErrUnknownActivation is returned by Lookup for an unregistered name.
var ErrUnknownActivation = activation.ErrUnknownActivation

// NewIdentity creates f(x) = x.
func NewIdentity() Identity { return activation.NewIdentity() }

// NewBinaryStep creates a step that outputs 1 when x >= threshold, else 0.
func NewBinaryStep(threshold float32) BinaryStep { return activation.NewBinaryStep(threshold) }

// NewReLU creates f(x) = max(0, x).
func NewReLU() ReLU { return activation.NewReLU() }

// NewSigmoid creates f(x) = 1 / (1 + exp(-x)).
func NewSigmoid() Sigmoid { return activation.NewSigmoid() }

// NewTanh creates f(x) = tanh(x).
func NewTanh() Tanh { return activation.NewTanh() }

// Lookup returns the function registered under name, e.g. "relu".
func Lookup(name string, opts Options) (Function, error) {
	return activation.Lookup(name, opts)
}

// Names returns the registered function names in sorted order.
func Names() []string { return activation.Names() }
