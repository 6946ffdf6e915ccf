// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package network provides the public API for feedforward networks.
//
// Example:
//
//	net, err := network.New([]int{4, 3, 2}, activation.NewIdentity())
//	if err != nil {
//	    return err
//	}
//	net.InitializeWeightsConstant(1)
//	_ = net.SetInputs([]float32{1, 2, 3, 4})
//	_ = net.Process()
//	fmt.Println(net.Outputs()) // [31 31]
package network

import (
	"github.com/born-ml/ffnet/internal/activation"
	"github.com/born-ml/ffnet/internal/config"
	"github.com/born-ml/ffnet/internal/network"
)

// Feedforward is a fully connected feedforward network.
type Feedforward = network.Feedforward

// LayerSizeError reports the first invalid entry of a layer size sequence.
type LayerSizeError = network.LayerSizeError

// StateTensor is one entry of a state dictionary.
type StateTensor = network.StateTensor

// Config describes a network loaded from a YAML or JSON file.
type Config = config.Config

// Errors returned by Feedforward.
var (
	ErrInvalidLayerSize         = network.ErrInvalidLayerSize
	ErrInvalidInputLength       = network.ErrInvalidInputLength
	ErrNilActivation            = network.ErrNilActivation
	ErrTransitionOutOfRange     = network.ErrTransitionOutOfRange
	ErrCheckpointMismatch       = network.ErrCheckpointMismatch
	ErrDimensionMismatch        = network.ErrDimensionMismatch
	ErrIncorrectArrayDimensions = network.ErrIncorrectArrayDimensions
)

// New creates a network with zero weights. See Feedforward for the
// initialization and forward-pass methods.
func New(layerSizes []int, fn activation.Function) (*Feedforward, error) {
	return network.New(layerSizes, fn)
}

// LoadConfig reads a network config from a .yaml, .yml or .json file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// DefaultConfig returns the config of a 4-3-2 identity network with unit weights.
func DefaultConfig() *Config {
	return config.Default()
}
