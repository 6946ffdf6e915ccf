package activation

import (
	"errors"
	"fmt"
	"sort"
)

// Registry names.
const (
	NameIdentity   = "identity"
	NameBinaryStep = "binary_step"
	NameReLU       = "relu"
	NameSigmoid    = "sigmoid"
	NameTanh       = "tanh"
)

// ErrUnknownActivation is returned by Lookup for an unregistered name.
var ErrUnknownActivation = errors.New("unknown activation function")

// Options parameterize functions created by name.
type Options struct {
	Threshold float32 // BinaryStep only
}

var registry = map[string]func(Options) Function{
	NameIdentity:   func(Options) Function { return NewIdentity() },
	NameBinaryStep: func(o Options) Function { return NewBinaryStep(o.Threshold) },
	NameReLU:       func(Options) Function { return NewReLU() },
	NameSigmoid:    func(Options) Function { return NewSigmoid() },
	NameTanh:       func(Options) Function { return NewTanh() },
}

// Lookup returns the activation function registered under name.
func Lookup(name string, opts Options) (Function, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownActivation, name, Names())
	}
	return ctor(opts), nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
