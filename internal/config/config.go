// Package config loads feedforward network descriptions from YAML or JSON
// files and builds initialized networks from them.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/ffnet/internal/activation"
	"github.com/born-ml/ffnet/internal/network"
)

// Initialization modes.
const (
	InitConstant = "constant"
	InitRandom   = "random"
)

// Errors returned by Validate and Load.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// Config describes a network, how to initialize it and, optionally, the
// inputs of a forward pass.
type Config struct {
	Layers     []int     `yaml:"layers" json:"layers"`
	Activation string    `yaml:"activation" json:"activation"`
	Threshold  float32   `yaml:"threshold" json:"threshold"` // binary_step only
	Init       Init      `yaml:"init" json:"init"`
	Inputs     []float32 `yaml:"inputs,omitempty" json:"inputs,omitempty"`
}

// Init selects the weight initialization policy.
type Init struct {
	Mode  string  `yaml:"mode" json:"mode"`   // constant | random
	Value float32 `yaml:"value" json:"value"` // constant mode
	Seed  int64   `yaml:"seed" json:"seed"`   // random mode, -1 = random
}

// Default returns a 4-3-2 identity network with all weights set to 1.
func Default() *Config {
	return &Config{
		Layers:     []int{4, 3, 2},
		Activation: activation.NameIdentity,
		Init: Init{
			Mode:  InitConstant,
			Value: 1,
			Seed:  -1,
		},
	}
}

// Load reads a config file. The format is chosen by extension:
// .yaml and .yml are YAML, .json is JSON.
//
// Fields missing from the file keep their Default values. The result is
// validated before it is returned.
func Load(path string) (*Config, error) {
	//nolint:gosec // G304: config path comes from the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks layer sizes, activation name, init mode and, when
// present, the input length.
func (c *Config) Validate() error {
	if len(c.Layers) == 0 {
		return fmt.Errorf("%w: layers: %w", ErrInvalidConfig, network.ErrInvalidLayerSize)
	}
	for i, size := range c.Layers {
		if size <= 0 {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, &network.LayerSizeError{Index: i, Size: size})
		}
	}
	if _, err := c.ActivationFunction(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Init.Mode != InitConstant && c.Init.Mode != InitRandom {
		return fmt.Errorf("%w: init mode %q (want %q or %q)", ErrInvalidConfig, c.Init.Mode, InitConstant, InitRandom)
	}
	if len(c.Inputs) > 0 && len(c.Inputs) != c.Layers[0] {
		return fmt.Errorf("%w: %w: %d inputs for input layer of %d",
			ErrInvalidConfig, network.ErrInvalidInputLength, len(c.Inputs), c.Layers[0])
	}
	return nil
}

// ActivationFunction resolves the configured activation by name.
func (c *Config) ActivationFunction() (activation.Function, error) {
	return activation.Lookup(c.Activation, activation.Options{Threshold: c.Threshold})
}

// Build creates the network and initializes its weights. Inputs, when
// present, are assigned as well.
func (c *Config) Build() (*network.Feedforward, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	fn, err := c.ActivationFunction()
	if err != nil {
		return nil, err
	}

	net, err := network.New(c.Layers, fn)
	if err != nil {
		return nil, err
	}

	switch c.Init.Mode {
	case InitRandom:
		net.InitializeWeightsRandom(c.Init.Seed)
	default:
		net.InitializeWeightsConstant(c.Init.Value)
	}

	if len(c.Inputs) > 0 {
		if err := net.SetInputs(c.Inputs); err != nil {
			return nil, err
		}
	}
	return net, nil
}
