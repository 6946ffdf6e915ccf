package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ffnet/internal/activation"
	"github.com/born-ml/ffnet/internal/network"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const yamlConfig = `
layers: [4, 3, 2]
activation: identity
init:
  mode: constant
  value: 1
inputs: [1, 2, 3, 4]
`

const jsonConfig = `{
  "layers": [4, 3, 2],
  "activation": "identity",
  "init": {"mode": "constant", "value": 1},
  "inputs": [1, 2, 3, 4]
}`

func TestLoad_YAMLAndJSONAgree(t *testing.T) {
	fromYAML, err := Load(writeFile(t, "net.yaml", yamlConfig))
	require.NoError(t, err)
	fromJSON, err := Load(writeFile(t, "net.json", jsonConfig))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromJSON)
	assert.Equal(t, []int{4, 3, 2}, fromYAML.Layers)
	assert.Equal(t, int64(-1), fromYAML.Init.Seed, "missing fields keep defaults")
}

func TestBuild_Regression(t *testing.T) {
	cfg, err := Load(writeFile(t, "net.yml", yamlConfig))
	require.NoError(t, err)

	net, err := cfg.Build()
	require.NoError(t, err)
	require.NoError(t, net.Process())
	assert.Equal(t, []float32{31, 31}, net.Outputs())
}

func TestBuild_Random(t *testing.T) {
	cfg := Default()
	cfg.Init = Init{Mode: InitRandom, Seed: 4}

	a, err := cfg.Build()
	require.NoError(t, err)
	b, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, a.StateDict(), b.StateDict())
}

func TestBuild_BinaryStepThreshold(t *testing.T) {
	cfg := &Config{
		Layers:     []int{2, 1},
		Activation: activation.NameBinaryStep,
		Threshold:  3,
		Init:       Init{Mode: InitConstant, Value: 1},
		Inputs:     []float32{1, 1},
	}

	net, err := cfg.Build()
	require.NoError(t, err)
	require.NoError(t, net.Process())
	assert.Equal(t, []float32{0}, net.Outputs())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"no layers", func(c *Config) { c.Layers = nil }, network.ErrInvalidLayerSize},
		{"zero layer", func(c *Config) { c.Layers = []int{4, 0} }, network.ErrInvalidLayerSize},
		{"unknown activation", func(c *Config) { c.Activation = "softplus" }, activation.ErrUnknownActivation},
		{"unknown mode", func(c *Config) { c.Init.Mode = "xavier" }, ErrInvalidConfig},
		{"wrong input length", func(c *Config) { c.Inputs = []float32{1} }, network.ErrInvalidInputLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.ErrorIs(t, err, tt.want)

			_, err = cfg.Build()
			assert.Error(t, err)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(writeFile(t, "net.toml", "layers = [1]"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "net.yaml", "layers: [2, -1]\n"))
	assert.ErrorIs(t, err, network.ErrInvalidLayerSize)

	_, err = Load(writeFile(t, "net.json", "{"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
