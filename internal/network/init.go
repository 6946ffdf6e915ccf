package network

import (
	"math/rand"

	"github.com/rs/zerolog/log"
)

// InitializeWeightsRandom sets every weight and bias to a random value in (-1, 1).
//
// A fresh generator is created for this call, seeded with seed when
// seed >= 0 and from the global source otherwise (-1 = random).
//
// Each element is drawn as u * s, where u is uniform on [0, 1) and s is an
// independent fair choice of -1 or +1. The magnitude and the sign are two
// separate draws, so this is not a single uniform draw over [-1, 1).
func (f *Feedforward) InitializeWeightsRandom(seed int64) {
	var rng *rand.Rand
	if seed >= 0 {
		rng = rand.New(rand.NewSource(seed)) //nolint:gosec // Intentional deterministic seed for reproducibility
	} else {
		rng = rand.New(rand.NewSource(rand.Int63())) //nolint:gosec // Weight initialization is not security-critical
	}
	f.InitializeWeightsFrom(rng)
	log.Debug().Ints("layers", f.layerSizes).Int64("seed", seed).Msg("initialized random weights")
}

// InitializeWeightsFrom is InitializeWeightsRandom with a caller-owned
// generator, for callers that thread one seeded source through several
// networks.
func (f *Feedforward) InitializeWeightsFrom(rng *rand.Rand) {
	draw := func() float32 {
		v := rng.Float32()
		if rng.Intn(2) == 0 {
			return -v
		}
		return v
	}

	for _, grid := range f.weights {
		for _, row := range grid {
			for c := range row {
				row[c] = draw()
			}
		}
	}
	for _, bias := range f.biases {
		for j := range bias {
			bias[j] = draw()
		}
	}
}

// InitializeWeightsConstant sets every weight and bias to value.
func (f *Feedforward) InitializeWeightsConstant(value float32) {
	for _, grid := range f.weights {
		for _, row := range grid {
			for c := range row {
				row[c] = value
			}
		}
	}
	for _, bias := range f.biases {
		for j := range bias {
			bias[j] = value
		}
	}
	log.Debug().Ints("layers", f.layerSizes).Float32("value", value).Msg("initialized constant weights")
}
