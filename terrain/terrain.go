// Package terrain provides column height sources for chunk generation.
package terrain

import (
	"fmt"

	"VoxelGolang/config"

	"github.com/ojrac/opensimplex-go"
)

const rampPeriod = 64

// Ramp is a repeating diagonal slope: (|x| mod 64) + (|z| mod 64).
func Ramp(x, z int) int {
	return abs(x)%rampPeriod + abs(z)%rampPeriod
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Noise layers octaves of 2D simplex noise on top of a base height.
type Noise struct {
	noise  opensimplex.Noise32
	params config.Noise
	max    int
}

// NewNoise builds a fractal noise height source. Heights are clamped to [0, max].
func NewNoise(seed int64, params config.Noise, max int) *Noise {
	return &Noise{
		noise:  opensimplex.New32(seed),
		params: params,
		max:    max,
	}
}

func (n *Noise) Height(x, z int) int {
	amplitude := n.params.Amplitude
	x1 := float32(x)
	z1 := float32(z)

	val := float32(0)
	for i := 0; i < n.params.Octaves; i++ {
		val += n.noise.Eval2(x1/n.params.Scale, z1/n.params.Scale) * amplitude
		x1 *= n.params.Lacunarity
		z1 *= n.params.Lacunarity
		amplitude *= n.params.Persistence
	}

	h := n.params.Base + int(val)
	if h < 0 {
		return 0
	}
	if h > n.max {
		return n.max
	}
	return h
}

// FromConfig returns the height source named by cfg.Terrain.
func FromConfig(cfg config.World, max int) (func(x, z int) int, error) {
	switch cfg.Terrain {
	case config.TerrainRamp:
		return Ramp, nil
	case config.TerrainNoise:
		return NewNoise(cfg.Seed, cfg.Noise, max).Height, nil
	}
	return nil, fmt.Errorf("unknown terrain %q", cfg.Terrain)
}
