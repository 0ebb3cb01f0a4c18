package astra

import "github.com/ojrac/opensimplex-go"

// Noise is the sampling surface the shaders draw their patterns from.
// Samples are in [-1, 1] and deterministic for a given seed and fractal
// configuration.
type Noise interface {
	Sample2D(x, y float64) float64
	Sample3D(x, y, z float64) float64
}

// FractalNoise layers OpenSimplex octaves (FBM). With Octaves == 1 it is a
// plain frequency-scaled simplex sample.
type FractalNoise struct {
	source     opensimplex.Noise
	Octaves    int
	Lacunarity float64
	Gain       float64
	Frequency  float64
}

func NewFractalNoise(seed int64, octaves int, lacunarity, gain, frequency float64) *FractalNoise {
	if octaves < 1 {
		octaves = 1
	}
	return &FractalNoise{
		source:     opensimplex.New(seed),
		Octaves:    octaves,
		Lacunarity: lacunarity,
		Gain:       gain,
		Frequency:  frequency,
	}
}

// NewCloudNoise is the default material preset: one smooth octave.
func NewCloudNoise(seed int64) *FractalNoise {
	return NewFractalNoise(seed, 1, 2.0, 0.5, 0.01)
}

// NewTerrainNoise is the rocky-surface preset.
func NewTerrainNoise(seed int64) *FractalNoise {
	return NewFractalNoise(seed, 5, 2.0, 0.5, 0.05)
}

// NewLavaNoise is the low-frequency, high-octave preset used for the sun.
func NewLavaNoise(seed int64) *FractalNoise {
	return NewFractalNoise(seed, 6, 2.0, 0.5, 0.002)
}

func (n *FractalNoise) Sample2D(x, y float64) float64 {
	sum := 0.0
	amp := 1.0
	total := 0.0
	freq := n.Frequency
	for i := 0; i < n.Octaves; i++ {
		sum += n.source.Eval2(x*freq, y*freq) * amp
		total += amp
		freq *= n.Lacunarity
		amp *= n.Gain
	}
	return sum / total
}

func (n *FractalNoise) Sample3D(x, y, z float64) float64 {
	sum := 0.0
	amp := 1.0
	total := 0.0
	freq := n.Frequency
	for i := 0; i < n.Octaves; i++ {
		sum += n.source.Eval3(x*freq, y*freq, z*freq) * amp
		total += amp
		freq *= n.Lacunarity
		amp *= n.Gain
	}
	return sum / total
}
