package mesh

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// NoiseParams holds configurable parameters for fractal noise heights.
type NoiseParams struct {
	Seed        int64   `yaml:"seed"`
	Octaves     int     `yaml:"octaves"`
	Frequency   float64 `yaml:"frequency"`
	Amplitude   float64 `yaml:"amplitude"`
	Persistence float64 `yaml:"persistence"`
	Lacunarity  float64 `yaml:"lacunarity"`
}

func DefaultNoiseParams() NoiseParams {
	return NoiseParams{
		Octaves:     4,
		Frequency:   0.01,
		Amplitude:   1,
		Persistence: 0.5,
		Lacunarity:  2,
	}
}

// Heights returns a height function summing Octaves layers of OpenSimplex
// noise. Each layer multiplies frequency by Lacunarity and amplitude by
// Persistence.
func (p NoiseParams) Heights() HeightFunc {
	noise := opensimplex.New(p.Seed)
	octaves := p.Octaves
	if octaves < 1 {
		octaves = 1
	}
	return func(x, y float64) float64 {
		var sum float64
		frequency, amplitude := p.Frequency, p.Amplitude
		for i := 0; i < octaves; i++ {
			sum += amplitude * noise.Eval2(x*frequency, y*frequency)
			frequency *= p.Lacunarity
			amplitude *= p.Persistence
		}
		return sum
	}
}
