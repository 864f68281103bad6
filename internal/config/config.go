// Package config holds the demo command's settings. Values come from the
// defaults below, then an optional YAML file, then command line flags.
package config

import (
	"os"

	"github.com/osuushi/delaunay/mesh"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Number of random points to seed when no input file is given
	Points int `yaml:"points"`
	// Seed for the point generator; 0 picks one from the clock
	Seed int64 `yaml:"seed"`
	// Side length of the square region, centered on Size/2 in both axes
	Size float64 `yaml:"size"`
	// Optional point file (.svg or text) used instead of random points
	Input string `yaml:"input"`

	PNG   string  `yaml:"png"`
	HTML  string  `yaml:"html"`
	Scale float64 `yaml:"scale"`

	SkipCorners bool             `yaml:"skip_corners"`
	Noise       mesh.NoiseParams `yaml:"noise"`

	Verbose bool `yaml:"verbose"`
}

func Default() Config {
	return Config{
		Points: 100,
		Size:   1000,
		Scale:  0.8,
		Noise:  mesh.DefaultNoiseParams(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Input == "" && c.Points < 0 {
		return errors.Errorf("points must not be negative, got %d", c.Points)
	}
	if !(c.Size > 0) {
		return errors.Errorf("size must be positive, got %g", c.Size)
	}
	if !(c.Scale > 0) {
		return errors.Errorf("scale must be positive, got %g", c.Scale)
	}
	return nil
}
