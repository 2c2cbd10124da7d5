package conformance

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-microfft"
)

// Config selects what Run checks.
type Config struct {
	// Sizes lists the transform sizes to check. Empty means every
	// compiled-in size.
	Sizes []int `yaml:"sizes"`

	// Seed seeds the random inputs.
	Seed int64 `yaml:"seed"`

	// Samples is the number of random values fed to the rotation check in
	// addition to the fixed vectors.
	Samples int `yaml:"samples"`

	// Tolerance bounds the amplitude difference from the reference spectrum,
	// relative to the expected peak.
	Tolerance float64 `yaml:"tolerance"`
}

var errInvalidConfig = errors.New("conformance: invalid config")

// DefaultConfig checks every compiled-in size.
func DefaultConfig() Config {
	sizes := microfft.Sizes()

	cfg := Config{
		Sizes:     make([]int, len(sizes)),
		Seed:      1,
		Samples:   4096,
		Tolerance: 1e-4,
	}

	for i, s := range sizes {
		cfg.Sizes[i] = int(s)
	}

	return cfg
}

// LoadConfig reads a YAML config. Fields missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read conformance config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse conformance config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports sizes that are not available and out-of-range fields.
func (c Config) Validate() error {
	if c.Samples < 0 {
		return fmt.Errorf("%w: negative samples %d", errInvalidConfig, c.Samples)
	}

	if c.Tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %g", errInvalidConfig, c.Tolerance)
	}

	for _, n := range c.Sizes {
		if _, err := microfft.Lookup(n); err != nil {
			return fmt.Errorf("%w: %w", errInvalidConfig, err)
		}
	}

	return nil
}

func (c Config) sizes() []int {
	if len(c.Sizes) > 0 {
		return c.Sizes
	}

	return DefaultConfig().Sizes
}
