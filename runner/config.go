package runner

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds the settings that can live in a YAML file. Command-line
// flags given explicitly take precedence.
type Config struct {
	// DataDir is the directory holding the day input files.
	DataDir string `yaml:"data_dir"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
	// Parallelism bounds concurrent days in --all mode.
	Parallelism int `yaml:"parallelism"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		DataDir:     "data",
		Parallelism: runtime.NumCPU(),
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file is not an
// error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("%w: parallelism must be positive, got %d", ErrBadConfig, c.Parallelism)
	}
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir is empty", ErrBadConfig)
	}

	return nil
}
