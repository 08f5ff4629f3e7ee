package config

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/zlib/internal/core/domain"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Codec Codec `yaml:"codec"`
}

// Codec holds codec-specific configuration.
type Codec struct {
	CompressionLevel string `yaml:"compression_level"` // Level hint: none, fast, balanced or best.
	BufferSize       uint32 `yaml:"buffer_size"`       // Scratch buffer size for the compressor.
}

// DefaultConfig returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		Codec: Codec{
			CompressionLevel: domain.DefaultLevel.String(),
			BufferSize:       64 * 1024,
		},
	}
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Level resolves the configured compression level string.
func (c *Config) Level() domain.CompressionLevel {
	level, err := domain.ParseLevel(c.Codec.CompressionLevel)
	if err != nil {
		return domain.DefaultLevel
	}
	return level
}

func validateConfig(config *Config) error {
	if _, err := domain.ParseLevel(config.Codec.CompressionLevel); err != nil {
		return err
	}

	if config.Codec.BufferSize == 0 {
		return fmt.Errorf("buffer_size must be greater than 0")
	}

	return nil
}
