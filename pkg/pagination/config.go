package pagination

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	envconfig "pagination-helper/pkg/config"
)

// ErrInvalidConfig is returned when a Config fails validation.
var ErrInvalidConfig = errors.New("invalid pagination config")

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or a YAML file.
type Config struct {
	// DefaultPage is the page used when a request names none (typically 1).
	DefaultPage  int `yaml:"default_page" validate:"min=1"`
	// DefaultLimit is the page size used when a request names none (typically 20).
	DefaultLimit int `yaml:"default_limit" validate:"min=1,ltefield=MaxLimit"`
	// MaxLimit caps the page size a request may ask for (typically 100).
	MaxLimit     int `yaml:"max_limit" validate:"min=1"`
}

var validate = validator.New()

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, limit=20, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:  1,
		DefaultLimit: DefaultLimit,
		MaxLimit:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_LIMIT: Default items per page
//   - PAGINATION_MAX_LIMIT: Maximum items per page
//
// Falls back to DefaultConfig() values for variables that are not set or
// cannot be parsed.
func LoadFromEnv() Config {
	def := DefaultConfig()
	return Config{
		DefaultPage:  envconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE", def.DefaultPage),
		DefaultLimit: envconfig.GetEnvInt("PAGINATION_DEFAULT_LIMIT", def.DefaultLimit),
		MaxLimit:     envconfig.GetEnvInt("PAGINATION_MAX_LIMIT", def.MaxLimit),
	}
}

// LoadFromFile loads pagination config from a YAML file. Keys missing from
// the file keep their DefaultConfig() values. The result is validated.
func LoadFromFile(path string) (Config, error) {
	// #nosec G304 -- path is provided by the embedding application, not user input
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read pagination config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse pagination config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value is positive and that DefaultLimit does
// not exceed MaxLimit.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
