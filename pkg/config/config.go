// Package config loads the service configuration from the environment
// (Lambda) or from a YAML file (local server).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/libraryshop/books-api/envloader"
)

// FromEnv builds the configuration from environment variables. A missing
// BOOKS_TABLE_NAME fails the load.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envloader.Load(&cfg); err != nil {
		return nil, fmt.Errorf("loading configuration from environment: %w", err)
	}
	return &cfg, nil
}

// LoadFile parses and validates a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration file: %w", err)
	}
	if cfg.Stage == "" {
		cfg.Stage = "dev"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
		}
		return fmt.Errorf("invalid configuration:\n- %s", strings.Join(msgs, "\n- "))
	}
	return fmt.Errorf("validating configuration: %w", err)
}
