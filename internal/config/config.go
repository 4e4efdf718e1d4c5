// Package config loads run defaults for the itgscrub command.
//
// Values come from, in increasing precedence: built-in defaults, a .env
// file, ITGSCRUB_* environment variables, and an optional YAML file.
// Command line flags are applied on top by the caller. The filtering
// rules themselves are compiled in and cannot be configured.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ITGSCRUB"

// Config represents the run defaults.
type Config struct {
	Retention string        `yaml:"retention" envconfig:"RETENTION" default:"delete" validate:"oneof=delete keep"`
	Zip       string        `yaml:"zip" envconfig:"ZIP" default:"no" validate:"oneof=yes no"`
	Sort      bool          `yaml:"sort" envconfig:"SORT" default:"true"`
	Logging   LoggingConfig `yaml:"logging" envconfig:"LOG"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// Load reads the configuration. dotenv names the .env file to load (it may
// be missing); file names an optional YAML file and may be empty.
func Load(dotenv, file string) (*Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", dotenv, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Retention = strings.ToLower(strings.TrimSpace(c.Retention))
	c.Zip = strings.ToLower(strings.TrimSpace(c.Zip))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", fe.Namespace(), fe.Param(), fe.Value()))
			}
			return fmt.Errorf("config validation failed: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
