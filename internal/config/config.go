// ABOUTME: Configuration for taglint defaults and output settings.
// ABOUTME: Handles XDG config paths, strict YAML decoding and validation.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fiffu/sd-promptkit/internal/models"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every decoding or validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the user's taglint settings.
type Config struct {
	// Options are the normalization defaults; CLI flags override them.
	Options models.Options `yaml:"options"`

	// Format is the default output format for `taglint lint`.
	Format string `yaml:"format" validate:"oneof=text json yaml md"`

	// ShowRemoved prints removed tags in text output.
	ShowRemoved bool `yaml:"show_removed"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" validate:"oneof=debug info warn error"`

	// LogJSON switches log output to JSON.
	LogJSON bool `yaml:"log_json"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:      "text",
		ShowRemoved: true,
		LogLevel:    "warn",
	}
}

var validate = validator.New()

// Validate checks enum fields and reports every failing field.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s=%q must be one of [%s]", fe.Field(), fe.Value(), fe.Param()))
			}
			return fmt.Errorf("%w: %v", ErrInvalidConfig, msgs)
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taglint")
}

// Path returns the path to the config file.
func Path() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load loads configuration from the default path, returns defaults if not found.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile loads configuration from path, returns defaults if it does not exist.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // User-specified config path is expected CLI behavior
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode strictly decodes YAML onto cfg: unknown keys and wrongly typed
// values are rejected, then the result is validated.
func Decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg.Validate()
}

// Save writes configuration to path, creating its directory.
func Save(cfg *Config, path string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
