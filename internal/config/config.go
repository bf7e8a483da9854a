// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by MergeWithDefaults when neither the file, the
// environment nor a flag sets a value.
const (
	DefaultPort       = 8080
	DefaultDelayMin   = 1500 * time.Millisecond
	DefaultDelayMax   = 3000 * time.Millisecond
	DefaultLogLevel   = "info"
	DefaultBatchLimit = 3
)

// Config represents the service configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Server
	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"` // HTTP listen port

	// Creation
	DelayMinMS int   `json:"delay_min_ms,omitempty" validate:"gte=0"` // Lower bound of the simulated processing delay
	DelayMaxMS int   `json:"delay_max_ms,omitempty" validate:"gte=0"` // Upper bound of the simulated processing delay
	NoDelay    bool  `json:"no_delay,omitempty"`                      // Skip the simulated delay entirely
	Seed       int64 `json:"seed,omitempty"`                          // Random seed; 0 seeds from the clock
	BatchLimit int   `json:"batch_limit,omitempty" validate:"gte=0"`  // Concurrent creations for batch runs

	// Behavior
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
	Verbose  bool   `json:"verbose,omitempty"`   // Human-readable logs and progress output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields from PORT, CREATION_DELAY_MIN, CREATION_DELAY_MAX,
// RANDOM_SEED and LOG_LEVEL when they are set. Delays are Go durations ("1500ms").
func (c *Config) ApplyEnv() {
	c.Port = EnvInt("PORT", c.Port)
	if d := EnvDuration("CREATION_DELAY_MIN", 0); d > 0 {
		c.DelayMinMS = int(d / time.Millisecond)
	}
	if d := EnvDuration("CREATION_DELAY_MAX", 0); d > 0 {
		c.DelayMaxMS = int(d / time.Millisecond)
	}
	c.Seed = int64(EnvInt("RANDOM_SEED", int(c.Seed)))
	c.LogLevel = EnvString("LOG_LEVEL", c.LogLevel)
}

// validate reports fields by their JSON names so errors match the config file.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return fieldError(fieldErrs[0])
		}
		return fmt.Errorf("config error: %w", err)
	}
	if c.DelayMaxMS > 0 && c.DelayMinMS > c.DelayMaxMS {
		return fmt.Errorf("config error: 'delay_min_ms' (%d) exceeds 'delay_max_ms' (%d)", c.DelayMinMS, c.DelayMaxMS)
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	switch {
	case fe.Tag() == "gte" && fe.Param() == "0":
		return fmt.Errorf("config error: '%s' must be non-negative, got %v", fe.Field(), fe.Value())
	case fe.Tag() == "lte":
		return fmt.Errorf("config error: '%s' must be at most %s, got %v", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Errorf("config error: '%s' failed '%s' check, got %v", fe.Field(), fe.Tag(), fe.Value())
	}
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.DelayMinMS == 0 {
		result.DelayMinMS = defaults.DelayMinMS
	}
	if result.DelayMaxMS == 0 {
		result.DelayMaxMS = defaults.DelayMaxMS
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.BatchLimit == 0 {
		result.BatchLimit = defaults.BatchLimit
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:       DefaultPort,
		DelayMinMS: int(DefaultDelayMin / time.Millisecond),
		DelayMaxMS: int(DefaultDelayMax / time.Millisecond),
		BatchLimit: DefaultBatchLimit,
		LogLevel:   DefaultLogLevel,
	}
}

// DelayRange returns the simulated delay bounds.
func (c *Config) DelayRange() (time.Duration, time.Duration) {
	return time.Duration(c.DelayMinMS) * time.Millisecond, time.Duration(c.DelayMaxMS) * time.Millisecond
}
