// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding the config file path.
const EnvConfigPath = "LVTHERM_CONFIG"

// Config is the root configuration of the lvtherm command
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Run     RunConfig     `yaml:"run"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// RunConfig controls batch execution
type RunConfig struct {
	// Workers bounds how many models run concurrently.
	Workers int `yaml:"workers" validate:"min=1,max=1024"`

	// Timeout bounds each model run; 0 disables it.
	Timeout Duration `yaml:"timeout" validate:"min=0"`

	// Pretty indents JSON output.
	Pretty bool `yaml:"pretty"`
}

// MetricsConfig holds the optional Prometheus textfile export path
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// ErrInvalid is wrapped by every struct-tag validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New()

// Load reads the file named by LVTHERM_CONFIG, or returns defaults when the
// variable is unset. The second result is the path used.
func Load() (*Config, string, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// Save writes config to the specified path
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Run.Workers == 0 {
		c.Run.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate checks struct tags and reports the first violation.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	e := verrs[0]
	switch e.Tag() {
	case "oneof":
		return fmt.Errorf("%w: %s: must be one of [%s], got %q", ErrInvalid, e.Namespace(), e.Param(), e.Value())
	case "min":
		return fmt.Errorf("%w: %s: must be at least %s", ErrInvalid, e.Namespace(), e.Param())
	case "max":
		return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalid, e.Namespace(), e.Param())
	default:
		return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalid, e.Namespace(), e.Tag())
	}
}

// SlogLevel returns the slog level named by Level.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w with the configured format and level.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
