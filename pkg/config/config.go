package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/platinummonkey/envurl/pkg/env"
	"github.com/platinummonkey/envurl/pkg/observability"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Environment variables read by LoadConfig
const (
	EnvConfigFile  = "ENVURL_CONFIG"
	EnvEnvFile     = "ENVURL_ENV_FILE"
	EnvStripQuotes = "ENVURL_STRIP_QUOTES"
	EnvBaseDir     = "ENVURL_BASE_DIR"
	EnvOutput      = "ENVURL_OUTPUT"
	EnvLogLevel    = "ENVURL_LOG_LEVEL"
	EnvLogFormat   = "ENVURL_LOG_FORMAT"
)

// Output formats
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// Config holds the CLI configuration
type Config struct {
	// EnvFile is the .env file loaded before reading keys
	EnvFile string `yaml:"env_file" validate:"required"`
	// StripQuotes strips one layer of quotes from values at load time
	StripQuotes bool `yaml:"strip_quotes"`
	// BaseDir resolves relative file: storage URLs, working directory when empty
	BaseDir string `yaml:"base_dir"`
	// Output is yaml or json
	Output string `yaml:"output" validate:"required,oneof=yaml json"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"required,oneof=text json"`
}

var validate = validator.New()

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		EnvFile: ".env",
		Output:  OutputYAML,
		Log: LogConfig{
			Level:  "info",
			Format: observability.FormatText,
		},
	}
}

// LoadConfig builds the configuration from defaults, an optional YAML file
// and ENVURL_* variables in m, in increasing precedence. An empty file falls
// back to ENVURL_CONFIG; when both are empty no file is read.
func LoadConfig(m env.Mapping, file string) (*Config, error) {
	if m == nil {
		m = env.OS()
	}

	cfg := DefaultConfig()

	if file == "" {
		file = env.String(m, EnvConfigFile, "")
	}
	if file != "" {
		if err := cfg.loadFile(file); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv(m)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(m env.Mapping) {
	c.EnvFile = env.String(m, EnvEnvFile, c.EnvFile)
	c.StripQuotes = env.Bool(m, EnvStripQuotes, c.StripQuotes)
	c.BaseDir = env.String(m, EnvBaseDir, c.BaseDir)
	c.Output = env.String(m, EnvOutput, c.Output)
	c.Log.Level = env.String(m, EnvLogLevel, c.Log.Level)
	c.Log.Format = env.String(m, EnvLogFormat, c.Log.Format)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return fmt.Errorf("invalid %s: %q does not satisfy %s", fe.Namespace(), fe.Value(), fe.Tag())
		}
		return err
	}
	return nil
}

// LogLevel returns the parsed log level
func (c *Config) LogLevel() observability.LogLevel {
	return observability.ParseLogLevel(c.Log.Level)
}

// NewLogger builds the logger described by the configuration
func (c *Config) NewLogger(out io.Writer) *logrus.Logger {
	return observability.NewLogger(c.LogLevel(), c.Log.Format, out)
}
