// Package config loads the CLI configuration from ~/.lumera/config.yaml,
// layered under environment variables. A .env file in the working directory
// is honored for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lumera-core/lumera-cli/internal/errors"
)

const (
	configDirName  = ".lumera"
	configFileName = "config.yaml"

	// Environment overrides. Each takes precedence over the config file.
	EnvAPIURL    = "LUMERA_API_URL"
	EnvLogLevel  = "LUMERA_LOG_LEVEL"
	EnvLogFormat = "LUMERA_LOG_FORMAT"
	EnvNoInput   = "LUMERA_NO_INPUT"
)

// Config is the resolved CLI configuration.
type Config struct {
	// APIURL is the base URL of the platform REST API.
	APIURL string `yaml:"api_url"`

	// TimeoutSeconds bounds every HTTP request.
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`

	// LogLevel and LogFormat feed the logger (debug/info/warn/error,
	// text/json).
	LogLevel  string `yaml:"log_level,omitempty"`
	LogFormat string `yaml:"log_format,omitempty"`

	// NoInput disables interactive prompts even on a TTY.
	NoInput bool `yaml:"no_input,omitempty"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() *Config {
	return &Config{
		APIURL:         "http://localhost:8000",
		TimeoutSeconds: 30,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Dir returns the configuration directory, creating nothing.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigWrite, "cannot determine home directory", err)
	}
	return filepath.Join(home, configDirName), nil
}

// Path returns the configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load resolves the configuration: defaults, then the config file if it
// exists, then environment variables. A missing file is not an error.
func Load() (*Config, error) {
	// Populates the process environment for the overrides below; absence
	// is fine.
	_ = godotenv.Load()

	cfg := Default()

	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid,
				fmt.Sprintf("invalid config file %s", path), err).
				WithSuggestion("Fix the YAML syntax or delete the file to start fresh")
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeConfigWrite,
			fmt.Sprintf("cannot read config file %s", path), err)
	}

	applyEnv(cfg)

	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = Default().TimeoutSeconds
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvNoInput); v != "" {
		cfg.NoInput = v == "1" || strings.EqualFold(v, "true")
	}
}

// Save writes the configuration file, creating the directory on first use.
func (c *Config) Save() error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "cannot create config directory", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "cannot encode config", err)
	}

	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite,
			fmt.Sprintf("cannot write config file %s", path), err)
	}
	return nil
}
