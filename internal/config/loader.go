package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables that override file values.
const EnvPrefix = "STOREADMIN_"

// Load reads configuration in precedence order: defaults, the YAML file at
// path (or the default location when path is empty), a .env file in the
// working directory, then STOREADMIN_* environment variables. A missing
// config or .env file is not an error.
func Load(path string) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = defaultConfigPath()
	}
	if path != "" {
		if err := loadYAMLFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Populate the process environment from .env so the overrides below
	// see it. Existing variables win.
	_ = godotenv.Load()

	applyEnvOverrides(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfigPath returns the per-user config file location, or an
// empty string when the user config directory cannot be resolved.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "storeadmin", "config.yaml")
}

// loadYAMLFile unmarshals the YAML file at path into cfg. A missing file
// leaves cfg untouched.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, ErrInvalidYAML)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv(EnvPrefix + "TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}
	if v := os.Getenv(EnvPrefix + "PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.UI.PageSize = n
		}
	}
	if v := os.Getenv(EnvPrefix + "SESSION_FILE"); v != "" {
		cfg.Session.File = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UI.NoColor = b
		}
	}
}
