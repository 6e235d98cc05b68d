package config

import "time"

// Default values applied before any file or environment override.
const (
	DefaultBaseURL  = "http://localhost:8000"
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 10
	DefaultLogLevel = "warn"
	DefaultTheme    = "auto"
)

// NewDefaultConfig returns a Config populated with default values.
func NewDefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTimeout,
		},
		UI: UIConfig{
			PageSize: DefaultPageSize,
			Theme:    DefaultTheme,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
