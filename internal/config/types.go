package config

import "time"

// Config is the root configuration aggregate for the console.
type Config struct {
	API     APIConfig     `yaml:"api"`
	UI      UIConfig      `yaml:"ui"`
	Session SessionConfig `yaml:"session"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig points the console at the back-office REST backend.
type APIConfig struct {
	// BaseURL is the root of the admin API, also used to resolve
	// static assets under {base}/assets/.
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// UIConfig controls terminal rendering.
type UIConfig struct {
	// PageSize is the number of records requested per list page.
	PageSize int    `yaml:"page_size"`
	NoColor  bool   `yaml:"no_color"`
	Theme    string `yaml:"theme"` // glamour style name for the dashboard
}

// SessionConfig locates the stored login session.
type SessionConfig struct {
	// File is the path of the session file. Empty means the default
	// location under the user config directory.
	File string `yaml:"file"`
}

// LogConfig controls console diagnostics.
type LogConfig struct {
	Level string `yaml:"level"`
}
