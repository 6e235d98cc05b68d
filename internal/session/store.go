// Package session persists the login session between console runs.
// The session is an explicit object handed to whoever needs it; there
// is no ambient global state.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gopkg.in/yaml.v3"
)

// ErrNotLoggedIn indicates no stored session exists.
var ErrNotLoggedIn = errors.New("session: not logged in, run `storeadmin login`")

// Session is the stored login state.
type Session struct {
	Token    string    `yaml:"token"`
	Username string    `yaml:"username"`
	SavedAt  time.Time `yaml:"saved_at"`
}

// Expiry returns the token's exp claim, parsed without verification.
// The token stays opaque otherwise; this exists purely so whoami can
// display when the session runs out. Returns the zero time when the
// token is not a JWT or carries no expiry.
func (s Session) Expiry() time.Time {
	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a Store at path. An empty path selects the default
// location under the user config directory.
func NewStore(path string) (*Store, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("session: resolve config dir: %w", err)
		}
		path = filepath.Join(dir, "storeadmin", "session.yaml")
	}
	return &Store{path: path}, nil
}

// Load returns the stored session, or ErrNotLoggedIn when none exists.
func (st *Store) Load() (Session, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Session{}, ErrNotLoggedIn
		}
		return Session{}, fmt.Errorf("session: read %s: %w", st.path, err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Session{}, fmt.Errorf("session: parse %s: %w", st.path, err)
	}
	if s.Token == "" {
		return Session{}, ErrNotLoggedIn
	}
	return s, nil
}

// Save writes the session with owner-only permissions.
func (st *Store) Save(s Session) error {
	s.SavedAt = time.Now().UTC()
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return fmt.Errorf("session: create dir: %w", err)
	}
	if err := os.WriteFile(st.path, data, 0o600); err != nil {
		return fmt.Errorf("session: write %s: %w", st.path, err)
	}
	return nil
}

// Clear removes the stored session. A missing file is not an error.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: remove %s: %w", st.path, err)
	}
	return nil
}

// Token returns the stored token, or an empty string when logged out.
// It satisfies the api.TokenSource contract.
func (st *Store) Token() string {
	s, err := st.Load()
	if err != nil {
		return ""
	}
	return s.Token
}
