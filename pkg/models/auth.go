package models

// Identity is the session-derived account shown in the console header.
// It is read-only and refreshed once per screen open.
type Identity struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}
