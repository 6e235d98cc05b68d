package api

import (
	"context"

	"storeadmin/pkg/models"
)

// AuthService consumes the three session endpoints. Token mechanics are
// opaque: the console stores what /login returns and sends it back.
type AuthService struct {
	c *Client
}

// NewAuthService creates an AuthService on the given client.
func NewAuthService(c *Client) *AuthService {
	return &AuthService{c: c}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Type     string `json:"type"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login authenticates as an administrator and returns the session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	req := loginRequest{Username: username, Password: password, Type: "admin"}
	var resp loginResponse
	if err := s.c.postJSON(ctx, "/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Identity fetches the account behind the current session.
func (s *AuthService) Identity(ctx context.Context) (models.Identity, error) {
	var id models.Identity
	if err := s.c.get(ctx, "/auth", nil, &id); err != nil {
		return models.Identity{}, err
	}
	return id, nil
}

// Logout terminates the session server-side. Local state is the
// caller's concern.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.c.postJSON(ctx, "/logout", struct{}{}, nil)
}
