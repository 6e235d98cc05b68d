package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSendsAdminType(t *testing.T) {
	t.Parallel()

	var got map[string]string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"token":"jwt-abc"}`))
	}))
	defer ts.Close()

	svc := NewAuthService(NewClient(ts.URL, ts.Client(), nil))
	token, err := svc.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	assert.Equal(t, "jwt-abc", token)
	assert.Equal(t, map[string]string{
		"username": "admin",
		"password": "secret",
		"type":     "admin",
	}, got)
}

func TestLoginPropagatesBackendError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	svc := NewAuthService(NewClient(ts.URL, ts.Client(), nil))
	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth", r.URL.Path)
		_, _ = w.Write([]byte(`{"username":"admin","avatar":"avatars/admin.png"}`))
	}))
	defer ts.Close()

	svc := NewAuthService(NewClient(ts.URL, ts.Client(), nil))
	id, err := svc.Identity(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", id.Username)
	assert.Equal(t, "avatars/admin.png", id.Avatar)
}

func TestLogout(t *testing.T) {
	t.Parallel()

	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	svc := NewAuthService(NewClient(ts.URL, ts.Client(), nil))
	require.NoError(t, svc.Logout(context.Background()))
	assert.Equal(t, "/logout", gotPath)
}
