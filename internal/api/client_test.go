package api

import (
	"context"
	"errors"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"records":[],"total":0}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client(), func() string { return "tok-123" })
	_, err := NewUserService(c).Search(context.Background(), "", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthorizationWhenLoggedOut(t *testing.T) {
	t.Parallel()

	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client(), nil)
	_, err := NewAuthService(c).Identity(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientNormalizesErrors(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate sku", http.StatusConflict)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client(), nil)
	_, err := NewProductService(c).GetByID(context.Background(), 7)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Conflict", apiErr.StatusText)
	assert.Equal(t, "duplicate sku", apiErr.Body)
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestClientUnauthorizedMatchesSentinel(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, ts.Client(), nil)
	err := NewContactService(c).Delete(context.Background(), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Unauthorized", apiErr.StatusText)
}

func TestErrorMessageFallback(t *testing.T) {
	t.Parallel()

	e := &Error{Status: 500}
	assert.Equal(t, "An error occurred.", e.Message())

	e.StatusText = "Internal Server Error"
	assert.Equal(t, "Internal Server Error", e.Message())
}

func TestFormPayloadEncodesFieldsAndFile(t *testing.T) {
	t.Parallel()

	img := filepath.Join(t.TempDir(), "shirt.png")
	require.NoError(t, os.WriteFile(img, []byte("png-bytes"), 0o644))

	p := NewFormPayload()
	p.Set("sku", "P001")
	p.Set("name", "Shirt")
	p.Attach("image", img)

	body, contentType, err := p.encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	assert.Equal(t, []string{"P001"}, form.Value["sku"])
	assert.Equal(t, []string{"Shirt"}, form.Value["name"])
	require.Len(t, form.File["image"], 1)
	assert.Equal(t, "shirt.png", form.File["image"][0].Filename)
}

func TestFormPayloadWithoutFileHasNoFilePart(t *testing.T) {
	t.Parallel()

	p := NewFormPayload()
	p.Set("sku", "P001")

	body, contentType, err := p.encode()
	require.NoError(t, err)

	_, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)

	assert.Empty(t, form.File)
	assert.False(t, p.HasFile("image"))
}
