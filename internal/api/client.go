// Package api is the typed HTTP client for the back-office REST backend.
// Every operation is asynchronous only in the sense of blocking its own
// caller: single-shot, no retry, no caching. Backend errors propagate
// unchanged as *Error values.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrUnauthorized matches any 401 response via errors.Is. Callers treat
// it as "session expired": show the status text and send the operator
// back to login.
var ErrUnauthorized = errors.New("api: unauthorized")

// Error is the normalized shape of a non-2xx backend response.
type Error struct {
	Status     int
	StatusText string
	Body       string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.StatusText, e.Body)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.StatusText)
}

// Is reports ErrUnauthorized for 401 responses.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// Message returns the text shown to the operator: the server-provided
// status text, or a generic fallback.
func (e *Error) Message() string {
	if e.StatusText != "" {
		return e.StatusText
	}
	return "An error occurred."
}

// Page is a bounded slice of a resource collection returned by a
// server-side search, with the total count for pagination.
type Page[T any] struct {
	Records []T `json:"records"`
	Total   int `json:"total"`
}

// TokenSource supplies the current session token, empty when logged out.
type TokenSource func() string

// Client wraps the base HTTP client: base URL join, bearer token attach,
// JSON and multipart encoding, error normalization.
type Client struct {
	baseURL string
	client  *http.Client
	token   TokenSource
}

// NewClient creates a Client for the given base URL. A nil http.Client
// gets a 30 second timeout; a nil TokenSource sends no credentials.
func NewClient(baseURL string, client *http.Client, token TokenSource) *Client {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		token:   token,
	}
}

// BaseURL returns the configured backend root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("api: create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

// newError normalizes a non-2xx response. The reason phrase carried on
// the status line is what the UI shows; the body is kept for diagnostics.
func newError(resp *http.Response) *Error {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &Error{
		Status:     resp.StatusCode,
		StatusText: text,
		Body:       strings.TrimSpace(string(data)),
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: encode %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(data), "application/json", out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("api: encode %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPut, path, nil, bytes.NewReader(data), "application/json", nil)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "", nil)
}

func (c *Client) postMultipart(ctx context.Context, path string, payload *FormPayload, out any) error {
	body, contentType, err := payload.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, body, contentType, out)
}

func (c *Client) putMultipart(ctx context.Context, path string, payload *FormPayload) error {
	body, contentType, err := payload.encode()
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, nil, body, contentType, nil)
}

// FormPayload is a multipart form body: ordered text fields plus optional
// file attachments. Absent attachments simply never enter the body, which
// leaves the stored server-side file untouched on update.
type FormPayload struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name string
	path string
}

// NewFormPayload creates an empty multipart payload.
func NewFormPayload() *FormPayload {
	return &FormPayload{}
}

// Set appends a text field. Fields keep insertion order.
func (p *FormPayload) Set(name, value string) {
	p.fields = append(p.fields, formField{name: name, value: value})
}

// Attach appends a file part read from path at encode time.
func (p *FormPayload) Attach(name, path string) {
	p.files = append(p.files, formFile{name: name, path: path})
}

// Fields returns the text fields as a map, for inspection in tests.
func (p *FormPayload) Fields() map[string]string {
	m := make(map[string]string, len(p.fields))
	for _, f := range p.fields {
		m[f.name] = f.value
	}
	return m
}

// HasFile reports whether a file part with the given field name exists.
func (p *FormPayload) HasFile(name string) bool {
	for _, f := range p.files {
		if f.name == name {
			return true
		}
	}
	return false
}

func (p *FormPayload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range p.fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("api: write field %s: %w", f.name, err)
		}
	}
	for _, f := range p.files {
		src, err := os.Open(f.path)
		if err != nil {
			return nil, "", fmt.Errorf("api: open attachment %s: %w", f.name, err)
		}
		part, err := w.CreateFormFile(f.name, filepath.Base(f.path))
		if err == nil {
			_, err = io.Copy(part, src)
		}
		_ = src.Close()
		if err != nil {
			return nil, "", fmt.Errorf("api: write attachment %s: %w", f.name, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("api: finish multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
