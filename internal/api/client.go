// Package api is the HTTP client for the SIA backend. The backend owns all
// business logic and persistence; this package only shapes requests and
// decodes the response envelopes the controllers depend on.
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
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultBaseURL matches the original front end's local-dev fallback.
const DefaultBaseURL = "http://localhost:5050"

type Client struct {
	BaseURL string

	// HTTP carries no timeout on purpose: mutation requests had none in the
	// original client. Callers impose deadlines via context when they want one.
	HTTP *http.Client
}

func New(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: baseURL, HTTP: &http.Client{}}
}

// Error is an application error: the backend answered with a non-success
// status. Message carries the backend's `error` text verbatim when present,
// otherwise a generic fallback.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// IsApplicationError reports whether err is a decoded backend error (as
// opposed to a transport failure that never produced a response).
func IsApplicationError(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr)
}

// messageResponse is the minimal success envelope every mutation returns.
type messageResponse struct {
	Message string `json:"message"`
}

// errorResponse is the failure envelope; some endpoints use `message`.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) url(path string) string { return c.BaseURL + path }

func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

// doMultipart posts values and file parts as multipart/form-data, keyed by
// field name like the original FormData submissions. Values are written in
// sorted key order so request bodies are stable for tests.
func (c *Client) doMultipart(ctx context.Context, path string, values map[string]string, files map[string]string, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := mw.WriteField(k, values[k]); err != nil {
			return err
		}
	}

	fileKeys := make([]string, 0, len(files))
	for k := range files {
		fileKeys = append(fileKeys, k)
	}
	sort.Strings(fileKeys)
	for _, k := range fileKeys {
		if err := writeFilePart(mw, k, files[k]); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(req, out)
}

func writeFilePart(mw *multipart.Writer, field, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()
	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return err
	}
	_, err = io.Copy(part, f)
	return err
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	var er errorResponse
	_ = json.Unmarshal(body, &er)
	msg := strings.TrimSpace(er.Error)
	if msg == "" {
		msg = strings.TrimSpace(er.Message)
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return &Error{StatusCode: status, Message: msg}
}
