package sheetdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"bootcamp-landing/pkg/models"
)

// ErrNotConfigured is returned when no endpoint URL was provided. No request
// is attempted in that case.
var ErrNotConfigured = errors.New("sheetdb endpoint not configured")

// maxErrorBody caps how much of a failed response is kept for diagnostics.
const maxErrorBody = 4 << 10

// StatusError reports a non-2xx response from the sheet endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error from SheetDB API: status %d: %s", e.StatusCode, e.Body)
}

// Client defines the interface for appending rows to a SheetDB-backed spreadsheet
type Client interface {
	CreateRow(ctx context.Context, row models.SheetRow) error
	Configured() bool
}

type clientImpl struct {
	url        string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*clientImpl)

// WithHTTPClient replaces the HTTP client used for requests. nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientImpl) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *clientImpl) {
		if d <= 0 {
			return
		}
		var transport http.RoundTripper
		if c.httpClient != nil {
			transport = c.httpClient.Transport
		}
		c.httpClient = &http.Client{Timeout: d, Transport: transport}
	}
}

// NewClient creates a new SheetDB client posting to url. An empty url yields
// a client whose every call fails with ErrNotConfigured.
func NewClient(url string, opts ...Option) Client {
	c := &clientImpl{
		url:        url,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *clientImpl) Configured() bool {
	return c.url != ""
}

// CreateRow appends one row. The request body is {"data": row}; any 2xx
// status is success and the response body is not inspected.
func (c *clientImpl) CreateRow(ctx context.Context, row models.SheetRow) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	payload := struct {
		Data models.SheetRow `json:"data"`
	}{Data: row}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error creating SheetDB row: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
