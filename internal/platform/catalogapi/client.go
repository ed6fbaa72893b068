package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseBytes caps how much of a response body is read. Error pages
// and catalog payloads are small; anything larger is suspect.
const maxResponseBytes = 8 << 20

// defaultTimeout bounds a single call when the caller supplies no
// http.Client of their own.
const defaultTimeout = 30 * time.Second

// ClientConfig configures the gateway client.
type ClientConfig struct {
	// BaseURL is the fully-resolved catalog API endpoint
	// (see config.ResolveBaseURL).
	BaseURL string

	// HTTPClient optionally overrides the underlying transport,
	// mainly for tests. A default client with a 30s timeout is used
	// when nil.
	HTTPClient *http.Client

	// Logger receives diagnostic logs. Required.
	Logger *slog.Logger
}

// Client is the gateway adapter for the remote catalog API. It owns
// request construction, response content-type validation and error
// normalization; resource clients delegate every call to it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client from the given configuration.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for catalogapi.Client")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     cfg.Logger.With(slog.String("component", "catalog_api")),
	}

	c.logger.Debug("catalog API client configured", slog.String("base_url", c.baseURL))
	return c
}

// Get performs a GET request with optional query parameters, decoding
// the response into out when out is non-nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do executes one call against the catalog API. On any failure the
// returned error is always an *APIError, built in three tiers:
//
//  1. the server answered with an error status: the body is inspected
//     and flattened (see normalizeErrorBody)
//  2. the request was sent but no response arrived: Status 0 with the
//     fixed connectivity message
//  3. the request could not be built: Status 0 with the underlying
//     description
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return buildError(fmt.Errorf("failed to marshal request body: %w", err))
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return buildError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("catalog API unreachable",
			slog.String("method", method),
			slog.String("url", fullURL),
			slog.String("error", err.Error()))
		return transportError()
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Debug("failed to close response body", slog.String("error", cerr.Error()))
		}
	}()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError()
	}

	contentType := resp.Header.Get("Content-Type")

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := normalizeErrorBody(resp.StatusCode, contentType, respBody)
		c.logger.Debug("catalog API returned error",
			slog.String("method", method),
			slog.String("url", fullURL),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message))
		return apiErr
	}

	// A markup payload on a successful status means the request never
	// reached the API (misrouted host, proxy error page). Treat it as a
	// failure rather than silently accepting an error page as data.
	if isMarkup(contentType) {
		c.logger.Warn("catalog API returned markup instead of JSON",
			slog.String("method", method),
			slog.String("url", fullURL),
			slog.Int("status", resp.StatusCode))
		return markupError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		c.logger.Warn("catalog API response could not be decoded",
			slog.String("method", method),
			slog.String("url", fullURL),
			slog.String("error", err.Error()))
		return &APIError{
			Status:  resp.StatusCode,
			Message: MsgGenericError,
			Data:    string(respBody),
		}
	}

	return nil
}
