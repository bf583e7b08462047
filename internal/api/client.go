package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	apierrors "github.com/Samit-B/school-management/internal/errors"
	"github.com/Samit-B/school-management/internal/models"
)

// DefaultTimeoutSeconds bounds a single request when no timeout is configured
const DefaultTimeoutSeconds = 300

// HTTPDoer is the part of tls_client.HttpClient the client needs.
// Tests inject fakes through WithHTTPClient.
type HTTPDoer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// Client talks to the school chatbot backend
type Client struct {
	baseURL        string
	httpClient     HTTPDoer
	timeoutSeconds int
	log            zerolog.Logger
	mu             sync.RWMutex
}

// ClientOption is a function that configures the client
type ClientOption func(*Client)

// WithHTTPClient replaces the TLS client with any HTTPDoer
func WithHTTPClient(doer HTTPDoer) ClientOption {
	return func(c *Client) {
		c.httpClient = doer
	}
}

// WithTimeout sets the per-request timeout of the default TLS client, 0 disables it
func WithTimeout(seconds int) ClientOption {
	return func(c *Client) {
		c.timeoutSeconds = seconds
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	client := &Client{
		baseURL:        normalized,
		timeoutSeconds: DefaultTimeoutSeconds,
		log:            zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.httpClient == nil {
		// Chrome profile: the backend sees the same client hello as the browser widget
		options := []tls_client.HttpClientOption{
			tls_client.WithTimeoutSeconds(client.timeoutSeconds),
			tls_client.WithClientProfile(profiles.Chrome_120),
			tls_client.WithNotFollowRedirects(),
		}

		httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(), options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP client: %w", err)
		}
		client.httpClient = httpClient
	}

	return client, nil
}

// NormalizeBaseURL validates an absolute http(s) origin and strips trailing slashes
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return models.DefaultBaseURL, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apierrors.ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https, got %q", apierrors.ErrInvalidBaseURL, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host in %q", apierrors.ErrInvalidBaseURL, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: query and fragment are not allowed in %q", apierrors.ErrInvalidBaseURL, raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL returns the backend origin
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.baseURL
}

// SetBaseURL points the client at another backend
func (c *Client) SetBaseURL(baseURL string) error {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.baseURL = normalized
	return nil
}

// Logger returns the client's logger
func (c *Client) Logger() zerolog.Logger {
	return c.log
}

// rawResponse is a fully read backend answer
type rawResponse struct {
	StatusCode int
	Body       []byte
}

// do executes a request and reads the whole body.
// Only transport failures are errors here; callers decide what a status means.
func (c *Client) do(ctx context.Context, method, path, query string, body []byte, contentType string) (*rawResponse, error) {
	route := models.Route{Method: method, Path: path, Query: query}
	target := route.URL(c.BaseURL())

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := fhttp.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	log := c.log.With().
		Str("request_id", uuid.NewString()).
		Str("method", method).
		Str("url", target).
		Logger()
	log.Debug().Msg("sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("request failed")
		return nil, apierrors.NewNetworkError(path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Int("status", resp.StatusCode).Msg("failed to read response body")
		return nil, apierrors.NewNetworkError(path, err)
	}

	log.Debug().Int("status", resp.StatusCode).Int("bytes", len(data)).Msg("response received")

	return &rawResponse{StatusCode: resp.StatusCode, Body: data}, nil
}
