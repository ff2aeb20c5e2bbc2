// Package trello provides an authenticated client for the Trello REST API.
package trello

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielolaszy/trello-cli/internal/logging"
)

// DefaultBaseURL is the root of the Trello REST API.
const DefaultBaseURL = "https://api.trello.com/1"

const (
	// EnvAPIKey names the environment variable holding the API key.
	EnvAPIKey = "TRELLO_API_KEY"
	// EnvToken names the environment variable holding the API token.
	EnvToken = "TRELLO_TOKEN"
)

// Credentials holds the two secrets appended to every request.
type Credentials struct {
	APIKey string
	Token  string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API root, e.g. to point at a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// Client handles interactions with the Trello API.
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Trello client.
// It fails with a *ConfigError, before any request is made, when either
// credential is empty.
func NewClient(creds Credentials, opts ...ClientOption) (*Client, error) {
	if creds.APIKey == "" || creds.Token == "" {
		return nil, &ConfigError{Missing: []string{EnvAPIKey, EnvToken}}
	}

	c := &Client{
		creds:   creds,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}

	logging.Debug("trello client configured",
		"base_url", c.baseURL,
		"api_key", logging.MaskSensitive(creds.APIKey),
		"token", logging.MaskSensitive(creds.Token))

	return c, nil
}

// Get issues a GET request against path and decodes the JSON body into out.
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, out)
}

// Put issues a PUT request against path and decodes the JSON body into out.
func (c *Client) Put(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodPut, path, params, out)
}

// Post issues a POST request against path and decodes the JSON body into out.
func (c *Client) Post(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodPost, path, params, out)
}

// buildURL merges the credentials into params and appends them as the query string.
func (c *Client) buildURL(path string, params url.Values) string {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("key", c.creds.APIKey)
	query.Set("token", c.creds.Token)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path + "?" + query.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, params), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logging.Debug("trello request", "method", method, "path", path, "params", len(params))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &RemoteAPIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, body),
		}
		logging.Debug("trello request failed", "method", method, "path", path, "status_code", resp.StatusCode)
		return apiErr
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage extracts a human-readable message from an error response body.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}

	// Trello answers many errors with a plain-text body such as "invalid id"
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "[") {
		return text
	}

	return fmt.Sprintf("request failed with status code %d", status)
}

// unwrapURLError strips the *url.Error wrapper, whose message repeats the
// request URL and with it the credentials.
func unwrapURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
