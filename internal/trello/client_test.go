package trello

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordedRequest captures what the fake API received.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
}

// fakeAPI is an httptest server that records requests and answers with a
// canned status and body.
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()})
		f.mu.Unlock()

		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) Requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeAPI) last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := f.Requests()
	require.NotEmpty(t, reqs, "expected at least one request")
	return reqs[len(reqs)-1]
}

func newTestClient(t *testing.T, f *fakeAPI) *Client {
	t.Helper()
	c, err := NewClient(Credentials{APIKey: "test-key", Token: "test-token"}, WithBaseURL(f.URL))
	require.NoError(t, err)
	return c
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestNewClientCredentialValidation(t *testing.T) {
	testCases := []struct {
		name  string
		creds Credentials
	}{
		{name: "Missing API key", creds: Credentials{Token: "test-token"}},
		{name: "Missing token", creds: Credentials{APIKey: "test-key"}},
		{name: "Missing both", creds: Credentials{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeAPI(t, http.StatusOK, "[]")

			client, err := NewClient(tc.creds, WithBaseURL(f.URL))
			require.Error(t, err)
			assert.Nil(t, client)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Contains(t, err.Error(), EnvAPIKey)
			assert.Contains(t, err.Error(), EnvToken)
			assert.Empty(t, f.Requests(), "no request may be issued without credentials")
		})
	}
}

func TestCredentialsMergedIntoQuery(t *testing.T) {
	f := newFakeAPI(t, http.StatusOK, `{}`)
	c := newTestClient(t, f)

	// An endpoint parameter can not replace the credentials
	params := url.Values{"fields": {"id"}, "key": {"other"}}
	require.NoError(t, c.Get(context.Background(), "boards/abc", params, nil))

	req := f.last(t)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "/boards/abc", req.Path)
	assert.Equal(t, "test-key", req.Query.Get("key"))
	assert.Equal(t, "test-token", req.Query.Get("token"))
	assert.Equal(t, "id", req.Query.Get("fields"))
	assert.Equal(t, []string{"other"}, params["key"], "caller params must not be mutated")
}

func TestVerbs(t *testing.T) {
	f := newFakeAPI(t, http.StatusOK, `{"id":"1"}`)
	c := newTestClient(t, f)
	ctx := context.Background()

	var out json.RawMessage
	require.NoError(t, c.Get(ctx, "/a", nil, &out))
	require.NoError(t, c.Put(ctx, "/b", nil, &out))
	require.NoError(t, c.Post(ctx, "/c", nil, &out))
	assert.JSONEq(t, `{"id":"1"}`, string(out))

	reqs := f.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, http.MethodGet, reqs[0].Method)
	assert.Equal(t, http.MethodPut, reqs[1].Method)
	assert.Equal(t, http.MethodPost, reqs[2].Method)
}

func TestRemoteAPIError(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "JSON message",
			status:      http.StatusUnauthorized,
			body:        `{"message":"invalid token","error":"ERROR"}`,
			wantMessage: "invalid token",
		},
		{
			name:        "Plain text body",
			status:      http.StatusBadRequest,
			body:        "invalid id\n",
			wantMessage: "invalid id",
		},
		{
			name:        "Empty body falls back to status",
			status:      http.StatusInternalServerError,
			body:        "",
			wantMessage: "request failed with status code 500",
		},
		{
			name:        "JSON without message falls back to status",
			status:      http.StatusNotFound,
			body:        `{"error":"NOT_FOUND"}`,
			wantMessage: "request failed with status code 404",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeAPI(t, tc.status, tc.body)
			c := newTestClient(t, f)

			_, err := c.GetBoards(context.Background())
			require.Error(t, err)

			var apiErr *RemoteAPIError
			require.True(t, errors.As(err, &apiErr), "expected RemoteAPIError, got %T", err)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.wantMessage, apiErr.Message)
			assert.Contains(t, err.Error(), strconv.Itoa(tc.status))
		})
	}
}

func TestNetworkError(t *testing.T) {
	f := newFakeAPI(t, http.StatusOK, "[]")
	c := newTestClient(t, f)
	f.Close()

	_, err := c.GetBoards(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "expected NetworkError, got %T", err)
	var apiErr *RemoteAPIError
	assert.False(t, errors.As(err, &apiErr))
	assert.NotContains(t, err.Error(), "test-token", "credentials must not leak into errors")
}

func TestDecodeError(t *testing.T) {
	f := newFakeAPI(t, http.StatusOK, "not json")
	c := newTestClient(t, f)

	_, err := c.GetBoards(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

// roundTripFunc adapts a function to http.RoundTripper.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestWithHTTPClient(t *testing.T) {
	calls := 0
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		assert.Equal(t, "api.trello.com", r.URL.Host)
		assert.Equal(t, "/1/members/me/boards", r.URL.Path)
		return nil, errors.New("connection refused")
	})}

	c, err := NewClient(Credentials{APIKey: "test-key", Token: "test-token"}, WithHTTPClient(hc))
	require.NoError(t, err)

	_, err = c.GetBoards(context.Background())
	require.Error(t, err)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, calls, "requests are attempted exactly once")
}
