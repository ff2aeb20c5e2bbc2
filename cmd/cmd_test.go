package cmd

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
)

// route is a canned answer of the fake Trello API.
type route struct {
	status int
	body   string
}

// seenRequest captures what the fake API received.
type seenRequest struct {
	Method string
	Path   string
	Query  url.Values
}

// fakeTrello answers "METHOD /path" keys from routes and 404s everything else.
type fakeTrello struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]route
	requests []seenRequest
}

func newFakeTrello(t *testing.T, routes map[string]route) *fakeTrello {
	t.Helper()
	f := &fakeTrello{routes: routes}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, seenRequest{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()})
		rt, ok := f.routes[r.Method+" "+r.URL.Path]
		f.mu.Unlock()

		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if rt.status == 0 {
			rt.status = http.StatusOK
		}
		w.WriteHeader(rt.status)
		_, _ = io.WriteString(w, rt.body)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeTrello) Requests() []seenRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]seenRequest(nil), f.requests...)
}

// find returns the first request matching method and path.
func (f *fakeTrello) find(method, path string) (seenRequest, bool) {
	for _, r := range f.Requests() {
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return seenRequest{}, false
}

// runCLI executes the root command against f with valid credentials and
// returns what was written to stdout.
func runCLI(t *testing.T, f *fakeTrello, args ...string) (string, error) {
	t.Helper()
	t.Setenv("TRELLO_API_KEY", "test-key")
	t.Setenv("TRELLO_TOKEN", "test-token")
	t.Setenv("TRELLO_BASE_URL", f.URL)
	return execute(t, args...)
}

// execute runs the root command with the current environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer

	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	envFile := filepath.Join(t.TempDir(), "none.env")
	root.SetArgs(append([]string{"--env-file", envFile}, args...))

	err := root.Execute()
	return stdout.String(), err
}
