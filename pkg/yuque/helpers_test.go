package yuque

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

// recordedRequest is one request seen by mockServer.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   string
}

// mockServer replies to "METHOD /path" routes with canned bodies and records
// every request it receives.
type mockServer struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	routes   map[string]mockResponse
	requests []recordedRequest
}

type mockResponse struct {
	status int
	body   string
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()

	m := &mockServer{t: t, routes: map[string]mockResponse{}}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

// on registers a canned response for method and path.
func (m *mockServer) on(method, path string, status int, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[method+" "+path] = mockResponse{status: status, body: body}
}

func (m *mockServer) handle(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	require.NoError(m.t, err)

	m.mu.Lock()
	m.requests = append(m.requests, recordedRequest{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   string(data),
	})
	resp, ok := m.routes[r.Method+" "+r.URL.EscapedPath()]
	m.mu.Unlock()

	if !ok {
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = io.WriteString(w, resp.body)
}

// last returns the most recent request.
func (m *mockServer) last() recordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(m.t, m.requests, "no request recorded")
	return m.requests[len(m.requests)-1]
}

// count returns how many requests were recorded.
func (m *mockServer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// newTestClient returns a client pointed at the mock server.
func newTestClient(t *testing.T, m *mockServer) *Client {
	t.Helper()

	client, err := New(&Config{
		Token:   "tok",
		BaseURL: m.server.URL,
		Logger:  hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	return client
}

// envelope wraps data the way the transport's success envelope expects.
func envelope(data string) string {
	return `{"code":0,"data":` + data + `}`
}
