package repo

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/yuque/internal/cmd/base"
)

type request struct {
	Method string
	Path   string
	Query  url.Values
}

func newFakeAPI(t *testing.T, body string) (*httptest.Server, func() []request) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []request
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, request{Method: r.Method, Path: r.URL.Path, Query: r.URL.Query()})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server, func() []request {
		mu.Lock()
		defer mu.Unlock()
		return append([]request(nil), requests...)
	}
}

func newTestBase(t *testing.T) (*base.Command, *cli.MockUi) {
	t.Helper()

	ui := cli.NewMockUi()
	return &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		FS:  afero.NewMemMapFs(),
		Env: map[string]string{"YUQUE_TOKEN": "tok"},
	}, ui
}

const repoJSON = `{"code":0,"data":{"id":5,"slug":"handbook","namespace":"acme/handbook","type":"Book"}}`

func TestListCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantPath  string
		wantQuery map[string]string
	}{
		{
			name:      "user",
			args:      []string{"someuser"},
			wantPath:  "/users/someuser/repos",
			wantQuery: map[string]string{"include_membered": "false"},
		},
		{
			name:     "group with filters",
			args:     []string{"-group", "-type=Book", "-include-membered", "-offset=20", "acme"},
			wantPath: "/groups/acme/repos",
			wantQuery: map[string]string{
				"type":             "Book",
				"include_membered": "true",
				"offset":           "20",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, requests := newFakeAPI(t, `{"code":0,"data":[]}`)
			b, ui := newTestBase(t)

			code := (&ListCommand{Command: b}).Run(append([]string{"-base-url=" + server.URL}, tt.args...))
			require.Equal(t, 0, code, ui.ErrorWriter.String())

			req := requests()[0]
			assert.Equal(t, tt.wantPath, req.Path)
			for k, v := range tt.wantQuery {
				assert.Equal(t, v, req.Query.Get(k), k)
			}
		})
	}
}

func TestListCommand_InvalidType(t *testing.T) {
	b, ui := newTestBase(t)

	code := (&ListCommand{Command: b}).Run([]string{"-type=Sheet", "someuser"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "invalid type")
}

func TestGetCommand(t *testing.T) {
	server, requests := newFakeAPI(t, repoJSON)
	b, ui := newTestBase(t)

	code := (&GetCommand{Command: b}).Run([]string{"-base-url=" + server.URL, "acme/handbook"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	assert.Equal(t, "/repos/acme/handbook", requests()[0].Path)
	assert.Contains(t, ui.OutputWriter.String(), `"namespace": "acme/handbook"`)
}

func TestUpdateCommand(t *testing.T) {
	server, requests := newFakeAPI(t, repoJSON)
	b, ui := newTestBase(t)

	code := (&UpdateCommand{Command: b}).Run([]string{
		"-base-url=" + server.URL, "-description=Staff handbook", "-public=public", "acme/handbook",
	})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	req := requests()[0]
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "Staff handbook", req.Query.Get("description"))
	assert.Equal(t, "1", req.Query.Get("public"))
	assert.False(t, req.Query.Has("name"))
}

func TestDeleteCommand(t *testing.T) {
	server, requests := newFakeAPI(t, repoJSON)
	b, ui := newTestBase(t)

	code := (&DeleteCommand{Command: b}).Run([]string{"-base-url=" + server.URL, "5"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	assert.Equal(t, http.MethodDelete, requests()[0].Method)
	assert.Equal(t, "/repos/5", requests()[0].Path)
	assert.Contains(t, ui.OutputWriter.String(), "Deleted repository 5")
}

func TestGetCommand_BadNamespace(t *testing.T) {
	b, ui := newTestBase(t)

	code := (&GetCommand{Command: b}).Run([]string{"a/b/c"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "error parsing namespace")
}
