package yuque

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/yuque/pkg/ident"
)

const repoJSON = `{
	"id": 5,
	"type": "Book",
	"slug": "handbook",
	"name": "Handbook",
	"namespace": "acme/handbook",
	"public": 1,
	"toc_yml": "- type: META\n",
	"items_count": 12,
	"created_at": "2020-01-02 15:04:05"
}`

func TestClient_Repos(t *testing.T) {
	tests := []struct {
		name     string
		call     func(*Client) ([]Repo, error)
		wantPath string
		want     map[string]string
		absent   []string
	}{
		{
			name: "user repos",
			call: func(c *Client) ([]Repo, error) {
				return c.UserRepos(context.Background(), ident.UserByLogin("someuser"), ReposQuery{})
			},
			wantPath: "/users/someuser/repos",
			want:     map[string]string{"include_membered": "false"},
			absent:   []string{"type", "offset"},
		},
		{
			name: "group repos with filters",
			call: func(c *Client) ([]Repo, error) {
				return c.GroupRepos(context.Background(), ident.UserByID(9), ReposQuery{
					Type:            RepoKindBook,
					IncludeMembered: true,
					Offset:          20,
				})
			},
			wantPath: "/groups/9/repos",
			want:     map[string]string{"type": "Book", "include_membered": "true", "offset": "20"},
		},
		{
			name: "owner kind defaults to users",
			call: func(c *Client) ([]Repo, error) {
				return c.Repos(context.Background(), Owner{ID: ident.UserByLogin("someuser")}, ReposQuery{})
			},
			wantPath: "/users/someuser/repos",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockServer(t)
			m.on(http.MethodGet, tt.wantPath, http.StatusOK, envelope(`[`+repoJSON+`]`))
			client := newTestClient(t, m)

			repos, err := tt.call(client)
			require.NoError(t, err)
			require.Len(t, repos, 1)
			assert.Equal(t, "acme/handbook", repos[0].Namespace)
			assert.Equal(t, Public, repos[0].Public)

			req := m.last()
			assert.Equal(t, tt.wantPath, req.Path)
			for k, v := range tt.want {
				assert.Equal(t, v, req.Query.Get(k), k)
			}
			for _, k := range tt.absent {
				assert.False(t, req.Query.Has(k), k)
			}
		})
	}
}

func TestClient_Repo(t *testing.T) {
	m := newMockServer(t)
	m.on(http.MethodGet, "/repos/acme/handbook", http.StatusOK, envelope(repoJSON))
	m.on(http.MethodPut, "/repos/acme/handbook", http.StatusOK, envelope(repoJSON))
	m.on(http.MethodDelete, "/repos/5", http.StatusOK, envelope(repoJSON))
	client := newTestClient(t, m)
	ctx := context.Background()
	ns := ident.NamespaceOf("acme", "handbook")

	t.Run("get", func(t *testing.T) {
		repo, err := client.Repo(ctx, ns)
		require.NoError(t, err)
		assert.Equal(t, "Handbook", repo.Name)
		assert.Equal(t, 12, repo.ItemsCount)
		assert.Equal(t, "- type: META\n", repo.TocYML)
		assert.Equal(t, 2020, repo.CreatedAt.Year())
	})

	t.Run("update", func(t *testing.T) {
		private := Private
		_, err := client.UpdateRepo(ctx, ns, UpdateRepoParams{
			Name:   "Staff Handbook",
			Public: &private,
		})
		require.NoError(t, err)

		req := m.last()
		assert.Equal(t, http.MethodPut, req.Method)
		assert.Equal(t, "Staff Handbook", req.Query.Get("name"))
		assert.Equal(t, "0", req.Query.Get("public"))
		assert.False(t, req.Query.Has("slug"))
		assert.False(t, req.Query.Has("toc"))
		assert.Empty(t, req.Body)
	})

	t.Run("delete by id", func(t *testing.T) {
		repo, err := client.DeleteRepo(ctx, ident.NamespaceByID(5))
		require.NoError(t, err)
		assert.Equal(t, int64(5), repo.ID)
		assert.Equal(t, "/repos/5", m.last().Path)
	})
}
