package yuque

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/yuque/pkg/ident"
)

func TestClient_NonZeroCode(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		code    int64
		message string
	}{
		{
			name:    "with data",
			body:    `{"code":1,"message":"denied","data":{"id":9,"login":"leak"}}`,
			code:    1,
			message: "denied",
		},
		{
			name:    "without data",
			body:    `{"code":1,"message":"denied"}`,
			code:    1,
			message: "denied",
		},
		{
			name: "string code",
			body: `{"code":"forbidden","data":{"id":9}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMockServer(t)
			m.on(http.MethodGet, "/users/someuser", http.StatusOK, tc.body)
			client := newTestClient(t, m)

			user, err := client.Profile(context.Background(), ident.UserByLogin("someuser"))
			require.Error(t, err)
			assert.Nil(t, user)

			var envErr *EnvelopeError
			require.True(t, errors.As(err, &envErr))
			assert.Equal(t, tc.code, envErr.Code)
			assert.Equal(t, tc.message, envErr.Message)
			assert.JSONEq(t, tc.body, string(envErr.Body))
			require.NotNil(t, envErr.Response)
			assert.Equal(t, http.StatusOK, envErr.Response.StatusCode)
		})
	}
}

func TestClient_NonZeroCode_Delete(t *testing.T) {
	m := newMockServer(t)
	m.on(http.MethodDelete, "/repos/ns/book/docs/5", http.StatusOK, `{"code":403,"message":"no permission"}`)
	client := newTestClient(t, m)

	doc, err := client.DeleteDoc(context.Background(), ident.NamespaceOf("ns", "book"), 5)
	assert.Nil(t, doc)
	assert.EqualError(t, err, "API error (code 403): no permission")
}

func TestClient_DataWithoutCode(t *testing.T) {
	m := newMockServer(t)
	m.on(http.MethodGet, "/users/someuser", http.StatusOK, `{"data":`+userJSON+`}`)
	client := newTestClient(t, m)

	user, err := client.Profile(context.Background(), ident.UserByLogin("someuser"))
	require.NoError(t, err)
	assert.Equal(t, "someuser", user.Login)
}

func TestEnvelopeError_Error(t *testing.T) {
	err := &EnvelopeError{Code: 2, Body: []byte(`{"code":2}`)}
	assert.Equal(t, `API returned code 2: {"code":2}`, err.Error())
}

func TestClient_ZeroIdentity(t *testing.T) {
	ctx := context.Background()
	user := ident.UserByLogin("someuser")

	cases := []struct {
		name string
		call func(c *Client) error
	}{
		{"Profile", func(c *Client) error { _, err := c.Profile(ctx, ident.User{}); return err }},
		{"UserGroups", func(c *Client) error { _, err := c.UserGroups(ctx, ident.User{}); return err }},
		{"Group", func(c *Client) error { _, err := c.Group(ctx, ident.User{}); return err }},
		{"UpdateGroup", func(c *Client) error { _, err := c.UpdateGroup(ctx, ident.User{}, UpdateGroupParams{}); return err }},
		{"DeleteGroup", func(c *Client) error { _, err := c.DeleteGroup(ctx, ident.User{}); return err }},
		{"GroupUsers", func(c *Client) error { _, err := c.GroupUsers(ctx, ident.User{}); return err }},
		{"UpsertGroupUser group", func(c *Client) error { _, err := c.UpsertGroupUser(ctx, ident.User{}, user, RoleMember); return err }},
		{"UpsertGroupUser member", func(c *Client) error { _, err := c.UpsertGroupUser(ctx, user, ident.User{}, RoleMember); return err }},
		{"RemoveGroupUser", func(c *Client) error { _, err := c.RemoveGroupUser(ctx, user, ident.User{}); return err }},
		{"UserRepos", func(c *Client) error { _, err := c.UserRepos(ctx, ident.User{}, ReposQuery{}); return err }},
		{"GroupRepos", func(c *Client) error { _, err := c.GroupRepos(ctx, ident.User{}, ReposQuery{}); return err }},
		{"Repo", func(c *Client) error { _, err := c.Repo(ctx, ident.Namespace{}); return err }},
		{"UpdateRepo", func(c *Client) error { _, err := c.UpdateRepo(ctx, ident.Namespace{}, UpdateRepoParams{}); return err }},
		{"DeleteRepo", func(c *Client) error { _, err := c.DeleteRepo(ctx, ident.Namespace{}); return err }},
		{"RepoDocs", func(c *Client) error { _, err := c.RepoDocs(ctx, ident.Namespace{}); return err }},
		{"Doc", func(c *Client) error { _, err := c.Doc(ctx, ident.Namespace{}, "intro", DocQuery{}); return err }},
		{"CreateDoc", func(c *Client) error { _, err := c.CreateDoc(ctx, ident.Namespace{}, CreateDocParams{}); return err }},
		{"UpdateDoc", func(c *Client) error { _, err := c.UpdateDoc(ctx, ident.Namespace{}, 1, UpdateDocParams{}); return err }},
		{"DeleteDoc", func(c *Client) error { _, err := c.DeleteDoc(ctx, ident.Namespace{}, 1); return err }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newMockServer(t)
			client := newTestClient(t, m)

			err := tc.call(client)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMissingIdentity)
			assert.Zero(t, m.count(), "no request should be sent")
		})
	}
}
