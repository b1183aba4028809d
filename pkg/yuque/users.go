package yuque

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/yuque/pkg/ident"
)

// ===================================================================
// Accounts
// ===================================================================
// https://www.yuque.com/yuque/developer/user

// Profile returns a user or group by login or id.
// GET /users/:id
func (c *Client) Profile(ctx context.Context, id ident.User) (*UserDetail, error) {
	seg, err := userSegment("user", id)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/users/%s", seg)

	var user UserDetail
	if err := c.get(ctx, path, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// User returns the authenticated user.
// GET /user
func (c *Client) User(ctx context.Context) (*UserDetail, error) {
	var user UserDetail
	if err := c.get(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Docs lists documents created by the authenticated user, one page of 20 at
// a time.
// GET /user/docs
func (c *Client) Docs(ctx context.Context, q DocsQuery) ([]Doc, error) {
	var docs []Doc
	if err := c.get(ctx, "/user/docs", q, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// RecentUpdated lists docs or repos the authenticated user recently took part
// in.
// GET /user/recent-updated
func (c *Client) RecentUpdated(ctx context.Context, q RecentQuery) (*Recent, error) {
	if q.Type == "" {
		q.Type = RecentRepos
	}

	recent := &Recent{Kind: q.Type}
	var out any = &recent.Repos
	if q.Type == RecentDocs {
		out = &recent.Docs
	}

	if err := c.get(ctx, "/user/recent-updated", q, out); err != nil {
		return nil, err
	}

	return recent, nil
}

// RecentUpdatedDocs is RecentUpdated for documents.
func (c *Client) RecentUpdatedDocs(ctx context.Context, offset int) ([]Doc, error) {
	recent, err := c.RecentUpdated(ctx, RecentQuery{Type: RecentDocs, Offset: offset})
	if err != nil {
		return nil, err
	}
	return recent.Docs, nil
}

// RecentUpdatedRepos is RecentUpdated for repositories.
func (c *Client) RecentUpdatedRepos(ctx context.Context, offset int) ([]Repo, error) {
	recent, err := c.RecentUpdated(ctx, RecentQuery{Type: RecentRepos, Offset: offset})
	if err != nil {
		return nil, err
	}
	return recent.Repos, nil
}
