package yuque

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/yuque/pkg/ident"
)

// ===================================================================
// Repositories
// ===================================================================
// https://www.yuque.com/yuque/developer/repo

// Repos lists the repositories of a user or group.
// GET /users/:id/repos
// GET /groups/:id/repos
func (c *Client) Repos(ctx context.Context, owner Owner, q ReposQuery) ([]Repo, error) {
	kind := owner.Kind
	if kind == "" {
		kind = OwnerUser
	}
	seg, err := userSegment("owner", owner.ID)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/%s/%s/repos", kind, seg)

	var repos []Repo
	if err := c.get(ctx, path, q, &repos); err != nil {
		return nil, err
	}

	return repos, nil
}

// UserRepos lists a user's repositories.
func (c *Client) UserRepos(ctx context.Context, id ident.User, q ReposQuery) ([]Repo, error) {
	return c.Repos(ctx, Owner{Kind: OwnerUser, ID: id}, q)
}

// GroupRepos lists a group's repositories.
func (c *Client) GroupRepos(ctx context.Context, id ident.User, q ReposQuery) ([]Repo, error) {
	return c.Repos(ctx, Owner{Kind: OwnerGroup, ID: id}, q)
}

// Repo returns a repository's details.
// GET /repos/:namespace
func (c *Client) Repo(ctx context.Context, ns ident.Namespace) (*RepoDetail, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s", seg)

	var repo RepoDetail
	if err := c.get(ctx, path, nil, &repo); err != nil {
		return nil, err
	}

	return &repo, nil
}

// UpdateRepo changes a repository. The fields travel as query parameters
// with an empty body.
// PUT /repos/:namespace
func (c *Client) UpdateRepo(ctx context.Context, ns ident.Namespace, params UpdateRepoParams) (*RepoDetail, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s", seg)

	var repo RepoDetail
	if err := c.put(ctx, path, params, &repo); err != nil {
		return nil, err
	}

	return &repo, nil
}

// DeleteRepo deletes a repository and returns it as it was.
// DELETE /repos/:namespace
func (c *Client) DeleteRepo(ctx context.Context, ns ident.Namespace) (*RepoDetail, error) {
	seg, err := namespaceSegment(ns)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/repos/%s", seg)

	var repo RepoDetail
	if err := c.delete(ctx, path, &repo); err != nil {
		return nil, err
	}

	return &repo, nil
}
