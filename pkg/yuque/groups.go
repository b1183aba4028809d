package yuque

import (
	"context"
	"fmt"

	"github.com/hashicorp-forge/yuque/pkg/ident"
)

// ===================================================================
// Groups
// ===================================================================
// https://www.yuque.com/yuque/developer/group

// UserGroups lists the groups a user belongs to.
// GET /users/:id/groups
func (c *Client) UserGroups(ctx context.Context, id ident.User) ([]User, error) {
	seg, err := userSegment("user", id)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/users/%s/groups", seg)

	var groups []User
	if err := c.get(ctx, path, nil, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// PublicGroups lists public groups.
// GET /groups
func (c *Client) PublicGroups(ctx context.Context) ([]User, error) {
	var groups []User
	if err := c.get(ctx, "/groups", nil, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// CreateGroup creates a group. The fields travel as query parameters with an
// empty body.
// POST /groups
func (c *Client) CreateGroup(ctx context.Context, params CreateGroupParams) (*UserDetail, error) {
	var group UserDetail
	if err := c.post(ctx, "/groups", params, nil, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// Group returns a group's details.
// GET /groups/:id
func (c *Client) Group(ctx context.Context, id ident.User) (*UserDetail, error) {
	seg, err := userSegment("group", id)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/groups/%s", seg)

	var group UserDetail
	if err := c.get(ctx, path, nil, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// UpdateGroup changes a group's name, login or description.
// PUT /groups/:id
func (c *Client) UpdateGroup(ctx context.Context, id ident.User, params UpdateGroupParams) (*UserDetail, error) {
	seg, err := userSegment("group", id)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/groups/%s", seg)

	var group UserDetail
	if err := c.put(ctx, path, params, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// DeleteGroup deletes a group and returns it as it was.
// DELETE /groups/:id
func (c *Client) DeleteGroup(ctx context.Context, id ident.User) (*UserDetail, error) {
	seg, err := userSegment("group", id)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/groups/%s", seg)

	var group UserDetail
	if err := c.delete(ctx, path, &group); err != nil {
		return nil, err
	}

	return &group, nil
}

// GroupUsers lists a group's members.
// GET /groups/:id/users
func (c *Client) GroupUsers(ctx context.Context, id ident.User) ([]GroupUser, error) {
	seg, err := userSegment("group", id)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/groups/%s/users", seg)

	var members []GroupUser
	if err := c.get(ctx, path, nil, &members); err != nil {
		return nil, err
	}

	return members, nil
}

type groupUserParams struct {
	Role Role `mapstructure:"role"`
}

// UpsertGroupUser adds a member to a group, or changes the role of an
// existing member.
// PUT /groups/:group_id/users/:login
func (c *Client) UpsertGroupUser(ctx context.Context, groupID, member ident.User, role Role) (*GroupUser, error) {
	group, err := userSegment("group", groupID)
	if err != nil {
		return nil, err
	}
	login, err := userSegment("member", member)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/groups/%s/users/%s", group, login)

	var groupUser GroupUser
	if err := c.put(ctx, path, groupUserParams{Role: role}, &groupUser); err != nil {
		return nil, err
	}

	return &groupUser, nil
}

// RemoveGroupUser removes a member from a group.
// DELETE /groups/:group_id/users/:login
func (c *Client) RemoveGroupUser(ctx context.Context, groupID, member ident.User) (*RemovedGroupUser, error) {
	group, err := userSegment("group", groupID)
	if err != nil {
		return nil, err
	}
	login, err := userSegment("member", member)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/groups/%s/users/%s", group, login)

	var removed RemovedGroupUser
	if err := c.delete(ctx, path, &removed); err != nil {
		return nil, err
	}

	return &removed, nil
}
