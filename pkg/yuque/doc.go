// Package yuque is a typed client for the Yuque v2 REST API.
//
// # Overview
//
// Client exposes one method per API operation, grouped by area:
//
//   - Accounts: Profile, User, Docs, RecentUpdated
//   - Groups: UserGroups, PublicGroups, CreateGroup, Group, UpdateGroup,
//     DeleteGroup, GroupUsers, UpsertGroupUser, RemoveGroupUser
//   - Repositories: Repos, Repo, UpdateRepo, DeleteRepo
//   - Documents: RepoDocs, Doc, CreateDoc, UpdateDoc, DeleteDoc
//
// Each method is a single HTTP exchange through pkg/transport, which adds the
// X-Auth-Token header and unwraps the {"code": 0, "data": ...} envelope.
//
// # Usage
//
//	client, err := yuque.New(&yuque.Config{
//	    Token: os.Getenv("YUQUE_TOKEN"),
//	})
//	if err != nil {
//	    return err
//	}
//
//	me, err := client.User(ctx)
//	docs, err := client.RepoDocs(ctx, ident.NamespaceOf("hashicorp", "handbook"))
//
// # Errors
//
// Errors from the transport are returned unchanged. A non-2xx response is a
// *transport.ResponseError:
//
//	var respErr *transport.ResponseError
//	if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
//	    ...
//	}
//
// No input is validated beyond its Go type; the server is the authority.
package yuque
