// Package ident provides typed identifiers for Yuque resources.
//
// Yuque addresses most resources in two interchangeable ways: by numeric
// primary key or by a human-readable path. This package models both so that
// callers cannot accidentally pass an unrendered template or an empty value
// into a request path.
//
// # Core Concepts
//
//  1. User: a user or group, identified by numeric ID (e.g. 42) or by login
//     (e.g. "hashicorp"). Both forms are accepted wherever the API documents
//     ":login" or ":id".
//
//  2. Namespace: a repository, identified by "owner-login/repo-slug" or by
//     numeric repository ID.
//
// # Usage Examples
//
//	u, err := ident.ParseUser("hashicorp")   // login
//	u = ident.UserByID(42)                   // numeric id
//
//	ns, err := ident.ParseNamespace("hashicorp/rfcs")
//	ns = ident.NamespaceOf("hashicorp", "rfcs")
//	ns = ident.NamespaceByID(1001)
//
//	path := "/repos/" + ns.PathSegment() + "/docs"
package ident
