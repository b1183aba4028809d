package yuque

import "github.com/hashicorp-forge/yuque/pkg/ident"

// DocsQuery filters the authenticated user's documents.
type DocsQuery struct {
	// Q fuzzy-matches document titles.
	Q string `mapstructure:"q,omitempty"`

	// Offset pages through results; the page size is fixed by the API (20).
	Offset int `mapstructure:"offset,omitempty"`
}

// RecentQuery selects recently updated docs or repos.
type RecentQuery struct {
	// Type defaults to RecentRepos when empty.
	Type   RecentKind `mapstructure:"type"`
	Offset int        `mapstructure:"offset,omitempty"`
}

// CreateGroupParams are the fields of a new group.
type CreateGroupParams struct {
	Name  string `mapstructure:"name"`
	Login string `mapstructure:"login"`

	// Description is omitted from the request when nil.
	Description *string `mapstructure:"description"`
}

// UpdateGroupParams are the group fields to change. Empty fields are left
// untouched.
type UpdateGroupParams struct {
	Name        string `mapstructure:"name,omitempty"`
	Login       string `mapstructure:"login,omitempty"`
	Description string `mapstructure:"description,omitempty"`
}

// OwnerKind is the path prefix of a repository owner.
type OwnerKind string

const (
	OwnerUser  OwnerKind = "users"
	OwnerGroup OwnerKind = "groups"
)

// Owner identifies the user or group whose repos are listed.
type Owner struct {
	Kind OwnerKind
	ID   ident.User
}

// ReposQuery filters a repository listing.
type ReposQuery struct {
	// Type defaults to all kinds on the server when empty.
	Type RepoKind `mapstructure:"type,omitempty"`

	// IncludeMembered also lists repos the owner is only a member of.
	IncludeMembered bool `mapstructure:"include_membered"`

	Offset int `mapstructure:"offset,omitempty"`
}

// UpdateRepoParams are the repository fields to change. Empty fields are left
// untouched.
type UpdateRepoParams struct {
	Name        string      `mapstructure:"name,omitempty"`
	Slug        string      `mapstructure:"slug,omitempty"`
	Toc         string      `mapstructure:"toc,omitempty"`
	Description string      `mapstructure:"description,omitempty"`
	Public      *Visibility `mapstructure:"public,omitempty"`
}

// DocQuery modifies a single-document fetch.
type DocQuery struct {
	// Raw requests the unrendered body.
	Raw bool
}

// CreateDocParams describe a new document.
type CreateDocParams struct {
	Title  string     `mapstructure:"title"`
	Slug   string     `mapstructure:"slug,omitempty"`
	Public Visibility `mapstructure:"public"`

	// Format defaults to markdown on the server when empty.
	Format Format `mapstructure:"format,omitempty"`

	// Body in Format, at most 5MB.
	Body string `mapstructure:"body"`
}

// UpdateDocParams are the document fields to change. Empty fields are left
// untouched.
type UpdateDocParams struct {
	Title  string      `mapstructure:"title,omitempty"`
	Slug   string      `mapstructure:"slug,omitempty"`
	Public *Visibility `mapstructure:"public,omitempty"`
	Format Format      `mapstructure:"format,omitempty"`
	Body   string      `mapstructure:"body,omitempty"`
}
