package ident

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Namespace identifies a repository ("book" in the Yuque API).
//
// Two forms are accepted by the API:
//   - Path: "owner-login/repo-slug" (e.g., "hashicorp/rfcs")
//   - ID: the numeric repository ID (e.g., 1001)
type Namespace struct {
	id    int64
	owner string
	slug  string
}

// NamespaceOf creates a path namespace from an owner login and repo slug.
func NamespaceOf(owner, slug string) Namespace {
	return Namespace{owner: owner, slug: slug}
}

// NamespaceByID creates a namespace from a numeric repository ID.
func NamespaceByID(id int64) Namespace {
	return Namespace{id: id}
}

// ParseNamespace parses "owner/slug" or a numeric repository ID.
func ParseNamespace(s string) (Namespace, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	if s == "" {
		return Namespace{}, fmt.Errorf("namespace cannot be empty")
	}
	if id, ok := parseID(s); ok {
		return NamespaceByID(id), nil
	}

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Namespace{}, fmt.Errorf(
			"invalid namespace: %q (expected owner/slug or numeric ID)", s)
	}
	return NamespaceOf(parts[0], parts[1]), nil
}

// MustParseNamespace parses a namespace, panicking on error.
func MustParseNamespace(s string) Namespace {
	ns, err := ParseNamespace(s)
	if err != nil {
		panic(fmt.Sprintf("invalid namespace: %s: %v", s, err))
	}
	return ns
}

// Owner returns the owner login, empty for ID namespaces.
func (n Namespace) Owner() string {
	return n.owner
}

// Slug returns the repository slug, empty for ID namespaces.
func (n Namespace) Slug() string {
	return n.slug
}

// ID returns the numeric repository ID and whether the namespace is numeric.
func (n Namespace) ID() (int64, bool) {
	return n.id, n.owner == "" && n.id != 0
}

// IsZero returns true if this is the zero Namespace.
func (n Namespace) IsZero() bool {
	return n.id == 0 && n.owner == "" && n.slug == ""
}

// Equal returns true if two namespaces are equal.
func (n Namespace) Equal(other Namespace) bool {
	return n == other
}

// String returns the canonical form: "owner/slug" or the decimal ID.
func (n Namespace) String() string {
	if n.owner != "" || n.slug != "" {
		return n.owner + "/" + n.slug
	}
	if n.id != 0 {
		return strconv.FormatInt(n.id, 10)
	}
	return ""
}

// PathSegment returns the namespace for use in a URL path. Owner and slug are
// escaped individually; the separating slash is kept. A zero Namespace
// renders as "".
func (n Namespace) PathSegment() string {
	if n.owner != "" || n.slug != "" {
		return url.PathEscape(n.owner) + "/" + url.PathEscape(n.slug)
	}
	return n.String()
}

// MarshalJSON implements json.Marshaler.
func (n Namespace) MarshalJSON() ([]byte, error) {
	if n.IsZero() {
		return []byte("null"), nil
	}
	if n.owner != "" || n.slug != "" {
		return json.Marshal(n.String())
	}
	return json.Marshal(n.id)
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Namespace) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Namespace{}
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		*n = NamespaceByID(id)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("namespace must be a number or string: %w", err)
	}
	parsed, err := ParseNamespace(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
