package yuque

import (
	"fmt"
	"strings"
)

// UserType distinguishes personal accounts from groups.
type UserType string

const (
	UserTypeUser  UserType = "User"
	UserTypeGroup UserType = "Group"
)

// IsValid returns true if this is a recognized user type.
func (t UserType) IsValid() bool {
	return t == UserTypeUser || t == UserTypeGroup
}

// String returns the string representation of the user type.
func (t UserType) String() string {
	return string(t)
}

// Visibility is the public flag of repos and docs [0 - private, 1 - public].
type Visibility int

const (
	Private Visibility = 0
	Public  Visibility = 1
)

// IsValid returns true if this is a recognized visibility.
func (v Visibility) IsValid() bool {
	return v == Private || v == Public
}

// String returns "private" or "public".
func (v Visibility) String() string {
	switch v {
	case Private:
		return "private"
	case Public:
		return "public"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// ParseVisibility accepts "public", "private", "1" or "0".
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "public", "1":
		return Public, nil
	case "private", "0":
		return Private, nil
	default:
		return 0, fmt.Errorf("invalid visibility: %q (valid: public, private)", s)
	}
}

// Status is the publication state of a doc [0 - draft, 1 - published].
type Status int

const (
	Draft     Status = 0
	Published Status = 1
)

// IsValid returns true if this is a recognized status.
func (s Status) IsValid() bool {
	return s == Draft || s == Published
}

// String returns "draft" or "published".
func (s Status) String() string {
	switch s {
	case Draft:
		return "draft"
	case Published:
		return "published"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Role is a group member's role [0 - Owner, 1 - Member].
type Role int

const (
	RoleOwner  Role = 0
	RoleMember Role = 1
)

// IsValid returns true if this is a recognized role.
func (r Role) IsValid() bool {
	return r == RoleOwner || r == RoleMember
}

// String returns "Owner" or "Member".
func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleMember:
		return "Member"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// ParseRole accepts "owner", "member", "0" or "1" (case-insensitive).
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "owner", "0":
		return RoleOwner, nil
	case "member", "1":
		return RoleMember, nil
	default:
		return 0, fmt.Errorf("invalid role: %q (valid: owner, member)", s)
	}
}

// Format is the source format of a document body.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatLake     Format = "lake"
	FormatHTML     Format = "html"
)

// IsValid returns true if this is a recognized format.
func (f Format) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatLake, FormatHTML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// RepoKind filters repository listings.
type RepoKind string

const (
	RepoKindBook   RepoKind = "Book"
	RepoKindDesign RepoKind = "Design"
	RepoKindAll    RepoKind = "all"
)

// IsValid returns true if this is a recognized repo kind.
func (k RepoKind) IsValid() bool {
	switch k {
	case RepoKindBook, RepoKindDesign, RepoKindAll:
		return true
	default:
		return false
	}
}

// String returns the string representation of the repo kind.
func (k RepoKind) String() string {
	return string(k)
}

// RecentKind selects what the recently-updated listing returns.
type RecentKind string

const (
	RecentDocs  RecentKind = "Doc"
	RecentRepos RecentKind = "Book"
)

// IsValid returns true if this is a recognized recent kind.
func (k RecentKind) IsValid() bool {
	return k == RecentDocs || k == RecentRepos
}

// String returns the string representation of the recent kind.
func (k RecentKind) String() string {
	return string(k)
}
