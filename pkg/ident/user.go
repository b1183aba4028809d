package ident

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// User identifies a Yuque user or group account, either by numeric ID or by
// login. Users are immutable once created.
type User struct {
	id    int64
	login string
}

// UserByID creates a User from a numeric primary key.
func UserByID(id int64) User {
	return User{id: id}
}

// UserByLogin creates a User from a login (personal or group path).
func UserByLogin(login string) User {
	return User{login: login}
}

// ParseUser parses a user identity from string. All-digit strings are
// treated as numeric IDs, anything else as a login.
func ParseUser(s string) (User, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return User{}, fmt.Errorf("user identity cannot be empty")
	}
	if id, ok := parseID(s); ok {
		return UserByID(id), nil
	}
	if strings.Contains(s, "/") {
		return User{}, fmt.Errorf("invalid user login: %q", s)
	}
	return UserByLogin(s), nil
}

// MustParseUser parses a user identity, panicking on error.
// Useful for test fixtures where the value is known valid.
func MustParseUser(s string) User {
	u, err := ParseUser(s)
	if err != nil {
		panic(fmt.Sprintf("invalid user identity: %s: %v", s, err))
	}
	return u
}

// ID returns the numeric ID and whether the identity is numeric.
func (u User) ID() (int64, bool) {
	return u.id, u.login == "" && u.id != 0
}

// Login returns the login and whether the identity is a login.
func (u User) Login() (string, bool) {
	return u.login, u.login != ""
}

// IsZero returns true if this is the zero User.
func (u User) IsZero() bool {
	return u.id == 0 && u.login == ""
}

// Equal returns true if two identities are equal.
func (u User) Equal(other User) bool {
	return u.id == other.id && u.login == other.login
}

// String returns the identity as the API expects it: the login, or the
// decimal ID.
func (u User) String() string {
	if u.login != "" {
		return u.login
	}
	if u.id != 0 {
		return strconv.FormatInt(u.id, 10)
	}
	return ""
}

// PathSegment returns the identity escaped for use as a single URL path
// segment. A zero User renders as "".
func (u User) PathSegment() string {
	return url.PathEscape(u.String())
}

// MarshalJSON encodes numeric identities as JSON numbers and logins as
// strings.
func (u User) MarshalJSON() ([]byte, error) {
	if u.IsZero() {
		return []byte("null"), nil
	}
	if u.login != "" {
		return json.Marshal(u.login)
	}
	return json.Marshal(u.id)
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (u *User) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = User{}
		return nil
	}

	var id int64
	if err := json.Unmarshal(data, &id); err == nil {
		*u = UserByID(id)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("user identity must be a number or string: %w", err)
	}
	parsed, err := ParseUser(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// parseID reports whether s is a positive decimal integer.
func parseID(s string) (int64, bool) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
