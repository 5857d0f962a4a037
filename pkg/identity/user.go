// Package identity resolves the current user of a request and carries it
// through the request context.
package identity

import "context"

// User is the signed-in caller. A nil *User is anonymous.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// HasRole reports whether the user holds the role code.
// It is false for a nil user.
func (u *User) HasRole(code string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == code {
			return true
		}
	}
	return false
}

// RoleCodes returns the user's role codes, nil when anonymous.
func (u *User) RoleCodes() []string {
	if u == nil {
		return nil
	}
	return u.Roles
}

type userKey struct{}

// WithUser returns a copy of ctx carrying u.
func WithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// FromContext returns the user carried by ctx, or nil when anonymous.
func FromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userKey{}).(*User)
	return u
}
