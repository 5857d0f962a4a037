package nav

import (
	"sort"
	"strconv"
	"strings"
)

// Wildcard marks an item as visible to everyone, authenticated or not.
const Wildcard = "*"

// RoleSet is the set of role codes held by the current user.
// The zero value is the anonymous, empty set.
type RoleSet map[string]struct{}

// NewRoleSet builds a set from role codes. Blank codes are ignored.
func NewRoleSet(codes ...string) RoleSet {
	rs := make(RoleSet, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		rs[c] = struct{}{}
	}
	return rs
}

// Has reports whether the set holds the role code.
func (rs RoleSet) Has(code string) bool {
	_, ok := rs[code]
	return ok
}

// Key returns a stable identifier of the set, used for memoization.
// Distinct sets always produce distinct keys.
func (rs RoleSet) Key() string {
	codes := make([]string, 0, len(rs))
	for c := range rs {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	// Codes are opaque, so each is length-prefixed rather than joined
	// with a separator it might contain.
	var b strings.Builder
	for _, c := range codes {
		b.WriteString(strconv.Itoa(len(c)))
		b.WriteByte(':')
		b.WriteString(c)
	}
	return b.String()
}

// Allows reports whether a holder of this set may see an item restricted
// to allowed. An empty allowed list or one containing Wildcard allows all.
func (rs RoleSet) Allows(allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == Wildcard || rs.Has(a) {
			return true
		}
	}
	return false
}

// Role codes used by the built-in navigation tree.
const (
	RoleAdmin           = "ADMIN"
	RoleSystemAdmin     = "ADMIN_HE_THONG"
	RoleFacilityManager = "QUAN_LY_CSVC"
	RoleDean            = "TRUONG_KHOA"
	RoleLecturer        = "GIANG_VIEN"
	RoleStudent         = "SINH_VIEN"
)
