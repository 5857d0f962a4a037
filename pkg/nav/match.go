package nav

import "strings"

const (
	// RootPath is the site root. It never matches by prefix.
	RootPath = "/"

	// DefaultDashboardPath is the home section of signed-in users.
	DefaultDashboardPath = "/dashboard"

	// DefaultTitle is the page title used when no item matches.
	DefaultTitle = "Home"
)

// Matcher decides which items are active for a path and which label
// titles the page.
type Matcher struct {
	// DashboardPath is active for itself and every path beneath it.
	DashboardPath string

	// DefaultTitle is returned by Title when no item matches.
	DefaultTitle string
}

// NewMatcher returns a Matcher with the default dashboard path and title.
func NewMatcher() Matcher {
	return Matcher{
		DashboardPath: DefaultDashboardPath,
		DefaultTitle:  DefaultTitle,
	}
}

// Match reports whether an item with the given href, active paths and
// exact flag is active at current. The first matching rule wins:
//  1. no href: not active
//  2. exact: path equality
//  3. dashboard: the dashboard path and anything beneath it
//  4. href other than the root: the href and anything beneath it
//  5. any active path and anything beneath it
func (m Matcher) Match(href string, activePaths []string, exact bool, current string) bool {
	_, ok := m.match(href, activePaths, exact, current)
	return ok
}

// match is Match that also returns the length of the path that matched,
// which measures how specific the match is.
func (m Matcher) match(href string, activePaths []string, exact bool, current string) (int, bool) {
	if href == "" {
		return 0, false
	}

	current = NormalizePath(current)
	href = NormalizePath(href)

	if exact {
		return len(href), current == href
	}

	if m.DashboardPath != "" && href == NormalizePath(m.DashboardPath) && within(current, href) {
		return len(href), true
	}

	if href != RootPath && within(current, href) {
		return len(href), true
	}

	return longestWithin(activePaths, current)
}

// Active reports whether the item renders as active at current.
// Groups without an href are active when one of their active paths
// matches; their children are not consulted.
func (m Matcher) Active(it Item, current string) bool {
	_, ok := m.active(it, current)
	return ok
}

func (m Matcher) active(it Item, current string) (int, bool) {
	switch it.Kind {
	case KindLink:
		return m.match(it.Href, it.ActivePaths, it.ExactMatch, current)
	case KindGroup:
		if it.Href == "" {
			return longestWithin(it.ActivePaths, NormalizePath(current))
		}
		return m.match(it.Href, it.ActivePaths, it.ExactMatch, current)
	default:
		return 0, false
	}
}

// NormalizePath strips query and fragment and the trailing slash.
// An empty path is the root.
func NormalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimSpace(p)
	if p == "" {
		return RootPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			return RootPath
		}
	}
	return p
}

// within reports whether current is prefix or lies beneath it on a
// segment boundary.
func within(current, prefix string) bool {
	if current == prefix {
		return true
	}
	if prefix == RootPath {
		return false
	}
	return strings.HasPrefix(current, prefix+"/")
}

// longestWithin returns the length of the longest prefix that current lies
// within.
func longestWithin(prefixes []string, current string) (int, bool) {
	longest, found := 0, false
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		p = NormalizePath(p)
		if within(current, p) && (!found || len(p) > longest) {
			longest, found = len(p), true
		}
	}
	return longest, found
}
