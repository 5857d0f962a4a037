package nav

import "sync"

// Entry is a filtered item with its active state resolved for one path.
type Entry struct {
	Kind     Kind    `json:"kind"`
	Label    string  `json:"label,omitempty"`
	Href     string  `json:"href,omitempty"`
	Icon     string  `json:"icon,omitempty"`
	Active   bool    `json:"active"`
	Children []Entry `json:"children,omitempty"`
}

// View is the navigation as seen by one user on one path.
type View struct {
	Path    string  `json:"path"`
	Title   string  `json:"title"`
	Entries []Entry `json:"entries"`
}

// Resolver filters a fixed tree per role set and resolves it per path.
// It is safe for concurrent use.
type Resolver struct {
	tree     []Item
	matcher  Matcher
	collapse bool

	mu    sync.RWMutex
	cache map[string][]Item
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMatcher replaces the default matcher.
func WithMatcher(m Matcher) ResolverOption {
	return func(r *Resolver) { r.matcher = m }
}

// WithCollapsedSections drops section titles and dividers left without
// visible items after filtering.
func WithCollapsedSections(on bool) ResolverOption {
	return func(r *Resolver) { r.collapse = on }
}

// NewResolver returns a Resolver over a private copy of tree.
func NewResolver(tree []Item, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		tree:    cloneTree(tree),
		matcher: NewMatcher(),
		cache:   make(map[string][]Item),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Len returns the number of top-level items in the unfiltered tree.
func (r *Resolver) Len() int {
	return len(r.tree)
}

// Visible returns the tree filtered for roles. Results are memoized per
// distinct role set; callers must not modify the returned items.
func (r *Resolver) Visible(roles RoleSet) []Item {
	key := roles.Key()

	r.mu.RLock()
	items, ok := r.cache[key]
	r.mu.RUnlock()
	if ok {
		return items
	}

	items = Filter(r.tree, roles)
	if r.collapse {
		items = CollapseSections(items)
	}

	r.mu.Lock()
	r.cache[key] = items
	r.mu.Unlock()

	return items
}

// Resolve returns the view of the tree for roles at path.
func (r *Resolver) Resolve(roles RoleSet, path string) View {
	path = NormalizePath(path)
	items := r.Visible(roles)

	return View{
		Path:    path,
		Title:   r.matcher.Title(items, path),
		Entries: r.entries(items, path),
	}
}

// Title returns the page title for roles at path.
func (r *Resolver) Title(roles RoleSet, path string) string {
	return r.matcher.Title(r.Visible(roles), NormalizePath(path))
}

func (r *Resolver) entries(items []Item, path string) []Entry {
	out := make([]Entry, 0, len(items))
	for _, it := range items {
		e := Entry{
			Kind:   it.Kind,
			Label:  it.Label,
			Href:   it.Href,
			Icon:   it.Icon,
			Active: r.matcher.Active(it, path),
		}
		if len(it.Children) > 0 {
			e.Children = r.entries(it.Children, path)
		}
		out = append(out, e)
	}
	return out
}

func cloneTree(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for i, it := range items {
		out[i] = it.clone()
		out[i].Children = cloneTree(it.Children)
	}
	return out
}
