package nav

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findEntry(entries []Entry, label string) (Entry, bool) {
	for _, e := range entries {
		if e.Label == label {
			return e, true
		}
		if c, ok := findEntry(e.Children, label); ok {
			return c, true
		}
	}
	return Entry{}, false
}

func TestResolveAnonymous(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items)

	v := r.Resolve(NewRoleSet(), "/events-public/12")
	assert.Equal(t, "/events-public/12", v.Path)
	assert.Equal(t, "Public events", v.Title)

	var navigable []string
	for _, e := range v.Entries {
		if !e.Kind.IsMarker() {
			navigable = append(navigable, e.Label)
		}
	}
	assert.Equal(t, []string{"Home", "Public events"}, navigable)

	pub, ok := findEntry(v.Entries, "Public events")
	require.True(t, ok)
	assert.True(t, pub.Active)

	home, ok := findEntry(v.Entries, "Home")
	require.True(t, ok)
	assert.False(t, home.Active)
}

func TestResolveFacilityManager(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items)

	v := r.Resolve(NewRoleSet(RoleFacilityManager), "/rooms/3/")
	assert.Equal(t, "/rooms/3", v.Path)
	assert.Equal(t, "Rooms", v.Title)

	facilities, ok := findEntry(v.Entries, "Facilities")
	require.True(t, ok)
	assert.True(t, facilities.Active)
	require.Len(t, facilities.Children, 2)
	assert.True(t, facilities.Children[0].Active)
	assert.False(t, facilities.Children[1].Active)

	dash, ok := findEntry(v.Entries, "Dashboard")
	require.True(t, ok)
	require.Len(t, dash.Children, 1)
	assert.Equal(t, "Facility statistics", dash.Children[0].Label)

	_, ok = findEntry(v.Entries, "Users")
	assert.False(t, ok)
}

func TestResolveKeepsOrphanedMarkersByDefault(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items)

	v := r.Resolve(NewRoleSet(), "/")
	_, ok := findEntry(v.Entries, "Administration")
	assert.True(t, ok)
}

func TestResolveCollapsedSections(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items, WithCollapsedSections(true))

	v := r.Resolve(NewRoleSet(), "/")
	for _, e := range v.Entries {
		assert.False(t, e.Kind.IsMarker(), "unexpected marker %q", e.Label)
	}
}

func TestResolverMemoizesPerRoleSet(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items)

	a := r.Visible(NewRoleSet(RoleAdmin, RoleDean))
	b := r.Visible(NewRoleSet(RoleDean, RoleAdmin))
	require.NotEmpty(t, a)
	assert.Same(t, &a[0], &b[0])
	assert.Len(t, r.cache, 1)
}

func TestResolverMemoDoesNotConflateRoleCodes(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items)
	require.NotEmpty(t, r.Visible(NewRoleSet(RoleAdmin, RoleDean)))

	joined := NewRoleSet(RoleAdmin + "," + RoleDean)
	assert.Equal(t, Filter(DefaultDefinition().Items, joined), r.Visible(joined))
	assert.Len(t, r.cache, 2)

	_, ok := findEntry(r.Resolve(joined, "/units").Entries, "Units")
	assert.False(t, ok)
}

func TestResolverCopiesTree(t *testing.T) {
	tree := []Item{Link("Units", "/units", RoleAdmin)}
	r := NewResolver(tree)
	tree[0].Label = "changed"

	assert.Equal(t, "Units", r.Title(NewRoleSet(RoleAdmin), "/units"))
	assert.Equal(t, 1, r.Len())
}

func TestResolverConcurrentUse(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items)
	roles := [][]string{{RoleAdmin}, {RoleDean}, {}, {RoleStudent, RoleLecturer}}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := r.Resolve(NewRoleSet(roles[i%len(roles)]...), "/dashboard/events")
			assert.NotEmpty(t, v.Entries)
		}(i)
	}
	wg.Wait()

	assert.Len(t, r.cache, len(roles))
}

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items)
	roles := NewRoleSet(RoleAdmin)

	assert.Equal(t, r.Resolve(roles, "/users/roles"), r.Resolve(roles, "/users/roles"))
}

func TestResolveWithMatcher(t *testing.T) {
	r := NewResolver(DefaultDefinition().Items, WithMatcher(Matcher{DefaultTitle: "Start"}))
	assert.Equal(t, "Start", r.Title(NewRoleSet(), "/missing"))
}
