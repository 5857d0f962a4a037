package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case KindDivider:
			out = append(out, "--")
		default:
			out = append(out, it.Label)
		}
	}
	return out
}

func TestRoleSetAllows(t *testing.T) {
	tests := []struct {
		name    string
		roles   RoleSet
		allowed []string
		want    bool
	}{
		{name: "wildcard anonymous", roles: NewRoleSet(), allowed: []string{Wildcard}, want: true},
		{name: "wildcard with roles", roles: NewRoleSet(RoleDean), allowed: []string{Wildcard}, want: true},
		{name: "no restriction", roles: nil, allowed: nil, want: true},
		{name: "disjoint", roles: NewRoleSet(RoleDean), allowed: []string{RoleAdmin, RoleFacilityManager}, want: false},
		{name: "overlap", roles: NewRoleSet(RoleDean, RoleAdmin), allowed: []string{RoleAdmin}, want: true},
		{name: "anonymous restricted", roles: NewRoleSet(), allowed: []string{RoleAdmin}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.roles.Allows(tt.allowed))
		})
	}
}

func TestNewRoleSetIgnoresBlank(t *testing.T) {
	rs := NewRoleSet(" ADMIN ", "", "  ")
	assert.Len(t, rs, 1)
	assert.True(t, rs.Has(RoleAdmin))
	assert.Equal(t, "5:ADMIN", rs.Key())
}

func TestRoleSetKeyIsOrderIndependent(t *testing.T) {
	assert.Equal(t, NewRoleSet("B", "A").Key(), NewRoleSet("A", "B").Key())
	assert.Equal(t, "", NewRoleSet().Key())
}

func TestRoleSetKeyDistinguishesSets(t *testing.T) {
	assert.NotEqual(t, NewRoleSet("ADMIN,TRUONG_KHOA").Key(), NewRoleSet(RoleAdmin, RoleDean).Key())
	assert.NotEqual(t, NewRoleSet("A:1").Key(), NewRoleSet("A", "1").Key())
	assert.NotEqual(t, NewRoleSet("A\x00B").Key(), NewRoleSet("A", "B").Key())
}

func TestFilterRoles(t *testing.T) {
	tree := []Item{
		Link("Home", "/", Wildcard),
		Link("Roles", "/users/roles", RoleAdmin),
		Link("Units", "/units", RoleAdmin),
	}

	assert.Equal(t, []string{"Home"}, labels(Filter(tree, NewRoleSet())))
	assert.Equal(t, []string{"Home"}, labels(Filter(tree, NewRoleSet(RoleDean))))
	assert.Equal(t, []string{"Home", "Roles", "Units"}, labels(Filter(tree, NewRoleSet(RoleAdmin))))
}

func TestFilterGroupRoleMismatchDropsChildren(t *testing.T) {
	tree := []Item{
		Group("Facilities", "", []string{RoleAdmin, RoleFacilityManager},
			Link("Rooms", "/rooms", RoleDean),
			Link("Room changes", "/room-changes", Wildcard),
		),
	}

	assert.Empty(t, Filter(tree, NewRoleSet(RoleDean)))
}

func TestFilterGroupWithHrefKeptWithoutChildren(t *testing.T) {
	tree := []Item{
		Group("Users", "/users", []string{RoleSystemAdmin},
			Link("Roles", "/users/roles", RoleAdmin),
		),
	}

	got := Filter(tree, NewRoleSet(RoleSystemAdmin))
	require.Len(t, got, 1)
	assert.Equal(t, "Users", got[0].Label)
	assert.Empty(t, got[0].Children)
}

func TestFilterGroupWithoutHrefDroppedWithoutChildren(t *testing.T) {
	tree := []Item{
		Group("Events", "", []string{Wildcard},
			Link("Approvals", "/events/approvals", RoleAdmin),
			Divider(),
		),
	}

	assert.Empty(t, Filter(tree, NewRoleSet(RoleStudent)))
}

func TestFilterDropsLinkWithoutHref(t *testing.T) {
	tree := []Item{{Kind: KindLink, Label: "Broken"}}
	assert.Empty(t, Filter(tree, NewRoleSet(RoleAdmin)))
}

func TestFilterKeepsMarkers(t *testing.T) {
	tree := []Item{
		Link("Home", "/", Wildcard),
		Divider(),
		Section("Administration"),
		Link("Units", "/units", RoleAdmin),
	}

	assert.Equal(t, []string{"Home", "--", "Administration"}, labels(Filter(tree, NewRoleSet())))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	tree := []Item{
		Group("Users", "/users", []string{RoleAdmin},
			Link("Roles", "/users/roles", RoleAdmin),
			Link("Audit", "/users/audit", RoleSystemAdmin),
		),
	}

	got := Filter(tree, NewRoleSet(RoleAdmin))
	require.Len(t, got[0].Children, 1)
	got[0].Children[0].Label = "changed"
	got[0].AllowedRoles[0] = "changed"

	assert.Len(t, tree[0].Children, 2)
	assert.Equal(t, "Roles", tree[0].Children[0].Label)
	assert.Equal(t, RoleAdmin, tree[0].AllowedRoles[0])
}

func TestFilterIsIdempotent(t *testing.T) {
	tree := DefaultDefinition().Items
	roles := NewRoleSet(RoleAdmin, RoleDean)

	assert.Equal(t, Filter(tree, roles), Filter(tree, roles))
	assert.Equal(t, Filter(tree, roles), Filter(Filter(tree, roles), roles))
}

func TestCollapseSections(t *testing.T) {
	tests := []struct {
		name string
		in   []Item
		want []string
	}{
		{
			name: "orphaned trailing section",
			in:   []Item{Link("Home", "/"), Divider(), Section("Administration")},
			want: []string{"Home"},
		},
		{
			name: "empty section between",
			in:   []Item{Link("Home", "/"), Divider(), Section("Empty"), Divider(), Link("Units", "/units")},
			want: []string{"Home", "--", "Units"},
		},
		{
			name: "leading divider",
			in:   []Item{Divider(), Section("Workspace"), Link("Dashboard", "/dashboard")},
			want: []string{"Workspace", "Dashboard"},
		},
		{
			name: "populated sections kept",
			in:   []Item{Section("A"), Link("One", "/one"), Divider(), Section("B"), Link("Two", "/two")},
			want: []string{"A", "One", "--", "B", "Two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, labels(CollapseSections(tt.in)))
		})
	}
}

func TestCollapseSectionsRecursesIntoGroups(t *testing.T) {
	in := []Item{
		Group("Events", "/events", nil,
			Link("Mine", "/my-events"),
			Divider(),
		),
	}

	got := CollapseSections(in)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Mine"}, labels(got[0].Children))
}
