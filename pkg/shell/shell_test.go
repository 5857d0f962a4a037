package shell

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/mchmarny/eventnav/pkg/nav"
)

func resolve(t *testing.T, path string, roles ...string) nav.View {
	t.Helper()
	r := nav.NewResolver(nav.DefaultDefinition().Items)
	return r.Resolve(nav.NewRoleSet(roles...), path)
}

func render(t *testing.T, r Renderer, v nav.View) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, v))
	return buf.String()
}

func TestDrawer(t *testing.T) {
	out := render(t, Drawer, resolve(t, "/rooms/3", nav.RoleAdmin))

	assert.True(t, strings.HasPrefix(out, `<aside class="nav-drawer"`))
	assert.Contains(t, out, `<li class="nav-drawer-title">Administration</li>`)
	assert.Contains(t, out, `<span class="nav-drawer-link active">`)
	assert.Contains(t, out, `<a href="/rooms" class="nav-drawer-link active" aria-current="page">`)
	assert.Contains(t, out, `<a href="/room-changes" class="nav-drawer-link">`)
	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
	assert.Equal(t, 1, strings.Count(out, `<details open>`))
	assert.Contains(t, out, `data-icon="building"`)
}

func TestDrawerAnonymous(t *testing.T) {
	out := render(t, Drawer, resolve(t, "/"))

	assert.Contains(t, out, `<a href="/" class="nav-drawer-link active" aria-current="page">`)
	assert.NotContains(t, out, "/dashboard")
	assert.NotContains(t, out, "<details")
}

func TestTopBar(t *testing.T) {
	out := render(t, TopBar, resolve(t, "/users/roles", nav.RoleAdmin))

	assert.Contains(t, out, `<nav class="nav-topbar" aria-label="Main">`)
	assert.Contains(t, out, `<li class="nav-topbar-group active">`)
	assert.Contains(t, out, `<a href="/users/roles" class="nav-dropdown-link active" aria-current="page">`)
	assert.Contains(t, out, `<a href="/users" class="nav-dropdown-link">`)
	assert.Contains(t, out, `<h1 class="page-title">Roles</h1>`)
	assert.Equal(t, 1, strings.Count(out, `aria-current="page"`))
	assert.NotContains(t, out, "Administration")
	assert.NotContains(t, out, "nav-dropdown-divider")
}

func TestTopBarGroupWithoutHref(t *testing.T) {
	out := render(t, TopBar, resolve(t, "/room-changes", nav.RoleFacilityManager))

	assert.Contains(t, out, `<summary class="nav-topbar-link active">`)
	assert.Contains(t, out, `<a href="/room-changes" class="nav-dropdown-link active" aria-current="page">`)
	assert.Contains(t, out, `<h1 class="page-title">Room change requests</h1>`)
}

func TestDropdownMarkers(t *testing.T) {
	v := nav.View{
		Title: "Events",
		Entries: []nav.Entry{{
			Kind:  nav.KindGroup,
			Label: "Events",
			Children: []nav.Entry{
				{Kind: nav.KindSection, Label: "Mine"},
				{Kind: nav.KindLink, Label: "Drafts", Href: "/my-events/drafts"},
				{Kind: nav.KindDivider},
			},
		}},
	}

	out := render(t, TopBar, v)
	assert.Contains(t, out, `<li class="nav-dropdown-title">Mine</li>`)
	assert.Contains(t, out, `<li class="nav-dropdown-divider" role="separator"></li>`)
}

func TestPageHeaderEscapes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PageHeader("<Rooms & halls>").Render(&buf))
	assert.Equal(t, `<header class="page-header"><h1 class="page-title">&lt;Rooms &amp; halls&gt;</h1></header>`, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderError(t *testing.T) {
	err := Render(failingWriter{}, func(nav.View) g.Node { return g.Text("x") }, nav.View{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render navigation")
}
