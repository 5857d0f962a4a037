package shell

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/mchmarny/eventnav/pkg/nav"
)

// Drawer renders the collapsible navigation for narrow viewports. Groups
// become expandable sections, open when they hold the active entry.
func Drawer(v nav.View) g.Node {
	return html.Aside(
		html.Class("nav-drawer"),
		g.Attr("aria-label", "Navigation"),
		html.Ul(
			html.Class("nav-drawer-items"),
			g.Group(drawerItems(v.Entries)),
		),
	)
}

func drawerItems(entries []nav.Entry) []g.Node {
	out := make([]g.Node, 0, len(entries))
	for _, e := range entries {
		switch e.Kind {
		case nav.KindDivider:
			out = append(out, html.Li(html.Class("nav-drawer-divider"), g.Attr("role", "separator")))
		case nav.KindSection:
			out = append(out, html.Li(html.Class("nav-drawer-title"), g.Text(e.Label)))
		case nav.KindLink:
			out = append(out, html.Li(link(e, "nav-drawer-link")))
		case nav.KindGroup:
			out = append(out, drawerGroup(e))
		}
	}
	return out
}

func drawerGroup(e nav.Entry) g.Node {
	open := hasActive(e)

	var header g.Node
	if e.Href != "" {
		header = link(e, "nav-drawer-link")
	} else {
		header = html.Span(itemClass("nav-drawer-link", e.Active), icon(e.Icon), html.Span(g.Text(e.Label)))
	}

	return html.Li(
		html.Class("nav-drawer-group"),
		html.Details(
			g.If(open, g.Attr("open")),
			html.Summary(header),
			html.Ul(
				html.Class("nav-drawer-children"),
				g.Group(drawerItems(e.Children)),
			),
		),
	)
}
