package shell

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/mchmarny/eventnav/pkg/nav"
)

// TopBar renders the horizontal navigation for wide viewports: links
// inline, groups as dropdowns. Markers are not shown in the bar.
func TopBar(v nav.View) g.Node {
	items := make([]g.Node, 0, len(v.Entries))
	for _, e := range v.Entries {
		if n := topBarItem(e); n != nil {
			items = append(items, n)
		}
	}

	return html.Div(
		html.Class("nav-topbar-shell"),
		html.Nav(
			html.Class("nav-topbar"),
			g.Attr("aria-label", "Main"),
			html.Ul(
				html.Class("nav-topbar-items"),
				g.Group(items),
			),
		),
		PageHeader(v.Title),
	)
}

func topBarItem(e nav.Entry) g.Node {
	switch e.Kind {
	case nav.KindLink:
		return html.Li(link(e, "nav-topbar-link"))
	case nav.KindGroup:
		return html.Li(
			itemClass("nav-topbar-group", e.Active),
			html.Details(
				html.Class("nav-dropdown"),
				html.Summary(
					itemClass("nav-topbar-link", e.Active),
					icon(e.Icon),
					html.Span(g.Text(e.Label)),
				),
				html.Ul(
					html.Class("nav-dropdown-items"),
					g.If(e.Href != "", html.Li(link(nav.Entry{
						Kind:   nav.KindLink,
						Label:  e.Label,
						Href:   e.Href,
						Active: e.Active && !childActive(e),
					}, "nav-dropdown-link"))),
					g.Group(dropdownItems(e.Children)),
				),
			),
		)
	default:
		return nil
	}
}

func dropdownItems(children []nav.Entry) []g.Node {
	out := make([]g.Node, 0, len(children))
	for _, c := range children {
		switch c.Kind {
		case nav.KindDivider:
			out = append(out, html.Li(html.Class("nav-dropdown-divider"), g.Attr("role", "separator")))
		case nav.KindSection:
			out = append(out, html.Li(html.Class("nav-dropdown-title"), g.Text(c.Label)))
		default:
			out = append(out, html.Li(link(c, "nav-dropdown-link")))
		}
	}
	return out
}

func childActive(e nav.Entry) bool {
	for _, c := range e.Children {
		if hasActive(c) {
			return true
		}
	}
	return false
}
