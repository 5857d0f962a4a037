// Package shell renders the resolved navigation as HTML fragments.
package shell

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/mchmarny/eventnav/pkg/nav"
)

// Renderer renders a resolved navigation view.
type Renderer func(v nav.View) g.Node

// Render writes the node produced by r for v.
func Render(w io.Writer, r Renderer, v nav.View) error {
	if err := r(v).Render(w); err != nil {
		return fmt.Errorf("render navigation: %w", err)
	}
	return nil
}

// PageHeader renders the resolved page title.
func PageHeader(title string) g.Node {
	return html.Header(
		html.Class("page-header"),
		html.H1(html.Class("page-title"), g.Text(title)),
	)
}

// itemClass returns the class list of a navigable entry.
func itemClass(base string, active bool) g.Node {
	if active {
		return html.Class(base + " active")
	}
	return html.Class(base)
}

// link renders an anchor for e, marked as the current page when active.
func link(e nav.Entry, class string) g.Node {
	return html.A(
		html.Href(e.Href),
		itemClass(class, e.Active),
		g.If(e.Active, g.Attr("aria-current", "page")),
		icon(e.Icon),
		html.Span(g.Text(e.Label)),
	)
}

// icon renders an icon placeholder the front end swaps for its icon set.
func icon(name string) g.Node {
	if name == "" {
		return nil
	}
	return html.I(
		html.Class("nav-icon"),
		g.Attr("data-icon", name),
		g.Attr("aria-hidden", "true"),
	)
}

// hasActive reports whether e or any descendant is active.
func hasActive(e nav.Entry) bool {
	if e.Active {
		return true
	}
	for _, c := range e.Children {
		if hasActive(c) {
			return true
		}
	}
	return false
}
