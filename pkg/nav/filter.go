package nav

// Filter returns the part of items visible to the holder of roles.
// The input is never modified.
//
// Section titles and dividers are always kept; use CollapseSections to drop
// the ones left without visible items. A group that fails its own role check
// is removed with all its children. A group without an href survives only
// if at least one child does.
func Filter(items []Item, roles RoleSet) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if kept, ok := filterItem(it, roles); ok {
			out = append(out, kept)
		}
	}
	return out
}

func filterItem(it Item, roles RoleSet) (Item, bool) {
	switch it.Kind {
	case KindSection, KindDivider:
		return it.clone(), true
	case KindLink:
		if it.Href == "" || !roles.Allows(it.AllowedRoles) {
			return Item{}, false
		}
		return it.clone(), true
	case KindGroup:
		if !roles.Allows(it.AllowedRoles) {
			return Item{}, false
		}
		out := it.clone()
		if kids := Filter(it.Children, roles); len(kids) > 0 {
			out.Children = kids
		}
		if it.Href == "" && countNavigable(out.Children) == 0 {
			return Item{}, false
		}
		return out, true
	default:
		return Item{}, false
	}
}

// countNavigable counts children that are not markers.
func countNavigable(items []Item) int {
	n := 0
	for _, it := range items {
		if !it.Kind.IsMarker() {
			n++
		}
	}
	return n
}

// CollapseSections removes markers that no longer introduce anything:
// section titles and dividers followed by no navigable item before the next
// marker, dividers at the edges and repeated dividers. It recurses into
// groups and returns a new slice.
func CollapseSections(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for i, it := range items {
		switch it.Kind {
		case KindSection:
			if !navigableUntilMarker(items[i+1:]) {
				continue
			}
		case KindDivider:
			if len(out) == 0 || out[len(out)-1].Kind == KindDivider {
				continue
			}
			if !navigableAhead(items[i+1:]) {
				continue
			}
		case KindGroup:
			g := it.clone()
			if kids := CollapseSections(it.Children); len(kids) > 0 {
				g.Children = kids
			}
			out = append(out, g)
			continue
		}
		out = append(out, it.clone())
	}
	return out
}

// navigableUntilMarker reports whether a navigable item appears before the
// next section title or divider.
func navigableUntilMarker(rest []Item) bool {
	return len(rest) > 0 && !rest[0].Kind.IsMarker()
}

// navigableAhead reports whether any navigable item follows.
func navigableAhead(rest []Item) bool {
	return countNavigable(rest) > 0
}
