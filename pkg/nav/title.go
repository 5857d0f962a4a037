package nav

// Title returns the label of the item that best describes current.
//
// Items with an href compete on specificity: the longest matched path wins,
// whether it is the href or one of the active paths, and ties go to the first item in depth-first order, which puts children
// ahead of their parent. A group without an href titles the page only when
// no item with an href matches.
func (m Matcher) Title(items []Item, current string) string {
	var best, fallback titleCandidate
	m.walkTitle(items, current, &best, &fallback)

	switch {
	case best.found:
		return best.label
	case fallback.found:
		return fallback.label
	case m.DefaultTitle != "":
		return m.DefaultTitle
	default:
		return DefaultTitle
	}
}

type titleCandidate struct {
	label string
	score int
	found bool
}

func (c *titleCandidate) offer(label string, score int) {
	if !c.found || score > c.score {
		c.label, c.score, c.found = label, score, true
	}
}

func (m Matcher) walkTitle(items []Item, current string, best, fallback *titleCandidate) {
	for _, it := range items {
		switch it.Kind {
		case KindSection, KindDivider:
			continue
		case KindGroup:
			m.walkTitle(it.Children, current, best, fallback)
			if it.Href == "" {
				if score, ok := m.active(it, current); ok {
					fallback.offer(it.Label, score)
				}
				continue
			}
		}

		if score, ok := m.active(it, current); ok {
			best.offer(it.Label, score)
		}
	}
}
