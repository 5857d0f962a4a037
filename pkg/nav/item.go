package nav

import "fmt"

// Kind tags the variant of a navigation item.
type Kind int

const (
	// KindLink is a navigable leaf.
	KindLink Kind = iota

	// KindGroup holds children and may carry its own href.
	KindGroup

	// KindSection is a non-navigable section title.
	KindSection

	// KindDivider is a non-navigable separator.
	KindDivider
)

var kindNames = map[Kind]string{
	KindLink:    "link",
	KindGroup:   "group",
	KindSection: "section",
	KindDivider: "divider",
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler for JSON and YAML.
func (k Kind) MarshalText() ([]byte, error) {
	n, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown navigation item kind: %d", int(k))
	}
	return []byte(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for JSON and YAML.
func (k *Kind) UnmarshalText(b []byte) error {
	for kind, n := range kindNames {
		if n == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown navigation item kind: %q", string(b))
}

// IsMarker reports whether the kind is presentational only.
func (k Kind) IsMarker() bool {
	return k == KindSection || k == KindDivider
}

// Item represents a node in the navigation tree.
type Item struct {
	// Kind is the item variant.
	Kind Kind `json:"kind" yaml:"kind"`

	// Label is the display text. Empty for dividers.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Href is the target path. Optional on groups.
	Href string `json:"href,omitempty" yaml:"href,omitempty"`

	// Icon is an opaque icon name passed through to the shells.
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`

	// ActivePaths are extra path prefixes that mark the item active.
	ActivePaths []string `json:"activePaths,omitempty" yaml:"activePaths,omitempty"`

	// ExactMatch requires path equality for the item to be active.
	ExactMatch bool `json:"exactMatch,omitempty" yaml:"exactMatch,omitempty"`

	// AllowedRoles lists the role codes that may see the item.
	// Empty, or containing Wildcard, means everyone.
	AllowedRoles []string `json:"allowedRoles,omitempty" yaml:"allowedRoles,omitempty"`

	// Children are the sub-items of a group.
	Children []Item `json:"children,omitempty" yaml:"children,omitempty"`
}

// Link returns a link item.
func Link(label, href string, roles ...string) Item {
	return Item{Kind: KindLink, Label: label, Href: href, AllowedRoles: roles}
}

// Group returns a group item. href may be empty.
func Group(label, href string, roles []string, children ...Item) Item {
	return Item{Kind: KindGroup, Label: label, Href: href, AllowedRoles: roles, Children: children}
}

// Section returns a section title marker.
func Section(label string) Item {
	return Item{Kind: KindSection, Label: label}
}

// Divider returns a divider marker.
func Divider() Item {
	return Item{Kind: KindDivider}
}

// clone returns a deep copy of the item.
func (it Item) clone() Item {
	out := it
	if it.ActivePaths != nil {
		out.ActivePaths = append([]string(nil), it.ActivePaths...)
	}
	if it.AllowedRoles != nil {
		out.AllowedRoles = append([]string(nil), it.AllowedRoles...)
	}
	out.Children = nil
	return out
}
