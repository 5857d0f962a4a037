package nav

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultDefinition []byte

// Definition is the on-disk form of a navigation tree.
type Definition struct {
	// Version of the definition, informational.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Items is the ordered top-level list.
	Items []Item `yaml:"items" json:"items"`
}

// LoadDefinition reads and validates a YAML navigation file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read navigation file: %w", err)
	}

	return ParseDefinition(data)
}

// ParseDefinition parses and validates a navigation tree from raw YAML.
// Items carrying children without an explicit group kind become groups.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse navigation definition: %w", err)
	}

	normalize(def.Items)

	if err := def.Validate(); err != nil {
		return nil, err
	}

	return &def, nil
}

// DefaultDefinition returns the built-in tree of the platform.
func DefaultDefinition() *Definition {
	def, err := ParseDefinition(defaultDefinition)
	if err != nil {
		panic(fmt.Sprintf("embedded navigation definition is invalid: %v", err))
	}
	return def
}

// Validate checks every item and reports all problems at once.
func (d *Definition) Validate() error {
	if len(d.Items) == 0 {
		return errors.New("navigation definition has no items")
	}

	var errs []error
	validateItems(d.Items, "items", &errs)

	return errors.Join(errs...)
}

func normalize(items []Item) {
	for i := range items {
		if items[i].Kind == KindLink && len(items[i].Children) > 0 {
			items[i].Kind = KindGroup
		}
		normalize(items[i].Children)
	}
}

func validateItems(items []Item, at string, errs *[]error) {
	for i, it := range items {
		loc := fmt.Sprintf("%s[%d]", at, i)

		switch it.Kind {
		case KindDivider:
			if len(it.Children) > 0 {
				*errs = append(*errs, fmt.Errorf("%s: divider cannot have children", loc))
			}
		case KindSection:
			if it.Label == "" {
				*errs = append(*errs, fmt.Errorf("%s: section label is required", loc))
			}
			if len(it.Children) > 0 {
				*errs = append(*errs, fmt.Errorf("%s: section cannot have children", loc))
			}
		case KindLink:
			if it.Label == "" {
				*errs = append(*errs, fmt.Errorf("%s: label is required", loc))
			}
			if it.Href == "" {
				*errs = append(*errs, fmt.Errorf("%s: link %q requires href", loc, it.Label))
			}
		case KindGroup:
			if it.Label == "" {
				*errs = append(*errs, fmt.Errorf("%s: label is required", loc))
			}
			if it.Href == "" && len(it.Children) == 0 {
				*errs = append(*errs, fmt.Errorf("%s: group %q requires href or children", loc, it.Label))
			}
			validateItems(it.Children, loc+".children", errs)
		default:
			*errs = append(*errs, fmt.Errorf("%s: unknown kind %s", loc, it.Kind))
		}

		if it.Href != "" && !strings.HasPrefix(it.Href, "/") {
			*errs = append(*errs, fmt.Errorf("%s: href %q must be absolute", loc, it.Href))
		}
		for _, p := range it.ActivePaths {
			if !strings.HasPrefix(p, "/") {
				*errs = append(*errs, fmt.Errorf("%s: active path %q must be absolute", loc, p))
			}
		}
	}
}
