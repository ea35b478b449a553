// Package recipe builds selectors from declarative YAML descriptions.
//
// A recipe names a set of selectors to construct, each entry either lists
// the parts of a simple selector or combines two nested entries with a
// combinator token. Entries are built through the selector package, so the
// same canonical rendering rules apply.
package recipe

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssel/selector"
)

// Entry describes one selector to build. An entry is either simple (part
// fields) or combined (Combine field), never both.
type Entry struct {
	Name          string       `yaml:"name,omitempty"`
	Element       string       `yaml:"element,omitempty"`
	ID            string       `yaml:"id,omitempty"`
	Classes       []string     `yaml:"classes,omitempty"`
	Attributes    []string     `yaml:"attributes,omitempty"`
	PseudoClasses []string     `yaml:"pseudo_classes,omitempty"`
	PseudoElement string       `yaml:"pseudo_element,omitempty"`
	Slugify       bool         `yaml:"slugify,omitempty"`
	Combine       *CombineSpec `yaml:"combine,omitempty"`
}

// CombineSpec joins two nested entries with a combinator token. The token is
// passed to the selector package verbatim and is not validated.
type CombineSpec struct {
	Left  Entry  `yaml:"left"`
	Op    string `yaml:"op"`
	Right Entry  `yaml:"right"`
}

// Recipe is a parsed recipe document.
type Recipe struct {
	Version   int     `yaml:"version"`
	Selectors []Entry `yaml:"selectors"`
}

// Rendered is a single built selector ready for output.
type Rendered struct {
	Name     string `json:"name" yaml:"name"`
	Selector string `json:"selector" yaml:"selector"`

	sel selector.Selector
}

// Dump returns an indented structural dump of the built selector.
func (r Rendered) Dump() string {
	if r.sel == nil {
		return ""
	}
	return selector.DumpTree(r.sel)
}

// Load parses recipe data. Unknown fields are rejected so typos in recipe
// files surface immediately.
func Load(data []byte) (*Recipe, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var r Recipe
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode recipe data: %w", err)
	}
	if r.Version != 1 {
		return nil, fmt.Errorf("unsupported recipe version %d", r.Version)
	}
	return &r, nil
}

// Build constructs every selector in the recipe. Entries that fail are
// reported in the aggregated error while the remaining entries are still
// built and returned in document order. log must not be nil.
func (r *Recipe) Build(log *zap.Logger) ([]Rendered, error) {
	var (
		out  []Rendered
		errs error
	)
	for i, e := range r.Selectors {
		if e.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("selector entry %d has no name", i))
			continue
		}
		sel, err := e.build()
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("selector %q: %w", e.Name, err))
			continue
		}
		text := sel.String()
		if text == "" {
			log.Warn("Selector rendered empty", zap.String("name", e.Name))
		}
		log.Debug("Selector built", zap.String("name", e.Name), zap.String("selector", text))
		out = append(out, Rendered{Name: e.Name, Selector: text, sel: sel})
	}
	return out, errs
}

// hasSimpleParts reports whether any simple-selector field is set.
func (e *Entry) hasSimpleParts() bool {
	return e.Element != "" || e.ID != "" || len(e.Classes) > 0 ||
		len(e.Attributes) > 0 || len(e.PseudoClasses) > 0 || e.PseudoElement != ""
}

func (e *Entry) build() (selector.Selector, error) {
	if e.Combine != nil {
		if e.hasSimpleParts() {
			return nil, fmt.Errorf("entry mixes simple selector parts with combine")
		}
		left, err := e.Combine.Left.build()
		if err != nil {
			return nil, fmt.Errorf("left side: %w", err)
		}
		right, err := e.Combine.Right.build()
		if err != nil {
			return nil, fmt.Errorf("right side: %w", err)
		}
		return selector.Combine(left, e.Combine.Op, right), nil
	}

	b := new(selector.Builder)
	if e.Element != "" {
		b.Element(e.Element)
	}
	if e.ID != "" {
		b.ID(e.ID)
	}
	for _, c := range e.Classes {
		if e.Slugify {
			c = slug.Make(c)
		}
		b.Class(c)
	}
	for _, a := range e.Attributes {
		b.Attribute(a)
	}
	for _, p := range e.PseudoClasses {
		b.PseudoClass(p)
	}
	if e.PseudoElement != "" {
		b.PseudoElement(e.PseudoElement)
	}
	return b.Build()
}

// Sort orders rendered selectors by name using natural string ordering, so
// "item2" sorts before "item10".
func Sort(rendered []Rendered) {
	sort.Slice(rendered, func(i, j int) bool {
		return natural.Less(rendered[i].Name, rendered[j].Name)
	})
}
