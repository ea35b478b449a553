// Package selector assembles CSS selector strings from typed parts.
//
// The package only builds and renders selectors. It never parses CSS and it
// does not validate selector grammar: attribute expressions, pseudo-class
// names and combinator tokens are passed through to the output verbatim.
package selector

import (
	"io"
	"strings"
)

// Selector is a fully formed selector ready for rendering. Exactly two
// implementations exist: the simple selector accumulated by a Builder and
// the combined selector produced by Combine. A value is always one or the
// other, never a mix.
type Selector interface {
	// WriteTo renders the selector to w in canonical form, implementing io.WriterTo.
	WriteTo(w io.Writer) (int64, error)
	// String returns the canonical text of the selector.
	String() string

	sealed()
}

// simple is a selector accumulated from element/id/class/attribute/pseudo
// parts. Zero or empty parts are skipped on render.
type simple struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string
}

var _ Selector = (*simple)(nil)

func (s *simple) sealed() {}

// WriteTo renders the parts in canonical order: element type, id, classes,
// attributes, pseudo-classes, pseudo-element. Output order does not depend
// on the order in which parts were added to the chain.
func (s *simple) WriteTo(w io.Writer) (int64, error) {
	var total int64

	if s.element != "" {
		n, err := io.WriteString(w, s.element)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	if s.id != "" {
		n, err := io.WriteString(w, "#"+s.id)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, c := range s.classes {
		n, err := io.WriteString(w, "."+c)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	if len(s.attributes) > 0 {
		// All attribute expressions share a single bracket pair. Historical
		// output compatibility, downstream consumers rely on it.
		n, err := io.WriteString(w, "["+strings.Join(s.attributes, "")+"]")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	for _, p := range s.pseudoClasses {
		n, err := io.WriteString(w, ":"+p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	if s.pseudoElement != "" {
		n, err := io.WriteString(w, "::"+s.pseudoElement)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the canonical text of the selector.
func (s *simple) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// combined is a pair of selectors joined by a combinator token.
type combined struct {
	left  Selector
	op    string
	right Selector
}

var _ Selector = (*combined)(nil)

func (c *combined) sealed() {}

// WriteTo renders left and right with the combinator token between them,
// padded by a single space on each side whatever the token is.
func (c *combined) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := c.left.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	m, err := io.WriteString(w, " "+c.op+" ")
	total += int64(m)
	if err != nil {
		return total, err
	}
	n, err = c.right.WriteTo(w)
	total += n
	return total, err
}

func (c *combined) String() string {
	var sb strings.Builder
	c.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// Combine joins two fully formed selectors with a combinator token. The
// token is not validated against the CSS combinator set, any string is
// accepted. The operands are referenced, not copied, and are expected to be
// finished selectors.
func Combine(left Selector, op string, right Selector) Selector {
	return &combined{left: left, op: op, right: right}
}
