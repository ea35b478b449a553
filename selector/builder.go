package selector

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicatePart reports that a selector part allowed at most once was set
// a second time on the same chain.
var ErrDuplicatePart = errors.New("duplicate selector part")

// Builder accumulates parts of a simple selector through chained calls.
// Methods mutate the owned value and return the same Builder, the terminal
// Build call produces the finished Selector.
//
// The zero value is an empty chain ready for use. Package-level Element, ID,
// Class, Attribute, PseudoClass and PseudoElement each start a fresh chain,
// so independent chains never observe each other's state.
//
// Setting element type, id or pseudo-element twice latches ErrDuplicatePart
// on the chain: remaining calls become no-ops and Build reports the error.
// Errors are not recoverable mid-chain, start a new one.
type Builder struct {
	sel              simple
	elementSet       bool
	idSet            bool
	pseudoElementSet bool
	err              error
}

// Element starts a new chain with the element type set.
func Element(name string) *Builder { return new(Builder).Element(name) }

// ID starts a new chain with the id set.
func ID(name string) *Builder { return new(Builder).ID(name) }

// Class starts a new chain with a single class.
func Class(name string) *Builder { return new(Builder).Class(name) }

// Attribute starts a new chain with a single attribute expression.
func Attribute(expr string) *Builder { return new(Builder).Attribute(expr) }

// PseudoClass starts a new chain with a single pseudo-class.
func PseudoClass(name string) *Builder { return new(Builder).PseudoClass(name) }

// PseudoElement starts a new chain with the pseudo-element set.
func PseudoElement(name string) *Builder { return new(Builder).PseudoElement(name) }

// Element sets the element type, allowed at most once per chain.
func (b *Builder) Element(name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.elementSet {
		b.err = fmt.Errorf("%w: element type is already %q", ErrDuplicatePart, b.sel.element)
		return b
	}
	b.sel.element = name
	b.elementSet = true
	return b
}

// ID sets the id, allowed at most once per chain.
func (b *Builder) ID(name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.idSet {
		b.err = fmt.Errorf("%w: id is already %q", ErrDuplicatePart, b.sel.id)
		return b
	}
	b.sel.id = name
	b.idSet = true
	return b
}

// Class appends a class name. Insertion order is preserved on render.
func (b *Builder) Class(name string) *Builder {
	if b.err != nil {
		return b
	}
	b.sel.classes = append(b.sel.classes, name)
	return b
}

// Attribute appends a raw attribute expression (e.g. `href$=".png"`). The
// expression is not validated.
func (b *Builder) Attribute(expr string) *Builder {
	if b.err != nil {
		return b
	}
	b.sel.attributes = append(b.sel.attributes, expr)
	return b
}

// PseudoClass appends a pseudo-class name. Insertion order is preserved on
// render.
func (b *Builder) PseudoClass(name string) *Builder {
	if b.err != nil {
		return b
	}
	b.sel.pseudoClasses = append(b.sel.pseudoClasses, name)
	return b
}

// PseudoElement sets the pseudo-element, allowed at most once per chain.
func (b *Builder) PseudoElement(name string) *Builder {
	if b.err != nil {
		return b
	}
	if b.pseudoElementSet {
		b.err = fmt.Errorf("%w: pseudo-element is already %q", ErrDuplicatePart, b.sel.pseudoElement)
		return b
	}
	b.sel.pseudoElement = name
	b.pseudoElementSet = true
	return b
}

// Err returns the error latched on the chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build finishes the chain and returns the accumulated selector. The result
// is detached from the chain: further calls on the Builder do not affect it.
func (b *Builder) Build() (Selector, error) {
	if b.err != nil {
		return nil, b.err
	}
	s := b.sel
	s.classes = slices.Clone(s.classes)
	s.attributes = slices.Clone(s.attributes)
	s.pseudoClasses = slices.Clone(s.pseudoClasses)
	return &s, nil
}
