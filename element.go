package cssel

// Element is the node capability surface selectors match against: local tag
// name, id, class membership, and attribute lookup. A matcher borrows an
// element for the duration of one Match call and retains nothing, so any
// document representation exposing these reads can be matched.
type Element interface {
	// LocalName returns the element's local tag name.
	LocalName() string
	// ID returns the element's id, or the empty string.
	ID() string
	// HasClass reports whether name is one of the element's classes.
	HasClass(name string) bool
	// Attr returns the value of the named attribute and whether the
	// attribute is present at all.
	Attr(name string) (string, bool)
}

// Predicate is a caller-supplied condition backing a pseudo-class or
// pseudo-element selector. scope is the scoping root of the evaluation and
// may be nil.
type Predicate interface {
	Match(e, scope Element) bool
}

// PredicateFunc adapts a plain function to the Predicate interface.
type PredicateFunc func(e, scope Element) bool

func (f PredicateFunc) Match(e, scope Element) bool {
	return f(e, scope)
}
