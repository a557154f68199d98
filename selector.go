package cssel

import (
	"io"
	"strings"
)

// AnyNamespace is the wildcard namespace prefix. Passed to AttrAvailable it
// resolves the lookup against the bare attribute name, same as no prefix.
const AnyNamespace = "*"

// Selector is one simple selector held as an immutable value: a kind tag,
// the data that kind needs, and the canonical text form fixed at
// construction. Selectors never fail to construct, match, or serialize, and
// are safe for unsynchronized concurrent use.
//
// The zero Selector is KindNone: it matches nothing and serializes empty.
type Selector struct {
	kind  Kind
	name  string // tag, class, id, attribute or pseudo name
	value string // attribute comparison operand
	key   string // composed attribute lookup key
	pred  Predicate
	text  string
}

// Universal is the universal selector "*". It matches every element and
// weighs nothing. All universal selectors are this one shared value.
var Universal = Selector{kind: KindUniversal, text: "*"}

// Type matches elements whose local name equals tag, case-insensitively.
func Type(tag string) Selector {
	return Selector{kind: KindType, name: tag, text: tag}
}

// Class matches elements whose class list contains name exactly.
func Class(name string) Selector {
	return Selector{kind: KindClass, name: name, text: "." + name}
}

// ID matches elements whose id equals name. Unlike tag names, ids compare
// case-sensitively.
func ID(name string) Selector {
	return Selector{kind: KindID, name: name, text: "#" + name}
}

// AttrAvailable matches elements carrying the named attribute, whatever its
// value, including the empty string. A concrete namespace prefix narrows
// the lookup to prefix:name and renders as [prefix|name]; AnyNamespace and
// "" leave the name bare.
func AttrAvailable(name, prefix string) Selector {
	return Selector{
		kind: KindAttrAvailable,
		name: name,
		key:  attrKey(prefix, name),
		text: attrText(prefix, name, "", ""),
	}
}

// AttrMatch matches elements whose attribute value equals value exactly.
func AttrMatch(name, value string) Selector {
	return attrSelector(KindAttrMatch, name, "=", value)
}

// AttrNotMatch matches elements whose attribute value differs from value.
// An element without the attribute matches regardless of value; this is the
// one operator where absence is a success.
func AttrNotMatch(name, value string) Selector {
	return attrSelector(KindAttrNotMatch, name, "!=", value)
}

// AttrList matches elements whose whitespace-separated attribute value
// contains value as a complete token.
func AttrList(name, value string) Selector {
	return attrSelector(KindAttrList, name, "~=", value)
}

// AttrBegins matches elements whose attribute value starts with value.
func AttrBegins(name, value string) Selector {
	return attrSelector(KindAttrBegins, name, "^=", value)
}

// AttrEnds matches elements whose attribute value ends with value.
func AttrEnds(name, value string) Selector {
	return attrSelector(KindAttrEnds, name, "$=", value)
}

// AttrContains matches elements whose attribute value contains value as a
// substring.
func AttrContains(name, value string) Selector {
	return attrSelector(KindAttrContains, name, "*=", value)
}

// AttrHyphen matches elements whose attribute value equals value or starts
// with value followed by a hyphen, as in [lang|="en"] matching "en-US" but
// not "eng".
func AttrHyphen(name, value string) Selector {
	return attrSelector(KindAttrHyphen, name, "|=", value)
}

// attrSelector builds the value-comparing attribute kinds. They share the
// lookup key composition and canonical text form.
func attrSelector(kind Kind, name, op, value string) Selector {
	return Selector{
		kind:  kind,
		name:  name,
		value: value,
		key:   attrKey("", name),
		text:  attrText("", name, op, value),
	}
}

// PseudoClass matches elements satisfying pred, rendered as :name. The
// predicate receives the element under test and the scoping root of the
// evaluation. A nil predicate never matches.
func PseudoClass(name string, pred Predicate) Selector {
	return Selector{kind: KindPseudoClass, name: name, pred: pred, text: ":" + name}
}

// PseudoElement matches elements satisfying pred, rendered as ::name. It
// weighs like a type selector rather than a class.
func PseudoElement(name string, pred Predicate) Selector {
	return Selector{kind: KindPseudoElement, name: name, pred: pred, text: "::" + name}
}

// Kind returns which simple selector form s was constructed as.
func (s Selector) Kind() Kind {
	return s.kind
}

// Specificity returns the weight s contributes when it matches.
func (s Selector) Specificity() Specificity {
	return s.kind.weight()
}

// Match reports whether e satisfies the selector. e must not be nil. scope
// is the scoping root of the evaluation; it may be nil and is consulted
// only by pseudo selector predicates. Match reads from the element and
// nothing else: no state, no side effects, no errors.
func (s Selector) Match(e, scope Element) bool {
	switch s.kind {
	case KindUniversal:
		return true
	case KindType:
		return strings.EqualFold(e.LocalName(), s.name)
	case KindClass:
		return e.HasClass(s.name)
	case KindID:
		return e.ID() == s.name
	case KindAttrAvailable:
		_, ok := e.Attr(s.key)
		return ok
	case KindAttrNotMatch:
		v, ok := e.Attr(s.key)
		return !ok || v != s.value
	case KindAttrMatch, KindAttrList, KindAttrBegins, KindAttrEnds,
		KindAttrContains, KindAttrHyphen:
		v, _ := e.Attr(s.key) // absent reads as ""
		return matchAttrValue(s.kind, v, s.value)
	case KindPseudoClass, KindPseudoElement:
		return s.pred != nil && s.pred.Match(e, scope)
	}
	return false
}

// matchAttrValue evaluates the value-comparing attribute operators. Every
// operator here refuses an empty comparison value, even against an
// attribute that is present with an empty value.
func matchAttrValue(kind Kind, attr, value string) bool {
	switch kind {
	case KindAttrMatch:
		return value != "" && attr == value
	case KindAttrList:
		// Splitting on whitespace cannot produce an empty token, so the
		// empty value rule holds without a guard.
		return hasToken(attr, value)
	case KindAttrBegins:
		return value != "" && strings.HasPrefix(attr, value)
	case KindAttrEnds:
		return value != "" && strings.HasSuffix(attr, value)
	case KindAttrContains:
		return value != "" && strings.Contains(attr, value)
	case KindAttrHyphen:
		return value != "" && (attr == value || strings.HasPrefix(attr, value+"-"))
	}
	return false
}

// hasToken reports whether want is one of the whitespace-separated tokens
// of list. Class membership and the ~= operator share this test.
func hasToken(list, want string) bool {
	for _, tok := range strings.Fields(list) {
		if tok == want {
			return true
		}
	}
	return false
}

// String returns the selector's canonical CSS text, fixed at construction.
// Comparison values are re-escaped double-quoted strings, so the text of an
// attribute selector is always well formed no matter the value.
func (s Selector) String() string {
	return s.text
}

// WriteTo writes the canonical text to w, implementing io.WriterTo.
func (s Selector) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.text)
	return int64(n), err
}
