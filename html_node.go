package cssel

import (
	"golang.org/x/net/html"
)

// NodeElement adapts a parsed x/net/html node to the Element contract.
// Wrap element nodes; other node types carry no tag or attributes and
// match nothing useful.
type NodeElement struct {
	Node *html.Node
}

func (e NodeElement) LocalName() string {
	return e.Node.Data
}

func (e NodeElement) ID() string {
	v, _ := e.Attr("id")
	return v
}

func (e NodeElement) HasClass(name string) bool {
	v, _ := e.Attr("class")
	return hasToken(v, name)
}

func (e NodeElement) Attr(name string) (string, bool) {
	for _, attr := range e.Node.Attr {
		if attrName(attr) == name {
			return attr.Val, true
		}
	}
	return "", false
}

// attrName is the lookup name of a parsed attribute. The html parser splits
// adjusted foreign attributes like xlink:href into Namespace and Key, which
// read back as prefix:name; unadjusted prefixes survive inside Key as-is.
func attrName(attr html.Attribute) string {
	if attr.Namespace != "" {
		return attr.Namespace + ":" + attr.Key
	}
	return attr.Key
}

// All returns the element nodes at or under root, in document order, that
// every selector in sels matches. scope is handed through to pseudo
// selector predicates. With no selectors All returns nil.
func All(root *html.Node, scope Element, sels ...Selector) []*html.Node {
	if len(sels) == 0 {
		return nil
	}
	var out []*html.Node
	walkElements(root, func(n *html.Node) bool {
		if matchEvery(NodeElement{Node: n}, scope, sels) {
			out = append(out, n)
		}
		return true
	})
	return out
}

// First returns the first element node at or under root, in document order,
// that every selector in sels matches, or nil.
func First(root *html.Node, scope Element, sels ...Selector) *html.Node {
	if len(sels) == 0 {
		return nil
	}
	var found *html.Node
	walkElements(root, func(n *html.Node) bool {
		if matchEvery(NodeElement{Node: n}, scope, sels) {
			found = n
			return false
		}
		return true
	})
	return found
}

func matchEvery(e Element, scope Element, sels []Selector) bool {
	for _, s := range sels {
		if !s.Match(e, scope) {
			return false
		}
	}
	return true
}

// walkElements visits element nodes in document order, stopping early when
// fn returns false.
func walkElements(n *html.Node, fn func(*html.Node) bool) (cont bool) {
	if n.Type == html.ElementNode {
		if !fn(n) {
			return false
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walkElements(c, fn) {
			return false
		}
	}
	return true
}
