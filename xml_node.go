package cssel

import (
	"strings"

	"github.com/beevik/etree"
)

// TreeElement adapts an etree XML element to the Element contract.
// Bare names match only attributes without a prefix. Prefixed lookups
// like svg:href resolve against the attribute's literal prefix, or
// against the trailing segment of its namespace URI when the document
// declared the prefix.
type TreeElement struct {
	El *etree.Element
}

func (e TreeElement) LocalName() string {
	return e.El.Tag
}

func (e TreeElement) ID() string {
	v, _ := e.Attr("id")
	return v
}

func (e TreeElement) HasClass(name string) bool {
	v, _ := e.Attr("class")
	return hasToken(v, name)
}

func (e TreeElement) Attr(name string) (string, bool) {
	space, key, prefixed := strings.Cut(name, ":")
	if !prefixed {
		// SelectAttr's empty-space lookup is a namespace wildcard;
		// bare names need an exact empty-prefix match.
		for _, attr := range e.El.Attr {
			if attr.Space == "" && attr.Key == name {
				return attr.Value, true
			}
		}
		return "", false
	}
	for _, attr := range e.El.Attr {
		if attr.Key != key {
			continue
		}
		if attr.Space == space || strings.HasSuffix(attr.NamespaceURI(), "/"+space) {
			return attr.Value, true
		}
	}
	return "", false
}
