package cssel

import "strings"

// escapeDoubleQuoted escapes a value for use inside a CSS double-quoted
// string. Backslashes and double quotes become \\ and \".
func escapeDoubleQuoted(s string) string {
	// Fast path: nothing to escape.
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// quoteValue renders a comparison value as a CSS double-quoted string.
func quoteValue(s string) string {
	return `"` + escapeDoubleQuoted(s) + `"`
}

// attrText renders the canonical text of an attribute selector. op is the
// operator as written between name and value ("=", "!=", "~=", "^=", "$=",
// "*=" or "|="), or empty for a bare presence test, which renders without
// a value.
func attrText(prefix, name, op, value string) string {
	var b strings.Builder
	b.WriteByte('[')
	if prefix != "" && prefix != AnyNamespace {
		b.WriteString(prefix)
		b.WriteByte('|')
	}
	b.WriteString(name)
	if op != "" {
		b.WriteString(op)
		b.WriteString(quoteValue(value))
	}
	b.WriteByte(']')
	return b.String()
}

// attrKey composes the lookup key handed to Element.Attr. A concrete
// namespace prefix qualifies the name as prefix:name; the wildcard and
// empty prefixes resolve to the bare attribute name.
func attrKey(prefix, name string) string {
	if prefix == "" || prefix == AnyNamespace {
		return name
	}
	return prefix + ":" + name
}
