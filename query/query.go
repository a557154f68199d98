package query

import (
	"io"
	"strings"

	"cssel"
)

// Query is a named conjunction of simple selectors, the compound form one
// layer above single matchers.
type Query struct {
	Name      string
	Selectors []cssel.Selector
}

// Match reports whether e satisfies every selector in the query.
func (q Query) Match(e, scope cssel.Element) bool {
	for _, s := range q.Selectors {
		if !s.Match(e, scope) {
			return false
		}
	}
	return true
}

// Specificity sums the weights of the query's selectors.
func (q Query) Specificity() cssel.Specificity {
	var w cssel.Specificity
	for _, s := range q.Selectors {
		w = w.Add(s.Specificity())
	}
	return w
}

// WriteTo writes the compound CSS text, the concatenated member forms, to w.
func (q Query) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, s := range q.Selectors {
		n, err := s.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the compound CSS text of the query.
func (q Query) String() string {
	var b strings.Builder
	q.WriteTo(&b) //nolint:errcheck
	return b.String()
}
