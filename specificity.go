package cssel

import "fmt"

// Specificity is the weight a selector contributes when it matches, as the
// ordered triple (id, class, type). Comparison is lexicographic with the id
// count most significant, so any number of class-level matches never
// outweighs a single id match. Values produced by this package are never
// negative on any axis.
type Specificity struct {
	ID    int
	Class int
	Type  int
}

// Weights of the simple selector forms.
var (
	Zero     = Specificity{}
	OneTag   = Specificity{Type: 1}
	OneClass = Specificity{Class: 1}
	OneID    = Specificity{ID: 1}
)

// Compare returns -1 if s is less specific than o, 1 if more specific, and
// 0 if the triples are equal.
func (s Specificity) Compare(o Specificity) int {
	if s.ID != o.ID {
		if s.ID < o.ID {
			return -1
		}
		return 1
	}
	if s.Class != o.Class {
		if s.Class < o.Class {
			return -1
		}
		return 1
	}
	if s.Type != o.Type {
		if s.Type < o.Type {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether s is strictly less specific than o.
func (s Specificity) Less(o Specificity) bool {
	return s.Compare(o) < 0
}

// Add sums two weights axis by axis and returns the result. Compound
// selector layers combine member weights this way; neither operand is
// modified.
func (s Specificity) Add(o Specificity) Specificity {
	return Specificity{
		ID:    s.ID + o.ID,
		Class: s.Class + o.Class,
		Type:  s.Type + o.Type,
	}
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s.ID, s.Class, s.Type)
}
