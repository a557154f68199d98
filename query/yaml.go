package query

import (
	"fmt"

	"cssel"
)

// yamlFile represents the top-level structure of a query document.
type yamlFile struct {
	Queries []yamlQuery `yaml:"queries"`
}

type yamlQuery struct {
	Name      string         `yaml:"name"`
	Selectors []yamlSelector `yaml:"selectors"`
}

// yamlSelector is one already-resolved selector description: a kind plus
// the fields that kind consumes.
type yamlSelector struct {
	Kind   string `yaml:"kind"`
	Name   string `yaml:"name,omitempty"`
	Value  string `yaml:"value,omitempty"`
	Prefix string `yaml:"prefix,omitempty"`
}

// attrConstructors maps the value-comparing attribute kinds to their
// constructors. Comparison values are free-form; they get re-escaped when
// the selector serializes.
var attrConstructors = map[string]func(name, value string) cssel.Selector{
	"attr-match":     cssel.AttrMatch,
	"attr-not-match": cssel.AttrNotMatch,
	"attr-list":      cssel.AttrList,
	"attr-begins":    cssel.AttrBegins,
	"attr-ends":      cssel.AttrEnds,
	"attr-contains":  cssel.AttrContains,
	"attr-hyphen":    cssel.AttrHyphen,
}

func (l *Loader) convertSelector(y yamlSelector) (cssel.Selector, error) {
	if y.Prefix != "" && y.Kind != "attr-available" {
		return cssel.Selector{}, fmt.Errorf("prefix is only valid for attr-available, not %q", y.Kind)
	}
	if ctor, ok := attrConstructors[y.Kind]; ok {
		if err := validIdent(y.Name); err != nil {
			return cssel.Selector{}, err
		}
		return ctor(y.Name, y.Value), nil
	}
	switch y.Kind {
	case "universal":
		return cssel.Universal, nil
	case "type":
		if err := validIdent(y.Name); err != nil {
			return cssel.Selector{}, err
		}
		return cssel.Type(y.Name), nil
	case "class":
		if err := validIdent(y.Name); err != nil {
			return cssel.Selector{}, err
		}
		return cssel.Class(y.Name), nil
	case "id":
		if err := validIdent(y.Name); err != nil {
			return cssel.Selector{}, err
		}
		return cssel.ID(y.Name), nil
	case "attr-available":
		if err := validIdent(y.Name); err != nil {
			return cssel.Selector{}, err
		}
		if y.Prefix != "" && y.Prefix != cssel.AnyNamespace {
			if err := validIdent(y.Prefix); err != nil {
				return cssel.Selector{}, err
			}
		}
		return cssel.AttrAvailable(y.Name, y.Prefix), nil
	case "pseudo-class", "pseudo-element":
		if err := validIdent(y.Name); err != nil {
			return cssel.Selector{}, err
		}
		pred, ok := l.predicates[y.Name]
		if !ok {
			return cssel.Selector{}, fmt.Errorf("%w: %q", ErrUnknownPredicate, y.Name)
		}
		if y.Kind == "pseudo-class" {
			return cssel.PseudoClass(y.Name, pred), nil
		}
		return cssel.PseudoElement(y.Name, pred), nil
	default:
		return cssel.Selector{}, fmt.Errorf("%w: %q", ErrUnknownKind, y.Kind)
	}
}
