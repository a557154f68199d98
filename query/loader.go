// Package query loads selector queries from YAML documents. A document
// carries already-resolved selector descriptions (a kind plus the name,
// value or prefix that kind consumes), so loading is construction and
// validation, not CSS parsing.
package query

import (
	"fmt"
	"os"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"cssel"
)

var (
	// ErrUnknownKind marks a selector description whose kind is not one of
	// the simple selector forms.
	ErrUnknownKind = fmt.Errorf("unknown selector kind")
	// ErrUnknownPredicate marks a pseudo selector naming a predicate that
	// was never registered.
	ErrUnknownPredicate = fmt.Errorf("unknown pseudo predicate")
	// ErrInvalidIdent marks a name that does not lex as a single CSS
	// identifier.
	ErrInvalidIdent = fmt.Errorf("invalid css identifier")
)

// Loader turns query documents into selector lists. Pseudo selector
// descriptions resolve their predicates through the loader's registry.
type Loader struct {
	log        *zap.Logger
	predicates map[string]cssel.Predicate
}

// NewLoader returns a Loader logging through log. A nil log disables
// logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		log:        log.Named("query"),
		predicates: map[string]cssel.Predicate{},
	}
}

// Register makes pred available to pseudo-class and pseudo-element entries
// under name, replacing any previous registration.
func (l *Loader) Register(name string, pred cssel.Predicate) {
	l.predicates[name] = pred
}

// Parse decodes and validates a YAML query document. Entry failures are
// aggregated across the whole document so one bad entry does not hide the
// rest.
func (l *Loader) Parse(data []byte) ([]Query, error) {
	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if len(f.Queries) == 0 {
		return nil, fmt.Errorf("no queries defined")
	}
	var errs error
	queries := make([]Query, 0, len(f.Queries))
	for qi, yq := range f.Queries {
		if yq.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("query %d: missing name", qi))
			continue
		}
		if len(yq.Selectors) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("query %q: no selectors", yq.Name))
			continue
		}
		q := Query{Name: yq.Name, Selectors: make([]cssel.Selector, 0, len(yq.Selectors))}
		for si, ys := range yq.Selectors {
			sel, err := l.convertSelector(ys)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("query %q: selector %d: %w", yq.Name, si, err))
				continue
			}
			if _, attr := attrConstructors[ys.Kind]; attr && ys.Kind != "attr-not-match" && ys.Value == "" {
				l.log.Warn("empty comparison value never matches",
					zap.String("query", yq.Name),
					zap.Int("selector", si),
					zap.String("kind", ys.Kind))
			}
			q.Selectors = append(q.Selectors, sel)
		}
		l.log.Debug("loaded query",
			zap.String("name", q.Name),
			zap.Int("selectors", len(q.Selectors)),
			zap.Stringer("specificity", q.Specificity()))
		queries = append(queries, q)
	}
	if errs != nil {
		return nil, errs
	}
	return queries, nil
}

// LoadFile reads and parses the query document at path.
func (l *Loader) LoadFile(path string) ([]Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}
	queries, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return queries, nil
}

// validIdent checks that s lexes as exactly one CSS identifier.
func validIdent(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidIdent)
	}
	lex := css.NewLexer(parse.NewInputString(s))
	if tt, data := lex.Next(); tt != css.IdentToken || string(data) != s {
		return fmt.Errorf("%w: %q", ErrInvalidIdent, s)
	}
	if tt, _ := lex.Next(); tt != css.ErrorToken {
		return fmt.Errorf("%w: %q", ErrInvalidIdent, s)
	}
	return nil
}
