package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/beevik/etree"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/net/html"

	"cssel"
	"cssel/query"
)

func buildLogger(verbose bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

// scopeOnly matches exactly the scope element.
var scopeOnly = cssel.PredicateFunc(func(e, scope cssel.Element) bool {
	return scope != nil && e == scope
})

// anyLink matches a and area elements carrying an href attribute.
var anyLink = cssel.PredicateFunc(func(e, scope cssel.Element) bool {
	if _, ok := e.Attr("href"); !ok {
		return false
	}
	return strings.EqualFold(e.LocalName(), "a") || strings.EqualFold(e.LocalName(), "area")
})

// registerPredicates installs the built-in pseudo predicates query
// documents may reference.
func registerPredicates(l *query.Loader) {
	l.Register("scope", scopeOnly)
	l.Register("any-link", anyLink)
}

func run(ctx context.Context, cmd *cli.Command) error {
	log := buildLogger(cmd.Bool("verbose"))
	defer log.Sync() //nolint:errcheck

	if cmd.NArg() == 0 {
		return fmt.Errorf("no input files")
	}

	loader := query.NewLoader(log)
	registerPredicates(loader)
	queries, err := loader.LoadFile(cmd.String("queries"))
	if err != nil {
		return fmt.Errorf("unable to load queries: %w", err)
	}
	log.Debug("queries loaded",
		zap.String("file", cmd.String("queries")),
		zap.Int("count", len(queries)))

	var errs error
	for _, path := range cmd.Args().Slice() {
		select {
		case <-ctx.Done():
			return multierr.Append(errs, ctx.Err())
		default:
		}
		if err := matchFile(log, os.Stdout, path, queries, cmd.Bool("xml"), cmd.String("scope-id")); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func matchFile(log *zap.Logger, w io.Writer, path string, queries []query.Query, asXML bool, scopeID string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read input: %w", err)
	}

	var elems []cssel.Element
	if asXML {
		elems, err = collectXML(data)
	} else {
		elems, err = collectHTML(data)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("collected elements", zap.String("file", path), zap.Int("count", len(elems)))

	var scope cssel.Element
	if scopeID != "" {
		if scope = findScope(elems, scopeID); scope == nil {
			log.Warn("scope element not found", zap.String("file", path), zap.String("id", scopeID))
		}
	}

	printResults(w, path, evaluate(queries, elems, scope))
	return nil
}

// collectHTML parses data as an HTML document and returns its elements in
// document order.
func collectHTML(data []byte) ([]cssel.Element, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to parse HTML: %w", err)
	}
	nodes := cssel.All(root, nil, cssel.Universal)
	elems := make([]cssel.Element, 0, len(nodes))
	for _, n := range nodes {
		elems = append(elems, cssel.NodeElement{Node: n})
	}
	return elems, nil
}

// collectXML parses data as an XML document and returns its elements in
// document order.
func collectXML(data []byte) ([]cssel.Element, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("unable to parse XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	var elems []cssel.Element
	var walk func(el *etree.Element)
	walk = func(el *etree.Element) {
		elems = append(elems, cssel.TreeElement{El: el})
		for _, child := range el.ChildElements() {
			walk(child)
		}
	}
	walk(root)
	return elems, nil
}

func findScope(elems []cssel.Element, id string) cssel.Element {
	sel := cssel.ID(id)
	for _, e := range elems {
		if sel.Match(e, nil) {
			return e
		}
	}
	return nil
}

type matchResult struct {
	query query.Query
	hits  []cssel.Element
}

// evaluate runs every query over every element and orders the results by
// descending specificity. Ties keep query load order.
func evaluate(queries []query.Query, elems []cssel.Element, scope cssel.Element) []matchResult {
	results := make([]matchResult, 0, len(queries))
	for _, q := range queries {
		r := matchResult{query: q}
		for _, e := range elems {
			if q.Match(e, scope) {
				r.hits = append(r.hits, e)
			}
		}
		results = append(results, r)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[j].query.Specificity().Less(results[i].query.Specificity())
	})
	return results
}

// describe renders an element as tag#id.class1.class2 for match listings.
func describe(e cssel.Element) string {
	var b strings.Builder
	b.WriteString(e.LocalName())
	if id := e.ID(); id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	if classes, ok := e.Attr("class"); ok {
		for _, c := range strings.Fields(classes) {
			b.WriteString(".")
			b.WriteString(c)
		}
	}
	return b.String()
}

func printResults(w io.Writer, path string, results []matchResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: %s %s %s matched %d\n",
			path, r.query.Name, r.query.String(), r.query.Specificity(), len(r.hits))
		for _, e := range r.hits {
			fmt.Fprintf(w, "  %s\n", describe(e))
		}
	}
}
