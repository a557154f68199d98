package cssel_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"cssel"
)

const testPage = `<!DOCTYPE html>
<html><body>
<nav id="menu">
<a id="home" class="nav active" href="https://x.test/page" lang="en-US">Home</a>
<a class="nav" href="/local" title="">Local</a>
</nav>
<p class="note">plain text</p>
<img src="i.png" svg:href="#icon">
</body></html>`

func parsePage(t *testing.T) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(testPage))
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	return doc
}

func TestNodeElement(t *testing.T) {
	t.Parallel()
	doc := parsePage(t)
	home := cssel.First(doc, nil, cssel.ID("home"))
	if home == nil {
		t.Fatal("home link not found")
	}
	e := cssel.NodeElement{Node: home}
	if got := e.LocalName(); got != "a" {
		t.Fatalf("local name = %q, want a", got)
	}
	if got := e.ID(); got != "home" {
		t.Fatalf("id = %q, want home", got)
	}
	if !e.HasClass("nav") || !e.HasClass("active") {
		t.Fatal("expected nav and active classes")
	}
	if e.HasClass("act") {
		t.Fatal("partial class token matched")
	}
	if v, ok := e.Attr("href"); !ok || v != "https://x.test/page" {
		t.Fatalf("href = %q, %v", v, ok)
	}
	if _, ok := e.Attr("rel"); ok {
		t.Fatal("rel should be absent")
	}
}

func TestNodeElementMatch(t *testing.T) {
	t.Parallel()
	doc := parsePage(t)
	home := cssel.NodeElement{Node: cssel.First(doc, nil, cssel.ID("home"))}
	type testCase struct {
		sel  cssel.Selector
		want bool
	}
	tcs := []testCase{
		{sel: cssel.Universal, want: true},
		{sel: cssel.Type("a"), want: true},
		{sel: cssel.Type("A"), want: true},
		{sel: cssel.Type("p"), want: false},
		{sel: cssel.Class("active"), want: true},
		{sel: cssel.AttrList("class", "nav"), want: true},
		{sel: cssel.AttrList("class", "na"), want: false},
		{sel: cssel.AttrBegins("href", "https"), want: true},
		{sel: cssel.AttrEnds("href", "/page"), want: true},
		{sel: cssel.AttrContains("href", "x.test"), want: true},
		{sel: cssel.AttrHyphen("lang", "en"), want: true},
		{sel: cssel.AttrHyphen("lang", "e"), want: false},
		{sel: cssel.AttrNotMatch("rel", "nofollow"), want: true},
		{sel: cssel.AttrMatch("title", ""), want: false},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			if got := tc.sel.Match(home, nil); got != tc.want {
				t.Fatalf("%q matched %v, want %v", tc.sel, got, tc.want)
			}
		})
	}
}

func TestNodeElementEmptyAttr(t *testing.T) {
	t.Parallel()
	doc := parsePage(t)
	local := cssel.First(doc, nil, cssel.AttrAvailable("title", ""))
	if local == nil {
		t.Fatal("empty title carrier not found")
	}
	e := cssel.NodeElement{Node: local}
	if cssel.AttrMatch("title", "").Match(e, nil) {
		t.Fatal("empty comparison value must never match")
	}
	if cssel.AttrNotMatch("title", "").Match(e, nil) {
		t.Fatal("present empty attribute equals the empty operand")
	}
}

func TestAll(t *testing.T) {
	t.Parallel()
	doc := parsePage(t)
	nodes := cssel.All(doc, nil, cssel.Class("nav"))
	got := make([]string, 0, len(nodes))
	for _, n := range nodes {
		v, _ := (cssel.NodeElement{Node: n}).Attr("href")
		got = append(got, v)
	}
	want := []string{"https://x.test/page", "/local"}
	if !cmp.Equal(want, got) {
		t.Fatalf("mismatched matches: %v", cmp.Diff(want, got))
	}

	first := cssel.First(doc, nil, cssel.Class("nav"), cssel.AttrBegins("href", "https"))
	if first == nil {
		t.Fatal("compound selector found nothing")
	}
	if id := (cssel.NodeElement{Node: first}).ID(); id != "home" {
		t.Fatalf("first match id = %q, want home", id)
	}

	if cssel.All(doc, nil) != nil {
		t.Fatal("no selectors should match nothing")
	}
	if n := cssel.First(doc, nil, cssel.ID("missing")); n != nil {
		t.Fatal("missing id matched")
	}
}

func TestAllScope(t *testing.T) {
	t.Parallel()
	doc := parsePage(t)
	menu := cssel.First(doc, nil, cssel.ID("menu"))
	if menu == nil {
		t.Fatal("menu not found")
	}
	scope := cssel.NodeElement{Node: menu}
	isScope := cssel.PseudoClass("scope", cssel.PredicateFunc(func(e, s cssel.Element) bool {
		return s != nil && e == s
	}))
	nodes := cssel.All(doc, scope, isScope)
	if len(nodes) != 1 || nodes[0] != menu {
		t.Fatalf("scope pseudo matched %d nodes, want the menu only", len(nodes))
	}
}

func TestNodeElementPrefixedAttr(t *testing.T) {
	t.Parallel()
	doc := parsePage(t)
	img := cssel.First(doc, nil, cssel.AttrAvailable("href", "svg"))
	if img == nil {
		t.Fatal("prefixed attribute not found")
	}
	if got := (cssel.NodeElement{Node: img}).LocalName(); got != "img" {
		t.Fatalf("matched %q, want img", got)
	}
	if n := cssel.First(doc, nil, cssel.Type("img"), cssel.AttrAvailable("href", "")); n != nil {
		t.Fatal("bare href lookup should not see svg:href")
	}
}
