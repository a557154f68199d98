package cssel

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestSelectorString(t *testing.T) {
	t.Parallel()
	type testCase struct {
		sel  Selector
		want string
	}
	tcs := []testCase{
		{sel: Selector{}, want: ""},
		{sel: Universal, want: "*"},
		{sel: Type("a"), want: "a"},
		{sel: Type("DIV"), want: "DIV"},
		{sel: Class("nav"), want: ".nav"},
		{sel: ID("home"), want: "#home"},
		{sel: AttrAvailable("href", ""), want: "[href]"},
		{sel: AttrAvailable("href", AnyNamespace), want: "[href]"},
		{sel: AttrAvailable("href", "svg"), want: "[svg|href]"},
		{sel: AttrMatch("href", "x"), want: `[href="x"]`},
		{sel: AttrNotMatch("target", "_blank"), want: `[target!="_blank"]`},
		{sel: AttrList("class", "nav"), want: `[class~="nav"]`},
		{sel: AttrBegins("href", "https"), want: `[href^="https"]`},
		{sel: AttrEnds("src", ".png"), want: `[src$=".png"]`},
		{sel: AttrContains("href", "x.test"), want: `[href*="x.test"]`},
		{sel: AttrHyphen("lang", "en"), want: `[lang|="en"]`},
		{sel: AttrMatch("href", ""), want: `[href=""]`},
		{sel: AttrMatch("title", `say "hi"`), want: `[title="say \"hi\""]`},
		{sel: AttrMatch("title", `a\b`), want: `[title="a\\b"]`},
		{sel: PseudoClass("hover", nil), want: ":hover"},
		{sel: PseudoElement("before", nil), want: "::before"},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			if got := tc.sel.String(); got != tc.want {
				t.Fatalf("String = %q, want %q", got, tc.want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestSelectorWriteTo(t *testing.T) {
	t.Parallel()
	sel := AttrBegins("href", "https")
	var b strings.Builder
	n, err := sel.WriteTo(&b)
	if err != nil {
		t.Fatal("unexpected error", err)
	}
	if want := int64(len(sel.String())); n != want {
		t.Fatalf("wrote %d bytes, want %d", n, want)
	}
	if b.String() != sel.String() {
		t.Fatalf("wrote %q, want %q", b.String(), sel.String())
	}
	if _, err := sel.WriteTo(failingWriter{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestEscapeDoubleQuoted(t *testing.T) {
	t.Parallel()
	type testCase struct {
		in   string
		want string
	}
	tcs := []testCase{
		{in: "", want: ""},
		{in: "plain", want: "plain"},
		{in: `with "quotes"`, want: `with \"quotes\"`},
		{in: `back\slash`, want: `back\\slash`},
		{in: `"\`, want: `\"\\`},
	}
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			t.Parallel()
			if got := escapeDoubleQuoted(tc.in); got != tc.want {
				t.Fatalf("escaped %q to %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
