package xmlnav_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	xmlnav "github.com/xmlnav/go-xmlnav"
)

func TestLookupNamespace(t *testing.T) {
	root := parseDoc(t, `<root xmlns="d" xmlns:p="u1"><p:child xmlns:q="u2">x</p:child></root>`)
	child := root.Clone()
	child.MoveToChild("root", "d")
	child.MoveToChild("child", "u1")

	cases := []struct {
		prefix string
		uri    string
		ok     bool
	}{
		{"q", "u2", true},
		{"p", "u1", true},
		{"", "d", true},
		{"xml", xmlnav.XMLNamespace, true},
		{"xmlns", xmlnav.XMLNSNamespace, true},
		{"nope", "", false},
	}
	for _, c := range cases {
		uri, ok := child.LookupNamespace(c.prefix)
		if ok != c.ok || uri != c.uri {
			t.Errorf("LookupNamespace(%q) = %q, %v; want %q, %v", c.prefix, uri, ok, c.uri, c.ok)
		}
	}

	// off an element the lookup delegates to the parent element
	text := child.Clone()
	if !text.MoveToChildKind(xmlnav.TextNode) {
		t.Fatal("no text child")
	}
	if uri, ok := text.LookupNamespace("q"); !ok || uri != "u2" {
		t.Errorf("text LookupNamespace(q) = %q, %v", uri, ok)
	}
}

func TestLookupNamespaceUndeclaredRoot(t *testing.T) {
	root := parseDoc(t, `<a/>`)
	el := nav(t, root, "a")
	if uri, ok := el.LookupNamespace(""); !ok || uri != "" {
		t.Errorf(`LookupNamespace("") = %q, %v; want "", true`, uri, ok)
	}
	if _, ok := el.LookupNamespace("p"); ok {
		t.Error("undeclared prefix resolved")
	}
}

func TestLookupPrefix(t *testing.T) {
	root := parseDoc(t, `<root xmlns="d" xmlns:p="u1"><p:child xmlns:q="u2"/></root>`)
	child := root.Clone()
	child.MoveToChild("root", "d")
	child.MoveToChild("child", "u1")

	cases := []struct {
		uri    string
		prefix string
		ok     bool
	}{
		{"u2", "q", true},
		{"u1", "p", true},
		{"d", "", true},
		{xmlnav.XMLNamespace, "xml", true},
		{xmlnav.XMLNSNamespace, "xmlns", true},
		{"unknown", "", false},
	}
	for _, c := range cases {
		prefix, ok := child.LookupPrefix(c.uri)
		if ok != c.ok || prefix != c.prefix {
			t.Errorf("LookupPrefix(%q) = %q, %v; want %q, %v", c.uri, prefix, ok, c.prefix, c.ok)
		}
	}
}

func TestLookupPrefixEmptyURI(t *testing.T) {
	root := parseDoc(t, `<root xmlns:p="u"><child/></root>`)
	child := root.Clone()
	child.MoveToChild("root", "")
	child.MoveToChild("child", "")
	if prefix, ok := child.LookupPrefix(""); !ok || prefix != "" {
		t.Errorf(`LookupPrefix("") = %q, %v; want "", true`, prefix, ok)
	}

	defaulted := parseDoc(t, `<root xmlns="d"/>`)
	defaulted.MoveToChild("root", "d")
	if _, ok := defaulted.LookupPrefix(""); ok {
		t.Error(`LookupPrefix("") found a prefix under a default namespace`)
	}
}

func TestNamespacesInScope(t *testing.T) {
	root := parseDoc(t, `<root xmlns:p="u1" xmlns:s="shadowed"><child xmlns:q="u2" xmlns:s="u3"/></root>`)
	child := root.Clone()
	child.MoveToChild("root", "")
	child.MoveToChild("child", "")

	got := child.NamespacesInScope(xmlnav.ScopeAll)
	want := map[string]string{
		"q":   "u2",
		"s":   "u3",
		"p":   "u1",
		"xml": xmlnav.XMLNamespace,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScopeAll mismatch (-want +got):\n%s", diff)
	}

	got = child.NamespacesInScope(xmlnav.ScopeExcludeXML)
	delete(want, "xml")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScopeExcludeXML mismatch (-want +got):\n%s", diff)
	}

	got = child.NamespacesInScope(xmlnav.ScopeLocal)
	want = map[string]string{"q": "u2", "s": "u3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScopeLocal mismatch (-want +got):\n%s", diff)
	}
}

func TestNamespaceAxisOrder(t *testing.T) {
	root := parseDoc(t, `<root xmlns:p="u1"><child xmlns:q="u2"/></root>`)
	child := root.Clone()
	child.MoveToChild("root", "")
	child.MoveToChild("child", "")

	ns := child.Clone()
	var prefixes []string
	if ns.MoveToFirstNamespace(xmlnav.ScopeAll) {
		for {
			prefixes = append(prefixes, ns.LocalName())
			if !ns.MoveToNextNamespace(xmlnav.ScopeAll) {
				break
			}
		}
	}
	want := []string{"q", "p", "xml"}
	if diff := cmp.Diff(want, prefixes); diff != "" {
		t.Errorf("axis order mismatch (-want +got):\n%s", diff)
	}

	// the namespace axis is per element: the same declaration seen
	// from two elements is two distinct positions
	fromChild := child.Clone()
	fromChild.MoveToFirstNamespace(xmlnav.ScopeAll)
	fromChild.MoveToNextNamespace(xmlnav.ScopeAll) // p, declared on root
	fromRoot := root.Clone()
	fromRoot.MoveToChild("root", "")
	fromRoot.MoveToFirstNamespace(xmlnav.ScopeAll) // p again
	if fromRoot.LocalName() != "p" || fromChild.LocalName() != "p" {
		t.Fatalf("not both at p: %q, %q", fromRoot.LocalName(), fromChild.LocalName())
	}
	if fromRoot.IsSamePosition(fromChild) {
		t.Error("namespace positions with different owners compare same")
	}
	up := fromChild.Clone()
	if !up.MoveToParent() || up.LocalName() != "child" {
		t.Errorf("namespace parent = %q, want child", up.LocalName())
	}
}
