package xmlnav_test

import (
	"testing"

	xmlnav "github.com/xmlnav/go-xmlnav"
	"github.com/xmlnav/go-xmlnav/parse"
)

func parseDoc(t *testing.T, markup string) *xmlnav.Cursor {
	t.Helper()
	doc, err := parse.Parse([]byte(markup))
	if err != nil {
		t.Fatalf("parse %q: %v", markup, err)
	}
	return doc.Root()
}

func TestMoveToChild(t *testing.T) {
	nav := parseDoc(t, `<a><b/><c xmlns:p="u"/><p:c xmlns:p="u"/></a>`)
	if !nav.MoveToChild("a", "") {
		t.Fatal("MoveToChild a failed")
	}
	sub := nav.Clone()
	if !sub.MoveToChild("c", "u") {
		t.Fatal("MoveToChild c/u failed")
	}
	if sub.Prefix() != "p" {
		t.Errorf("got prefix %q, want p", sub.Prefix())
	}
	sub = nav.Clone()
	if sub.MoveToChild("z", "") {
		t.Fatal("MoveToChild z succeeded")
	}
	if !sub.IsSamePosition(nav) {
		t.Error("failed move changed position")
	}
}

func TestMoveToChildKind(t *testing.T) {
	nav := parseDoc(t, `<a><!--note-->text<b/></a>`)
	nav.MoveToChild("a", "")
	cases := []struct {
		kind xmlnav.Kind
		ok   bool
		val  string
	}{
		{xmlnav.CommentNode, true, "note"},
		{xmlnav.TextNode, true, "text"},
		{xmlnav.ElementNode, true, ""},
		{xmlnav.ProcessingInstructionNode, false, ""},
		{xmlnav.AttributeNode, false, ""},
	}
	for _, c := range cases {
		sub := nav.Clone()
		if got := sub.MoveToChildKind(c.kind); got != c.ok {
			t.Errorf("MoveToChildKind(%s) = %v, want %v", c.kind, got, c.ok)
			continue
		}
		if c.ok && c.val != "" && sub.Value() != c.val {
			t.Errorf("MoveToChildKind(%s) value = %q, want %q", c.kind, sub.Value(), c.val)
		}
	}
}

func TestMoveToAttribute(t *testing.T) {
	nav := parseDoc(t, `<a x="1" xmlns:p="u" p:x="2"/>`)
	nav.MoveToChild("a", "")
	sub := nav.Clone()
	if !sub.MoveToAttribute("x", "u") {
		t.Fatal("MoveToAttribute x/u failed")
	}
	if sub.Value() != "2" {
		t.Errorf("got %q, want 2", sub.Value())
	}
	sub = nav.Clone()
	if !sub.MoveToAttribute("x", "") {
		t.Fatal("MoveToAttribute x failed")
	}
	if sub.Value() != "1" {
		t.Errorf("got %q, want 1", sub.Value())
	}
	sub = nav.Clone()
	if sub.MoveToAttribute("y", "") {
		t.Fatal("MoveToAttribute y succeeded")
	}
	if !sub.IsSamePosition(nav) {
		t.Error("failed move changed position")
	}
}

func TestMoveToFollowing(t *testing.T) {
	nav := parseDoc(t, `<a><b><c/></b><b/><d><b/></d></a>`)
	n := 0
	for nav.MoveToFollowing("b", "", nil) {
		n++
	}
	if n != 3 {
		t.Errorf("found %d b elements, want 3", n)
	}

	nav = parseDoc(t, `<a><b><c/></b><b/><d><b/></d></a>`)
	end := nav.Clone()
	end.MoveToChild("a", "")
	end.MoveToChild("d", "")
	n = 0
	for nav.MoveToFollowing("b", "", end) {
		n++
	}
	if n != 2 {
		t.Errorf("found %d b elements before end, want 2", n)
	}
}

func TestMoveToFollowingKind(t *testing.T) {
	nav := parseDoc(t, `<a>one<b>two</b><!--x-->three</a>`)
	var vals []string
	for nav.MoveToFollowingKind(xmlnav.TextNode, nil) {
		vals = append(vals, nav.Value())
	}
	want := []string{"one", "two", "three"}
	if len(vals) != len(want) {
		t.Fatalf("got %v, want %v", vals, want)
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("text %d = %q, want %q", i, vals[i], want[i])
		}
	}
	nav = parseDoc(t, `<a><b/></a>`)
	if nav.MoveToFollowingKind(xmlnav.AttributeNode, nil) {
		t.Error("MoveToFollowingKind accepted a non-content kind")
	}
}

func TestMoveToFollowingAttributeEnd(t *testing.T) {
	// an attribute end boundary normalizes to the following content
	// position
	nav := parseDoc(t, `<a><b x="1"/><c/></a>`)
	end := nav.Clone()
	end.MoveToChild("a", "")
	end.MoveToChild("b", "")
	end.MoveToAttribute("x", "")

	if nav.Clone().MoveToFollowing("c", "", end) {
		t.Error("found c beyond the normalized end boundary")
	}
	if !nav.Clone().MoveToFollowing("b", "", end) {
		t.Error("b not found before the end boundary")
	}
}

func TestMoveToNonDescendant(t *testing.T) {
	nav := parseDoc(t, `<a><b><c/></b><d/></a>`)
	nav.MoveToChild("a", "")
	nav.MoveToChild("b", "")
	sub := nav.Clone()
	if !sub.MoveToNonDescendant() || sub.LocalName() != "d" {
		t.Errorf("from b got %q, want d", sub.LocalName())
	}
	nav.MoveToChild("c", "")
	sub = nav.Clone()
	if !sub.MoveToNonDescendant() || sub.LocalName() != "d" {
		t.Errorf("from c got %q, want d", sub.LocalName())
	}

	// from an attribute, the parent's first content child
	nav = parseDoc(t, `<a x="1"><b/></a>`)
	nav.MoveToChild("a", "")
	nav.MoveToAttribute("x", "")
	if !nav.MoveToNonDescendant() || nav.LocalName() != "b" {
		t.Errorf("from attribute got %q, want b", nav.LocalName())
	}

	// at the very end of the document there is nowhere to go
	nav = parseDoc(t, `<a><b/></a>`)
	nav.MoveToChild("a", "")
	nav.MoveToChild("b", "")
	save := nav.Clone()
	if nav.MoveToNonDescendant() {
		t.Error("MoveToNonDescendant succeeded at document end")
	}
	if !nav.IsSamePosition(save) {
		t.Error("failed move changed position")
	}
}

func TestMoveToRoot(t *testing.T) {
	nav := parseDoc(t, `<a><b><c/></b></a>`)
	root := nav.Clone()
	nav.MoveToChild("a", "")
	nav.MoveToChild("b", "")
	nav.MoveToChild("c", "")
	nav.MoveToRoot()
	if !nav.IsSamePosition(root) {
		t.Error("MoveToRoot did not reach the root")
	}
	if nav.Kind() != xmlnav.RootNode {
		t.Errorf("got kind %s, want Root", nav.Kind())
	}
}

func TestCloneIndependence(t *testing.T) {
	nav := parseDoc(t, `<a><b/><c/></a>`)
	nav.MoveToChild("a", "")
	cl := nav.Clone()
	if !cl.IsSamePosition(nav) {
		t.Fatal("clone is at a different position")
	}
	cl.MoveToChild("b", "")
	if nav.LocalName() != "a" {
		t.Error("moving a clone moved the original")
	}
	if cl.IsSamePosition(nav) {
		t.Error("positions still compare same after moving the clone")
	}
}
