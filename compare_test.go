package xmlnav_test

import (
	"testing"

	xmlnav "github.com/xmlnav/go-xmlnav"
)

// nav positions a fresh cursor by following a path of child local
// names, then optionally an attribute name.
func nav(t *testing.T, root *xmlnav.Cursor, path ...string) *xmlnav.Cursor {
	t.Helper()
	c := root.Clone()
	for _, step := range path {
		if step[0] == '@' {
			if !c.MoveToAttribute(step[1:], "") {
				t.Fatalf("no attribute %q", step[1:])
			}
			continue
		}
		if !c.MoveToChild(step, "") {
			t.Fatalf("no child %q", step)
		}
	}
	return c
}

func TestComparePosition(t *testing.T) {
	root := parseDoc(t, `<a><b><c/><d/></b><e>x</e></a>`)
	cases := []struct {
		name   string
		p1, p2 []string
		want   xmlnav.Order
	}{
		{"siblings", []string{"a", "b", "c"}, []string{"a", "b", "d"}, xmlnav.OrderBefore},
		{"siblings reversed", []string{"a", "b", "d"}, []string{"a", "b", "c"}, xmlnav.OrderAfter},
		{"ancestor first", []string{"a", "b"}, []string{"a", "b", "d"}, xmlnav.OrderBefore},
		{"descendant first", []string{"a", "b", "d"}, []string{"a", "b"}, xmlnav.OrderAfter},
		{"across subtrees", []string{"a", "b", "c"}, []string{"a", "e"}, xmlnav.OrderBefore},
		{"uneven depths", []string{"a", "b", "d"}, []string{"a", "e"}, xmlnav.OrderBefore},
		{"root vs leaf", nil, []string{"a", "b", "c"}, xmlnav.OrderBefore},
		{"same", []string{"a", "e"}, []string{"a", "e"}, xmlnav.OrderSame},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p1, p2 := nav(t, root, c.p1...), nav(t, root, c.p2...)
			if got := p1.ComparePosition(p2); got != c.want {
				t.Errorf("got %s, want %s", got, c.want)
			}
			// antisymmetry
			var back xmlnav.Order
			switch c.want {
			case xmlnav.OrderBefore:
				back = xmlnav.OrderAfter
			case xmlnav.OrderAfter:
				back = xmlnav.OrderBefore
			default:
				back = c.want
			}
			if got := p2.ComparePosition(p1); got != back {
				t.Errorf("reversed: got %s, want %s", got, back)
			}
		})
	}
}

func TestComparePositionAxes(t *testing.T) {
	root := parseDoc(t, `<a xmlns:n="u" p="1" q="2"><b/></a>`)
	el := nav(t, root, "a")
	p := nav(t, root, "a", "@p")
	q := nav(t, root, "a", "@q")
	b := nav(t, root, "a", "b")
	ns := el.Clone()
	if !ns.MoveToFirstNamespace(xmlnav.ScopeExcludeXML) {
		t.Fatal("no namespace node")
	}

	if got := p.ComparePosition(q); got != xmlnav.OrderBefore {
		t.Errorf("p vs q: got %s, want Before", got)
	}
	if got := ns.ComparePosition(p); got != xmlnav.OrderBefore {
		t.Errorf("ns vs attr: got %s, want Before", got)
	}
	if got := q.ComparePosition(b); got != xmlnav.OrderBefore {
		t.Errorf("attr vs content: got %s, want Before", got)
	}
	if got := b.ComparePosition(ns); got != xmlnav.OrderAfter {
		t.Errorf("content vs ns: got %s, want After", got)
	}
	if got := el.ComparePosition(p); got != xmlnav.OrderBefore {
		t.Errorf("element vs own attr: got %s, want Before", got)
	}
}

func TestComparePositionUnrelated(t *testing.T) {
	r1 := parseDoc(t, `<a/>`)
	r2 := parseDoc(t, `<a/>`)
	p1, p2 := nav(t, r1, "a"), nav(t, r2, "a")
	if got := p1.ComparePosition(p2); got != xmlnav.OrderUnknown {
		t.Errorf("got %s, want Unknown", got)
	}
}
