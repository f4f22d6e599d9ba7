package event

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCopy(t *testing.T) {
	in := []Event{
		{Type: ElementStart, Local: "a"},
		{Type: Attribute, Local: "x", Value: "1"},
		{Type: Text, Value: "t"},
		{Type: ElementStart, Local: "b", Empty: true},
		{Type: ElementEnd},
	}
	col := &Collector{}
	if err := Copy(col, NewSliceReader(in)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in, col.Events); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCopyTranslatesNamespaceDecls(t *testing.T) {
	in := []Event{
		{Type: ElementStart, Local: "a", Empty: true},
		{Type: Attribute, Prefix: "xmlns", Local: "p", URI: XMLNSNamespace, Value: "u"},
		{Type: Attribute, Local: "xmlns", URI: XMLNSNamespace, Value: "d"},
	}
	var decls [][2]string
	w := &declRecorder{decls: &decls}
	if err := Copy(w, NewSliceReader(in)); err != nil {
		t.Fatal(err)
	}
	want := [][2]string{{"p", "u"}, {"", "d"}}
	if diff := cmp.Diff(want, decls); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// declRecorder records namespace declarations and ignores the rest.
type declRecorder struct {
	Collector
	decls *[][2]string
}

func (r *declRecorder) NamespaceDecl(prefix, uri string) error {
	*r.decls = append(*r.decls, [2]string{prefix, uri})
	return nil
}

func TestCopyUnbalanced(t *testing.T) {
	cases := [][]Event{
		{{Type: ElementStart, Local: "a"}},
		{{Type: ElementEnd}},
		{
			{Type: ElementStart, Local: "a"},
			{Type: ElementEnd},
			{Type: ElementEnd},
		},
	}
	for i, in := range cases {
		err := Copy(&Collector{}, NewSliceReader(in))
		if !errors.Is(err, ErrUnbalanced) {
			t.Errorf("case %d: got %v, want ErrUnbalanced", i, err)
		}
	}
}

func TestCopyNode(t *testing.T) {
	in := []Event{
		{Type: ElementStart, Local: "a"},
		{Type: Text, Value: "t"},
		{Type: ElementEnd},
		{Type: ElementStart, Local: "b", Empty: true},
	}
	src := NewSliceReader(in)
	col := &Collector{}
	if err := CopyNode(col, src); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in[:3], col.Events); diff != "" {
		t.Errorf("first node mismatch (-want +got):\n%s", diff)
	}
	col = &Collector{}
	if err := CopyNode(col, src); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(in[3:], col.Events); diff != "" {
		t.Errorf("second node mismatch (-want +got):\n%s", diff)
	}
}
