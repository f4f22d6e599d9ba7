package yamlsrc

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xmlnav/go-xmlnav/event"
	"github.com/xmlnav/go-xmlnav/memdoc"
)

func TestNew(t *testing.T) {
	in := "name: hi\nitems:\n  - 1\n  - 2\nmeta:\n  kind: demo\n"
	r, err := New([]byte(in), "cfg")
	if err != nil {
		t.Fatal(err)
	}
	col := &event.Collector{}
	if err := event.Copy(col, r); err != nil {
		t.Fatal(err)
	}
	want := []event.Event{
		{Type: event.ElementStart, Local: "cfg"},
		{Type: event.ElementStart, Local: "name"},
		{Type: event.Text, Value: "hi"},
		{Type: event.ElementEnd},
		{Type: event.ElementStart, Local: "items"},
		{Type: event.Text, Value: "1"},
		{Type: event.ElementEnd},
		{Type: event.ElementStart, Local: "items"},
		{Type: event.Text, Value: "2"},
		{Type: event.ElementEnd},
		{Type: event.ElementStart, Local: "meta"},
		{Type: event.ElementStart, Local: "kind"},
		{Type: event.Text, Value: "demo"},
		{Type: event.ElementEnd},
		{Type: event.ElementEnd},
		{Type: event.ElementEnd},
	}
	if diff := cmp.Diff(want, col.Events); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNewIntoDocument(t *testing.T) {
	r, err := New([]byte("a: 1\nb:\n"), "doc")
	if err != nil {
		t.Fatal(err)
	}
	d, err := memdoc.FromReader(r)
	if err != nil {
		t.Fatal(err)
	}
	c := d.Root()
	if !c.MoveToChild("doc", "") || !c.MoveToChild("a", "") {
		t.Fatal("navigation failed")
	}
	if c.Value() != "1" {
		t.Errorf("value = %q, want 1", c.Value())
	}
	c.MoveToParent()
	if !c.MoveToChild("b", "") {
		t.Fatal("null value element missing")
	}
	if !c.IsEmptyElement() {
		t.Error("null value not an empty element")
	}
}

func TestNewBadInput(t *testing.T) {
	if _, err := New([]byte("a: [unclosed"), "doc"); err == nil {
		t.Error("malformed yaml accepted")
	}
}
