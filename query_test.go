package xmlnav_test

import (
	"errors"
	"testing"

	xmlnav "github.com/xmlnav/go-xmlnav"
)

func TestSliceSequence(t *testing.T) {
	root := parseDoc(t, `<a><b/><c/></a>`)
	b := nav(t, root, "a", "b")
	c := nav(t, root, "a", "c")
	seq := xmlnav.NewSliceSequence([]*xmlnav.Cursor{b, c})
	if seq.Current() != nil {
		t.Error("Current before Next is not nil")
	}
	var names []string
	for seq.Next() {
		names = append(names, seq.Current().LocalName())
	}
	if !sameStrings(names, []string{"b", "c"}) {
		t.Errorf("got %v", names)
	}
	if seq.Next() {
		t.Error("consumed sequence advanced")
	}
}

func TestSingleton(t *testing.T) {
	root := parseDoc(t, `<a/>`)
	seq := xmlnav.NewSingleton(nav(t, root, "a"))
	if !seq.Next() {
		t.Fatal("empty singleton")
	}
	if seq.Current().LocalName() != "a" {
		t.Errorf("got %q", seq.Current().LocalName())
	}
	if seq.Next() {
		t.Error("singleton yielded twice")
	}
}

func TestNoEngineRegistered(t *testing.T) {
	// this test binary does not import a query engine package
	root := parseDoc(t, `<a/>`)
	if _, err := root.Select(`anything`); !errors.Is(err, xmlnav.ErrQuery) {
		t.Errorf("got %v, want ErrQuery", err)
	}
	if _, err := root.Matches(`anything`); !errors.Is(err, xmlnav.ErrQuery) {
		t.Errorf("got %v, want ErrQuery", err)
	}
}

func TestSetEngine(t *testing.T) {
	root := parseDoc(t, `<a/>`)
	root.SetEngine(stubEngine{})
	seq, err := root.Select(`q`)
	if err != nil {
		t.Fatal(err)
	}
	if seq.Next() {
		t.Error("stub sequence not empty")
	}
	// clones inherit the engine
	if _, err := root.Clone().Select(`q`); err != nil {
		t.Errorf("clone lost the engine: %v", err)
	}
}

type stubEngine struct{}

type stubCompiled struct{ text string }

func (s stubCompiled) Text() string { return s.text }

func (stubEngine) CompileSelect(text string, ns map[string]string) (xmlnav.Compiled, error) {
	return stubCompiled{text: text}, nil
}

func (stubEngine) CompileMatch(text string) (xmlnav.Compiled, error) {
	return stubCompiled{text: text}, nil
}

func (stubEngine) Evaluate(expr xmlnav.Compiled, ctx xmlnav.Sequence) (any, error) {
	return xmlnav.NewSliceSequence(nil), nil
}

func (stubEngine) Match(expr xmlnav.Compiled, pos *xmlnav.Cursor) (bool, error) {
	return false, nil
}
