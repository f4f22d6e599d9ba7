package memdoc

import (
	"fmt"

	xmlnav "github.com/xmlnav/go-xmlnav"
	"github.com/xmlnav/go-xmlnav/event"
)

// Document is an editable in-memory tree.
type Document struct {
	root    *node
	baseURI string

	// the implicit xml prefix binding, one shared virtual node
	xmlNode *node
}

type Option func(*Document)

func WithBaseURI(uri string) Option {
	return func(d *Document) { d.baseURI = uri }
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		root: &node{kind: xmlnav.RootNode},
		xmlNode: &node{
			kind:  xmlnav.NamespaceNode,
			local: "xml",
			value: event.XMLNamespace,
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// FromReader builds a document by replaying an event stream.
func FromReader(r event.Reader, opts ...Option) (*Document, error) {
	d := New(opts...)
	w := &channel{doc: d, anchor: d.root, at: xmlnav.ChanLastChild}
	if err := event.Copy(w, r); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return d, nil
}

// Root returns a cursor positioned at the document root.
func (d *Document) Root() *xmlnav.Cursor {
	return xmlnav.New(&cursor{doc: d, n: d.root})
}

// inScope lists the namespace declaration nodes the namespace axis of
// el traverses: the element's own declarations for ScopeLocal;
// otherwise accumulated ancestor declarations nearest-first, shadowed
// prefixes and undeclarations skipped, with the implicit xml binding
// last under ScopeAll.
func (d *Document) inScope(el *node, scope xmlnav.NamespaceScope) []*node {
	if scope == xmlnav.ScopeLocal {
		return el.nsdecls
	}
	var res []*node
	seen := map[string]bool{}
	for e := el; e != nil; e = e.parent {
		for _, decl := range e.nsdecls {
			if seen[decl.local] {
				continue
			}
			seen[decl.local] = true
			if decl.value == "" {
				// undeclaration: meaningful only as a point
				// declaration, never part of an accumulated scope
				continue
			}
			res = append(res, decl)
		}
	}
	if scope == xmlnav.ScopeAll && !seen["xml"] {
		res = append(res, d.xmlNode)
	}
	return res
}

// findID locates the element carrying an id attribute with the given
// value. Both xml:id and unqualified id attributes are recognized.
func (d *Document) findID(id string) *node {
	var walk func(n *node) *node
	walk = func(n *node) *node {
		if n.kind == xmlnav.ElementNode {
			for _, a := range n.attrs {
				if a.local != "id" {
					continue
				}
				if a.uri != "" && a.uri != event.XMLNamespace {
					continue
				}
				if a.value == id {
					return n
				}
			}
		}
		for _, ch := range n.children {
			if res := walk(ch); res != nil {
				return res
			}
		}
		return nil
	}
	return walk(d.root)
}

func (d *Document) String() string {
	return fmt.Sprintf("memdoc.Document(%d top-level nodes)", len(d.root.children))
}
