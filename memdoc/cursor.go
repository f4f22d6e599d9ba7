package memdoc

import (
	xmlnav "github.com/xmlnav/go-xmlnav"
)

// cursor implements xmlnav.Source and xmlnav.Editable over a Document.
type cursor struct {
	doc *Document
	n   *node

	// nsOwner is the element whose namespace axis is being traversed
	// when n is a namespace node. Namespace nodes are per-element: the
	// same declaration reached from two elements yields two distinct
	// positions.
	nsOwner *node
}

var (
	_ xmlnav.Source   = (*cursor)(nil)
	_ xmlnav.Editable = (*cursor)(nil)
)

func (c *cursor) Clone() xmlnav.Source {
	cp := *c
	return &cp
}

func (c *cursor) Kind() xmlnav.Kind    { return c.n.kind }
func (c *cursor) LocalName() string    { return c.n.local }
func (c *cursor) Name() string         { return c.n.name() }
func (c *cursor) NamespaceURI() string { return c.n.uri }
func (c *cursor) Prefix() string       { return c.n.prefix }
func (c *cursor) Value() string        { return c.n.stringValue() }

func (c *cursor) BaseURI() string {
	for n := c.n; n != nil; n = n.parent {
		if n.baseURI != "" {
			return n.baseURI
		}
	}
	return c.doc.baseURI
}

func (c *cursor) IsEmptyElement() bool {
	return c.n.kind == xmlnav.ElementNode && c.n.empty && len(c.n.children) == 0
}

func (c *cursor) MoveToParent() bool {
	if c.n.kind == xmlnav.NamespaceNode {
		if c.nsOwner == nil {
			return false
		}
		c.n, c.nsOwner = c.nsOwner, nil
		return true
	}
	if c.n.parent == nil {
		return false
	}
	c.n = c.n.parent
	return true
}

func (c *cursor) MoveToFirstChild() bool {
	if len(c.n.children) == 0 {
		return false
	}
	switch c.n.kind {
	case xmlnav.ElementNode, xmlnav.RootNode:
		c.n = c.n.children[0]
		return true
	}
	return false
}

func (c *cursor) MoveToNext() bool {
	p := c.n.parent
	if p == nil || !c.n.kind.IsContent() {
		return false
	}
	i := indexOf(p.children, c.n)
	if i < 0 || i+1 >= len(p.children) {
		return false
	}
	c.n = p.children[i+1]
	return true
}

func (c *cursor) MoveToPrevious() bool {
	p := c.n.parent
	if p == nil || !c.n.kind.IsContent() {
		return false
	}
	i := indexOf(p.children, c.n)
	if i <= 0 {
		return false
	}
	c.n = p.children[i-1]
	return true
}

func (c *cursor) MoveToFirstAttribute() bool {
	if c.n.kind != xmlnav.ElementNode || len(c.n.attrs) == 0 {
		return false
	}
	c.n = c.n.attrs[0]
	return true
}

func (c *cursor) MoveToNextAttribute() bool {
	if c.n.kind != xmlnav.AttributeNode || c.n.parent == nil {
		return false
	}
	i := indexOf(c.n.parent.attrs, c.n)
	if i < 0 || i+1 >= len(c.n.parent.attrs) {
		return false
	}
	c.n = c.n.parent.attrs[i+1]
	return true
}

func (c *cursor) MoveToFirstNamespace(scope xmlnav.NamespaceScope) bool {
	if c.n.kind != xmlnav.ElementNode {
		return false
	}
	list := c.doc.inScope(c.n, scope)
	if len(list) == 0 {
		return false
	}
	c.nsOwner = c.n
	c.n = list[0]
	return true
}

func (c *cursor) MoveToNextNamespace(scope xmlnav.NamespaceScope) bool {
	if c.n.kind != xmlnav.NamespaceNode || c.nsOwner == nil {
		return false
	}
	list := c.doc.inScope(c.nsOwner, scope)
	i := indexOf(list, c.n)
	if i < 0 || i+1 >= len(list) {
		return false
	}
	c.n = list[i+1]
	return true
}

func (c *cursor) MoveTo(other xmlnav.Source) bool {
	o, ok := other.(*cursor)
	if !ok || o.doc != c.doc {
		return false
	}
	c.n, c.nsOwner = o.n, o.nsOwner
	return true
}

func (c *cursor) MoveToID(id string) bool {
	n := c.doc.findID(id)
	if n == nil {
		return false
	}
	c.n, c.nsOwner = n, nil
	return true
}

func (c *cursor) IsSamePosition(other xmlnav.Source) bool {
	o, ok := other.(*cursor)
	if !ok {
		return false
	}
	return o.doc == c.doc && o.n == c.n && o.nsOwner == c.nsOwner
}
