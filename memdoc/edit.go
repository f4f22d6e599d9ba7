package memdoc

import (
	"fmt"
	"slices"

	xmlnav "github.com/xmlnav/go-xmlnav"
	"github.com/xmlnav/go-xmlnav/event"
)

func (c *cursor) OpenChannel(at xmlnav.ChannelAt) (event.Writer, error) {
	switch at {
	case xmlnav.ChanBefore, xmlnav.ChanAfter:
		if c.n.parent == nil || !c.n.kind.IsContent() {
			return nil, fmt.Errorf("%w: no sibling axis at a %s node", xmlnav.ErrPosition, c.n.kind)
		}
	case xmlnav.ChanFirstChild, xmlnav.ChanLastChild:
		switch c.n.kind {
		case xmlnav.ElementNode, xmlnav.RootNode:
		default:
			return nil, fmt.Errorf("%w: no child axis at a %s node", xmlnav.ErrPosition, c.n.kind)
		}
	case xmlnav.ChanAttributes:
		if c.n.kind != xmlnav.ElementNode {
			return nil, fmt.Errorf("%w: no attribute axis at a %s node", xmlnav.ErrPosition, c.n.kind)
		}
	default:
		return nil, fmt.Errorf("%w: unknown channel position %d", xmlnav.ErrArgument, at)
	}
	return &channel{doc: c.doc, anchor: c.n, at: at}, nil
}

func (c *cursor) OpenReplace(last xmlnav.Source) (event.Writer, error) {
	lc, ok := last.(*cursor)
	if !ok || lc.doc != c.doc {
		return nil, fmt.Errorf("%w: range end from a different document", xmlnav.ErrArgument)
	}
	if _, _, err := c.doc.contiguous(c.n, lc.n); err != nil {
		return nil, err
	}
	return &channel{doc: c.doc, anchor: c.n, at: xmlnav.ChanBefore, replaceLast: lc.n}, nil
}

func (c *cursor) DeleteRange(last xmlnav.Source) error {
	lc, ok := last.(*cursor)
	if !ok || lc.doc != c.doc {
		return fmt.Errorf("%w: range end from a different document", xmlnav.ErrArgument)
	}
	i, j, err := c.doc.contiguous(c.n, lc.n)
	if err != nil {
		return err
	}
	parent := c.n.parent
	removed := slices.Clone(parent.children[i : j+1])
	parent.children = slices.Delete(parent.children, i, j+1)
	for _, r := range removed {
		// cursors still inside the range now dangle from a detached
		// subtree; the contract declares them unusable
		r.parent = nil
	}
	return nil
}

func (c *cursor) SetValue(v string) error {
	switch c.n.kind {
	case xmlnav.ElementNode:
		t := &node{kind: xmlnav.TextNode, parent: c.n, value: v}
		c.n.children = []*node{t}
		c.n.empty = false
	case xmlnav.AttributeNode, xmlnav.TextNode, xmlnav.SignificantWhitespaceNode,
		xmlnav.WhitespaceNode, xmlnav.CommentNode, xmlnav.ProcessingInstructionNode:
		c.n.value = v
	default:
		return fmt.Errorf("%w: cannot set value of a %s node", xmlnav.ErrPosition, c.n.kind)
	}
	return nil
}

// contiguous validates that first and last are siblings under one
// parent with first at or before last, returning their indices.
func (d *Document) contiguous(first, last *node) (int, int, error) {
	parent := first.parent
	if parent == nil || !first.kind.IsContent() || first.kind == xmlnav.RootNode {
		return 0, 0, fmt.Errorf("%w: cannot edit a %s node here", xmlnav.ErrPosition, first.kind)
	}
	if last.parent != parent {
		return 0, 0, fmt.Errorf("%w: range end has a different parent", xmlnav.ErrArgument)
	}
	i := indexOf(parent.children, first)
	j := indexOf(parent.children, last)
	if i < 0 || j < i {
		return 0, 0, fmt.Errorf("%w: range end precedes range start", xmlnav.ErrArgument)
	}
	return i, j, nil
}

// channel is a scoped write channel: events accumulate into detached
// nodes, and Close splices them into the tree. Nothing is visible to
// other cursors until Close.
type channel struct {
	doc    *Document
	anchor *node
	at     xmlnav.ChannelAt

	// replaceLast marks a replace channel over [anchor, replaceLast]
	replaceLast *node

	stack []*node
	nodes []*node

	// channel-level attribute and namespace events (ChanAttributes)
	attrs []*node
	nss   []*node

	// attrTarget receives attribute events; set by ElementStart,
	// cleared by any content event
	attrTarget *node

	closed bool
	err    error
}

func (ch *channel) fail(err error) error {
	if ch.err == nil {
		ch.err = err
	}
	return err
}

func (ch *channel) attach(n *node) {
	if len(ch.stack) > 0 {
		top := ch.stack[len(ch.stack)-1]
		n.parent = top
		top.children = append(top.children, n)
		top.empty = false
		return
	}
	ch.nodes = append(ch.nodes, n)
}

func (ch *channel) content(n *node) error {
	if ch.at == xmlnav.ChanAttributes && len(ch.stack) == 0 {
		return ch.fail(fmt.Errorf("%w: attribute channel accepts only attribute and namespace events", xmlnav.ErrPosition))
	}
	ch.attrTarget = nil
	ch.attach(n)
	return nil
}

func (ch *channel) ElementStart(prefix, local, uri string, empty bool) error {
	if local == "" {
		return ch.fail(fmt.Errorf("%w: element with empty name", xmlnav.ErrArgument))
	}
	n := &node{
		kind:   xmlnav.ElementNode,
		prefix: prefix,
		local:  local,
		uri:    uri,
		empty:  empty,
	}
	if err := ch.content(n); err != nil {
		return err
	}
	if !empty {
		ch.stack = append(ch.stack, n)
	}
	ch.attrTarget = n
	return nil
}

func (ch *channel) ElementEnd() error {
	ch.attrTarget = nil
	if len(ch.stack) == 0 {
		return ch.fail(fmt.Errorf("%w: element end without start", xmlnav.ErrArgument))
	}
	ch.stack = ch.stack[:len(ch.stack)-1]
	return nil
}

func (ch *channel) Attribute(prefix, local, uri, value string) error {
	if uri == event.XMLNSNamespace {
		if prefix == "" {
			return ch.NamespaceDecl("", value)
		}
		return ch.NamespaceDecl(local, value)
	}
	n := &node{
		kind:   xmlnav.AttributeNode,
		prefix: prefix,
		local:  local,
		uri:    uri,
		value:  value,
	}
	if ch.attrTarget != nil {
		n.parent = ch.attrTarget
		ch.attrTarget.attrs = append(ch.attrTarget.attrs, n)
		return nil
	}
	if ch.at == xmlnav.ChanAttributes && len(ch.stack) == 0 {
		ch.attrs = append(ch.attrs, n)
		return nil
	}
	return ch.fail(fmt.Errorf("%w: attribute event outside an element start", xmlnav.ErrPosition))
}

func (ch *channel) NamespaceDecl(prefix, uri string) error {
	n := &node{
		kind:  xmlnav.NamespaceNode,
		local: prefix,
		value: uri,
	}
	if ch.attrTarget != nil {
		n.parent = ch.attrTarget
		ch.attrTarget.nsdecls = append(ch.attrTarget.nsdecls, n)
		return nil
	}
	if ch.at == xmlnav.ChanAttributes && len(ch.stack) == 0 {
		ch.nss = append(ch.nss, n)
		return nil
	}
	return ch.fail(fmt.Errorf("%w: namespace event outside an element start", xmlnav.ErrPosition))
}

func (ch *channel) text(kind xmlnav.Kind, s string) error {
	return ch.content(&node{kind: kind, value: s})
}

func (ch *channel) Text(s string) error {
	return ch.text(xmlnav.TextNode, s)
}

func (ch *channel) SignificantWhitespace(s string) error {
	return ch.text(xmlnav.SignificantWhitespaceNode, s)
}

func (ch *channel) Whitespace(s string) error {
	return ch.text(xmlnav.WhitespaceNode, s)
}

func (ch *channel) Comment(s string) error {
	return ch.content(&node{kind: xmlnav.CommentNode, value: s})
}

func (ch *channel) ProcessingInstruction(target, value string) error {
	return ch.content(&node{kind: xmlnav.ProcessingInstructionNode, local: target, value: value})
}

// Close commits the accumulated nodes. It is the release point of the
// channel: before Close nothing is visible, after Close the splice is
// visible to every cursor of the document.
func (ch *channel) Close() error {
	if ch.closed {
		return ch.err
	}
	ch.closed = true
	if ch.err != nil {
		return ch.err
	}
	if len(ch.stack) > 0 {
		return ch.fail(fmt.Errorf("%w: %d unclosed elements at channel close", xmlnav.ErrArgument, len(ch.stack)))
	}
	return ch.splice()
}

func (ch *channel) splice() error {
	if ch.replaceLast != nil {
		i, j, err := ch.doc.contiguous(ch.anchor, ch.replaceLast)
		if err != nil {
			return ch.fail(err)
		}
		parent := ch.anchor.parent
		removed := slices.Clone(parent.children[i : j+1])
		for _, n := range ch.nodes {
			n.parent = parent
		}
		parent.children = slices.Concat(parent.children[:i], ch.nodes, parent.children[j+1:])
		for _, r := range removed {
			r.parent = nil
		}
		return nil
	}
	switch ch.at {
	case xmlnav.ChanBefore, xmlnav.ChanAfter:
		parent := ch.anchor.parent
		i := indexOf(parent.children, ch.anchor)
		if i < 0 {
			return ch.fail(fmt.Errorf("%w: channel anchor no longer in document", xmlnav.ErrPosition))
		}
		if ch.at == xmlnav.ChanAfter {
			i++
		}
		for _, n := range ch.nodes {
			n.parent = parent
		}
		parent.children = slices.Insert(parent.children, i, ch.nodes...)
	case xmlnav.ChanFirstChild:
		for _, n := range ch.nodes {
			n.parent = ch.anchor
		}
		ch.anchor.children = slices.Insert(ch.anchor.children, 0, ch.nodes...)
		if len(ch.nodes) > 0 {
			ch.anchor.empty = false
		}
	case xmlnav.ChanLastChild:
		for _, n := range ch.nodes {
			n.parent = ch.anchor
		}
		ch.anchor.children = append(ch.anchor.children, ch.nodes...)
		if len(ch.nodes) > 0 {
			ch.anchor.empty = false
		}
	case xmlnav.ChanAttributes:
		for _, a := range ch.attrs {
			a.parent = ch.anchor
		}
		for _, ns := range ch.nss {
			ns.parent = ch.anchor
		}
		ch.anchor.attrs = append(ch.anchor.attrs, ch.attrs...)
		ch.anchor.nsdecls = append(ch.anchor.nsdecls, ch.nss...)
	}
	return nil
}
