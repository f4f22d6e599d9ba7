package xmlnav

import (
	"io"

	"github.com/xmlnav/go-xmlnav/event"
)

// Events returns a forward-only event stream over the subtree at the
// current position. From the root it streams every top-level node.
// Attribute and namespace positions yield their single event in
// attribute form (namespace declarations carry the xmlns URI).
func (c *Cursor) Events() event.Reader {
	return newSubtreeReader(c, false)
}

// ChildEvents returns the event stream over the children of the
// current position, excluding the position itself.
func (c *Cursor) ChildEvents() event.Reader {
	return newSubtreeReader(c, true)
}

const (
	stepEnter = iota
	stepNext
	stepDone
)

// subtreeReader walks a cloned cursor through the subtree, emitting
// events lazily. depth tracks nesting relative to the start; when
// spanSiblings is set the walk continues across depth-0 siblings
// (children-only streams and root documents).
type subtreeReader struct {
	nav          *Cursor
	queue        []event.Event
	state        int
	depth        int
	spanSiblings bool
}

func newSubtreeReader(c *Cursor, inner bool) *subtreeReader {
	r := &subtreeReader{nav: c.Clone(), state: stepEnter}
	inner = inner || c.Kind() == RootNode
	if inner {
		r.spanSiblings = true
		if !r.nav.src.MoveToFirstChild() {
			r.state = stepDone
		}
	}
	return r
}

func (r *subtreeReader) Read() (*event.Event, error) {
	for len(r.queue) == 0 {
		if r.state == stepDone {
			return nil, io.EOF
		}
		r.step()
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	return &ev, nil
}

func (r *subtreeReader) step() {
	switch r.state {
	case stepEnter:
		if r.nav.src.Kind() == ElementNode {
			r.enterElement()
			return
		}
		r.queue = append(r.queue, leafEvent(r.nav))
		r.state = stepNext
	case stepNext:
		if r.depth == 0 {
			if r.spanSiblings && r.nav.src.MoveToNext() {
				r.state = stepEnter
				return
			}
			r.state = stepDone
			return
		}
		if r.nav.src.MoveToNext() {
			r.state = stepEnter
			return
		}
		r.nav.src.MoveToParent()
		r.depth--
		r.queue = append(r.queue, event.Event{Type: event.ElementEnd})
	}
}

func (r *subtreeReader) enterElement() {
	empty := r.nav.src.IsEmptyElement()
	r.queue = append(r.queue, event.Event{
		Type:   event.ElementStart,
		Prefix: r.nav.src.Prefix(),
		Local:  r.nav.src.LocalName(),
		URI:    r.nav.src.NamespaceURI(),
		Empty:  empty,
	})
	// local namespace declarations travel in attribute form
	ns := r.nav.Clone()
	if ns.src.MoveToFirstNamespace(ScopeLocal) {
		for {
			prefix, local := "xmlns", ns.src.LocalName()
			if local == "" {
				prefix, local = "", "xmlns"
			}
			r.queue = append(r.queue, event.Event{
				Type:   event.Attribute,
				Prefix: prefix,
				Local:  local,
				URI:    event.XMLNSNamespace,
				Value:  ns.src.Value(),
			})
			if !ns.src.MoveToNextNamespace(ScopeLocal) {
				break
			}
		}
	}
	at := r.nav.Clone()
	if at.src.MoveToFirstAttribute() {
		for {
			r.queue = append(r.queue, event.Event{
				Type:   event.Attribute,
				Prefix: at.src.Prefix(),
				Local:  at.src.LocalName(),
				URI:    at.src.NamespaceURI(),
				Value:  at.src.Value(),
			})
			if !at.src.MoveToNextAttribute() {
				break
			}
		}
	}
	if r.nav.src.MoveToFirstChild() {
		r.depth++
		r.state = stepEnter
		return
	}
	if !empty {
		r.queue = append(r.queue, event.Event{Type: event.ElementEnd})
	}
	r.state = stepNext
}

func leafEvent(nav *Cursor) event.Event {
	switch nav.src.Kind() {
	case TextNode:
		return event.Event{Type: event.Text, Value: nav.src.Value()}
	case SignificantWhitespaceNode:
		return event.Event{Type: event.SignificantWhitespace, Value: nav.src.Value()}
	case WhitespaceNode:
		return event.Event{Type: event.Whitespace, Value: nav.src.Value()}
	case CommentNode:
		return event.Event{Type: event.Comment, Value: nav.src.Value()}
	case ProcessingInstructionNode:
		return event.Event{Type: event.ProcessingInstruction, Local: nav.src.LocalName(), Value: nav.src.Value()}
	case AttributeNode:
		return event.Event{
			Type:   event.Attribute,
			Prefix: nav.src.Prefix(),
			Local:  nav.src.LocalName(),
			URI:    nav.src.NamespaceURI(),
			Value:  nav.src.Value(),
		}
	case NamespaceNode:
		prefix, local := "xmlns", nav.src.LocalName()
		if local == "" {
			prefix, local = "", "xmlns"
		}
		return event.Event{
			Type:   event.Attribute,
			Prefix: prefix,
			Local:  local,
			URI:    event.XMLNSNamespace,
			Value:  nav.src.Value(),
		}
	}
	// Root handled by the caller
	return event.Event{Type: event.Text, Value: nav.src.Value()}
}
