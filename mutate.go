package xmlnav

import (
	"fmt"

	"github.com/xmlnav/go-xmlnav/event"
)

// FragmentParser parses a markup fragment into events, resolving
// prefixes against the supplied namespace context.
type FragmentParser func(fragment string, ns map[string]string) (event.Reader, error)

var fragmentParser FragmentParser

// RegisterFragmentParser installs the parser used by the *Markup
// mutation conveniences. The parse package registers itself from
// init, so importing it is enough.
func RegisterFragmentParser(p FragmentParser) {
	fragmentParser = p
}

func (c *Cursor) editable() (Editable, error) {
	ed, ok := c.src.(Editable)
	if !ok {
		return nil, fmt.Errorf("%w: backend is read-only", ErrUnsupported)
	}
	return ed, nil
}

func (c *Cursor) siblingChannel(at ChannelAt) (event.Writer, error) {
	k := c.src.Kind()
	if !k.IsContent() || k == RootNode {
		return nil, fmt.Errorf("%w: cannot insert siblings at a %s node", ErrPosition, k)
	}
	ed, err := c.editable()
	if err != nil {
		return nil, err
	}
	return ed.OpenChannel(at)
}

func (c *Cursor) childChannel(at ChannelAt) (event.Writer, error) {
	switch c.src.Kind() {
	case ElementNode, RootNode:
	default:
		return nil, fmt.Errorf("%w: cannot insert children at a %s node", ErrPosition, c.src.Kind())
	}
	ed, err := c.editable()
	if err != nil {
		return nil, err
	}
	return ed.OpenChannel(at)
}

// InsertBefore opens a write channel inserting new siblings
// immediately before the current position.
func (c *Cursor) InsertBefore() (event.Writer, error) {
	return c.siblingChannel(ChanBefore)
}

// InsertAfter opens a write channel inserting new siblings
// immediately after the current position.
func (c *Cursor) InsertAfter() (event.Writer, error) {
	return c.siblingChannel(ChanAfter)
}

// PrependChild opens a write channel inserting new content before any
// existing children.
func (c *Cursor) PrependChild() (event.Writer, error) {
	return c.childChannel(ChanFirstChild)
}

// AppendChild opens a write channel inserting new content after any
// existing children.
func (c *Cursor) AppendChild() (event.Writer, error) {
	return c.childChannel(ChanLastChild)
}

// CreateAttributes opens a write channel accepting attribute and
// namespace-declaration events on the current element.
func (c *Cursor) CreateAttributes() (event.Writer, error) {
	if c.src.Kind() != ElementNode {
		return nil, fmt.Errorf("%w: attributes only on elements, got %s", ErrPosition, c.src.Kind())
	}
	ed, err := c.editable()
	if err != nil {
		return nil, err
	}
	return ed.OpenChannel(ChanAttributes)
}

// ReplaceRange opens a write channel whose commit replaces the
// inclusive sibling range [this, last]. last must be this or a
// following sibling. After a successful commit the cursor position is
// backend-defined and must be re-established by the caller.
func (c *Cursor) ReplaceRange(last *Cursor) (event.Writer, error) {
	if err := c.checkRange(last); err != nil {
		return nil, err
	}
	ed, err := c.editable()
	if err != nil {
		return nil, err
	}
	return ed.OpenReplace(last.src)
}

// DeleteRange removes the inclusive sibling range [this, last] and
// moves the cursor to the former parent. Cursors left inside the
// removed range must not be used afterward.
func (c *Cursor) DeleteRange(last *Cursor) error {
	if err := c.checkRange(last); err != nil {
		return err
	}
	ed, err := c.editable()
	if err != nil {
		return err
	}
	parent := c.Clone()
	parent.src.MoveToParent()
	if err := ed.DeleteRange(last.src); err != nil {
		return err
	}
	c.src.MoveTo(parent.src)
	return nil
}

// DeleteSelf removes the current node and moves the cursor to its
// former parent.
func (c *Cursor) DeleteSelf() error {
	return c.DeleteRange(c)
}

func (c *Cursor) checkRange(last *Cursor) error {
	k := c.src.Kind()
	if !k.IsContent() || k == RootNode {
		return fmt.Errorf("%w: cannot replace or delete a %s node", ErrPosition, k)
	}
	if last == nil {
		return fmt.Errorf("%w: nil range end", ErrArgument)
	}
	lk := last.src.Kind()
	if !lk.IsContent() || lk == RootNode {
		return fmt.Errorf("%w: range end is a %s node", ErrPosition, lk)
	}
	// the range must be this node or contiguous following siblings
	nav := c.Clone()
	for {
		if nav.IsSamePosition(last) {
			return nil
		}
		if !nav.src.MoveToNext() {
			return fmt.Errorf("%w: range end is not this node or a following sibling", ErrArgument)
		}
	}
}

// replay pumps src into a write channel and releases it on every exit
// path.
func replay(w event.Writer, src event.Reader) error {
	if err := event.Copy(w, src); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// InsertBeforeEvents inserts the nodes described by src before the
// current position.
func (c *Cursor) InsertBeforeEvents(src event.Reader) error {
	w, err := c.InsertBefore()
	if err != nil {
		return err
	}
	return replay(w, src)
}

// InsertAfterEvents inserts the nodes described by src after the
// current position.
func (c *Cursor) InsertAfterEvents(src event.Reader) error {
	w, err := c.InsertAfter()
	if err != nil {
		return err
	}
	return replay(w, src)
}

// PrependChildEvents inserts the nodes described by src before any
// existing children.
func (c *Cursor) PrependChildEvents(src event.Reader) error {
	w, err := c.PrependChild()
	if err != nil {
		return err
	}
	return replay(w, src)
}

// AppendChildEvents inserts the nodes described by src after any
// existing children.
func (c *Cursor) AppendChildEvents(src event.Reader) error {
	w, err := c.AppendChild()
	if err != nil {
		return err
	}
	return replay(w, src)
}

// ReplaceSelfEvents replaces the current node with the nodes described
// by src.
func (c *Cursor) ReplaceSelfEvents(src event.Reader) error {
	w, err := c.ReplaceRange(c)
	if err != nil {
		return err
	}
	return replay(w, src)
}

// fragmentEvents parses a markup fragment in the namespace scope of
// the insertion target: the parent's scope for sibling insertion, the
// current element's scope for child insertion.
func (c *Cursor) fragmentEvents(fragment string, sibling bool) (event.Reader, error) {
	if fragmentParser == nil {
		return nil, fmt.Errorf("%w: no fragment parser registered", ErrUnsupported)
	}
	scopeAt := c
	if sibling {
		scopeAt = c.Clone()
		scopeAt.src.MoveToParent()
	}
	return fragmentParser(fragment, scopeAt.NamespacesInScope(ScopeAll))
}

// InsertBeforeMarkup parses a markup fragment and inserts it before
// the current position.
func (c *Cursor) InsertBeforeMarkup(fragment string) error {
	src, err := c.fragmentEvents(fragment, true)
	if err != nil {
		return err
	}
	return c.InsertBeforeEvents(src)
}

// InsertAfterMarkup parses a markup fragment and inserts it after the
// current position.
func (c *Cursor) InsertAfterMarkup(fragment string) error {
	src, err := c.fragmentEvents(fragment, true)
	if err != nil {
		return err
	}
	return c.InsertAfterEvents(src)
}

// PrependChildMarkup parses a markup fragment and inserts it before
// any existing children.
func (c *Cursor) PrependChildMarkup(fragment string) error {
	src, err := c.fragmentEvents(fragment, false)
	if err != nil {
		return err
	}
	return c.PrependChildEvents(src)
}

// AppendChildMarkup parses a markup fragment and inserts it after any
// existing children.
func (c *Cursor) AppendChildMarkup(fragment string) error {
	src, err := c.fragmentEvents(fragment, false)
	if err != nil {
		return err
	}
	return c.AppendChildEvents(src)
}

// ReplaceSelfMarkup replaces the current node with a parsed markup
// fragment.
func (c *Cursor) ReplaceSelfMarkup(fragment string) error {
	src, err := c.fragmentEvents(fragment, true)
	if err != nil {
		return err
	}
	return c.ReplaceSelfEvents(src)
}

// InsertBeforeFrom copies another cursor's subtree, which may belong
// to a different document, before the current position.
func (c *Cursor) InsertBeforeFrom(other *Cursor) error {
	return c.InsertBeforeEvents(other.Events())
}

// InsertAfterFrom copies another cursor's subtree after the current
// position.
func (c *Cursor) InsertAfterFrom(other *Cursor) error {
	return c.InsertAfterEvents(other.Events())
}

// AppendChildFrom copies another cursor's subtree after any existing
// children.
func (c *Cursor) AppendChildFrom(other *Cursor) error {
	return c.AppendChildEvents(other.Events())
}

// PrependChildFrom copies another cursor's subtree before any existing
// children.
func (c *Cursor) PrependChildFrom(other *Cursor) error {
	return c.PrependChildEvents(other.Events())
}

// CreateAttribute adds one attribute to the current element.
func (c *Cursor) CreateAttribute(prefix, local, uri, value string) error {
	w, err := c.CreateAttributes()
	if err != nil {
		return err
	}
	if err := w.Attribute(prefix, local, uri, value); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func writeElement(w event.Writer, prefix, local, uri, value string) error {
	if err := w.ElementStart(prefix, local, uri, value == ""); err != nil {
		w.Close()
		return err
	}
	if value != "" {
		if err := w.Text(value); err != nil {
			w.Close()
			return err
		}
		if err := w.ElementEnd(); err != nil {
			w.Close()
			return err
		}
	}
	return w.Close()
}

// AppendChildElement appends one element with optional text content.
func (c *Cursor) AppendChildElement(prefix, local, uri, value string) error {
	w, err := c.AppendChild()
	if err != nil {
		return err
	}
	return writeElement(w, prefix, local, uri, value)
}

// PrependChildElement prepends one element with optional text content.
func (c *Cursor) PrependChildElement(prefix, local, uri, value string) error {
	w, err := c.PrependChild()
	if err != nil {
		return err
	}
	return writeElement(w, prefix, local, uri, value)
}

// InsertElementBefore inserts one element with optional text content
// before the current position.
func (c *Cursor) InsertElementBefore(prefix, local, uri, value string) error {
	w, err := c.InsertBefore()
	if err != nil {
		return err
	}
	return writeElement(w, prefix, local, uri, value)
}

// InsertElementAfter inserts one element with optional text content
// after the current position.
func (c *Cursor) InsertElementAfter(prefix, local, uri, value string) error {
	w, err := c.InsertAfter()
	if err != nil {
		return err
	}
	return writeElement(w, prefix, local, uri, value)
}

// SetValue replaces the string value of the current node. Root and
// namespace positions reject it.
func (c *Cursor) SetValue(v string) error {
	switch c.src.Kind() {
	case RootNode, NamespaceNode:
		return fmt.Errorf("%w: cannot set value of a %s node", ErrPosition, c.src.Kind())
	}
	ed, err := c.editable()
	if err != nil {
		return err
	}
	return ed.SetValue(v)
}
