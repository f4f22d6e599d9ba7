package xmlnav

import (
	"github.com/xmlnav/go-xmlnav/event"
)

// Reserved namespace URIs.
const (
	XMLNamespace   = event.XMLNamespace
	XMLNSNamespace = event.XMLNSNamespace
)

// Source is the capability set a tree backend supplies. Every derived
// algorithm in this package is written purely against it: no parent
// pointer, sibling index or depth is ever required from a backend
// beyond these moves.
//
// All moves report success with a bool and never error; on failure the
// position is unchanged.
type Source interface {
	// Clone returns an independent position over shared storage.
	Clone() Source

	Kind() Kind
	LocalName() string
	// Name returns the qualified name (prefix:local or local).
	Name() string
	NamespaceURI() string
	Prefix() string
	BaseURI() string
	// Value returns the string value: text content for text kinds,
	// the attribute value, the bound URI for a namespace node, and
	// the concatenated descendant text for elements and the root.
	Value() string
	IsEmptyElement() bool

	MoveToParent() bool
	MoveToFirstChild() bool
	MoveToNext() bool
	MoveToPrevious() bool
	MoveToFirstAttribute() bool
	MoveToNextAttribute() bool
	MoveToFirstNamespace(scope NamespaceScope) bool
	MoveToNextNamespace(scope NamespaceScope) bool

	// MoveTo moves to the position of other; false if other belongs
	// to a different backend or document.
	MoveTo(other Source) bool
	MoveToID(id string) bool
	// IsSamePosition is an equivalence relation over positions of the
	// same document.
	IsSamePosition(other Source) bool
}

// ChannelAt names the insertion point of a write channel relative to
// the position it was opened from.
type ChannelAt int

const (
	ChanBefore ChannelAt = iota
	ChanAfter
	ChanFirstChild
	ChanLastChild
	ChanAttributes
)

// Editable is the opt-in mutation contract. Backends that do not
// implement it reject every structural edit with ErrUnsupported.
//
// A Writer obtained from an Editable backend is a scoped resource: its
// effects commit on Close, and failing to close it leaves backend
// state inconsistent. Cursors positioned inside a range removed by
// DeleteRange or a replace enter a backend-defined state and must not
// be dereferenced afterward.
type Editable interface {
	Source

	// OpenChannel opens a write channel at the given insertion point.
	OpenChannel(at ChannelAt) (event.Writer, error)
	// OpenReplace opens a write channel whose commit replaces the
	// inclusive contiguous sibling range [this, last].
	OpenReplace(last Source) (event.Writer, error)
	// DeleteRange removes the inclusive contiguous sibling range
	// [this, last].
	DeleteRange(last Source) error
	SetValue(v string) error
}

// Cursor is a movable handle to one position in a virtual tree-shaped
// document. It is produced already positioned by a backend factory,
// is not safe for concurrent use, and is cheap to clone.
type Cursor struct {
	src    Source
	engine Engine
}

// New wraps a backend position in a Cursor. The cursor uses the
// default registered query engine until SetEngine overrides it.
func New(src Source) *Cursor {
	return &Cursor{src: src}
}

// Clone returns an independent cursor at the same logical position.
// Moving one never affects the other; the underlying document storage
// is shared.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{src: c.src.Clone(), engine: c.engine}
}

// Source returns the backend position the cursor wraps.
func (c *Cursor) Source() Source {
	return c.src
}

func (c *Cursor) Kind() Kind           { return c.src.Kind() }
func (c *Cursor) LocalName() string    { return c.src.LocalName() }
func (c *Cursor) Name() string         { return c.src.Name() }
func (c *Cursor) NamespaceURI() string { return c.src.NamespaceURI() }
func (c *Cursor) Prefix() string       { return c.src.Prefix() }
func (c *Cursor) BaseURI() string      { return c.src.BaseURI() }
func (c *Cursor) Value() string        { return c.src.Value() }
func (c *Cursor) IsEmptyElement() bool { return c.src.IsEmptyElement() }

func (c *Cursor) MoveToParent() bool         { return c.src.MoveToParent() }
func (c *Cursor) MoveToFirstChild() bool     { return c.src.MoveToFirstChild() }
func (c *Cursor) MoveToNext() bool           { return c.src.MoveToNext() }
func (c *Cursor) MoveToPrevious() bool       { return c.src.MoveToPrevious() }
func (c *Cursor) MoveToFirstAttribute() bool { return c.src.MoveToFirstAttribute() }
func (c *Cursor) MoveToNextAttribute() bool  { return c.src.MoveToNextAttribute() }

func (c *Cursor) MoveToFirstNamespace(scope NamespaceScope) bool {
	return c.src.MoveToFirstNamespace(scope)
}

func (c *Cursor) MoveToNextNamespace(scope NamespaceScope) bool {
	return c.src.MoveToNextNamespace(scope)
}

func (c *Cursor) MoveTo(other *Cursor) bool {
	return c.src.MoveTo(other.src)
}

func (c *Cursor) MoveToID(id string) bool {
	return c.src.MoveToID(id)
}

func (c *Cursor) IsSamePosition(other *Cursor) bool {
	return c.src.IsSamePosition(other.src)
}

// MoveToRoot moves the cursor to the document root.
func (c *Cursor) MoveToRoot() {
	for c.src.MoveToParent() {
	}
}
