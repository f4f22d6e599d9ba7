package event

import "io"

// Reader provides events from a source (a parsed fragment, a cursor
// subtree, a format adapter, etc.). Read returns io.EOF when the
// source is exhausted.
type Reader interface {
	Read() (*Event, error)
}

// Writer receives node-construction events, one method per event kind.
// A Writer obtained from an editable backend is a scoped write channel:
// it must be closed on every exit path, and its effects become visible
// only on Close.
type Writer interface {
	ElementStart(prefix, local, uri string, empty bool) error
	ElementEnd() error
	Attribute(prefix, local, uri, value string) error
	NamespaceDecl(prefix, uri string) error
	Text(s string) error
	SignificantWhitespace(s string) error
	Whitespace(s string) error
	Comment(s string) error
	ProcessingInstruction(target, value string) error
	Close() error
}

// EmptyReader provides an empty event stream.
type EmptyReader struct{}

func NewEmptyReader() *EmptyReader {
	return &EmptyReader{}
}

// Read returns io.EOF immediately.
func (r *EmptyReader) Read() (*Event, error) {
	return nil, io.EOF
}

// SliceReader replays a fixed event sequence.
type SliceReader struct {
	events []Event
	at     int
}

func NewSliceReader(events []Event) *SliceReader {
	return &SliceReader{events: events}
}

func (r *SliceReader) Read() (*Event, error) {
	if r.at >= len(r.events) {
		return nil, io.EOF
	}
	ev := &r.events[r.at]
	r.at++
	return ev, nil
}

// Collector is a Writer that records events as values. It is the
// read-side inverse of SliceReader.
type Collector struct {
	Events []Event
}

func (c *Collector) add(ev Event) error {
	c.Events = append(c.Events, ev)
	return nil
}

func (c *Collector) ElementStart(prefix, local, uri string, empty bool) error {
	return c.add(Event{Type: ElementStart, Prefix: prefix, Local: local, URI: uri, Empty: empty})
}

func (c *Collector) ElementEnd() error {
	return c.add(Event{Type: ElementEnd})
}

func (c *Collector) Attribute(prefix, local, uri, value string) error {
	return c.add(Event{Type: Attribute, Prefix: prefix, Local: local, URI: uri, Value: value})
}

func (c *Collector) NamespaceDecl(prefix, uri string) error {
	// recorded in attribute form so a Collector round-trips through Copy
	if prefix == "" {
		return c.add(Event{Type: Attribute, Local: "xmlns", URI: XMLNSNamespace, Value: uri})
	}
	return c.add(Event{Type: Attribute, Prefix: "xmlns", Local: prefix, URI: XMLNSNamespace, Value: uri})
}

func (c *Collector) Text(s string) error {
	return c.add(Event{Type: Text, Value: s})
}

func (c *Collector) SignificantWhitespace(s string) error {
	return c.add(Event{Type: SignificantWhitespace, Value: s})
}

func (c *Collector) Whitespace(s string) error {
	return c.add(Event{Type: Whitespace, Value: s})
}

func (c *Collector) Comment(s string) error {
	return c.add(Event{Type: Comment, Value: s})
}

func (c *Collector) ProcessingInstruction(target, value string) error {
	return c.add(Event{Type: ProcessingInstruction, Local: target, Value: value})
}

func (c *Collector) Close() error {
	return nil
}
