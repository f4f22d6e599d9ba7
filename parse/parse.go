package parse

import (
	"encoding/xml"
	"io"
	"strings"

	xmlnav "github.com/xmlnav/go-xmlnav"
	"github.com/xmlnav/go-xmlnav/event"
	"github.com/xmlnav/go-xmlnav/memdoc"
)

func init() {
	xmlnav.RegisterFragmentParser(Fragment)
}

// Fragment parses a markup fragment into an event stream. Prefixes
// used in the fragment resolve against nsContext first, so a fragment
// inserted into a document sees the namespace scope of its insertion
// point.
func Fragment(fragment string, nsContext map[string]string) (event.Reader, error) {
	return &reader{
		dec:  xml.NewDecoder(strings.NewReader(fragment)),
		base: nsContext,
	}, nil
}

// NewReader parses a markup document into an event stream.
func NewReader(r io.Reader) event.Reader {
	return &reader{dec: xml.NewDecoder(r)}
}

// Parse builds an in-memory document from markup text.
func Parse(data []byte) (*memdoc.Document, error) {
	return memdoc.FromReader(NewReader(strings.NewReader(string(data))))
}

// reader turns raw markup tokens into node-construction events. Raw
// tokens keep prefixes as written; namespace resolution happens here
// against the open-element declaration frames plus the injected base
// context.
type reader struct {
	dec  *xml.Decoder
	base map[string]string

	queue  []event.Event
	frames []frame

	// one-token lookahead, for detecting childless elements
	peeked xml.Token
	err    error
}

type frame struct {
	decls    map[string]string
	preserve bool
}

func (r *reader) Read() (*event.Event, error) {
	for len(r.queue) == 0 {
		if r.err != nil {
			return nil, r.err
		}
		if err := r.fill(); err != nil {
			r.err = err
			return nil, err
		}
	}
	ev := r.queue[0]
	r.queue = r.queue[1:]
	return &ev, nil
}

func (r *reader) next() (xml.Token, error) {
	if r.peeked != nil {
		tok := r.peeked
		r.peeked = nil
		return tok, nil
	}
	return r.dec.RawToken()
}

func (r *reader) peek() (xml.Token, error) {
	if r.peeked == nil {
		tok, err := r.dec.RawToken()
		if err != nil {
			return nil, err
		}
		r.peeked = tok
	}
	return r.peeked, nil
}

func (r *reader) fill() error {
	tok, err := r.next()
	if err != nil {
		return err
	}
	switch t := tok.(type) {
	case xml.StartElement:
		r.startElement(t)
	case xml.EndElement:
		if len(r.frames) > 0 {
			r.frames = r.frames[:len(r.frames)-1]
		}
		r.queue = append(r.queue, event.Event{Type: event.ElementEnd})
	case xml.CharData:
		r.charData(string(t))
	case xml.Comment:
		r.queue = append(r.queue, event.Event{Type: event.Comment, Value: string(t)})
	case xml.ProcInst:
		if t.Target == "xml" {
			// leading declaration, not content
			return nil
		}
		r.queue = append(r.queue, event.Event{
			Type:  event.ProcessingInstruction,
			Local: t.Target,
			Value: strings.TrimSpace(string(t.Inst)),
		})
	case xml.Directive:
		// doctype and friends carry no infoset content here
	}
	return nil
}

func (r *reader) startElement(t xml.StartElement) {
	f := frame{preserve: r.preserve()}
	var nsAttrs, attrs []xml.Attr
	for _, a := range t.Attr {
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			if f.decls == nil {
				f.decls = map[string]string{}
			}
			f.decls[""] = a.Value
			nsAttrs = append(nsAttrs, a)
		case a.Name.Space == "xmlns":
			if f.decls == nil {
				f.decls = map[string]string{}
			}
			f.decls[a.Name.Local] = a.Value
			nsAttrs = append(nsAttrs, a)
		default:
			if a.Name.Space == "xml" && a.Name.Local == "space" {
				f.preserve = a.Value == "preserve"
			}
			attrs = append(attrs, a)
		}
	}
	r.frames = append(r.frames, f)

	// childless elements close immediately, without an end event
	empty := false
	if pk, err := r.peek(); err == nil {
		if end, ok := pk.(xml.EndElement); ok && end.Name == t.Name {
			empty = true
			r.peeked = nil
		}
	}

	prefix := t.Name.Space
	r.queue = append(r.queue, event.Event{
		Type:   event.ElementStart,
		Prefix: prefix,
		Local:  t.Name.Local,
		URI:    r.lookup(prefix),
		Empty:  empty,
	})
	for _, a := range nsAttrs {
		r.queue = append(r.queue, event.Event{
			Type:   event.Attribute,
			Prefix: a.Name.Space,
			Local:  a.Name.Local,
			URI:    event.XMLNSNamespace,
			Value:  a.Value,
		})
	}
	for _, a := range attrs {
		uri := ""
		if a.Name.Space != "" {
			// unprefixed attributes are in no namespace
			uri = r.lookup(a.Name.Space)
		}
		r.queue = append(r.queue, event.Event{
			Type:   event.Attribute,
			Prefix: a.Name.Space,
			Local:  a.Name.Local,
			URI:    uri,
			Value:  a.Value,
		})
	}
	if empty {
		r.frames = r.frames[:len(r.frames)-1]
	}
}

func (r *reader) charData(s string) {
	if s == "" {
		return
	}
	if strings.TrimSpace(s) != "" {
		r.queue = append(r.queue, event.Event{Type: event.Text, Value: s})
		return
	}
	if len(r.frames) == 0 {
		// inter-node whitespace outside any element is not content
		return
	}
	typ := event.Whitespace
	if r.preserve() {
		typ = event.SignificantWhitespace
	}
	r.queue = append(r.queue, event.Event{Type: typ, Value: s})
}

func (r *reader) preserve() bool {
	if len(r.frames) == 0 {
		return false
	}
	return r.frames[len(r.frames)-1].preserve
}

func (r *reader) lookup(prefix string) string {
	for i := len(r.frames) - 1; i >= 0; i-- {
		if uri, ok := r.frames[i].decls[prefix]; ok {
			return uri
		}
	}
	if uri, ok := r.base[prefix]; ok {
		return uri
	}
	switch prefix {
	case "xml":
		return event.XMLNamespace
	case "xmlns":
		return event.XMLNSNamespace
	}
	return ""
}
