package encode

import (
	"fmt"
	"io"
	"strings"
)

// Encoder renders node-construction events as indented markup without
// a leading declaration. It implements event.Writer; Close flushes any
// pending start tag and reports unbalanced elements.
type Encoder struct {
	w      io.Writer
	indent int
	colors *Colors

	stack   []string
	pending *startTag

	wroteAny bool
	lastText bool
	err      error
}

type startTag struct {
	name  string
	attrs []string
	empty bool
}

type Option func(*Encoder)

func WithIndent(n int) Option {
	return func(e *Encoder) { e.indent = n }
}

func WithColors(c *Colors) Option {
	return func(e *Encoder) { e.colors = c }
}

func New(w io.Writer, opts ...Option) *Encoder {
	e := &Encoder{w: w, indent: 2}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func qualify(prefix, local string) string {
	if prefix != "" {
		return prefix + ":" + local
	}
	return local
}

func (e *Encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
	e.wroteAny = true
}

func (e *Encoder) breakLine(depth int) {
	if !e.wroteAny || e.lastText {
		return
	}
	e.write("\n" + strings.Repeat(" ", depth*e.indent))
}

// flushPending completes a buffered start tag, pushing the element
// unless it was empty.
func (e *Encoder) flushPending() {
	p := e.pending
	if p == nil {
		return
	}
	e.pending = nil
	s := "<" + e.color(TagColor, p.name)
	for _, a := range p.attrs {
		s += " " + a
	}
	if p.empty {
		e.write(s + "/>")
		return
	}
	e.write(s + ">")
	e.stack = append(e.stack, p.name)
}

func (e *Encoder) ElementStart(prefix, local, uri string, empty bool) error {
	e.flushPending()
	e.breakLine(len(e.stack))
	e.pending = &startTag{name: qualify(prefix, local), empty: empty}
	e.lastText = false
	return e.err
}

func (e *Encoder) attr(name, value string) error {
	if e.pending == nil {
		if e.err == nil {
			e.err = fmt.Errorf("attribute %q outside an element start", name)
		}
		return e.err
	}
	e.pending.attrs = append(e.pending.attrs,
		e.color(AttrNameColor, name)+`="`+e.color(AttrValueColor, escapeAttr(value))+`"`)
	return e.err
}

func (e *Encoder) Attribute(prefix, local, uri, value string) error {
	return e.attr(qualify(prefix, local), value)
}

func (e *Encoder) NamespaceDecl(prefix, uri string) error {
	name := "xmlns"
	if prefix != "" {
		name = "xmlns:" + prefix
	}
	return e.attr(name, uri)
}

func (e *Encoder) ElementEnd() error {
	if p := e.pending; p != nil && !p.empty {
		// no content: open and close on one line
		e.pending = nil
		s := "<" + e.color(TagColor, p.name)
		for _, a := range p.attrs {
			s += " " + a
		}
		e.write(s + "></" + e.color(TagColor, p.name) + ">")
		e.lastText = false
		return e.err
	}
	// a pending empty start tag has no end of its own; this end
	// belongs to the enclosing element
	e.flushPending()
	if len(e.stack) == 0 {
		if e.err == nil {
			e.err = fmt.Errorf("element end without start")
		}
		return e.err
	}
	name := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	e.breakLine(len(e.stack))
	e.write("</" + e.color(TagColor, name) + ">")
	e.lastText = false
	return e.err
}

func (e *Encoder) text(s string, escape bool) error {
	e.flushPending()
	if escape {
		s = escapeText(s)
	}
	e.write(e.color(TextColor, s))
	e.lastText = true
	return e.err
}

func (e *Encoder) Text(s string) error {
	return e.text(s, true)
}

func (e *Encoder) SignificantWhitespace(s string) error {
	return e.text(s, false)
}

func (e *Encoder) Whitespace(s string) error {
	// layout whitespace is re-derived from indentation
	return e.err
}

func (e *Encoder) Comment(s string) error {
	e.flushPending()
	e.breakLine(len(e.stack))
	e.write(e.color(CommentColor, "<!--"+s+"-->"))
	e.lastText = false
	return e.err
}

func (e *Encoder) ProcessingInstruction(target, value string) error {
	e.flushPending()
	e.breakLine(len(e.stack))
	s := "<?" + target
	if value != "" {
		s += " " + value
	}
	e.write(e.color(PIColor, s+"?>"))
	e.lastText = false
	return e.err
}

func (e *Encoder) Close() error {
	e.flushPending()
	if e.err != nil {
		return e.err
	}
	if len(e.stack) > 0 {
		e.err = fmt.Errorf("%d unclosed elements", len(e.stack))
	}
	return e.err
}

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)
