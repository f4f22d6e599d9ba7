package event

import (
	"errors"
	"fmt"
	"io"

	"github.com/xmlnav/go-xmlnav/debug"
)

// Reserved namespace URIs of the infoset model.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
)

var ErrUnbalanced = errors.New("unbalanced element events")

// Copy replays events from src into dst until src is exhausted.
// Attributes in the xmlns namespace are re-emitted as namespace
// declarations: an unprefixed xmlns attribute declares the default
// namespace, a prefixed one declares that prefix. Element nesting must
// be balanced when src ends.
func Copy(dst Writer, src Reader) error {
	level := 0
	for {
		ev, err := src.Read()
		if err == io.EOF {
			if level != 0 {
				return fmt.Errorf("%w: depth %d at end of source", ErrUnbalanced, level)
			}
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(dst, ev, &level); err != nil {
			return err
		}
	}
}

// CopyNode replays a single node from src into dst: it advances src
// once if needed to enter a node, then continues until the nesting
// level returns to zero after an ElementEnd. Non-element leading
// events replay as single nodes.
func CopyNode(dst Writer, src Reader) error {
	level := 0
	for {
		ev, err := src.Read()
		if err == io.EOF {
			if level != 0 {
				return fmt.Errorf("%w: depth %d at end of source", ErrUnbalanced, level)
			}
			return nil
		}
		if err != nil {
			return err
		}
		if err := emit(dst, ev, &level); err != nil {
			return err
		}
		if level == 0 {
			return nil
		}
	}
}

func emit(dst Writer, ev *Event, level *int) error {
	if debug.Build() {
		debug.Logf("build: %s %s %q\n", ev.Type, ev.Local, ev.Value)
	}
	switch ev.Type {
	case ElementStart:
		if !ev.Empty {
			*level++
		}
		return dst.ElementStart(ev.Prefix, ev.Local, ev.URI, ev.Empty)
	case ElementEnd:
		*level--
		if *level < 0 {
			return fmt.Errorf("%w: end event below level 0", ErrUnbalanced)
		}
		return dst.ElementEnd()
	case Attribute:
		if ev.URI == XMLNSNamespace {
			if ev.Prefix == "" {
				// xmlns="..." declares the default namespace
				return dst.NamespaceDecl("", ev.Value)
			}
			return dst.NamespaceDecl(ev.Local, ev.Value)
		}
		return dst.Attribute(ev.Prefix, ev.Local, ev.URI, ev.Value)
	case Text:
		return dst.Text(ev.Value)
	case SignificantWhitespace:
		return dst.SignificantWhitespace(ev.Value)
	case Whitespace:
		return dst.Whitespace(ev.Value)
	case Comment:
		return dst.Comment(ev.Value)
	case ProcessingInstruction:
		return dst.ProcessingInstruction(ev.Local, ev.Value)
	}
	return fmt.Errorf("unknown event type %d", ev.Type)
}
