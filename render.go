package xmlnav

import (
	"bytes"
	"fmt"

	"github.com/xmlnav/go-xmlnav/encode"
	"github.com/xmlnav/go-xmlnav/event"
)

// OuterMarkup renders the full subtree at the current position as
// indented markup without a leading declaration. An attribute
// position renders as name="value"; a namespace position renders as
// its xmlns declaration.
func (c *Cursor) OuterMarkup() string {
	switch c.src.Kind() {
	case AttributeNode:
		return fmt.Sprintf("%s=%q", c.src.Name(), c.src.Value())
	case NamespaceNode:
		if c.src.LocalName() == "" {
			return fmt.Sprintf("xmlns=%q", c.src.Value())
		}
		return fmt.Sprintf("xmlns:%s=%q", c.src.LocalName(), c.src.Value())
	}
	return renderEvents(c.Events())
}

// InnerMarkup renders the children of the current position as
// indented markup.
func (c *Cursor) InnerMarkup() string {
	switch c.src.Kind() {
	case ElementNode, RootNode:
		return renderEvents(c.ChildEvents())
	}
	return c.src.Value()
}

func renderEvents(src event.Reader) string {
	var buf bytes.Buffer
	enc := encode.New(&buf)
	if err := event.Copy(enc, src); err != nil {
		enc.Close()
		return buf.String()
	}
	enc.Close()
	return buf.String()
}
