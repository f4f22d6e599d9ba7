package memdoc

import (
	"strings"

	xmlnav "github.com/xmlnav/go-xmlnav"
)

type node struct {
	kind   xmlnav.Kind
	parent *node

	prefix string
	local  string
	uri    string
	value  string

	baseURI string

	children []*node
	attrs    []*node
	nsdecls  []*node

	// empty marks an element constructed without content; it is
	// cleared when children are spliced in.
	empty bool
}

func (n *node) name() string {
	if n.prefix != "" {
		return n.prefix + ":" + n.local
	}
	return n.local
}

// stringValue is the XPath string value: the node's own text for leaf
// kinds, the concatenated descendant text for elements and the root.
func (n *node) stringValue() string {
	switch n.kind {
	case xmlnav.ElementNode, xmlnav.RootNode:
		var sb strings.Builder
		n.appendText(&sb)
		return sb.String()
	}
	return n.value
}

func (n *node) appendText(sb *strings.Builder) {
	for _, ch := range n.children {
		if ch.kind.IsText() {
			sb.WriteString(ch.value)
			continue
		}
		if ch.kind == xmlnav.ElementNode {
			ch.appendText(sb)
		}
	}
}

func indexOf(list []*node, n *node) int {
	for i, x := range list {
		if x == n {
			return i
		}
	}
	return -1
}
