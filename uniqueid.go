package xmlnav

import "strings"

// 32 symbols, no '0': the zero digit delimits multi-character runs.
const uniqueIDTbl = "ABCDEFGHIJKLMNOPQRSTUVWXYZ123456"

var kindLetter = [...]byte{
	RootNode:                  'R',
	ElementNode:               'E',
	AttributeNode:             'A',
	NamespaceNode:             'N',
	TextNode:                  'T',
	SignificantWhitespaceNode: 'S',
	WhitespaceNode:            'W',
	ProcessingInstructionNode: 'P',
	CommentNode:               'C',
}

// UniqueID encodes the position as a stable identifier: equal ids iff
// IsSamePosition, alphanumeric, starting with a letter. One leading
// character encodes the kind; then, walking to the root, each step
// encodes the count of same-axis siblings that follow the node (a
// reverse ordinal, so prepending to a sibling list never re-indexes
// the ids of existing siblings). Ordinals above 31 encode as a
// zero-delimited base-32 run, least significant digit first.
func (c *Cursor) UniqueID() string {
	nav := c.Clone()
	var sb strings.Builder
	sb.WriteByte(kindLetter[nav.Kind()])
	for {
		idx := nav.indexInParent()
		if !nav.src.MoveToParent() {
			break
		}
		if idx <= 31 {
			sb.WriteByte(uniqueIDTbl[idx])
			continue
		}
		sb.WriteByte('0')
		for idx > 0 {
			sb.WriteByte(uniqueIDTbl[idx&31])
			idx >>= 5
		}
		sb.WriteByte('0')
	}
	return sb.String()
}

// indexInParent counts the siblings following the position on its own
// axis.
func (c *Cursor) indexInParent() uint64 {
	nav := c.Clone()
	var n uint64
	switch nav.Kind() {
	case AttributeNode:
		for nav.src.MoveToNextAttribute() {
			n++
		}
	case NamespaceNode:
		for nav.src.MoveToNextNamespace(ScopeAll) {
			n++
		}
	default:
		for nav.src.MoveToNext() {
			n++
		}
	}
	return n
}
