package xmlnav

import (
	"github.com/xmlnav/go-xmlnav/debug"
)

// Order is the result of a document-order comparison.
type Order int

const (
	OrderBefore Order = iota
	OrderAfter
	OrderSame
	// OrderUnknown results when the two positions share no common
	// ancestor (unrelated trees).
	OrderUnknown
)

func (o Order) String() string {
	switch o {
	case OrderBefore:
		return "Before"
	case OrderAfter:
		return "After"
	case OrderSame:
		return "Same"
	default:
		return "Unknown"
	}
}

// ComparePosition resolves the relative document order of c and other
// without any backend-supplied ordinal: depths are derived by ancestor
// walks, the nearest common ancestor is found by a lockstep walk, and
// the tie is broken by scanning the sibling axes. An ancestor sorts
// before its descendants. Cost is O(depth + fan-out).
func (c *Cursor) ComparePosition(other *Cursor) Order {
	if c.IsSamePosition(other) {
		return OrderSame
	}
	n1, n2 := c.Clone(), other.Clone()
	d1, d2 := n1.depth(), n2.depth()
	if d1 > d2 {
		for ; d1 > d2; d1-- {
			n1.src.MoveToParent()
		}
		if n1.IsSamePosition(n2) {
			// other is an ancestor of c
			return OrderAfter
		}
	} else if d2 > d1 {
		for ; d2 > d1; d2-- {
			n2.src.MoveToParent()
		}
		if n1.IsSamePosition(n2) {
			return OrderBefore
		}
	}
	p1, p2 := n1.Clone(), n2.Clone()
	for {
		if !p1.src.MoveToParent() || !p2.src.MoveToParent() {
			return OrderUnknown
		}
		if p1.IsSamePosition(p2) {
			ord := compareSiblings(n1, n2)
			if ord == OrderSame {
				// the backend called the positions distinct but its
				// sibling axes cannot tell them apart
				if debug.Order() {
					debug.Logf("order: %v: %s %q vs %s %q\n",
						ErrInconsistent, n1.Kind(), n1.Name(), n2.Kind(), n2.Name())
				}
				return OrderUnknown
			}
			return ord
		}
		n1.src.MoveToParent()
		n2.src.MoveToParent()
	}
}

// depth counts MoveToParent calls needed to reach the root, consuming
// the cursor.
func (c *Cursor) depth() int {
	n := 0
	nav := c.Clone()
	for nav.src.MoveToParent() {
		n++
	}
	return n
}

const (
	classNamespace = 1
	classAttribute = 2
	classContent   = 3
)

func axisClass(k Kind) int {
	switch k {
	case NamespaceNode:
		return classNamespace
	case AttributeNode:
		return classAttribute
	default:
		return classContent
	}
}

// compareSiblings orders two distinct children of one parent. The
// ordering class Namespace < Attribute < Content decides across axes;
// within one axis a forward scan from n1 looks for n2.
func compareSiblings(n1, n2 *Cursor) Order {
	if n1.IsSamePosition(n2) {
		return OrderSame
	}
	cl1, cl2 := axisClass(n1.Kind()), axisClass(n2.Kind())
	if cl1 < cl2 {
		return OrderBefore
	}
	if cl1 > cl2 {
		return OrderAfter
	}
	nav := n1.Clone()
	switch cl1 {
	case classNamespace:
		for nav.src.MoveToNextNamespace(ScopeAll) {
			if nav.IsSamePosition(n2) {
				return OrderBefore
			}
		}
	case classAttribute:
		for nav.src.MoveToNextAttribute() {
			if nav.IsSamePosition(n2) {
				return OrderBefore
			}
		}
	default:
		for nav.src.MoveToNext() {
			if nav.IsSamePosition(n2) {
				return OrderBefore
			}
		}
	}
	return OrderAfter
}
