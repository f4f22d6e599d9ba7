package xmlnav

// MoveToChild moves to the first child element with the given local
// name and namespace URI. On failure the position is unchanged.
func (c *Cursor) MoveToChild(local, uri string) bool {
	if !c.src.MoveToFirstChild() {
		return false
	}
	for {
		if c.src.Kind() == ElementNode && c.src.LocalName() == local && c.src.NamespaceURI() == uri {
			return true
		}
		if !c.src.MoveToNext() {
			break
		}
	}
	c.src.MoveToParent()
	return false
}

// MoveToChildKind moves to the first child of the given kind; kind
// must be a content kind. TextNode matches any text kind.
func (c *Cursor) MoveToChildKind(kind Kind) bool {
	if !kind.IsContent() {
		return false
	}
	if !c.src.MoveToFirstChild() {
		return false
	}
	for {
		if kindMatches(kind, c.src.Kind()) {
			return true
		}
		if !c.src.MoveToNext() {
			break
		}
	}
	c.src.MoveToParent()
	return false
}

// MoveToAttribute moves to the attribute with the given local name and
// namespace URI. On failure the position is unchanged.
func (c *Cursor) MoveToAttribute(local, uri string) bool {
	if !c.src.MoveToFirstAttribute() {
		return false
	}
	for {
		if c.src.LocalName() == local && c.src.NamespaceURI() == uri {
			return true
		}
		if !c.src.MoveToNextAttribute() {
			break
		}
	}
	c.src.MoveToParent()
	return false
}

// MoveToFollowing moves to the next element in document order with the
// given local name and namespace URI, stopping short of end when end
// is non-nil (exclusive). An end boundary positioned on an attribute
// or namespace node is first normalized to its nearest following
// non-descendant content position.
func (c *Cursor) MoveToFollowing(local, uri string, end *Cursor) bool {
	return c.moveToFollowing(func(nav *Cursor) bool {
		return nav.src.Kind() == ElementNode &&
			nav.src.LocalName() == local &&
			nav.src.NamespaceURI() == uri
	}, end)
}

// MoveToFollowingKind is MoveToFollowing matching on a content kind
// instead of a name.
func (c *Cursor) MoveToFollowingKind(kind Kind, end *Cursor) bool {
	if !kind.IsContent() {
		return false
	}
	return c.moveToFollowing(func(nav *Cursor) bool {
		return kindMatches(kind, nav.src.Kind())
	}, end)
}

func (c *Cursor) moveToFollowing(match func(*Cursor) bool, end *Cursor) bool {
	nav := c.Clone()
	if end != nil {
		switch end.Kind() {
		case AttributeNode, NamespaceNode:
			// attribute and namespace nodes are not part of the
			// content pre-order walk
			end = end.Clone()
			end.MoveToNonDescendant()
		}
	}
	switch nav.src.Kind() {
	case AttributeNode, NamespaceNode:
		if !nav.src.MoveToParent() {
			return false
		}
	}
	for {
		if !nav.src.MoveToFirstChild() {
			for {
				if nav.src.MoveToNext() {
					break
				}
				if !nav.src.MoveToParent() {
					return false
				}
			}
		}
		if end != nil && nav.IsSamePosition(end) {
			return false
		}
		if match(nav) {
			break
		}
	}
	c.src.MoveTo(nav.src)
	return true
}

// MoveToNonDescendant moves to the next position in document order
// that is not in the current subtree: the next sibling when there is
// one; for attribute and namespace nodes the parent's first content
// child; otherwise the first available next sibling of an ancestor.
// It fails only at the very end of the document.
func (c *Cursor) MoveToNonDescendant() bool {
	if c.src.Kind() == RootNode {
		return false
	}
	if c.src.MoveToNext() {
		return true
	}
	save := c.Clone()
	if !c.src.MoveToParent() {
		return false
	}
	switch save.Kind() {
	case AttributeNode, NamespaceNode:
		if c.src.MoveToFirstChild() {
			return true
		}
	}
	for !c.src.MoveToNext() {
		if !c.src.MoveToParent() {
			c.src.MoveTo(save.src)
			return false
		}
	}
	return true
}
