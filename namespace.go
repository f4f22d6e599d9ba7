package xmlnav

// LookupNamespace resolves a namespace prefix at the current position.
// Off an element the lookup delegates to the parent. The reserved
// "xml" and "xmlns" prefixes and the empty prefix resolve regardless
// of document content; an undeclared non-empty prefix reports false.
func (c *Cursor) LookupNamespace(prefix string) (string, bool) {
	if c.src.Kind() != ElementNode {
		nav := c.Clone()
		if nav.src.MoveToParent() {
			return nav.LookupNamespace(prefix)
		}
	} else {
		nav := c.Clone()
		if nav.src.MoveToFirstNamespace(ScopeAll) {
			for {
				if nav.src.LocalName() == prefix {
					return nav.src.Value(), true
				}
				if !nav.src.MoveToNextNamespace(ScopeAll) {
					break
				}
			}
		}
	}
	switch prefix {
	case "":
		return "", true
	case "xml":
		return XMLNamespace, true
	case "xmlns":
		return XMLNSNamespace, true
	}
	return "", false
}

// LookupPrefix resolves a namespace URI to a declared prefix at the
// current position. The default namespace resolves to the empty
// prefix, so the empty URI resolves to the empty prefix wherever no
// default namespace is declared; the reserved URIs fall back to "xml"
// and "xmlns".
func (c *Cursor) LookupPrefix(uri string) (string, bool) {
	if c.src.Kind() != ElementNode {
		nav := c.Clone()
		if nav.src.MoveToParent() {
			return nav.LookupPrefix(uri)
		}
	} else {
		nav := c.Clone()
		if nav.src.MoveToFirstNamespace(ScopeAll) {
			for {
				if nav.src.Value() == uri && nav.src.LocalName() != "" {
					return nav.src.LocalName(), true
				}
				if !nav.src.MoveToNextNamespace(ScopeAll) {
					break
				}
			}
		}
	}
	if def, ok := c.LookupNamespace(""); ok && def == uri {
		return "", true
	}
	switch uri {
	case XMLNamespace:
		return "xml", true
	case XMLNSNamespace:
		return "xmlns", true
	}
	return "", false
}

// NamespacesInScope builds the prefix to URI mapping visible at the
// current position. ScopeLocal reports only declarations attached to
// the current element, including empty-URI undeclarations; the other
// scopes accumulate ancestor declarations and suppress undeclarations,
// since re-emitting those during serialization would be incorrect.
func (c *Cursor) NamespacesInScope(scope NamespaceScope) map[string]string {
	res := map[string]string{}
	nav := c.Clone()
	if nav.src.Kind() != ElementNode {
		if !nav.src.MoveToParent() {
			return res
		}
	}
	if !nav.src.MoveToFirstNamespace(scope) {
		return res
	}
	for {
		prefix, uri := nav.src.LocalName(), nav.src.Value()
		if scope == ScopeLocal || uri != "" {
			res[prefix] = uri
		}
		if !nav.src.MoveToNextNamespace(scope) {
			break
		}
	}
	return res
}
