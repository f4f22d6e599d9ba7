package xmlnav

// Kind identifies the kind of node a position refers to.
type Kind int

const (
	RootNode Kind = iota
	ElementNode
	AttributeNode
	NamespaceNode
	TextNode
	SignificantWhitespaceNode
	WhitespaceNode
	ProcessingInstructionNode
	CommentNode
)

func (k Kind) String() string {
	switch k {
	case RootNode:
		return "Root"
	case ElementNode:
		return "Element"
	case AttributeNode:
		return "Attribute"
	case NamespaceNode:
		return "Namespace"
	case TextNode:
		return "Text"
	case SignificantWhitespaceNode:
		return "SignificantWhitespace"
	case WhitespaceNode:
		return "Whitespace"
	case ProcessingInstructionNode:
		return "ProcessingInstruction"
	case CommentNode:
		return "Comment"
	default:
		return "Unknown"
	}
}

// IsText reports whether k is one of the three text kinds.
func (k Kind) IsText() bool {
	switch k {
	case TextNode, SignificantWhitespaceNode, WhitespaceNode:
		return true
	}
	return false
}

// IsContent reports whether positions of kind k live on the ordinary
// child axis. Attributes and namespaces are reachable only via their
// dedicated axes and are excluded from the content ordering class.
func (k Kind) IsContent() bool {
	switch k {
	case AttributeNode, NamespaceNode:
		return false
	}
	return true
}

// kindMatches reports whether a node of kind got satisfies a search
// for kind want. TextNode matches all three text kinds.
func kindMatches(want, got Kind) bool {
	if want == got {
		return true
	}
	return want == TextNode && got.IsText()
}

// NamespaceScope selects which namespace declarations the namespace
// axis traverses.
type NamespaceScope int

const (
	// ScopeAll traverses every in-scope declaration, including the
	// implicit xml prefix binding.
	ScopeAll NamespaceScope = iota
	// ScopeExcludeXML traverses every in-scope declaration except the
	// implicit xml binding.
	ScopeExcludeXML
	// ScopeLocal traverses only declarations attached directly to the
	// current element, including empty-URI undeclarations.
	ScopeLocal
)

func (s NamespaceScope) String() string {
	switch s {
	case ScopeAll:
		return "All"
	case ScopeExcludeXML:
		return "ExcludeXML"
	case ScopeLocal:
		return "Local"
	default:
		return "Unknown"
	}
}
