package event

import "fmt"

// Event represents a node-construction event. Events correspond to the
// Writer's API methods, providing a symmetric read/write interface over
// subtree content.
type Event struct {
	Type Type

	// Name fields (ElementStart, Attribute, ProcessingInstruction).
	// For a processing instruction, Local holds the target.
	Prefix string
	Local  string
	URI    string

	// Value holds text content, attribute values, comment text and
	// processing-instruction data.
	Value string

	// Empty accompanies ElementStart; when set, the element has no
	// content and no matching ElementEnd is produced.
	Empty bool
}

// Type represents the type of a node-construction event.
type Type int

const (
	ElementStart Type = iota
	Attribute
	Text
	SignificantWhitespace
	Whitespace
	Comment
	ProcessingInstruction
	ElementEnd
)

func (t Type) String() string {
	switch t {
	case ElementStart:
		return "ElementStart"
	case Attribute:
		return "Attribute"
	case Text:
		return "Text"
	case SignificantWhitespace:
		return "SignificantWhitespace"
	case Whitespace:
		return "Whitespace"
	case Comment:
		return "Comment"
	case ProcessingInstruction:
		return "ProcessingInstruction"
	case ElementEnd:
		return "ElementEnd"
	default:
		return "Unknown"
	}
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]Type{
		"ElementStart":          ElementStart,
		"Attribute":             Attribute,
		"Text":                  Text,
		"SignificantWhitespace": SignificantWhitespace,
		"Whitespace":            Whitespace,
		"Comment":               Comment,
		"ProcessingInstruction": ProcessingInstruction,
		"ElementEnd":            ElementEnd,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
