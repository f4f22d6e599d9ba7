// Package yamlsrc adapts YAML documents into the node-construction
// event stream: mappings become elements named by their keys,
// sequences repeat the enclosing element, scalars become text. It is
// a lazily-streamed tree source for the subtree builder, and powers
// format conversion in the xn tool.
package yamlsrc

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/xmlnav/go-xmlnav/event"
)

// New parses YAML and returns the equivalent event stream rooted at
// an element named rootName.
func New(data []byte, rootName string) (event.Reader, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("yamlsrc: %w", err)
	}
	return event.NewSliceReader(appendValue(nil, rootName, v)), nil
}

func appendValue(evs []event.Event, name string, v any) []event.Event {
	switch x := v.(type) {
	case yaml.MapSlice:
		evs = append(evs, event.Event{Type: event.ElementStart, Local: name, Empty: len(x) == 0})
		for _, item := range x {
			evs = appendValue(evs, fmt.Sprint(item.Key), item.Value)
		}
		if len(x) > 0 {
			evs = append(evs, event.Event{Type: event.ElementEnd})
		}
	case []any:
		// a sequence repeats its enclosing element
		for _, item := range x {
			evs = appendValue(evs, name, item)
		}
	case nil:
		evs = append(evs, event.Event{Type: event.ElementStart, Local: name, Empty: true})
	default:
		evs = append(evs, event.Event{Type: event.ElementStart, Local: name})
		evs = append(evs, event.Event{Type: event.Text, Value: fmt.Sprint(x)})
		evs = append(evs, event.Event{Type: event.ElementEnd})
	}
	return evs
}
