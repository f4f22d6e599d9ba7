// Package event defines the node-construction event stream shared by
// parsers, renderers, format adapters and editable document backends.
//
// The read side is a pull-based Reader yielding typed events; the
// write side is a Writer with one method per event kind. Copy replays
// a reader into a writer and is the generic subtree builder: every
// structural edit reduces to opening a write channel on a backend,
// replaying a source through Copy, and closing the channel.
//
// # Example
//
//	w, err := cur.AppendChild()
//	if err != nil {
//	    return err
//	}
//	if err := event.Copy(w, src); err != nil {
//	    w.Close()
//	    return err
//	}
//	return w.Close()
package event
