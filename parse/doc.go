// Package parse turns markup text into node-construction events and
// in-memory documents.
//
// Importing parse also registers its fragment parser with xmlnav, so
// the markup-based mutation conveniences (AppendChildMarkup and
// friends) work without further wiring.
package parse
