// Package xmlnav provides a cursor-based navigation and mutation API
// over a virtual, tree-shaped document model: a single movable
// position that walks the parent, child, sibling, attribute and
// namespace axes, compares any two positions for identity and
// document order, encodes a position as a stable unique identifier,
// resolves namespace prefixes, and performs structural edits by
// streaming node-construction events into a scoped write channel.
//
// Concrete tree representations implement the Source primitive
// contract (and optionally Editable); every derived algorithm here is
// written purely against those primitives. The memdoc package is the
// reference in-memory backend, parse builds documents from markup
// text, encode renders them back, and eval supplies an expression
// engine behind the query dispatch contract.
//
// Cursors are synchronous, single-threaded values. A clone is
// independent but shares the backend's document storage. Cursors
// positioned inside a range removed by a delete or replace enter a
// backend-defined state and must not be dereferenced afterward.
package xmlnav
