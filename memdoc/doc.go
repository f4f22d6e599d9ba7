// Package memdoc is the reference in-memory backend for xmlnav: a
// mutable node store implementing the Source primitive contract and
// the Editable write-channel contract.
//
// The backend owns the tree; cursors borrow read access and request
// mutation through write channels. Edits commit when a channel is
// closed and are immediately visible to every cursor on the same
// document. A cursor positioned inside a deleted or replaced range
// keeps pointing at the detached nodes; using it afterward is
// undefined.
package memdoc
