package xmlnav

import "errors"

var (
	// ErrUnsupported is returned by mutation entry points when the
	// backend does not implement Editable.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrPosition is returned when an operation is invoked from a
	// node kind that forbids it.
	ErrPosition = errors.New("invalid position")

	// ErrArgument is returned when a required argument is absent or a
	// sibling range is not contiguous with the receiver.
	ErrArgument = errors.New("invalid argument")

	// ErrQuery is returned for malformed expression text, a compiled
	// expression from a foreign engine, or a result-kind mismatch.
	ErrQuery = errors.New("query error")

	// ErrInconsistent is diagnostic only: a backend's IsSamePosition
	// disagrees with the sibling order derived from its own axes.
	ErrInconsistent = errors.New("inconsistent backend")
)
