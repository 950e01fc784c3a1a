package delta

import "errors"

var (
	// ErrLengthMismatch is returned by Apply when a delta's retain+delete
	// length exceeds the document's length.
	ErrLengthMismatch = errors.New("delta: retain/delete length exceeds document length")

	// ErrBadDocument is returned by Lines and Diff when a delta that was
	// expected to be a pure-insert document contains a retain or delete.
	ErrBadDocument = errors.New("delta: document contains retain or delete operations")
)
