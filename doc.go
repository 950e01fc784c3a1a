// Package delta implements the Quill Delta operation algebra for rich-text
// documents and edits.
//
// A Delta is an ordered sequence of insert, retain, and delete operations
// over an implicit cursor position. A Delta whose operations are all
// inserts describes the contents of a document; any Delta describes an
// edit to one. The package gives a real-time collaborative editor's server
// the primitives it needs to merge concurrent edits without locking:
// Compose combines two sequential edits into one equivalent edit, Transform
// rebases one edit against a concurrent one (Operational Transformation),
// Apply plays an edit against a document, Lines splits a document at
// newlines, and Diff computes an edit between two document states.
//
// This is a port of the semantics of the quilljs/delta JavaScript library,
// chosen so that a Go server built on this package converges on exactly
// the same document states as browser clients running the reference
// implementation.
package delta
