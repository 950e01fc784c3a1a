package delta

// Apply folds edit onto doc, a document delta (every op an insert),
// returning the resulting document. It is Compose specialized to the case
// where the left side is a pure-insert sequence: everything Compose already
// does to merge a retain's attributes or drop an insert under a delete
// applies unchanged, so Apply's only extra job is the length check Compose
// itself has no opinion on.
//
// ErrLengthMismatch is returned, without computing anything further, when
// edit's combined retain and delete length runs past the end of doc — the
// edit doesn't agree with the document it claims to be edit against.
func Apply(doc, edit Delta) (Delta, error) {
	if need := edit.Length(KindRetain, KindDelete); need > doc.Length() {
		return Delta{}, ErrLengthMismatch
	}
	return Compose(doc, edit), nil
}

// MustApply is Apply for callers that have already established the length
// invariant holds and would rather panic than thread an error that can't
// occur in practice.
func MustApply(doc, edit Delta) Delta {
	result, err := Apply(doc, edit)
	if err != nil {
		panic(err)
	}
	return result
}
