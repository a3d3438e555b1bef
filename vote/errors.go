package vote

import "errors"

var (
	// ErrNotFound indicates the referenced suggestion does not exist.
	ErrNotFound = errors.New("suggestion not found")

	// ErrArtifact indicates the suggestion record was updated but one of the
	// message-side effects (reactions, embed edit) failed. The record change
	// is not rolled back.
	ErrArtifact = errors.New("failed to update suggestion message")
)
