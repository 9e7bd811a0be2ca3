package liststate

import (
	"errors"
	"fmt"
)

// ErrInvariant is the base error for precondition violations. Callers that
// only care whether an operation broke the collection's contract can test
// against it with errors.Is.
var ErrInvariant = errors.New("list invariant violated")

// ErrDuplicateID reports an Add (or seed) that would put two records with the
// same id in the collection.
var ErrDuplicateID = fmt.Errorf("duplicate record id: %w", ErrInvariant)

// ErrIDChanged reports an Update transform that returned a record with a
// different id.
var ErrIDChanged = fmt.Errorf("transform changed record id: %w", ErrInvariant)

// ErrUnknownTag reports a filter tag outside the controller's allowed set.
var ErrUnknownTag = errors.New("unknown cuisine tag")
