// Package errors provides structured error types for the histream library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the node and attribute tags that were
// being written, a human-readable detail and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrite, errors.KindBadAlign).
//		Node(nodeTag).
//		Attr(attrTag).
//		Detail("alignment %d is not a power of two", 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.AllocationFailed(1<<20, 64, cause)
//	err := errors.AttrChildOrder(nodeTag, attrTag)
//
// All errors implement the standard error interface and support errors.Is/As.
// Each Kind has a sentinel (ErrNoMem, ErrBadLayout, ...) usable as an
// errors.Is target regardless of phase.
package errors
