package errors

import stderrors "errors"

// Is, As and Unwrap forward to the standard library so callers importing
// this package under its own name do not also need the standard one.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
)
