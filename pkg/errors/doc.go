// Package errors provides the error taxonomy shared by every kvbridge module.
//
// All failures surfaced by the adapter core carry one of a closed set of
// codes: connection establishment (CONNECT_FAILED), mid-operation I/O
// (CONNECTION_LOST), lease starvation (POOL_EXHAUSTED), caller mistakes
// (INVALID_ARGUMENT), reply shape mismatches (DECODE_ERROR), server-side
// script errors (SCRIPT_FAILURE), and optimistic-lock violations (ABORTED).
//
// Creating errors:
//
//	err := errors.InvalidArgument("key cannot be empty")
//	err := errors.PoolExhaustedf("no connection within %s", timeout)
//
// Adding context:
//
//	err := errors.ConnectionLost("pipeline failed").
//	    WithMeta("operation", "EXEC").
//	    WithMeta("key", key)
//
// Checking:
//
//	if errors.IsAborted(err) {
//	    // retry the whole read-modify-write cycle
//	}
//
// Boundary layers translate codes to their own vocabulary via
// Code.HTTPStatus(); the core never shapes transport error bodies.
package errors
