package errors

import "net/http"

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeConnectFailed      Code = "CONNECT_FAILED"
	CodeConnectionLost     Code = "CONNECTION_LOST"
	CodePoolExhausted      Code = "POOL_EXHAUSTED"
	CodeScriptFailure      Code = "SCRIPT_FAILURE"
	CodeDecodeError        Code = "DECODE_ERROR"
	CodeAborted            Code = "ABORTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code. The REST layer
// maps each taxonomy entry to a stable status; the core never formats
// transport-specific error bodies itself.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConnectFailed:
		return http.StatusServiceUnavailable
	case CodeConnectionLost:
		return http.StatusBadGateway
	case CodePoolExhausted:
		return http.StatusTooManyRequests
	case CodeScriptFailure:
		return http.StatusInternalServerError
	case CodeDecodeError:
		return http.StatusInternalServerError
	case CodeAborted:
		return http.StatusConflict
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
