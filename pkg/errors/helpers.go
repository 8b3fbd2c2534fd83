package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// Type checking helpers

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsConnectFailed checks if an error is a connection establishment error
func IsConnectFailed(err error) bool {
	return GetCode(err) == CodeConnectFailed
}

// IsConnectionLost checks if an error is a mid-operation I/O failure
func IsConnectionLost(err error) bool {
	return GetCode(err) == CodeConnectionLost
}

// IsPoolExhausted checks if an error is a pool exhaustion error
func IsPoolExhausted(err error) bool {
	return GetCode(err) == CodePoolExhausted
}

// IsScriptFailure checks if an error is a server-side script error
func IsScriptFailure(err error) bool {
	return GetCode(err) == CodeScriptFailure
}

// IsDecodeError checks if an error is a reply decoding error
func IsDecodeError(err error) bool {
	return GetCode(err) == CodeDecodeError
}

// IsAborted checks if an error is a transaction abort error
func IsAborted(err error) bool {
	return GetCode(err) == CodeAborted
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsCanceled checks if an error is a canceled error
func IsCanceled(err error) bool {
	return GetCode(err) == CodeCanceled
}
