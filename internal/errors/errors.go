package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies which failure channel produced a ClientError
type ErrorCode string

const (
	// Transport and HTTP failures
	ErrCodeRequestFailed ErrorCode = "REQUEST_FAILED"
	ErrCodeHTTPStatus    ErrorCode = "HTTP_STATUS"

	// Logical failures carried by a successful response
	ErrCodeSoftError      ErrorCode = "SOFT_ERROR"
	ErrCodeMissingSection ErrorCode = "MISSING_SECTION"
	ErrCodeDecodeFailed   ErrorCode = "DECODE_FAILED"

	// Caller mistakes caught before any request is sent
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// ClientError is the single error type returned by every stats client operation.
// Message is always human-readable and is what Error returns.
type ClientError struct {
	Code      ErrorCode
	Message   string
	Status    int
	Operation string
	cause     error
}

// Error implements the error interface
func (clientError *ClientError) Error() string {
	return clientError.Message
}

// Unwrap exposes the underlying cause, if any
func (clientError *ClientError) Unwrap() error {
	return clientError.cause
}

// NewClientError creates a new ClientError
func NewClientError(code ErrorCode, operation string, message string, status int) *ClientError {
	return &ClientError{
		Code:      code,
		Message:   message,
		Status:    status,
		Operation: operation,
	}
}

// HTTPStatus builds the error for a non-2xx response. The body text wins;
// the standard status text is used when the body is empty.
func HTTPStatus(operation string, status int, body string) *ClientError {
	message := body
	if message == "" {
		message = http.StatusText(status)
	}
	return NewClientError(ErrCodeHTTPStatus, operation, message, status)
}

func SoftError(operation string, message string) *ClientError {
	return NewClientError(ErrCodeSoftError, operation, message, http.StatusOK)
}

func MissingSection(operation string, section string) *ClientError {
	return NewClientError(ErrCodeMissingSection, operation, "Missing required section: "+section, http.StatusOK)
}

func RequestFailed(operation string, cause error) *ClientError {
	clientError := NewClientError(ErrCodeRequestFailed, operation, fmt.Sprintf("request failed: %v", cause), 0)
	clientError.cause = cause
	return clientError
}

func DecodeFailed(operation string, cause error) *ClientError {
	clientError := NewClientError(ErrCodeDecodeFailed, operation, fmt.Sprintf("failed to decode response: %v", cause), http.StatusOK)
	clientError.cause = cause
	return clientError
}

func InvalidInput(operation string, message string) *ClientError {
	return NewClientError(ErrCodeInvalidInput, operation, message, 0)
}

// CodeOf returns the code of the first ClientError in err's chain, or "" if none
func CodeOf(err error) ErrorCode {
	var clientError *ClientError
	if stderrors.As(err, &clientError) {
		return clientError.Code
	}
	return ""
}
