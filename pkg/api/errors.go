package api

import "fmt"

// ErrorResponse is the JSON envelope for all error conditions.
type ErrorResponse struct {
	// Error contains the error details.
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains detailed error information.
type ErrorDetail struct {
	// Message is a human-readable error message.
	Message string `json:"message"`

	// Type categorizes the error.
	// Possible values: "invalid_request_error", "not_found",
	// "method_not_allowed", "server_error", "gateway_timeout".
	Type string `json:"type"`

	// Code is a machine-readable error code.
	Code string `json:"code,omitempty"`
}

// Error type constants.
const (
	// ErrorTypeInvalidRequest indicates a client-side error (400).
	ErrorTypeInvalidRequest = "invalid_request_error"

	// ErrorTypeNotFound indicates an unknown path (404).
	ErrorTypeNotFound = "not_found"

	// ErrorTypeMethodNotAllowed indicates an unsupported HTTP method (405).
	ErrorTypeMethodNotAllowed = "method_not_allowed"

	// ErrorTypeServerError indicates an internal server error (500).
	ErrorTypeServerError = "server_error"

	// ErrorTypeGatewayTimeout indicates the request exceeded its deadline (504).
	ErrorTypeGatewayTimeout = "gateway_timeout"
)

// Error code constants for common error scenarios.
const (
	// CodeInternalError indicates an internal server error.
	CodeInternalError = "internal_error"

	// CodeRequestTimeout indicates the request took too long to complete.
	CodeRequestTimeout = "request_timeout"

	// CodeMethodNotAllowed indicates the endpoint does not support the method.
	CodeMethodNotAllowed = "method_not_allowed"

	// CodeNotFound indicates no route matched the request path.
	CodeNotFound = "not_found"
)

// NewErrorResponse creates a new error response with the given details.
func NewErrorResponse(message, errorType, code string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Message: message,
			Type:    errorType,
			Code:    code,
		},
	}
}

// NewServerError creates an error response for internal server errors (500).
func NewServerError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeServerError, CodeInternalError)
}

// NewGatewayTimeoutError creates an error response for request timeouts (504).
func NewGatewayTimeoutError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeGatewayTimeout, CodeRequestTimeout)
}

// NewMethodNotAllowedError creates an error response for unsupported HTTP
// methods (405).
func NewMethodNotAllowedError(method string) *ErrorResponse {
	return NewErrorResponse(
		fmt.Sprintf("Method %s is not allowed on this endpoint", method),
		ErrorTypeMethodNotAllowed,
		CodeMethodNotAllowed,
	)
}

// NewNotFoundError creates an error response for unknown paths (404).
func NewNotFoundError(path string) *ErrorResponse {
	return NewErrorResponse(
		fmt.Sprintf("No route matches %s", path),
		ErrorTypeNotFound,
		CodeNotFound,
	)
}

// HTTPStatusCode returns the appropriate HTTP status code for the error type.
func (e *ErrorDetail) HTTPStatusCode() int {
	switch e.Type {
	case ErrorTypeInvalidRequest:
		return 400
	case ErrorTypeNotFound:
		return 404
	case ErrorTypeMethodNotAllowed:
		return 405
	case ErrorTypeServerError:
		return 500
	case ErrorTypeGatewayTimeout:
		return 504
	default:
		return 500
	}
}
