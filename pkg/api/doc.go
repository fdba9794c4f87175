// Package api provides the shared HTTP response envelope for the Vesta
// backend.
//
// All endpoints respond with JSON. Successful responses are written with
// WriteJSON; error responses use the ErrorResponse envelope:
//
//	{
//	  "error": {
//	    "message": "An internal error occurred. Please try again later.",
//	    "type": "server_error",
//	    "code": "internal_error"
//	  }
//	}
//
// The error envelope is reserved for infrastructure failures (panics,
// request timeouts, method violations, unknown paths). The domain endpoints
// themselves are fail-open and answer 200 with degraded payloads instead of
// surfacing errors; see pkg/api/handlers.
package api
