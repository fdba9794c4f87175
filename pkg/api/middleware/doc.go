// Package middleware provides HTTP middleware for cross-cutting concerns.
//
// This package implements middleware functions that handle common
// functionality across all HTTP requests including panic recovery, request
// logging, metrics collection, request ID generation, CORS, and timeout
// enforcement.
//
// # Middleware Chain
//
// Middleware functions are chained in a specific order (outermost first):
//
//	handler = Recovery(Logging(Metrics(RequestID(CORS(Timeout(mux))))))
//
// Recovery sits outermost so a panic anywhere below it still produces a
// well-formed 500 response. Logging and Metrics wrap everything inside them
// so their status and duration reflect what the client actually saw,
// including timeouts. RequestID runs before CORS and Timeout so the ID is
// available for every log line and error response.
//
// # Request ID
//
// RequestIDMiddleware honors a client-supplied X-Request-ID header and
// otherwise generates 16 random bytes rendered as 32 hex characters. The ID
// is stored in the request context and echoed in the response headers.
//
// # CORS
//
// CORSMiddleware echoes the request origin when it is allowed (a "*" entry
// matches any origin) and always adds Vary: Origin. Wildcard method and
// header lists are expanded for preflight responses so that credentialed
// requests keep working; browsers reject a literal "*" when
// Access-Control-Allow-Credentials is true.
//
// # Timeout
//
// TimeoutMiddleware enforces a per-request deadline with
// context.WithTimeout. If the handler does not finish in time the client
// receives a 504 gateway_timeout error in the standard envelope.
//
// # Thread Safety
//
// All middleware functions are stateless and safe for concurrent use.
package middleware
