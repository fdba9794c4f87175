package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"trivium-hq/vesta/pkg/api"
)

// RecoveryMiddleware recovers from panics in HTTP handlers and returns a 500
// Internal Server Error in the standard envelope. It logs the panic with
// stack trace for debugging but does not expose internal details to clients.
//
// Example usage:
//
//	handler = RecoveryMiddleware(handler)
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(r.Context())
				stack := debug.Stack()

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"request_id", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(stack),
				)

				errResp := api.NewServerError(
					"An internal error occurred. Please try again later.",
				)

				// Encoding errors are ignored; the connection may already be gone.
				_ = api.WriteError(w, errResp)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
