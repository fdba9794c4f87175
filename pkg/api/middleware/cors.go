package middleware

import (
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig contains configuration for CORS middleware.
type CORSConfig struct {
	// Enabled controls whether CORS is enabled.
	Enabled bool

	// AllowedOrigins is a list of allowed origins for CORS.
	// Use ["*"] to allow all origins.
	AllowedOrigins []string

	// AllowedMethods is a list of allowed HTTP methods.
	// Use ["*"] to allow all standard methods.
	AllowedMethods []string

	// AllowedHeaders is a list of allowed HTTP headers.
	// Use ["*"] to allow whatever the preflight asks for.
	AllowedHeaders []string

	// ExposedHeaders is a list of headers exposed to clients.
	ExposedHeaders []string

	// MaxAge is the maximum age (in seconds) for preflight cache.
	MaxAge int

	// AllowCredentials controls whether credentials are allowed.
	AllowCredentials bool
}

// DefaultCORSConfig returns a default CORS configuration: any origin, any
// method, any header, credentials allowed.
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		Enabled:          true,
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"*"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader},
		MaxAge:           3600, // 1 hour
		AllowCredentials: true,
	}
}

// allMethods is the expansion of a "*" entry in AllowedMethods. A literal
// "*" in Access-Control-Allow-Methods is rejected by browsers when
// credentials are allowed, so the wildcard is spelled out.
var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// CORSMiddleware adds Cross-Origin Resource Sharing (CORS) headers to
// responses. It handles preflight OPTIONS requests and adds appropriate CORS
// headers for all requests.
//
// When the request origin is allowed (a "*" entry matches any origin) the
// middleware echoes that origin in Access-Control-Allow-Origin rather than
// sending a literal "*", so that credentialed requests work. Vary: Origin is
// added whenever CORS is enabled because the response headers depend on the
// request origin.
//
// Example usage:
//
//	handler = CORSMiddleware(DefaultCORSConfig())(handler)
func CORSMiddleware(config *CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skip CORS if disabled
			if !config.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add("Vary", "Origin")

			origin := r.Header.Get("Origin")

			if origin != "" && isOriginAllowed(origin, config.AllowedOrigins) {
				w.Header().Set("Access-Control-Allow-Origin", origin)

				if config.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}

				if len(config.ExposedHeaders) > 0 {
					w.Header().Set("Access-Control-Expose-Headers", strings.Join(config.ExposedHeaders, ", "))
				}
			}

			// Handle preflight OPTIONS request
			if r.Method == http.MethodOptions {
				if methods := expandMethods(config.AllowedMethods); len(methods) > 0 {
					w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))
				}

				if headers := allowedHeaders(config.AllowedHeaders, r); headers != "" {
					w.Header().Set("Access-Control-Allow-Headers", headers)
				}

				if config.MaxAge > 0 {
					w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				}

				// Respond with 204 No Content for preflight
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isOriginAllowed checks if an origin is in the allowed list.
func isOriginAllowed(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}

// expandMethods replaces a "*" entry with the full standard method list.
func expandMethods(methods []string) []string {
	for _, m := range methods {
		if m == "*" {
			return allMethods
		}
	}
	return methods
}

// allowedHeaders resolves the Access-Control-Allow-Headers value for a
// preflight request. A "*" entry echoes whatever headers the preflight asked
// for, falling back to the literal wildcard when it asked for none.
func allowedHeaders(headers []string, r *http.Request) string {
	for _, h := range headers {
		if h == "*" {
			if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
				return requested
			}
			return "*"
		}
	}
	return strings.Join(headers, ", ")
}
