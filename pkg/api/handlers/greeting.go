package handlers

import (
	"net/http"

	"trivium-hq/vesta/pkg/api"
)

// Greeting messages served by the two hello endpoints. The wording is part
// of the public contract: deployed frontends match on the exact strings.
const (
	// RootGreeting is the message served by GET /.
	RootGreeting = "Hello from FastAPI Backend!"

	// APIGreeting is the message served by GET /api/hello.
	APIGreeting = "Hello from the backend API!"
)

// GreetingHandler serves a fixed greeting message. The same handler type
// backs both hello endpoints, constructed with the respective message.
type GreetingHandler struct {
	message string
}

// NewGreetingHandler creates a handler that answers GET requests with the
// given greeting message.
func NewGreetingHandler(message string) *GreetingHandler {
	return &GreetingHandler{message: message}
}

// ServeHTTP handles the greeting request.
func (h *GreetingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		_ = api.WriteError(w, api.NewMethodNotAllowedError(r.Method))
		return
	}

	_ = api.WriteJSON(w, http.StatusOK, map[string]string{
		"message": h.message,
	})
}
