package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes a JSON response to the HTTP response writer.
// It sets the content-type header before writing the status code, since
// headers are immutable after WriteHeader.
//
// Example usage:
//
//	api.WriteJSON(w, http.StatusOK, map[string]string{"message": "hello"})
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}

	return nil
}

// WriteError writes an error response in the standard envelope.
// The HTTP status code is derived from the error type.
func WriteError(w http.ResponseWriter, errResp *ErrorResponse) error {
	return WriteJSON(w, errResp.Error.HTTPStatusCode(), errResp)
}
