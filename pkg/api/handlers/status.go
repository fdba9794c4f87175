package handlers

import (
	"log/slog"
	"net/http"
	"os"

	"trivium-hq/vesta/pkg/api"
	"trivium-hq/vesta/pkg/storage"
	"trivium-hq/vesta/pkg/trivia"
)

const (
	// maxCollections caps the number of collection names reported by the
	// probe, keeping the payload bounded for databases with many tables.
	maxCollections = 10

	// maxErrorDetail caps embedded error text at 50 code points so a
	// multi-line driver error cannot blow up the status payload.
	maxErrorDetail = 50
)

// StatusResponse is the connectivity probe payload. Field order matters:
// deployed dashboards read the keys positionally, so the struct preserves
// the order backend, database, database_url, database_name,
// connection_status, collections.
type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StatusHandler serves the database connectivity probe. It reports the
// health of the archive store without ever failing the request itself:
// every outcome is folded into the status strings of a 200 response.
type StatusHandler struct {
	store   storage.Store
	openErr error
	logger  *slog.Logger
}

// NewStatusHandler creates the probe handler. store may be nil when no
// database is configured; openErr carries the error from a failed store
// open so the probe can report it.
func NewStatusHandler(store storage.Store, openErr error) *StatusHandler {
	return &StatusHandler{
		store:   store,
		openErr: openErr,
		logger:  slog.Default().With("component", "handlers.status"),
	}
}

// ServeHTTP handles the probe request.
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		_ = api.WriteError(w, api.NewMethodNotAllowedError(r.Method))
		return
	}

	resp := StatusResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	switch {
	case h.store != nil:
		resp.ConnectionStatus = "Connected"
		collections, err := h.store.Collections(r.Context())
		if err != nil {
			resp.Database = "⚠️  Connected but Error: " + trivia.Truncate(err.Error(), maxErrorDetail)
			h.logger.WarnContext(r.Context(), "collection listing failed",
				"store", h.store.Name(),
				"error", err,
			)
		} else {
			resp.Database = "✅ Connected & Working"
			if len(collections) > maxCollections {
				collections = collections[:maxCollections]
			}
			if collections != nil {
				resp.Collections = collections
			}
		}

	case h.openErr != nil:
		resp.Database = "❌ Error: " + trivia.Truncate(h.openErr.Error(), maxErrorDetail)
	}

	// The env markers are read per request so the probe reflects the
	// current process environment, not a snapshot from startup.
	resp.DatabaseURL = presenceMarker("DATABASE_URL")
	resp.DatabaseName = presenceMarker("DATABASE_NAME")

	_ = api.WriteJSON(w, http.StatusOK, resp)
}

func presenceMarker(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
