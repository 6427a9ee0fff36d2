package diagnostics

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
)

// store is an interface for the store connectivity checks.
type store interface {
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// statusReport describes store connectivity. The endpoint never fails: a
// broken store degrades the report, not the response.
type statusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// Root handles the root request.
func Root(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"message": "HNG PACKAGING SOLUTION backend is running"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error sending root response", "error", err)
	}
}

// TestStore handles the store diagnostics request.
func TestStore(w http.ResponseWriter, r *http.Request, store store) {
	report := statusReport{
		Backend:          "running",
		Database:         "not available",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if store != nil {
		if err := store.Ping(r.Context()); err != nil {
			report.Database = "error: " + err.Error()
		} else {
			report.Database = "connected"
			report.ConnectionStatus = "connected"

			collections, err := store.ListCollectionNames(r.Context())
			if err != nil {
				report.Database = "connected but error: " + err.Error()
			} else {
				if len(collections) > 10 {
					collections = collections[:10]
				}
				report.Collections = collections
			}
		}
	}

	report.DatabaseURL = envStatus("DATABASE_URL")
	report.DatabaseName = envStatus("DATABASE_NAME")

	if err := json.NewEncoder(w).Encode(report); err != nil {
		slog.Error("Error sending diagnostics response", "error", err)
	}
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}

	return "not set"
}
