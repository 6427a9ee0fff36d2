package seedproducts

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// service is an interface for the service layer.
type service interface {
	Seed(ctx context.Context) (string, int64, error)
}

// seedResponse represents a seed response.
type seedResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// SeedProducts handles the seed request. Seeding is idempotent: a second
// call inserts nothing and reports the existing count.
func SeedProducts(w http.ResponseWriter, r *http.Request, service service) {
	message, count, err := service.Seed(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error seeding products", "error", err)

		return
	}

	if err := json.NewEncoder(w).Encode(seedResponse{Message: message, Count: count}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		slog.Error("Error sending response for seed", "error", err)
	}
}
