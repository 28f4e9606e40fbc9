package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/event-manager/backend/internal/storage"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status      string `json:"status"`
	DBConnected bool   `json:"db_connected"`
}

// HealthCheck returns a handler that performs a health check.
func HealthCheck(db *storage.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbConnected := db.Ping() == nil

		status := "ok"
		if !dbConnected {
			status = "degraded"
		}

		w.Header().Set("Content-Type", "application/json")
		if !dbConnected {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(HealthResponse{
			Status:      status,
			DBConnected: dbConnected,
		})
	}
}
