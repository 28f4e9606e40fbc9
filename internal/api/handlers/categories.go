package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/event-manager/backend/internal/storage/models"
	"github.com/event-manager/backend/internal/store"
)

// ListCategories returns the fixed category set.
func ListCategories(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := st.Categories()
		if categories == nil {
			categories = []models.Category{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}
