package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/event-manager/backend/internal/api/middleware"
	"github.com/event-manager/backend/internal/storage/models"
	"github.com/event-manager/backend/internal/store"
)

// CreateCommentRequest is the payload for commenting on an event.
type CreateCommentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// CreateComment appends a comment to an event.
func CreateComment(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID := mux.Vars(r)["id"]

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		if req.Author == "" || req.Content == "" {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "Author and content are required")
			return
		}

		if _, ok := st.EventByID(eventID); !ok {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
			return
		}

		comment := models.Comment{
			EventID: eventID,
			Author:  req.Author,
			Content: req.Content,
		}

		if err := st.AddComment(r.Context(), &comment); err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to create comment")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(comment)
	}
}
