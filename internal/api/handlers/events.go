// Package handlers provides HTTP request handlers for the API endpoints.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/event-manager/backend/internal/api/middleware"
	"github.com/event-manager/backend/internal/storage/models"
	"github.com/event-manager/backend/internal/store"
)

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Location    string   `json:"location"`
	Organizer   string   `json:"organizer"`
	Categories  []string `json:"categories"`
}

// ListEvents returns all cached events, most recent first.
func ListEvents(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events := st.Events()
		if events == nil {
			events = []models.Event{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}
}

// GetEvent returns a single event by ID.
func GetEvent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		event, ok := st.EventByID(id)
		if !ok {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(event)
	}
}

// CreateEvent persists a new event through the store.
func CreateEvent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateEventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		if req.Title == "" || req.Date == "" {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "Title and date are required")
			return
		}

		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "Date must be RFC3339")
			return
		}

		event := models.Event{
			Title:       req.Title,
			Description: req.Description,
			Date:        date,
			Location:    req.Location,
			Organizer:   req.Organizer,
			Categories:  req.Categories,
		}

		if err := st.AddEvent(r.Context(), &event); err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to create event")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(event)
	}
}

// DeleteEvent removes an event and cascades to its attendees, reminders,
// and comments.
func DeleteEvent(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if _, ok := st.EventByID(id); !ok {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
			return
		}

		if err := st.DeleteEvent(r.Context(), id); err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to delete event")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
