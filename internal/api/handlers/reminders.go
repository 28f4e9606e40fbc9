package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/event-manager/backend/internal/api/middleware"
	"github.com/event-manager/backend/internal/reminder"
	"github.com/event-manager/backend/internal/storage/models"
	"github.com/event-manager/backend/internal/store"
)

// CreateReminderRequest is the payload for scheduling a reminder.
type CreateReminderRequest struct {
	EventID       string `json:"event_id"`
	MinutesBefore int    `json:"minutes_before"`
}

// ListReminders returns all pending reminders.
func ListReminders(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reminders := st.Reminders()
		if reminders == nil {
			reminders = []models.Reminder{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reminders)
	}
}

// CreateReminder schedules a new reminder for an event.
func CreateReminder(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrBadRequest, "Invalid request body")
			return
		}

		if req.EventID == "" || req.MinutesBefore <= 0 {
			middleware.WriteError(w, http.StatusBadRequest, middleware.ErrValidation, "Event ID and a positive lead time are required")
			return
		}

		if _, ok := st.EventByID(req.EventID); !ok {
			middleware.WriteError(w, http.StatusNotFound, middleware.ErrNotFound, "Event not found")
			return
		}

		rem := models.Reminder{
			EventID:       req.EventID,
			MinutesBefore: req.MinutesBefore,
		}

		if err := st.AddReminder(r.Context(), &rem); err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to create reminder")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rem)
	}
}

// CheckReminders runs one dispatch iteration on demand, outside the timer.
func CheckReminders(dispatcher *reminder.Dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dispatcher.CheckNow(r.Context())

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "checked"})
	}
}
