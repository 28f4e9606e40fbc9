// Package api provides HTTP routing and handlers for the REST API.
package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/event-manager/backend/internal/api/handlers"
	"github.com/event-manager/backend/internal/api/middleware"
	"github.com/event-manager/backend/internal/reminder"
	"github.com/event-manager/backend/internal/storage"
	"github.com/event-manager/backend/internal/store"
	"github.com/event-manager/backend/internal/websocket"
)

// NewRouter creates and configures the HTTP router with all API routes.
func NewRouter(
	db *storage.DB,
	st *store.Store,
	settings *storage.SettingsRepository,
	dispatcher *reminder.Dispatcher,
	hub *websocket.Hub,
	staticDir string,
) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.ErrorRecovery)

	api := r.PathPrefix("/api").Subrouter()

	// Health and live feed
	api.HandleFunc("/health", handlers.HealthCheck(db)).Methods("GET")
	api.HandleFunc("/ws", handlers.WebSocketUpgrade(hub)).Methods("GET")

	// Event endpoints
	api.HandleFunc("/events", handlers.ListEvents(st)).Methods("GET")
	api.HandleFunc("/events", handlers.CreateEvent(st)).Methods("POST")
	api.HandleFunc("/events/{id}", handlers.GetEvent(st)).Methods("GET")
	api.HandleFunc("/events/{id}", handlers.DeleteEvent(st)).Methods("DELETE")
	api.HandleFunc("/events/{id}/comments", handlers.CreateComment(st)).Methods("POST")

	// Category endpoints
	api.HandleFunc("/categories", handlers.ListCategories(st)).Methods("GET")

	// Reminder endpoints
	api.HandleFunc("/reminders", handlers.ListReminders(st)).Methods("GET")
	api.HandleFunc("/reminders", handlers.CreateReminder(st)).Methods("POST")
	api.HandleFunc("/reminders/check", handlers.CheckReminders(dispatcher)).Methods("POST")

	// Settings endpoints
	api.HandleFunc("/settings", handlers.GetSettings(settings)).Methods("GET")
	api.HandleFunc("/settings", handlers.UpdateSettings(settings)).Methods("PUT")

	// Export endpoints
	api.HandleFunc("/export/events.ics", handlers.ExportICS(st)).Methods("GET")
	api.HandleFunc("/export/events.json", handlers.ExportJSON(st)).Methods("GET")

	// Serve static frontend files
	r.PathPrefix("/").Handler(http.FileServer(http.Dir(staticDir)))

	return r
}
