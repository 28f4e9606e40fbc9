package handlers

import (
	"net/http"
	"time"

	"github.com/event-manager/backend/internal/api/middleware"
	"github.com/event-manager/backend/internal/export"
	"github.com/event-manager/backend/internal/store"
)

// ExportICS serves the event collection as a downloadable ICS calendar.
func ExportICS(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := export.ICS(st.Events())

		w.Header().Set("Content-Type", "text/calendar")
		w.Header().Set("Content-Disposition",
			`attachment; filename="`+export.Filename("ics", time.Now())+`"`)
		w.Write([]byte(body))
	}
}

// ExportJSON serves the hydrated event collection as a downloadable JSON dump.
func ExportJSON(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := export.JSON(st.Events())
		if err != nil {
			middleware.WriteError(w, http.StatusInternalServerError, middleware.ErrInternalError, "Failed to encode events")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition",
			`attachment; filename="`+export.Filename("json", time.Now())+`"`)
		w.Write(body)
	}
}
