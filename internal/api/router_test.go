package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/event-manager/backend/internal/notify"
	"github.com/event-manager/backend/internal/reminder"
	"github.com/event-manager/backend/internal/storage"
	"github.com/event-manager/backend/internal/storage/models"
	"github.com/event-manager/backend/internal/store"
	"github.com/event-manager/backend/internal/websocket"
)

type testServer struct {
	router http.Handler
	store  *store.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := storage.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.RunMigrations(db))

	eventRepo := storage.NewEventRepository(db)
	categoryRepo := storage.NewCategoryRepository(db)
	reminderRepo := storage.NewReminderRepository(db)
	commentRepo := storage.NewCommentRepository(db)
	settingsRepo := storage.NewSettingsRepository(db)

	require.NoError(t, categoryRepo.Seed(context.Background()))

	hub := websocket.NewHub()
	go hub.Run()
	t.Cleanup(hub.Close)

	st := store.New(eventRepo, categoryRepo, reminderRepo, commentRepo, notify.Nop{}, websocket.NewEventBroadcaster(hub))
	require.NoError(t, st.Load(context.Background()))

	dispatcher := reminder.NewDispatcher(st, notify.Nop{}, nil, time.Minute)

	return &testServer{
		router: NewRouter(db, st, settingsRepo, dispatcher, hub, t.TempDir()),
		store:  st,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) createEvent(t *testing.T, title string) models.Event {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/events", map[string]any{
		"title":      title,
		"date":       time.Now().Add(time.Hour).Format(time.RFC3339),
		"location":   "HQ",
		"organizer":  "Sam",
		"categories": []string{"meetup"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var event models.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&event))
	return event
}

func TestEventLifecycle(t *testing.T) {
	s := newTestServer(t)

	event := s.createEvent(t, "Launch")
	require.NotEmpty(t, event.ID)

	rec := s.do(t, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var events []models.Event
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&events))
	require.Len(t, events, 1)
	require.Equal(t, "Launch", events[0].Title)

	rec = s.do(t, http.MethodGet, "/api/events/"+event.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodDelete, "/api/events/"+event.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/events/"+event.ID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateEventValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/events", map[string]any{"title": "No date"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/events", map[string]any{
		"title": "Bad date",
		"date":  "tomorrow-ish",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateComment(t *testing.T) {
	s := newTestServer(t)
	event := s.createEvent(t, "Discussed")

	rec := s.do(t, http.MethodPost, "/api/events/"+event.ID+"/comments", map[string]any{
		"author":  "Ana",
		"content": "See you there",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	got, ok := s.store.EventByID(event.ID)
	require.True(t, ok)
	require.Len(t, got.Comments, 1)
	require.Equal(t, "See you there", got.Comments[0].Content)

	rec = s.do(t, http.MethodPost, "/api/events/missing/comments", map[string]any{
		"author":  "Ana",
		"content": "Lost",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/events/"+event.ID+"/comments", map[string]any{"author": "Ana"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCategories(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []models.Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	require.Len(t, categories, len(models.DefaultCategories))
}

func TestReminderEndpoints(t *testing.T) {
	s := newTestServer(t)
	event := s.createEvent(t, "Reminded")

	rec := s.do(t, http.MethodPost, "/api/reminders", map[string]any{
		"event_id":       event.ID,
		"minutes_before": 30,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/reminders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var reminders []models.Reminder
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reminders))
	require.Len(t, reminders, 1)
	require.Equal(t, 30, reminders[0].MinutesBefore)

	rec = s.do(t, http.MethodPost, "/api/reminders", map[string]any{
		"event_id":       "missing",
		"minutes_before": 30,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/reminders", map[string]any{
		"event_id":       event.ID,
		"minutes_before": 0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/reminders/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "checked")
}

func TestSettingsEndpoints(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPut, "/api/settings", map[string]any{
		"language":           "en",
		"telegram_bot_token": "token-1",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var settings map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
	require.Equal(t, "en", settings["language"])
	require.Equal(t, "token-1", settings["telegram_bot_token"])
	require.Empty(t, settings["telegram_chat_id"])

	// Empty fields do not clobber stored values.
	rec = s.do(t, http.MethodPut, "/api/settings", map[string]any{"telegram_chat_id": "42"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/settings", nil)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&settings))
	require.Equal(t, "token-1", settings["telegram_bot_token"])
	require.Equal(t, "42", settings["telegram_chat_id"])
}

func TestExportEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.createEvent(t, "Exported")

	rec := s.do(t, http.MethodGet, "/api/export/events.ics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/calendar", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	require.Contains(t, rec.Body.String(), "SUMMARY:Exported")

	rec = s.do(t, http.MethodGet, "/api/export/events.json", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), ".json")

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded, 1)
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)
}
