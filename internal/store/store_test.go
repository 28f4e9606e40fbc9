package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/event-manager/backend/internal/storage"
	"github.com/event-manager/backend/internal/storage/models"
)

type recordingNotifier struct {
	created  []models.Event
	comments []models.Event
}

func (n *recordingNotifier) EventCreated(_ context.Context, event models.Event) error {
	n.created = append(n.created, event)
	return nil
}

func (n *recordingNotifier) EventReminder(context.Context, models.Event, string) error { return nil }
func (n *recordingNotifier) EventStarting(context.Context, models.Event) error         { return nil }

func (n *recordingNotifier) CommentAdded(_ context.Context, event models.Event) error {
	n.comments = append(n.comments, event)
	return nil
}

func newTestStore(t *testing.T) (*Store, *recordingNotifier) {
	t.Helper()

	db, err := storage.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.RunMigrations(db))

	notifier := &recordingNotifier{}
	st := New(
		storage.NewEventRepository(db),
		storage.NewCategoryRepository(db),
		storage.NewReminderRepository(db),
		storage.NewCommentRepository(db),
		notifier,
		nil,
	)
	require.NoError(t, st.Load(context.Background()))
	return st, notifier
}

func TestStore_AddEventPrepends(t *testing.T) {
	st, notifier := newTestStore(t)
	ctx := context.Background()

	first := models.Event{Title: "First", Date: time.Now().Add(time.Hour)}
	second := models.Event{Title: "Second", Date: time.Now().Add(2 * time.Hour)}
	require.NoError(t, st.AddEvent(ctx, &first))
	require.NoError(t, st.AddEvent(ctx, &second))

	events := st.Events()
	require.Len(t, events, 2)
	require.Equal(t, "Second", events[0].Title)
	require.Equal(t, "First", events[1].Title)

	require.Len(t, notifier.created, 2)
	require.Equal(t, "Second", notifier.created[1].Title)
}

func TestStore_EventByID(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	event := models.Event{Title: "Lookup", Date: time.Now().Add(time.Hour)}
	require.NoError(t, st.AddEvent(ctx, &event))

	got, ok := st.EventByID(event.ID)
	require.True(t, ok)
	require.Equal(t, "Lookup", got.Title)

	_, ok = st.EventByID("missing")
	require.False(t, ok)
}

func TestStore_DeleteEventRemovesReminders(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	event := models.Event{Title: "Doomed", Date: time.Now().Add(time.Hour)}
	other := models.Event{Title: "Kept", Date: time.Now().Add(2 * time.Hour)}
	require.NoError(t, st.AddEvent(ctx, &event))
	require.NoError(t, st.AddEvent(ctx, &other))

	require.NoError(t, st.AddReminder(ctx, &models.Reminder{EventID: event.ID, MinutesBefore: 30}))
	kept := models.Reminder{EventID: other.ID, MinutesBefore: 15}
	require.NoError(t, st.AddReminder(ctx, &kept))

	require.NoError(t, st.DeleteEvent(ctx, event.ID))

	events := st.Events()
	require.Len(t, events, 1)
	require.Equal(t, other.ID, events[0].ID)

	reminders := st.Reminders()
	require.Len(t, reminders, 1)
	require.Equal(t, kept.ID, reminders[0].ID)
}

func TestStore_DeleteMissingEventLeavesCacheUnchanged(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	event := models.Event{Title: "Stable", Date: time.Now().Add(time.Hour)}
	require.NoError(t, st.AddEvent(ctx, &event))

	require.Error(t, st.DeleteEvent(ctx, "no-such-id"))
	require.Len(t, st.Events(), 1)
}

func TestStore_AddCommentPrependsNewestFirst(t *testing.T) {
	st, notifier := newTestStore(t)
	ctx := context.Background()

	event := models.Event{Title: "Discussed", Date: time.Now().Add(time.Hour)}
	require.NoError(t, st.AddEvent(ctx, &event))

	older := models.Comment{EventID: event.ID, Author: "Ana", Content: "first comment"}
	newer := models.Comment{EventID: event.ID, Author: "Bo", Content: "second comment"}
	require.NoError(t, st.AddComment(ctx, &older))
	require.NoError(t, st.AddComment(ctx, &newer))

	got, ok := st.EventByID(event.ID)
	require.True(t, ok)
	require.Len(t, got.Comments, 2)
	require.Equal(t, "second comment", got.Comments[0].Content)
	require.Equal(t, "first comment", got.Comments[1].Content)

	// The notification carries the updated snapshot.
	require.Len(t, notifier.comments, 2)
	require.Equal(t, "second comment", notifier.comments[1].Comments[0].Content)
}

func TestStore_AddCommentForUncachedEvent(t *testing.T) {
	st, notifier := newTestStore(t)
	ctx := context.Background()

	event := models.Event{Title: "Shadow", Date: time.Now().Add(time.Hour)}
	require.NoError(t, st.AddEvent(ctx, &event))

	// Drop the event from the cache only; its row remains persisted, so the
	// comment write succeeds but the cache update and notification are skipped.
	st.mu.Lock()
	st.events = nil
	st.mu.Unlock()

	comment := models.Comment{EventID: event.ID, Author: "Ana", Content: "orphan"}
	require.NoError(t, st.AddComment(ctx, &comment))
	require.NotEmpty(t, comment.ID)
	require.Empty(t, notifier.comments)

	// The write itself went through; a reload makes the comment visible.
	require.NoError(t, st.LoadEvents(ctx))
	got, ok := st.EventByID(event.ID)
	require.True(t, ok)
	require.Len(t, got.Comments, 1)
	require.Equal(t, "orphan", got.Comments[0].Content)
}
