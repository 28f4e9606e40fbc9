// Package store holds the in-memory application state: the single source of
// truth consumed by the API, the WebSocket feed, and the reminder dispatch
// loop. Every mutation persists through the storage layer first and touches
// the cache only after persistence succeeds, so the cache never gets ahead
// of the database.
package store

import (
	"context"
	"log"
	"sync"

	"github.com/event-manager/backend/internal/notify"
	"github.com/event-manager/backend/internal/storage"
	"github.com/event-manager/backend/internal/storage/models"
	"github.com/event-manager/backend/internal/websocket"
)

// Store caches events, categories, and reminders in memory, mirroring
// persisted state. It is safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	events     []models.Event
	categories []models.Category
	reminders  []models.Reminder

	eventRepo    *storage.EventRepository
	categoryRepo *storage.CategoryRepository
	reminderRepo *storage.ReminderRepository
	commentRepo  *storage.CommentRepository

	notifier    notify.Notifier
	broadcaster *websocket.EventBroadcaster
}

// New creates a store over the given repositories. notifier may be nil to
// disable outbound notifications; broadcaster may be nil to disable the
// WebSocket feed.
func New(
	eventRepo *storage.EventRepository,
	categoryRepo *storage.CategoryRepository,
	reminderRepo *storage.ReminderRepository,
	commentRepo *storage.CommentRepository,
	notifier notify.Notifier,
	broadcaster *websocket.EventBroadcaster,
) *Store {
	if notifier == nil {
		notifier = notify.Nop{}
	}

	return &Store{
		eventRepo:    eventRepo,
		categoryRepo: categoryRepo,
		reminderRepo: reminderRepo,
		commentRepo:  commentRepo,
		notifier:     notifier,
		broadcaster:  broadcaster,
	}
}

// Load replaces all in-memory collections with freshly read persisted state.
// Called once at process start.
func (s *Store) Load(ctx context.Context) error {
	if err := s.LoadEvents(ctx); err != nil {
		return err
	}
	if err := s.LoadCategories(ctx); err != nil {
		return err
	}
	return s.LoadReminders(ctx)
}

// LoadEvents replaces the in-memory event list with persisted state.
func (s *Store) LoadEvents(ctx context.Context) error {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
	return nil
}

// LoadCategories replaces the in-memory category list with persisted state.
func (s *Store) LoadCategories(ctx context.Context) error {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	return nil
}

// LoadReminders replaces the in-memory reminder list with persisted state.
func (s *Store) LoadReminders(ctx context.Context) error {
	reminders, err := s.reminderRepo.List(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.reminders = reminders
	s.mu.Unlock()
	return nil
}

// Events returns a snapshot of the cached events, most recent first.
func (s *Store) Events() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, len(s.events))
	copy(events, s.events)
	return events
}

// EventByID returns the cached event with the given ID, if present.
func (s *Store) EventByID(id string) (models.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			return event, true
		}
	}
	return models.Event{}, false
}

// Categories returns a snapshot of the cached categories.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, len(s.categories))
	copy(categories, s.categories)
	return categories
}

// Reminders returns a snapshot of the cached reminders.
func (s *Store) Reminders() []models.Reminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reminders := make([]models.Reminder, len(s.reminders))
	copy(reminders, s.reminders)
	return reminders
}

// AddEvent persists a new event, prepends it to the cache, and announces it.
// A persistence failure leaves the cache unchanged and is returned to the
// caller; a notification failure is logged and swallowed.
func (s *Store) AddEvent(ctx context.Context, event *models.Event) error {
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return err
	}

	s.mu.Lock()
	s.events = append([]models.Event{*event}, s.events...)
	s.mu.Unlock()

	if err := s.notifier.EventCreated(ctx, *event); err != nil {
		log.Printf("Failed to send event created notification: %v", err)
	}
	s.broadcaster.EventCreated(*event)

	return nil
}

// DeleteEvent persists the cascading delete, then removes the event and any
// reminders referencing it from the cache.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	events := s.events[:0]
	for _, event := range s.events {
		if event.ID != id {
			events = append(events, event)
		}
	}
	s.events = events

	reminders := s.reminders[:0]
	for _, reminder := range s.reminders {
		if reminder.EventID != id {
			reminders = append(reminders, reminder)
		}
	}
	s.reminders = reminders
	s.mu.Unlock()

	s.broadcaster.EventDeleted(id)

	return nil
}

// AddReminder persists a new reminder and mirrors it into the cache.
func (s *Store) AddReminder(ctx context.Context, reminder *models.Reminder) error {
	if err := s.reminderRepo.Create(ctx, reminder); err != nil {
		return err
	}

	s.mu.Lock()
	s.reminders = append(s.reminders, *reminder)
	s.mu.Unlock()

	s.broadcaster.ReminderAdded(*reminder)

	return nil
}

// RemoveReminder deletes a reminder from storage and then from the cache.
// Used by the dispatch loop after a reminder fires; cache removal always
// follows successful persisted deletion.
func (s *Store) RemoveReminder(ctx context.Context, id string) error {
	if err := s.reminderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	reminders := s.reminders[:0]
	for _, reminder := range s.reminders {
		if reminder.ID != id {
			reminders = append(reminders, reminder)
		}
	}
	s.reminders = reminders
	s.mu.Unlock()

	return nil
}

// AddComment persists a comment and, if the owning event is still cached,
// prepends it to that event's comment collection and announces the updated
// snapshot. If the event has already left the cache (raced with a deletion)
// the comment stays persisted but the cache update and notification are
// skipped.
func (s *Store) AddComment(ctx context.Context, comment *models.Comment) error {
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return err
	}

	var updated models.Event
	found := false

	s.mu.Lock()
	for i := range s.events {
		if s.events[i].ID == comment.EventID {
			s.events[i].Comments = append([]models.Comment{*comment}, s.events[i].Comments...)
			updated = s.events[i]
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return nil
	}

	if err := s.notifier.CommentAdded(ctx, updated); err != nil {
		log.Printf("Failed to send new comment notification: %v", err)
	}
	s.broadcaster.CommentAdded(updated)

	return nil
}
