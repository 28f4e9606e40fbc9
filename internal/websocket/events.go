package websocket

import (
	"log"

	"github.com/event-manager/backend/internal/storage/models"
)

// EventBroadcaster pushes store-change events to connected WebSocket clients
// so UI observers re-render after every mutation. All methods are safe on a
// nil receiver, which lets callers skip nil checks when broadcasting is
// disabled.
type EventBroadcaster struct {
	hub *Hub
}

// NewEventBroadcaster creates a new event broadcaster.
func NewEventBroadcaster(hub *Hub) *EventBroadcaster {
	return &EventBroadcaster{hub: hub}
}

// EventCreated announces a newly created event.
func (b *EventBroadcaster) EventCreated(event models.Event) {
	b.broadcast(NewMessage(TypeEventCreated, EventPayload{Event: event}))
}

// EventDeleted announces an event deletion (and its cascade).
func (b *EventBroadcaster) EventDeleted(eventID string) {
	b.broadcast(NewMessage(TypeEventDeleted, EventDeletedPayload{EventID: eventID}))
}

// CommentAdded announces a new comment via the updated event snapshot.
func (b *EventBroadcaster) CommentAdded(event models.Event) {
	b.broadcast(NewMessage(TypeCommentAdded, EventPayload{Event: event}))
}

// ReminderAdded announces a newly scheduled reminder.
func (b *EventBroadcaster) ReminderAdded(reminder models.Reminder) {
	b.broadcast(NewMessage(TypeReminderAdded, ReminderPayload{Reminder: reminder}))
}

// ReminderFired announces that a reminder dispatched and was removed.
func (b *EventBroadcaster) ReminderFired(reminder models.Reminder, event models.Event) {
	b.broadcast(NewMessage(TypeReminderFired, ReminderFiredPayload{
		ReminderID: reminder.ID,
		EventID:    event.ID,
		EventTitle: event.Title,
	}))
}

func (b *EventBroadcaster) broadcast(msg Message) {
	if b == nil || b.hub == nil {
		return
	}

	data, err := msg.JSON()
	if err != nil {
		log.Printf("Failed to encode WebSocket message: %v", err)
		return
	}

	b.hub.Broadcast(data)
}
