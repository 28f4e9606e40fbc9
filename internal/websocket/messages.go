package websocket

import (
	"encoding/json"
	"time"

	"github.com/event-manager/backend/internal/storage/models"
)

// MessageType identifies the type of WebSocket message.
type MessageType string

const (
	// Server -> Client event types
	TypeEventCreated  MessageType = "event.created"
	TypeEventDeleted  MessageType = "event.deleted"
	TypeCommentAdded  MessageType = "comment.added"
	TypeReminderAdded MessageType = "reminder.added"
	TypeReminderFired MessageType = "reminder.fired"

	// Client -> Server command types
	TypePing MessageType = "ping"

	// Server -> Client response types
	TypePong MessageType = "pong"
)

// Message represents a WebSocket message envelope.
type Message struct {
	Type      MessageType `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   any         `json:"payload"`
}

// NewMessage creates a new message with the current timestamp.
func NewMessage(msgType MessageType, payload any) Message {
	return Message{
		Type:      msgType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JSON serializes the message to JSON bytes.
func (m Message) JSON() ([]byte, error) {
	return json.Marshal(m)
}

// EventPayload is the payload for event.created and comment.added messages.
// It carries the full hydrated snapshot so observers can re-render without
// a follow-up fetch.
type EventPayload struct {
	Event models.Event `json:"event"`
}

// EventDeletedPayload is the payload for event.deleted messages.
type EventDeletedPayload struct {
	EventID string `json:"event_id"`
}

// ReminderPayload is the payload for reminder.added messages.
type ReminderPayload struct {
	Reminder models.Reminder `json:"reminder"`
}

// ReminderFiredPayload is the payload for reminder.fired messages.
type ReminderFiredPayload struct {
	ReminderID string `json:"reminder_id"`
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
}
