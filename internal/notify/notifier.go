// Package notify delivers outbound event notifications through the
// Telegram bot API.
package notify

import (
	"context"

	"github.com/event-manager/backend/internal/storage/models"
)

// Notifier sends event lifecycle notifications. Delivery is best-effort:
// callers log failures but never let them block the triggering operation.
type Notifier interface {
	// EventCreated announces a newly created event.
	EventCreated(ctx context.Context, event models.Event) error

	// EventReminder announces an upcoming event at its configured lead time.
	// timeUntil is a human-readable duration until the event starts.
	EventReminder(ctx context.Context, event models.Event, timeUntil string) error

	// EventStarting announces an event starting within the urgent window.
	EventStarting(ctx context.Context, event models.Event) error

	// CommentAdded announces a new comment; event carries the updated
	// snapshot with the comment prepended.
	CommentAdded(ctx context.Context, event models.Event) error
}

// Nop is a Notifier that does nothing. Used when notifications are disabled
// and in tests.
type Nop struct{}

func (Nop) EventCreated(context.Context, models.Event) error          { return nil }
func (Nop) EventReminder(context.Context, models.Event, string) error { return nil }
func (Nop) EventStarting(context.Context, models.Event) error         { return nil }
func (Nop) CommentAdded(context.Context, models.Event) error          { return nil }
