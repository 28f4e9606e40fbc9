// Package reminder runs the periodic loop that fires event reminders.
package reminder

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/event-manager/backend/internal/notify"
	"github.com/event-manager/backend/internal/storage/models"
	"github.com/event-manager/backend/internal/store"
	"github.com/event-manager/backend/internal/websocket"
)

// urgentWindow is the fixed last-call window. A reminder whose event starts
// within this window fires the "starting soon" notification regardless of
// its configured lead time, so even long-lead reminders produce a final
// heads-up close to the start.
const urgentWindow = 5 * time.Minute

// Dispatcher evaluates cached reminders against the clock on a fixed tick
// and fires each one at most once. After a reminder's condition matches it
// is deleted (storage first, then cache), whether or not the notification
// itself was delivered; dispatch is best-effort with no retry.
type Dispatcher struct {
	cron        *cron.Cron
	store       *store.Store
	notifier    notify.Notifier
	broadcaster *websocket.EventBroadcaster
	interval    time.Duration

	// now is the clock source, replaceable in tests.
	now func() time.Time

	mu      sync.Mutex
	started bool
}

// NewDispatcher creates a reminder dispatcher over the given store.
// interval is the tick period; zero or negative means one minute.
func NewDispatcher(st *store.Store, notifier notify.Notifier, broadcaster *websocket.EventBroadcaster, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = time.Minute
	}
	if notifier == nil {
		notifier = notify.Nop{}
	}

	return &Dispatcher{
		cron:        cron.New(),
		store:       st,
		notifier:    notifier,
		broadcaster: broadcaster,
		interval:    interval,
		now:         time.Now,
	}
}

// Start begins the dispatch loop. Calling Start again on a running
// dispatcher is a no-op, so re-initialization never creates a second timer.
func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return
	}
	d.started = true

	d.cron.AddFunc("@every "+d.interval.String(), func() {
		d.CheckNow(context.Background())
	})

	d.cron.Start()
	log.Printf("Reminder dispatcher started (tick: %s)", d.interval)
}

// Stop tears down the loop. A tick in progress completes its current
// iteration before Stop returns.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.started {
		return
	}
	d.started = false

	ctx := d.cron.Stop()
	<-ctx.Done()
	log.Println("Reminder dispatcher stopped")
}

// CheckNow runs one dispatch iteration against the current cache snapshot.
// It is also called synchronously on demand, outside the timer.
func (d *Dispatcher) CheckNow(ctx context.Context) {
	now := d.now()

	for _, reminder := range d.store.Reminders() {
		event, ok := d.store.EventByID(reminder.EventID)
		if !ok {
			// Owning event left the cache; the cascade delete cleans the
			// reminder up, not this loop.
			continue
		}

		until := event.Date.Sub(now)
		if until <= 0 {
			// Past events never fire and are never auto-deleted here.
			continue
		}

		if until <= urgentWindow {
			if err := d.notifier.EventStarting(ctx, event); err != nil {
				log.Printf("Failed to send starting-soon notification for event %s: %v", event.ID, err)
			}
			d.removeFired(ctx, reminder, event)
			continue
		}

		if until <= reminder.LeadTime() {
			if err := d.notifier.EventReminder(ctx, event, notify.FormatTimeUntil(until)); err != nil {
				log.Printf("Failed to send reminder notification for event %s: %v", event.ID, err)
			}
			d.removeFired(ctx, reminder, event)
		}
	}
}

// removeFired deletes a fired reminder so it can never trigger again.
func (d *Dispatcher) removeFired(ctx context.Context, reminder models.Reminder, event models.Event) {
	if err := d.store.RemoveReminder(ctx, reminder.ID); err != nil {
		log.Printf("Failed to remove fired reminder %s: %v", reminder.ID, err)
		return
	}
	d.broadcaster.ReminderFired(reminder, event)
}
