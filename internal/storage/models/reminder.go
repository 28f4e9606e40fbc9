package models

import (
	"time"
)

// Reminder schedules a notification MinutesBefore minutes ahead of its
// owning event's start. A reminder fires at most once: after dispatch it
// is deleted, so it can never re-trigger on a later tick.
type Reminder struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	MinutesBefore int       `json:"minutes_before"`
	Created       time.Time `json:"created"`
}

// LeadTime returns the configured lead time as a duration.
func (r *Reminder) LeadTime() time.Duration {
	return time.Duration(r.MinutesBefore) * time.Minute
}
