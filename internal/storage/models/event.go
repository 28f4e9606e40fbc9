// Package models contains the domain models for the application.
package models

import (
	"time"
)

// Event represents a user-created event with its hydrated collections.
// Events are immutable after creation except for the comments collection,
// which grows by prepend (newest first).
type Event struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	Location    string     `json:"location"`
	Organizer   string     `json:"organizer"`
	Categories  []string   `json:"categories"`
	Attendees   []Attendee `json:"attendees"`
	Comments    []Comment  `json:"comments"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Attendee represents a person registered for an event.
type Attendee struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// Comment represents a free-text comment attached to an event.
// Comments are never edited or deleted individually; they disappear
// only when their owning event is deleted.
type Comment struct {
	ID      string    `json:"id"`
	EventID string    `json:"event_id"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Created time.Time `json:"created"`
}
