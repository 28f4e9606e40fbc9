package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/event-manager/backend/internal/storage/models"
)

// EventRepository provides data access for events and their dependent
// attendee and comment collections.
type EventRepository struct {
	BaseRepository
}

// NewEventRepository creates a new event repository.
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create inserts a new event. The event's ID and CreatedAt are assigned here,
// and its attendee and comment collections start out empty.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = GenerateID()
	event.CreatedAt = r.Now()
	if event.Categories == nil {
		event.Categories = []string{}
	}

	categories, err := json.Marshal(event.Categories)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}

	_, err = r.DB().ExecContext(ctx, `
		INSERT INTO events (id, title, description, date, location, organizer, categories, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		event.ID, event.Title, event.Description, formatTime(event.Date),
		event.Location, event.Organizer, string(categories), formatTime(event.CreatedAt),
	)

	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}

	event.Attendees = []models.Attendee{}
	event.Comments = []models.Comment{}

	return nil
}

// List retrieves all events fully hydrated: attendees and comments are joined
// onto their owning event by event_id, comments sorted newest-first, and
// persisted timestamps parsed back into time values. Intended for small
// personal datasets; no pagination.
func (r *EventRepository) List(ctx context.Context) ([]models.Event, error) {
	events, err := r.listEvents(ctx)
	if err != nil {
		return nil, err
	}

	attendees, err := r.listAttendees(ctx)
	if err != nil {
		return nil, err
	}

	comments, err := r.listComments(ctx)
	if err != nil {
		return nil, err
	}

	for i := range events {
		id := events[i].ID
		events[i].Attendees = attendees[id]
		events[i].Comments = comments[id]
		if events[i].Attendees == nil {
			events[i].Attendees = []models.Attendee{}
		}
		if events[i].Comments == nil {
			events[i].Comments = []models.Comment{}
		}
	}

	return events, nil
}

// Delete removes an event together with all attendees, reminders, and
// comments that reference it, in a single transaction. The cascade either
// fully commits or fully rolls back; partial deletes are never observable.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	return r.Transaction(func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "DELETE FROM events WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting event: %w", err)
		}

		rowsAffected, _ := result.RowsAffected()
		if rowsAffected == 0 {
			return fmt.Errorf("event not found: %s", id)
		}

		for _, table := range []string{"attendees", "reminders", "comments"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE event_id = ?", id); err != nil {
				return fmt.Errorf("deleting %s for event: %w", table, err)
			}
		}

		return nil
	})
}

func (r *EventRepository) listEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := r.DB().QueryContext(ctx, `
		SELECT id, title, description, date, location, organizer, categories, created_at
		FROM events
	`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		var date, categories, createdAt string
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &date,
			&event.Location, &event.Organizer, &categories, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}

		if event.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		if event.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(categories), &event.Categories); err != nil {
			return nil, fmt.Errorf("decoding categories: %w", err)
		}

		events = append(events, event)
	}

	return events, rows.Err()
}

func (r *EventRepository) listAttendees(ctx context.Context) (map[string][]models.Attendee, error) {
	rows, err := r.DB().QueryContext(ctx, "SELECT id, event_id, name, email FROM attendees")
	if err != nil {
		return nil, fmt.Errorf("querying attendees: %w", err)
	}
	defer rows.Close()

	byEvent := make(map[string][]models.Attendee)
	for rows.Next() {
		var a models.Attendee
		if err := rows.Scan(&a.ID, &a.EventID, &a.Name, &a.Email); err != nil {
			return nil, fmt.Errorf("scanning attendee: %w", err)
		}
		byEvent[a.EventID] = append(byEvent[a.EventID], a)
	}

	return byEvent, rows.Err()
}

func (r *EventRepository) listComments(ctx context.Context) (map[string][]models.Comment, error) {
	rows, err := r.DB().QueryContext(ctx, "SELECT id, event_id, author, content, created FROM comments")
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer rows.Close()

	byEvent := make(map[string][]models.Comment)
	for rows.Next() {
		var c models.Comment
		var created string
		if err := rows.Scan(&c.ID, &c.EventID, &c.Author, &c.Content, &created); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		if c.Created, err = parseTime(created); err != nil {
			return nil, err
		}
		byEvent[c.EventID] = append(byEvent[c.EventID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest first.
	for _, comments := range byEvent {
		sort.Slice(comments, func(i, j int) bool {
			return comments[i].Created.After(comments[j].Created)
		})
	}

	return byEvent, nil
}
