package storage

import (
	"context"
	"fmt"

	"github.com/event-manager/backend/internal/storage/models"
)

// AttendeeRepository provides data access for event attendees.
type AttendeeRepository struct {
	BaseRepository
}

// NewAttendeeRepository creates a new attendee repository.
func NewAttendeeRepository(db *DB) *AttendeeRepository {
	return &AttendeeRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create inserts a new attendee for an event.
func (r *AttendeeRepository) Create(ctx context.Context, attendee *models.Attendee) error {
	attendee.ID = GenerateID()

	_, err := r.DB().ExecContext(ctx, `
		INSERT INTO attendees (id, event_id, name, email) VALUES (?, ?, ?, ?)
	`, attendee.ID, attendee.EventID, attendee.Name, attendee.Email)

	if err != nil {
		return fmt.Errorf("inserting attendee: %w", err)
	}

	return nil
}

// ListByEvent retrieves all attendees for one event.
func (r *AttendeeRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Attendee, error) {
	rows, err := r.DB().QueryContext(ctx,
		"SELECT id, event_id, name, email FROM attendees WHERE event_id = ?", eventID)
	if err != nil {
		return nil, fmt.Errorf("querying attendees: %w", err)
	}
	defer rows.Close()

	var attendees []models.Attendee
	for rows.Next() {
		var a models.Attendee
		if err := rows.Scan(&a.ID, &a.EventID, &a.Name, &a.Email); err != nil {
			return nil, fmt.Errorf("scanning attendee: %w", err)
		}
		attendees = append(attendees, a)
	}

	return attendees, rows.Err()
}
