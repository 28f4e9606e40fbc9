package storage

import (
	"context"
	"fmt"

	"github.com/event-manager/backend/internal/storage/models"
)

// ReminderRepository provides data access for event reminders.
type ReminderRepository struct {
	BaseRepository
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db *DB) *ReminderRepository {
	return &ReminderRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create inserts a new reminder, assigning its ID and creation timestamp.
func (r *ReminderRepository) Create(ctx context.Context, reminder *models.Reminder) error {
	reminder.ID = GenerateID()
	reminder.Created = r.Now()

	_, err := r.DB().ExecContext(ctx, `
		INSERT INTO reminders (id, event_id, minutes_before, created) VALUES (?, ?, ?, ?)
	`, reminder.ID, reminder.EventID, reminder.MinutesBefore, formatTime(reminder.Created))

	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}

	return nil
}

// List retrieves all reminders.
func (r *ReminderRepository) List(ctx context.Context) ([]models.Reminder, error) {
	rows, err := r.DB().QueryContext(ctx,
		"SELECT id, event_id, minutes_before, created FROM reminders")
	if err != nil {
		return nil, fmt.Errorf("querying reminders: %w", err)
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		var reminder models.Reminder
		var created string
		if err := rows.Scan(&reminder.ID, &reminder.EventID, &reminder.MinutesBefore, &created); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		if reminder.Created, err = parseTime(created); err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	return reminders, rows.Err()
}

// Delete removes a reminder by ID.
func (r *ReminderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB().ExecContext(ctx, "DELETE FROM reminders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("reminder not found: %s", id)
	}

	return nil
}
