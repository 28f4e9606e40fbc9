package export

import (
	"encoding/json"

	"github.com/event-manager/backend/internal/storage/models"
)

// jsonTimeLayout is the human-readable timestamp format used in JSON dumps.
const jsonTimeLayout = "2006-01-02 15:04:05"

// jsonEvent mirrors models.Event with the start time rendered as
// human-readable text instead of RFC3339.
type jsonEvent struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Date        string            `json:"date"`
	Location    string            `json:"location"`
	Organizer   string            `json:"organizer"`
	Categories  []string          `json:"categories"`
	Attendees   []models.Attendee `json:"attendees"`
	Comments    []models.Comment  `json:"comments"`
}

// JSON renders the hydrated event collection as an indented JSON dump.
func JSON(events []models.Event) ([]byte, error) {
	out := make([]jsonEvent, 0, len(events))
	for _, event := range events {
		out = append(out, jsonEvent{
			ID:          event.ID,
			Title:       event.Title,
			Description: event.Description,
			Date:        event.Date.Format(jsonTimeLayout),
			Location:    event.Location,
			Organizer:   event.Organizer,
			Categories:  event.Categories,
			Attendees:   event.Attendees,
			Comments:    event.Comments,
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
