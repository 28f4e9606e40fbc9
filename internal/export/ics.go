// Package export renders the event collection as downloadable ICS and JSON
// documents. There is no import path for either format.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/event-manager/backend/internal/storage/models"
)

const prodID = "-//Event Manager//NONSGML v1.0//EN"

// ICS renders all events as a VCALENDAR 2.0 document with one VEVENT per
// event carrying its identifier, creation stamp, start stamp, title,
// description, and location.
func ICS(events []models.Event) string {
	cal := ics.NewCalendar()
	cal.SetProductId(prodID)

	for _, event := range events {
		e := cal.AddEvent(event.ID)
		e.SetDtStampTime(event.CreatedAt.UTC())
		e.SetStartAt(event.Date.UTC())
		e.SetSummary(event.Title)
		e.SetDescription(event.Description)
		e.SetLocation(event.Location)
	}

	return cal.Serialize()
}

// Filename builds the download filename for an export, e.g.
// "events-2025-08-31.ics".
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("events-%s.%s", now.Format("2006-01-02"), ext)
}
