package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/event-manager/backend/internal/storage/models"
)

// Message bodies follow the layout of the original notification templates:
// a headline line, the event title, then date/location/organizer lines.

const messageTimeLayout = "Jan 2, 2006 at 3:04 PM"

func formatEventCreated(event models.Event) string {
	var b strings.Builder
	b.WriteString("🎉 New Event Created!\n\n")
	b.WriteString(event.Title + "\n")
	fmt.Fprintf(&b, "📅 %s\n", event.Date.Format(messageTimeLayout))
	fmt.Fprintf(&b, "📍 %s\n", event.Location)
	fmt.Fprintf(&b, "👤 Organized by: %s\n", event.Organizer)
	if event.Description != "" {
		fmt.Fprintf(&b, "\n📝 Description:\n%s\n", event.Description)
	}
	if len(event.Categories) > 0 {
		fmt.Fprintf(&b, "\n🏷 Categories: %s", strings.Join(event.Categories, ", "))
	}
	return b.String()
}

func formatEventReminder(event models.Event, timeUntil string) string {
	var b strings.Builder
	b.WriteString("⏰ Event Reminder!\n\n")
	fmt.Fprintf(&b, "%s starts in %s\n\n", event.Title, timeUntil)
	fmt.Fprintf(&b, "📅 %s\n", event.Date.Format(messageTimeLayout))
	fmt.Fprintf(&b, "📍 %s\n", event.Location)
	fmt.Fprintf(&b, "👤 Organized by: %s\n\n", event.Organizer)
	b.WriteString("Don't forget to attend! 🌟")
	return b.String()
}

func formatEventStarting(event models.Event) string {
	var b strings.Builder
	b.WriteString("🚀 Event Starting Soon!\n\n")
	fmt.Fprintf(&b, "%s is about to begin\n\n", event.Title)
	fmt.Fprintf(&b, "📅 %s\n", event.Date.Format(messageTimeLayout))
	fmt.Fprintf(&b, "📍 %s\n", event.Location)
	fmt.Fprintf(&b, "👤 Organized by: %s", event.Organizer)
	return b.String()
}

func formatCommentAdded(event models.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💬 New Comment on Event: %s\n\n", event.Title)
	if len(event.Comments) > 0 {
		latest := event.Comments[0]
		fmt.Fprintf(&b, "From: %s\n", latest.Author)
		b.WriteString(latest.Content + "\n\n")
	}
	fmt.Fprintf(&b, "📅 Event Date: %s", event.Date.Format(messageTimeLayout))
	return b.String()
}

// FormatTimeUntil renders a duration as approximate human-readable text,
// e.g. "25 minutes" or "about 2 hours".
func FormatTimeUntil(d time.Duration) string {
	if d < time.Minute {
		return "less than a minute"
	}

	minutes := int(d.Round(time.Minute) / time.Minute)
	switch {
	case minutes == 1:
		return "1 minute"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	}

	hours := int(d.Round(time.Hour) / time.Hour)
	switch {
	case hours == 1:
		return "about 1 hour"
	case hours < 24:
		return fmt.Sprintf("about %d hours", hours)
	}

	days := int(d.Round(24*time.Hour) / (24 * time.Hour))
	if days == 1 {
		return "about 1 day"
	}
	return fmt.Sprintf("about %d days", days)
}
