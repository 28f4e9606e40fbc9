package models

// Category is a fixed event classification tag. The set of category names
// is seeded once at first run and is read-only afterwards.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DefaultCategories is the fixed category enumeration seeded into an
// empty categories table.
var DefaultCategories = []string{
	"training",
	"conference",
	"social",
	"webinar",
	"workshop",
	"meetup",
}
