// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// EventTable describes the 'events' table (calendar events).
type EventTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Location    string
	StartsAt    string
	EndsAt      string
	ImageURL    string
	CreatedBy   string
	CreatedAt   string
	UpdatedAt   string
}

// Event is the schema definition for events.
var Event = EventTable{
	Table:       "events",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Location:    "location",
	StartsAt:    "starts_at",
	EndsAt:      "ends_at",
	ImageURL:    "image_url",
	CreatedBy:   "created_by",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns every column in declaration order.
func (t EventTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Location, t.StartsAt, t.EndsAt, t.ImageURL, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}
