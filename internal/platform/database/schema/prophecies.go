// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ProphecyTable describes the 'prophecies' table (recorded prophecies).
type ProphecyTable struct {
	Table       string
	ID          string
	Title       string
	Content     string
	ProphetName string
	ReceivedOn  string
	Status      string
	CreatedBy   string
	CreatedAt   string
	UpdatedAt   string
}

// Prophecy is the schema definition for prophecies.
var Prophecy = ProphecyTable{
	Table:       "prophecies",
	ID:          "id",
	Title:       "title",
	Content:     "content",
	ProphetName: "prophet_name",
	ReceivedOn:  "received_on",
	Status:      "status",
	CreatedBy:   "created_by",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

// Columns returns every column in declaration order.
func (t ProphecyTable) Columns() []string {
	return []string{t.ID, t.Title, t.Content, t.ProphetName, t.ReceivedOn, t.Status, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}
