// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// NoteTable describes the 'notes' table (sermon notes owned by an account).
type NoteTable struct {
	Table      string
	ID         string
	OwnerID    string
	Title      string
	Scripture  string
	Content    string
	PreachedOn string
	CreatedAt  string
	UpdatedAt  string
}

// Note is the schema definition for notes.
var Note = NoteTable{
	Table:      "notes",
	ID:         "id",
	OwnerID:    "owner_id",
	Title:      "title",
	Scripture:  "scripture",
	Content:    "content",
	PreachedOn: "preached_on",
	CreatedAt:  "created_at",
	UpdatedAt:  "updated_at",
}

// Columns returns every column in declaration order.
func (t NoteTable) Columns() []string {
	return []string{t.ID, t.OwnerID, t.Title, t.Scripture, t.Content, t.PreachedOn, t.CreatedAt, t.UpdatedAt}
}
