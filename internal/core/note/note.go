// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package note manages personal sermon notes.

Every signed-in user may keep notes. Members only ever see and modify their
own; staff see all of them. Anonymous callers see none. A note owned by someone
else is reported as not found, never as forbidden.
*/
package note

import "time"

// Note is a sermon note owned by one user.
type Note struct {
	ID         int64      `json:"id"`
	OwnerID    int64      `json:"owner_id"`
	Title      string     `json:"title"`
	Scripture  string     `json:"scripture"`
	Content    string     `json:"content"`
	PreachedOn *time.Time `json:"preached_on"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CreateInput is the body of POST /notes.
type CreateInput struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Scripture  string  `json:"scripture" validate:"max=200"`
	Content    string  `json:"content" validate:"required"`
	PreachedOn *string `json:"preached_on" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateInput is the body of PUT /notes/{id}.
type UpdateInput struct {
	Title      *string `json:"title" validate:"omitempty,min=1,max=200"`
	Scripture  *string `json:"scripture" validate:"omitempty,max=200"`
	Content    *string `json:"content" validate:"omitempty,min=1"`
	PreachedOn *string `json:"preached_on" validate:"omitempty,datetime=2006-01-02"`
}

const resourceName = "Note"
