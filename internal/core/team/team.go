// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package team manages the leadership team profiles shown on the about page.
package team

import "time"

// Member is one team profile.
type Member struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Bio       string    `json:"bio"`
	PhotoURL  *string   `json:"photo_url"`
	SortOrder int       `json:"sort_order"`
	CreatedBy *int64    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the body of POST /team.
type CreateInput struct {
	Name      string  `json:"name" validate:"required,max=100"`
	Position  string  `json:"position" validate:"required,max=100"`
	Bio       string  `json:"bio" validate:"max=5000"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,url"`
	SortOrder int     `json:"sort_order" validate:"gte=0"`
}

// UpdateInput is the body of PUT /team/{id}.
type UpdateInput struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=100"`
	Position  *string `json:"position" validate:"omitempty,min=1,max=100"`
	Bio       *string `json:"bio" validate:"omitempty,max=5000"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,url"`
	SortOrder *int    `json:"sort_order" validate:"omitempty,gte=0"`
}

const resourceName = "Team member"
