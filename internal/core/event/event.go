// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package event manages the church calendar. Events are public; staff
// maintain them.
package event

import (
	"time"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
)

// Event is a calendar entry.
type Event struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	ImageURL    *string    `json:"image_url"`
	CreatedBy   *int64     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateInput is the body of POST /events.
type CreateInput struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description"`
	Location    string     `json:"location" validate:"max=200"`
	StartsAt    time.Time  `json:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at" validate:"omitempty,gtefield=StartsAt"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
}

// UpdateInput is the body of PUT /events/{id}.
type UpdateInput struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Location    *string    `json:"location" validate:"omitempty,max=200"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
}

// ListFilter narrows a listing.
type ListFilter struct {
	Visibility authz.Filter
	// UpcomingAfter keeps events that have not ended by this instant.
	UpcomingAfter *time.Time
}

const resourceName = "Event"
