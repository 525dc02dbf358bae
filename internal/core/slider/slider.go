// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slider manages the homepage carousel. Inactive slides are hidden
// from everyone but staff.
package slider

import "time"

// Status toggles a slide on the homepage.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Image is one carousel slide.
type Image struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url"`
	LinkURL   *string   `json:"link_url"`
	Position  int       `json:"position"`
	Status    Status    `json:"status"`
	CreatedBy *int64    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInput is the body of POST /slider.
type CreateInput struct {
	Title    string  `json:"title" validate:"required,max=200"`
	Caption  string  `json:"caption" validate:"max=500"`
	ImageURL string  `json:"image_url" validate:"required,url"`
	LinkURL  *string `json:"link_url" validate:"omitempty,url"`
	Position int     `json:"position" validate:"gte=0"`
	Status   string  `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateInput is the body of PUT /slider/{id}.
type UpdateInput struct {
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Caption  *string `json:"caption" validate:"omitempty,max=500"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
	LinkURL  *string `json:"link_url" validate:"omitempty,url"`
	Position *int    `json:"position" validate:"omitempty,gte=0"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

const resourceName = "Slider image"
