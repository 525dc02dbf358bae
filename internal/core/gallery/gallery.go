// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package gallery manages the photo gallery, grouped into named albums.
package gallery

import (
	"time"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
)

// DefaultAlbum holds images created without an album.
const DefaultAlbum = "general"

// Image is one gallery photo.
type Image struct {
	ID        int64     `json:"id"`
	Album     string    `json:"album"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"image_url"`
	CreatedBy *int64    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Album summarises one album.
type Album struct {
	Name   string `json:"name"`
	Images int    `json:"images"`
}

// CreateInput is the body of POST /gallery.
type CreateInput struct {
	Album    string `json:"album" validate:"max=100"`
	Title    string `json:"title" validate:"required,max=200"`
	Caption  string `json:"caption" validate:"max=1000"`
	ImageURL string `json:"image_url" validate:"required,url"`
}

// UpdateInput is the body of PUT /gallery/{id}.
type UpdateInput struct {
	Album    *string `json:"album" validate:"omitempty,min=1,max=100"`
	Title    *string `json:"title" validate:"omitempty,min=1,max=200"`
	Caption  *string `json:"caption" validate:"omitempty,max=1000"`
	ImageURL *string `json:"image_url" validate:"omitempty,url"`
}

// ListFilter narrows a listing.
type ListFilter struct {
	Visibility authz.Filter
	Album      string
}

const resourceName = "Gallery image"
