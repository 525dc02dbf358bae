// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package media manages recorded sermons and worship videos. The library is
// public; staff maintain it.
package media

import (
	"time"

	"github.com/taibuivan/ecclesia/internal/platform/authz"
)

// Kind distinguishes audio from video recordings.
type Kind string

const (
	KindAudio Kind = "audio"
	KindVideo Kind = "video"
)

// Media is one recording.
type Media struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Kind         Kind       `json:"kind"`
	URL          string     `json:"url"`
	ThumbnailURL *string    `json:"thumbnail_url"`
	Speaker      string     `json:"speaker"`
	RecordedOn   *time.Time `json:"recorded_on"`
	CreatedBy    *int64     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CreateInput is the body of POST /media.
type CreateInput struct {
	Title        string  `json:"title" validate:"required,max=200"`
	Description  string  `json:"description"`
	Kind         string  `json:"kind" validate:"required,oneof=audio video"`
	URL          string  `json:"url" validate:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	Speaker      string  `json:"speaker" validate:"max=100"`
	RecordedOn   *string `json:"recorded_on" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateInput is the body of PUT /media/{id}.
type UpdateInput struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string `json:"description"`
	Kind         *string `json:"kind" validate:"omitempty,oneof=audio video"`
	URL          *string `json:"url" validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnail_url" validate:"omitempty,url"`
	Speaker      *string `json:"speaker" validate:"omitempty,max=100"`
	RecordedOn   *string `json:"recorded_on" validate:"omitempty,datetime=2006-01-02"`
}

// ListFilter narrows a listing.
type ListFilter struct {
	Visibility authz.Filter
	// Kind keeps one kind of recording when set.
	Kind Kind
}

const resourceName = "Media"
