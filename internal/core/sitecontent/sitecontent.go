// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sitecontent stores the editable text blocks of the public site
// (about page, service times, footer), addressed by a stable key.
package sitecontent

import "time"

// Block is one keyed piece of site copy.
type Block struct {
	Key       string    `json:"key"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	UpdatedBy *int64    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PutInput is the body of PUT /site-content/{key}.
type PutInput struct {
	Title string `json:"title" validate:"max=200"`
	Body  string `json:"body" validate:"max=100000"`
}

const (
	resourceName = "Site content"
	maxKeyLength = 100
)
