// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package blog manages the blog posts of the site.

Anonymous visitors and members see published posts only; staff see drafts too
and may narrow a listing with ?status=published|draft. A draft fetched by a
non-staff caller is reported as not found.
*/
package blog

import "time"

// # Domain Entities

// Blog is a single post.
type Blog struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL *string    `json:"cover_image_url"`
	Published     bool       `json:"published"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedBy     *int64     `json:"created_by"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// # Payloads

// CreateInput is the body of POST /blogs.
type CreateInput struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Excerpt       string  `json:"excerpt" validate:"max=500"`
	Content       string  `json:"content" validate:"required"`
	CoverImageURL *string `json:"cover_image_url" validate:"omitempty,url"`
	Published     bool    `json:"published"`
}

// UpdateInput is the body of PUT /blogs/{id}. Omitted fields are left unchanged.
type UpdateInput struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=200"`
	Excerpt       *string `json:"excerpt" validate:"omitempty,max=500"`
	Content       *string `json:"content" validate:"omitempty,min=1"`
	CoverImageURL *string `json:"cover_image_url" validate:"omitempty,url"`
	Published     *bool   `json:"published"`
}

const (
	// resourceName is used in not found messages.
	resourceName = "Blog"

	// maxSlugAttempts bounds the "-2", "-3" suffixes tried for a taken slug.
	maxSlugAttempts = 5

	// fallbackSlug is used for titles without letters or digits.
	fallbackSlug = "post"
)
