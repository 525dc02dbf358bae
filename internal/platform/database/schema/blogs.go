// Copyright (c) 2026 Ecclesia. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// BlogTable describes the 'blogs' table (blog posts).
type BlogTable struct {
	Table         string
	ID            string
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	CoverImageURL string
	Published     string
	PublishedAt   string
	CreatedBy     string
	CreatedAt     string
	UpdatedAt     string
}

// Blog is the schema definition for blogs.
var Blog = BlogTable{
	Table:         "blogs",
	ID:            "id",
	Title:         "title",
	Slug:          "slug",
	Excerpt:       "excerpt",
	Content:       "content",
	CoverImageURL: "cover_image_url",
	Published:     "published",
	PublishedAt:   "published_at",
	CreatedBy:     "created_by",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}

// Columns returns every column in declaration order.
func (t BlogTable) Columns() []string {
	return []string{t.ID, t.Title, t.Slug, t.Excerpt, t.Content, t.CoverImageURL, t.Published, t.PublishedAt, t.CreatedBy, t.CreatedAt, t.UpdatedAt}
}
